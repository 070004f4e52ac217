package assets

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/kamstrup/intmap"
	"github.com/plus3/platformer/vec"
	"gopkg.in/yaml.v3"
)

// ErrInvalidAnimation is returned for manifest entries that cannot be played.
var ErrInvalidAnimation = errors.New("invalid animation")

// Catalog maps animation identities to their descriptors.
type Catalog struct {
	byID   *intmap.Map[AnimationID, Animation]
	byName map[string]AnimationID
	next   AnimationID
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID:   intmap.New[AnimationID, Animation](64),
		byName: make(map[string]AnimationID),
		next:   AnimDynamic,
	}
}

// Register adds or replaces an animation by name and returns its ID.
// Builtin names keep their fixed ID; other names get the next dynamic ID.
func (c *Catalog) Register(a Animation) AnimationID {
	id, ok := c.byName[a.Name]
	if !ok {
		if builtin, isBuiltin := BuiltinID(a.Name); isBuiltin {
			id = builtin
		} else {
			id = c.next
			c.next++
		}
		c.byName[a.Name] = id
	}
	a.ID = id
	a.current = 0
	c.byID.Put(id, a)
	return id
}

// Get returns a fresh copy of the animation with the given ID.
func (c *Catalog) Get(id AnimationID) (Animation, bool) {
	return c.byID.Get(id)
}

// Lookup returns a fresh copy of the animation registered under name.
func (c *Catalog) Lookup(name string) (Animation, bool) {
	id, ok := c.byName[name]
	if !ok {
		return Animation{}, false
	}
	return c.byID.Get(id)
}

// Len returns the number of registered animations.
func (c *Catalog) Len() int {
	return c.byID.Len()
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type manifestFile struct {
	Animations []manifestEntry `yaml:"animations"`
}

type manifestEntry struct {
	Name   string     `yaml:"name"`
	Frames int        `yaml:"frames"`
	Speed  int        `yaml:"speed"`
	Size   [2]float32 `yaml:"size"`
	Color  [3]uint8   `yaml:"color"`
}

// Parse builds a catalog from a YAML manifest. Entries are layered over
// Default so that every builtin animation is always available.
func Parse(data []byte) (*Catalog, error) {
	var f manifestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse animation manifest: %w", err)
	}

	c := Default()
	for _, e := range f.Animations {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry without name", ErrInvalidAnimation)
		}
		if e.Frames < 1 {
			return nil, fmt.Errorf("%w: %s has %d frames", ErrInvalidAnimation, e.Name, e.Frames)
		}
		if e.Size[0] <= 0 || e.Size[1] <= 0 {
			return nil, fmt.Errorf("%w: %s has size %vx%v", ErrInvalidAnimation, e.Name, e.Size[0], e.Size[1])
		}
		c.Register(Animation{
			Name:       e.Name,
			FrameCount: e.Frames,
			Speed:      e.Speed,
			Size:       vec.New(e.Size[0], e.Size[1]),
			Color:      color.RGBA{R: e.Color[0], G: e.Color[1], B: e.Color[2], A: 255},
		})
	}
	return c, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read animation manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns a catalog holding every builtin animation with placeholder
// sizes and colours, enough to run the simulation without asset files.
func Default() *Catalog {
	c := NewCatalog()
	tile := vec.New(64, 64)
	defaults := []Animation{
		{Name: "Air", FrameCount: 1, Size: vec.New(64, 64), Color: color.RGBA{220, 40, 40, 255}},
		{Name: "Stand", FrameCount: 1, Size: vec.New(64, 64), Color: color.RGBA{200, 30, 30, 255}},
		{Name: "Run", FrameCount: 4, Speed: 4, Size: vec.New(64, 64), Color: color.RGBA{240, 70, 70, 255}},
		{Name: "Ground", FrameCount: 1, Size: tile, Color: color.RGBA{150, 90, 40, 255}},
		{Name: "Brick", FrameCount: 1, Size: tile, Color: color.RGBA{180, 80, 40, 255}},
		{Name: "Question", FrameCount: 3, Speed: 10, Size: tile, Color: color.RGBA{240, 180, 30, 255}},
		{Name: "Question2", FrameCount: 1, Size: tile, Color: color.RGBA{130, 100, 60, 255}},
		{Name: "Block", FrameCount: 1, Size: tile, Color: color.RGBA{110, 110, 110, 255}},
		{Name: "Pole", FrameCount: 1, Size: tile, Color: color.RGBA{40, 180, 60, 255}},
		{Name: "PoleTop", FrameCount: 1, Size: tile, Color: color.RGBA{60, 220, 80, 255}},
		{Name: "Explosion", FrameCount: 6, Speed: 4, Size: tile, Color: color.RGBA{255, 140, 0, 255}},
		{Name: "Coin", FrameCount: 4, Speed: 6, Size: vec.New(32, 32), Color: color.RGBA{255, 215, 0, 255}},
		{Name: "Buster", FrameCount: 1, Size: vec.New(16, 16), Color: color.RGBA{80, 200, 255, 255}},
	}
	for _, a := range defaults {
		c.Register(a)
	}
	return c
}
