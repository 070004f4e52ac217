package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/plus3/platformer/world"
)

// Parse reads the line format. Blank lines and lines starting with # are
// ignored. Bad lines become directives carrying Err; only read failures are
// returned as an error. Lines may be of any length.
func Parse(r io.Reader) ([]Directive, error) {
	var out []Directive
	reader := bufio.NewReader(r)
	line := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return out, fmt.Errorf("read level: %w", err)
		}
		if text == "" && err != nil {
			return out, nil
		}
		line++
		if fields := strings.Fields(text); len(fields) > 0 && !strings.HasPrefix(fields[0], "#") {
			d := parseFields(fields)
			d.Line = line
			out = append(out, d)
		}
		if err != nil {
			return out, nil
		}
	}
}

func parseFields(fields []string) Directive {
	switch fields[0] {
	case "Tile", "Dec":
		kind := KindTile
		if fields[0] == "Dec" {
			kind = KindDecoration
		}
		d := Directive{Kind: kind}
		if len(fields) != 4 {
			d.Err = fmt.Errorf("%w: %s wants 3 fields, got %d", ErrMalformedDirective, fields[0], len(fields)-1)
			return d
		}
		d.Name = fields[1]
		nums, err := parseFloats(fields[2:4])
		if err != nil {
			d.Err = err
			return d
		}
		d.GridX, d.GridY = nums[0], nums[1]
		return d

	case "Player":
		d := Directive{Kind: KindPlayerSpawn}
		if len(fields) != 10 {
			d.Err = fmt.Errorf("%w: Player wants 9 fields, got %d", ErrMalformedDirective, len(fields)-1)
			return d
		}
		nums, err := parseFloats(fields[1:9])
		if err != nil {
			d.Err = err
			return d
		}
		d.Player = world.PlayerConfig{
			X: nums[0], Y: nums[1], CX: nums[2], CY: nums[3],
			Speed: nums[4], Jump: nums[5], MaxSpeed: nums[6], Gravity: nums[7],
			Weapon: fields[9],
		}
		d.GridX, d.GridY = d.Player.X, d.Player.Y
		return d

	default:
		return Directive{
			Kind: KindUnknown,
			Name: fields[0],
			Err:  fmt.Errorf("%w: %q", ErrUnknownDirective, fields[0]),
		}
	}
}

func parseFloats(fields []string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedDirective, f)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// LoadFile reads a level from disk, choosing the format by extension.
func LoadFile(path string) ([]Directive, error) {
	if filepath.Ext(path) == ".lua" {
		return RunScriptFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
