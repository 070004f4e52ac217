package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/platformer/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogHasBuiltins(t *testing.T) {
	c := assets.Default()

	for id := assets.AnimAir; id < assets.AnimDynamic; id++ {
		anim, ok := c.Get(id)
		require.True(t, ok, "missing builtin %s", id)
		assert.Equal(t, id, anim.ID)
		assert.Equal(t, id.String(), anim.Name)
		assert.Greater(t, anim.Size.X, float32(0))
	}
	assert.Equal(t, int(assets.AnimDynamic-1), c.Len())
}

func TestCatalogLookupReturnsCopies(t *testing.T) {
	c := assets.Default()

	a, ok := c.Lookup("Run")
	require.True(t, ok)
	a.Update()
	a.Update()

	b, ok := c.Lookup("Run")
	require.True(t, ok)
	assert.Equal(t, 2, a.Ticks())
	assert.Equal(t, 0, b.Ticks())
}

func TestCatalogRegisterDynamic(t *testing.T) {
	c := assets.Default()

	cloud := c.Register(assets.Animation{Name: "Cloud", FrameCount: 1})
	bush := c.Register(assets.Animation{Name: "Bush", FrameCount: 1})
	again := c.Register(assets.Animation{Name: "Cloud", FrameCount: 2})

	assert.Equal(t, assets.AnimDynamic, cloud)
	assert.Equal(t, assets.AnimDynamic+1, bush)
	assert.Equal(t, cloud, again)

	anim, ok := c.Lookup("Cloud")
	require.True(t, ok)
	assert.Equal(t, 2, anim.FrameCount)

	_, ok = c.Lookup("Nope")
	assert.False(t, ok)
}

func TestAnimationPlayback(t *testing.T) {
	anim := assets.Animation{FrameCount: 3, Speed: 2}

	frames := []int{}
	for !anim.HasEnded() {
		frames = append(frames, anim.Frame())
		anim.Update()
	}

	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, frames)
	assert.Equal(t, 6, anim.Ticks())
}

func TestAnimationStaticEndsAfterOneTick(t *testing.T) {
	anim := assets.Animation{FrameCount: 1}
	assert.False(t, anim.HasEnded())
	anim.Update()
	assert.True(t, anim.HasEnded())
	assert.Equal(t, 0, anim.Frame())
}

func TestParseManifest(t *testing.T) {
	manifest := []byte(`
animations:
  - name: Brick
    frames: 1
    size: [48, 48]
    color: [10, 20, 30]
  - name: Cloud
    frames: 2
    speed: 8
    size: [128, 64]
`)

	c, err := assets.Parse(manifest)
	require.NoError(t, err)

	brick, ok := c.Get(assets.AnimBrick)
	require.True(t, ok)
	assert.Equal(t, float32(48), brick.Size.X)
	assert.Equal(t, uint8(20), brick.Color.G)
	assert.Equal(t, uint8(255), brick.Color.A)

	cloud, ok := c.Lookup("Cloud")
	require.True(t, ok)
	assert.GreaterOrEqual(t, cloud.ID, assets.AnimDynamic)
	assert.Equal(t, 8, cloud.Speed)

	_, ok = c.Get(assets.AnimCoin)
	assert.True(t, ok, "builtins survive a partial manifest")
}

func TestParseManifestRejectsInvalidEntries(t *testing.T) {
	tests := map[string]string{
		"no name":   "animations:\n  - frames: 1\n    size: [1, 1]\n",
		"no frames": "animations:\n  - name: A\n    size: [1, 1]\n",
		"no size":   "animations:\n  - name: A\n    frames: 1\n",
	}

	for name, manifest := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := assets.Parse([]byte(manifest))
			assert.ErrorIs(t, err, assets.ErrInvalidAnimation)
		})
	}

	_, err := assets.Parse([]byte("animations: [oops"))
	assert.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("animations: []\n"), 0o644))

	c, err := assets.Load(path)
	require.NoError(t, err)
	assert.Equal(t, assets.Default().Len(), c.Len())

	_, err = assets.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
