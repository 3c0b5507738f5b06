package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSlotSentinel(t *testing.T) {
	r := NewTextureRegistry()
	assert.Equal(t, -1, r.FindSlot("missing"))

	r.add(7, "plate")
	r.add(9, "caramel")

	// Slots follow load order, not texture IDs
	assert.Equal(t, 0, r.FindSlot("plate"))
	assert.Equal(t, 1, r.FindSlot("caramel"))
	assert.Equal(t, -1, r.FindSlot("blueberry"))
	assert.Equal(t, 2, r.Count())
}

func TestLoadMissingFileLeavesRegistryUnchanged(t *testing.T) {
	r := NewTextureRegistry()
	r.add(1, "existing")

	err := r.Load(filepath.Join(t.TempDir(), "nope.jpg"), "ghost")
	require.Error(t, err)

	assert.Equal(t, 1, r.Count())
	assert.Equal(t, -1, r.FindSlot("ghost"))
	assert.Equal(t, 0, r.FindSlot("existing"))
}

func TestLoadRejectsWhenFull(t *testing.T) {
	r := NewTextureRegistry()
	for i := 0; i < MaxTextureSlots; i++ {
		r.add(uint32(i), "t")
	}

	err := r.Load("textures/plate.jpg", "overflow")
	require.Error(t, err)
	assert.Equal(t, MaxTextureSlots, r.Count())
}

// The upload path flips decoded images so the first pixel row lands at
// V=0. These tests pin the orientation the GLSL texture lookups assume.
func TestUploadOrientationFlip(t *testing.T) {
	// Two rows: red on top, blue on the bottom
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})

	flipped := transform.FlipV(img)

	top := flipped.RGBAAt(0, 0)
	bottom := flipped.RGBAAt(0, 1)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, top)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, bottom)
}

func TestUploadOrientationFlipAfterDecode(t *testing.T) {
	// A decoded file goes through the same path as a synthetic image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 1, color.RGBA{R: 40, G: 50, B: 60, A: 255})

	path := filepath.Join(t.TempDir(), "check.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	g, err := os.Open(path)
	require.NoError(t, err)
	defer g.Close()
	decoded, err := png.Decode(g)
	require.NoError(t, err)

	flipped := transform.FlipV(decoded)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, flipped.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{R: 40, G: 50, B: 60, A: 255}, flipped.RGBAAt(1, 0))
}
