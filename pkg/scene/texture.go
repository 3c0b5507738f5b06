package scene

import (
	"fmt"
	"log"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// MaxTextureSlots is the fixed registry capacity; slot i maps to
// texture unit i.
const MaxTextureSlots = 16

type textureEntry struct {
	id  uint32
	tag string
}

// TextureRegistry loads image files into GPU textures and exposes
// lookup by tag. Slots are assigned in load order and never reused or
// evicted.
type TextureRegistry struct {
	entries []textureEntry
}

// NewTextureRegistry returns an empty registry
func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{}
}

// Load decodes the image at path, uploads it as a mipmapped GL texture
// with repeat wrapping and linear filtering, and registers it under
// tag. On failure the registry is unchanged and the error is returned;
// callers are expected to log and continue without the texture.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextureSlots {
		return fmt.Errorf("texture registry full (%d slots), cannot load %q", MaxTextureSlots, path)
	}

	img, err := imgio.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load texture %q: %w", path, err)
	}

	// Image rows come top-down; GL expects the first row at V=0
	rgba := transform.FlipV(img)
	width := rgba.Rect.Dx()
	height := rgba.Rect.Dy()

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.add(textureID, tag)
	log.Printf("loaded texture %q (%dx%d) as %q", path, width, height, tag)

	return nil
}

// add registers an uploaded texture in the next free slot
func (r *TextureRegistry) add(id uint32, tag string) {
	r.entries = append(r.entries, textureEntry{id: id, tag: tag})
}

// FindSlot returns the texture unit slot for the tag, or -1 when the
// tag was never loaded. Callers forward the -1 sentinel into the
// sampler uniform as-is.
func (r *TextureRegistry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.tag == tag {
			return i
		}
	}
	return -1
}

// Count returns the number of loaded textures
func (r *TextureRegistry) Count() int {
	return len(r.entries)
}

// BindAll binds each loaded texture to its corresponding texture unit.
// Called once at setup; draws select units via the sampler uniform.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, e.id)
	}
}

// Destroy frees all GL textures held by the registry
func (r *TextureRegistry) Destroy() {
	for _, e := range r.entries {
		id := e.id
		gl.DeleteTextures(1, &id)
	}
	r.entries = nil
}
