package inputs

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Texture is an immutable 2D texture with a generated mip chain.
type Texture struct {
	ID     uint32
	Width  int
	Height int
	Params TextureParams
}

// NewTexture uploads p into new texture storage and builds its mipmaps.
// A GL context must be current.
func NewTexture(p *Pixels, smooth bool) (*Texture, error) {
	if p == nil || p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("cannot create texture from empty image")
	}
	if len(p.Pix) != p.Width*p.Height*4 {
		return nil, fmt.Errorf("pixel buffer is %d bytes, want %d for %dx%d RGBA", len(p.Pix), p.Width*p.Height*4, p.Width, p.Height)
	}

	params := TextureParamsFor(p.Width, p.Height, smooth)

	var id uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &id)
	gl.TextureParameteri(id, gl.TEXTURE_WRAP_S, params.WrapS)
	gl.TextureParameteri(id, gl.TEXTURE_WRAP_T, params.WrapT)
	gl.TextureParameteri(id, gl.TEXTURE_MIN_FILTER, params.MinFilter)
	gl.TextureParameteri(id, gl.TEXTURE_MAG_FILTER, params.MagFilter)

	gl.TextureStorage2D(id, params.Levels, params.InternalFormat, int32(p.Width), int32(p.Height))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TextureSubImage2D(id, 0, 0, 0, int32(p.Width), int32(p.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(p.Pix))
	gl.GenerateTextureMipmap(id)

	return &Texture{ID: id, Width: p.Width, Height: p.Height, Params: params}, nil
}

// Bind attaches the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.BindTextureUnit(unit, t.ID)
}

func (t *Texture) Destroy() {
	gl.DeleteTextures(1, &t.ID)
}
