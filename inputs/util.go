package inputs

import (
	"math/bits"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// TextureParams is the sampler and storage state derived for an image.
type TextureParams struct {
	InternalFormat uint32
	Levels         int32
	WrapS          int32
	WrapT          int32
	MinFilter      int32
	MagFilter      int32
}

// TextureParamsFor returns the texture state for a width x height image.
// Storage is always RGBA8 because uploads are always four channel.
func TextureParamsFor(width, height int, smooth bool) TextureParams {
	minFilter, magFilter := getFilterMode(smooth)
	return TextureParams{
		InternalFormat: gl.RGBA8,
		Levels:         MipLevels(width, height),
		WrapS:          gl.REPEAT,
		WrapT:          gl.REPEAT,
		MinFilter:      minFilter,
		MagFilter:      magFilter,
	}
}

// MipLevels is the length of a full mip chain for the base size:
// floor(log2(max(width, height))) + 1.
func MipLevels(width, height int) int32 {
	n := max(width, height)
	if n < 1 {
		return 1
	}
	return int32(bits.Len(uint(n)))
}

func getFilterMode(smooth bool) (minFilter, magFilter int32) {
	if smooth {
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	}
	return gl.NEAREST_MIPMAP_NEAREST, gl.NEAREST
}
