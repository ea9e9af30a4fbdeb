package inputs

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

// testImage is 2x2: red, green on the top row; blue, white on the bottom row.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func pixelAt(p *Pixels, x, y int) [4]byte {
	i := (y*p.Width + x) * 4
	return [4]byte{p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]}
}

func TestDecodeImageFlipsRows(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	p, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage() = %v", err)
	}
	if p.Width != 2 || p.Height != 2 || len(p.Pix) != 16 {
		t.Fatalf("got %dx%d with %d bytes", p.Width, p.Height, len(p.Pix))
	}
	if p.Format != "png" {
		t.Errorf("Format = %q, want png", p.Format)
	}

	// Row 0 of the buffer is the bottom row of the source.
	want := map[[2]int][4]byte{
		{0, 0}: {0, 0, 255, 255},
		{1, 0}: {255, 255, 255, 255},
		{0, 1}: {255, 0, 0, 255},
		{1, 1}: {0, 255, 0, 255},
	}
	for xy, c := range want {
		if got := pixelAt(p, xy[0], xy[1]); got != c {
			t.Errorf("pixel %v = %v, want %v", xy, got, c)
		}
	}
}

func TestDecodeImageOddHeight(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.Set(0, y, color.NRGBA{uint8(y * 10), 0, 0, 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	p, err := DecodeImage(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for y, want := range []byte{20, 10, 0} {
		if got := pixelAt(p, 0, y)[0]; got != want {
			t.Errorf("row %d red = %d, want %d", y, got, want)
		}
	}
}

func TestDecodeImageGrayIsOpaque(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.SetGray(0, 0, color.Gray{Y: 7})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	p, err := DecodeImage(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if p.Channels != 1 {
		t.Errorf("Channels = %d, want 1", p.Channels)
	}
	if got := pixelAt(p, 0, 0); got != [4]byte{7, 7, 7, 255} {
		t.Errorf("pixel = %v, want [7 7 7 255]", got)
	}
}

func TestDecodeImageKeepsStraightAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{200, 100, 50, 128})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	p, err := DecodeImage(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if p.Channels != 4 {
		t.Errorf("Channels = %d, want 4", p.Channels)
	}
	if got := pixelAt(p, 0, 0); got != [4]byte{200, 100, 50, 128} {
		t.Errorf("pixel = %v, want [200 100 50 128]", got)
	}
}

func TestDecodeImageFormats(t *testing.T) {
	tests := []struct {
		name     string
		encode   func(*bytes.Buffer) error
		channels int
	}{
		{"jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, testImage(), nil) }, 3},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, testImage()) }, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatal(err)
			}
			p, err := DecodeImage(&buf)
			if err != nil {
				t.Fatalf("DecodeImage() = %v", err)
			}
			if p.Format != tt.name {
				t.Errorf("Format = %q, want %q", p.Format, tt.name)
			}
			if p.Width != 2 || p.Height != 2 || len(p.Pix) != 16 {
				t.Errorf("got %dx%d with %d bytes", p.Width, p.Height, len(p.Pix))
			}
			if p.Channels != tt.channels {
				t.Errorf("Channels = %d, want %d", p.Channels, tt.channels)
			}
		})
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sky.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err != nil {
		t.Errorf("LoadImage() = %v", err)
	}

	_, err := LoadImage(filepath.Join(dir, "missing.png"))
	if err == nil || !strings.Contains(err.Error(), "missing.png") {
		t.Errorf("LoadImage(missing) = %v, want error naming the path", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(garbage); err == nil {
		t.Error("LoadImage(garbage) = nil, want error")
	}
}
