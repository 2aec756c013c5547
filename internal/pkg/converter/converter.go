package converter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	// Still-image formats beyond the stdlib jpeg/png/gif decoders.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/webext-tools/png-saver/internal/entity"
)

// Converter turns raw image bytes of any registered encoding into PNG
// bytes, flattened onto an opaque white background.
type Converter interface {
	ToPNG(raw []byte) ([]byte, error)
}

type pngConverter struct{}

func New() Converter {
	return &pngConverter{}
}

func (c *pngConverter) ToPNG(raw []byte) ([]byte, error) {
	img, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return EncodePNG(Flatten(img))
}

// Decode delegates to the registered format decoders. Unrecognized or
// corrupt bytes surface as entity.ErrDecode.
func Decode(raw []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDecode, err)
	}
	return img, nil
}

// Flatten draws the bitmap at the origin of a white canvas of identical
// dimensions, no scaling. Transparent source pixels become opaque white
// rather than being preserved.
func Flatten(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrEncode, err)
	}
	return buf.Bytes(), nil
}
