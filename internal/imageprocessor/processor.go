package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ImageSize bounds the resize box for a processed image.
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	SizeThumbnail = ImageSize{Name: "thumbnail", Width: 300, Height: 300}
	SizeMedium    = ImageSize{Name: "medium", Width: 800, Height: 800}
)

// Processor handles image processing operations.
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// Thumbnail decodes an image and re-encodes it scaled into the
// thumbnail box, keeping the original format.
func (p *Processor) Thumbnail(reader io.Reader) (io.Reader, error) {
	return p.ProcessImage(reader, SizeThumbnail, "")
}

// ProcessImage decodes, resizes, and encodes an image. An empty format
// keeps the source format; only jpeg and png are supported.
func (p *Processor) ProcessImage(reader io.Reader, size ImageSize, format string) (io.Reader, error) {
	img, imgFormat, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img, size.Width, size.Height)

	if format == "" {
		format = imgFormat
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return &buf, nil
}

// resize scales an image into the box, maintaining aspect ratio.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// IsValidImage checks if the reader contains a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
