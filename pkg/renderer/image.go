package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// NewFrameBuffer allocates an RGB buffer for a width x height image
func NewFrameBuffer(width, height int) []byte {
	return make([]byte, 3*width*height)
}

// BufferToImage converts a rendered RGB buffer into an image.
// Buffer row 0 is the bottom of the picture, so rows are flipped.
func BufferToImage(buf []byte, width, height int) (*image.RGBA, error) {
	if expected := 3 * width * height; len(buf) != expected {
		return nil, fmt.Errorf("buffer holds %d bytes, expected %d for %dx%d RGB", len(buf), expected, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		y := height - 1 - j
		for i := 0; i < width; i++ {
			offset := 3 * (j*width + i)
			img.SetRGBA(i, y, color.RGBA{
				R: buf[offset],
				G: buf[offset+1],
				B: buf[offset+2],
				A: 255,
			})
		}
	}

	return img, nil
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}

	return total / float64(pixels)
}
