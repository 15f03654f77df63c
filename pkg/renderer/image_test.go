package renderer

import (
	"image/color"
	"testing"
)

func TestBufferToImage_FlipsRows(t *testing.T) {
	// Buffer row 0 (bottom) is red, row 1 (top) is green
	buf := []byte{
		255, 0, 0, 255, 0, 0,
		0, 255, 0, 0, 255, 0,
	}

	img, err := BufferToImage(buf, 2, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	for x := 0; x < 2; x++ {
		if got := img.RGBAAt(x, 0); got != green {
			t.Errorf("Expected top image row to be green, got %v", got)
		}
		if got := img.RGBAAt(x, 1); got != red {
			t.Errorf("Expected bottom image row to be red, got %v", got)
		}
	}
}

func TestBufferToImage_SizeMismatch(t *testing.T) {
	if _, err := BufferToImage(make([]byte, 11), 2, 2); err == nil {
		t.Error("Expected error for a buffer of the wrong size")
	}
}

func TestNewFrameBuffer(t *testing.T) {
	if got := len(NewFrameBuffer(800, 600)); got != 3*800*600 {
		t.Errorf("Expected %d bytes, got %d", 3*800*600, got)
	}
}
