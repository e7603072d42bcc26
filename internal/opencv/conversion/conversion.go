// Package conversion bridges tracked Mats to Go images and encoded bytes.
package conversion

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/opencv/safe"
)

// MatToImage converts a BGR Mat into an image.Image for Fyne display
func MatToImage(mat *safe.Mat) (image.Image, error) {
	if mat == nil || mat.Empty() {
		return nil, fmt.Errorf("no mat to convert")
	}

	img, err := mat.GetMat().ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert mat to image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes a Mat as PNG bytes
func EncodePNG(mat *safe.Mat) ([]byte, error) {
	if mat == nil || mat.Empty() {
		return nil, fmt.Errorf("no mat to encode")
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat.GetMat())
	if err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	defer buf.Close()

	// Copy out: the native buffer dies with Close.
	encoded := make([]byte, len(buf.GetBytes()))
	copy(encoded, buf.GetBytes())
	return encoded, nil
}
