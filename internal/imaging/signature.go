package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // decoder registration
	"image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height of a normalized signature image.
const MaxDimension = 600

// AllowedMIME lists the accepted signature image formats.
var AllowedMIME = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// DecodeSignature turns an encoded signature payload (a canvas data URI or
// bare base64) into normalized PNG bytes suitable for embedding in a receipt.
// The MIME type is sniffed from the decoded bytes rather than taken from the
// data URI header, and oversized images are downscaled.
func DecodeSignature(payload string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(stripDataURI(payload))
	if err != nil {
		return nil, fmt.Errorf("decoding signature payload: %w", err)
	}

	detected := http.DetectContentType(raw)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported signature format: %s (only PNG and JPEG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding signature image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding signature PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// stripDataURI removes a "data:image/...;base64," prefix when present.
func stripDataURI(payload string) string {
	if !strings.HasPrefix(payload, "data:") {
		return payload
	}
	if idx := strings.IndexByte(payload, ','); idx >= 0 {
		return payload[idx+1:]
	}
	return payload
}

// downscale resizes the image so neither dimension exceeds maxDim, preserving
// aspect ratio with Catmull-Rom interpolation. Returns the original image if
// already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
