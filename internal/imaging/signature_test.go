package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func TestDecodeSignatureDataURI(t *testing.T) {
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(createTestPNG(40, 16))
	data, err := DecodeSignature(payload)
	if err != nil {
		t.Fatalf("DecodeSignature: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}

func TestDecodeSignatureBareBase64(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(createTestPNG(40, 16))
	if _, err := DecodeSignature(payload); err != nil {
		t.Fatalf("bare base64 should be accepted: %v", err)
	}
}

func TestDecodeSignatureJPEGInput(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(createTestJPEG(40, 16))
	data, err := DecodeSignature(payload)
	if err != nil {
		t.Fatalf("DecodeSignature JPEG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output should be normalized to PNG")
	}
}

func TestDecodeSignatureDownscale(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(createTestPNG(2048, 512))
	data, err := DecodeSignature(payload)
	if err != nil {
		t.Fatalf("DecodeSignature large: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %d, got %dx%d", MaxDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestDecodeSignatureSmallNotUpscaled(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(createTestPNG(50, 20))
	data, err := DecodeSignature(payload)
	if err != nil {
		t.Fatal(err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 20 {
		t.Errorf("small image should keep its size, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecodeSignatureInvalidBase64(t *testing.T) {
	if _, err := DecodeSignature("data:image/png;base64,!!!not-base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestDecodeSignatureNotAnImage(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("plain text, not pixels"))
	if _, err := DecodeSignature(payload); err == nil {
		t.Error("expected error for non-image payload")
	}
}

func TestDecodeSignatureGIFRejected(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("GIF89a..."))
	if _, err := DecodeSignature(payload); err == nil {
		t.Error("expected error for GIF payload")
	}
}
