package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		sceneType string
		wantErr   bool
	}{
		{"cover", false},
		{"default", false},
		{"cornell", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.sceneType, func(t *testing.T) {
			s, err := createScene(tt.sceneType, 16.0/9.0, 42)
			if (err != nil) != tt.wantErr {
				t.Fatalf("createScene(%q) error = %v, wantErr %v", tt.sceneType, err, tt.wantErr)
			}
			if !tt.wantErr && s == nil {
				t.Error("expected a scene")
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"render.ppm", "ppm"},
		{"render.PPM", "ppm"},
		{"render.png", "png"},
		{"render.tiff", "tiff"},
		{"render.tif", "tiff"},
		{"render.bmp", "bmp"},
		{"render.jpg", "png"},
		{"render", "png"},
	}
	for _, tt := range tests {
		if got := formatForPath(tt.path); got != tt.want {
			t.Errorf("formatForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEncodeImage(t *testing.T) {
	const width, height = 2, 2
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	raster := make([]uint8, width*height*3)
	for i := range raster {
		raster[i] = 0xff
	}

	decoders := map[string]func(*bytes.Buffer) (image.Image, error){
		"png":  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		"tiff": func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
		"bmp":  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
	}
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encodeImage(&buf, format, img, raster, width, height); err != nil {
				t.Fatalf("encodeImage(%q) returned %v", format, err)
			}
			decoded, err := decode(&buf)
			if err != nil {
				t.Fatalf("decoding %s output: %v", format, err)
			}
			if decoded.Bounds().Dx() != width || decoded.Bounds().Dy() != height {
				t.Errorf("decoded bounds = %v, want %dx%d", decoded.Bounds(), width, height)
			}
		})
	}

	t.Run("ppm", func(t *testing.T) {
		var buf bytes.Buffer
		if err := encodeImage(&buf, "ppm", img, raster, width, height); err != nil {
			t.Fatalf("encodeImage(ppm) returned %v", err)
		}
		want := "P3\n2 2\n255\n255 255 255\n255 255 255\n255 255 255\n255 255 255\n"
		if buf.String() != want {
			t.Errorf("ppm output %q, want %q", buf.String(), want)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		if err := encodeImage(&buf, "gif", img, raster, width, height); err == nil {
			t.Error("expected an error for an unknown format")
		}
	})
}
