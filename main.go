package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/rmark/go-path-tracer/pkg/renderer"
	"github.com/rmark/go-path-tracer/pkg/scene"
	"github.com/rmark/go-path-tracer/pkg/upload"
)

const uploadTimeout = 30 * time.Second

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'default'")
	width := flag.Int("width", 1200, "Image width in pixels")
	height := flag.Int("height", 800, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Parallel workers (0 = number of CPUs)")
	bandRows := flag.Int("band-rows", 1, "Image rows per unit of parallel work")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Base random seed")
	output := flag.String("output", "", "Output file (.ppm, .png, .tiff or .bmp); default output/<scene>/render_<timestamp>.png")
	uploadFlag := flag.Bool("upload", false, "Upload the result to S3 (S3_* env vars or .env)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cover   - procedural sphere field with depth of field")
		fmt.Println("  default - three spheres over a diffuse ground")
		return
	}

	// Credentials for -upload may live in a .env file
	_ = godotenv.Load()

	aspectRatio := float64(*width) / float64(*height)
	selectedScene, err := createScene(*sceneType, aspectRatio, *seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	outputPath := *output
	if outputPath == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
		BandRows:        *bandRows,
		Seed:            *seed,
	}

	fmt.Printf("Rendering %dx%d, %d samples/pixel, depth %d...\n",
		*width, *height, *samples, *depth)

	r := renderer.NewRenderer(selectedScene, config)
	img, stats := r.Render()

	fmt.Printf("Render completed in %v (%d samples across %d bands on %d workers)\n",
		stats.Elapsed, stats.TotalSamples, stats.NumBands, stats.NumWorkers)

	var buf bytes.Buffer
	format := formatForPath(outputPath)
	if err := encodeImage(&buf, format, img, r.Raster(), *width, *height); err != nil {
		fmt.Printf("Error encoding image: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", outputPath)

	if *uploadFlag {
		if err := uploadRender(outputPath, buf.Bytes()); err != nil {
			fmt.Printf("Error uploading: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Uploaded %s\n", filepath.Base(outputPath))
	}
}

// createScene builds a scene by name. The cover scene is procedural, so it
// takes the base seed; the default scene is fully deterministic.
func createScene(sceneType string, aspectRatio float64, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "cover":
		return scene.NewCoverScene(aspectRatio, rand.New(rand.NewSource(seed))), nil
	case "default":
		return scene.NewDefaultScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// formatForPath picks the output format from the file extension,
// defaulting to PNG
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return "ppm"
	case ".tiff", ".tif":
		return "tiff"
	case ".bmp":
		return "bmp"
	default:
		return "png"
	}
}

// encodeImage serializes a finished render in the requested format. PPM uses
// the packed raster; the binary formats use the RGBA image.
func encodeImage(w io.Writer, format string, img *image.RGBA, raster []uint8, width, height int) error {
	switch format {
	case "ppm":
		return renderer.WritePPM(w, raster, width, height)
	case "png":
		return png.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// uploadRender pushes the encoded image to the bucket configured in the
// environment
func uploadRender(path string, data []byte) error {
	uploader, err := upload.NewUploader(upload.ConfigFromEnv())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()
	key := fmt.Sprintf("renders/%s", filepath.Base(path))
	return uploader.Upload(ctx, key, data, upload.ContentTypeFor(path))
}
