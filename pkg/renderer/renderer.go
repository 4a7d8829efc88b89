package renderer

import (
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/geometry"
	"github.com/rmark/go-path-tracer/pkg/integrator"
)

// Scene provides everything the renderer needs. Declared here (rather than
// importing the scene package) to avoid a circular import.
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.World
	GetBackgroundColors() (top, bottom core.Vec3)
}

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Jittered samples averaged per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel workers; 0 means NumCPU
	BandRows        int   // Rows per work unit; 0 means 1
	Seed            int64 // Base seed for the per-band random streams
}

// DefaultConfig returns sensible defaults for the given image size
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		BandRows:        1,
	}
}

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels  int
	TotalSamples int64
	NumBands     int
	NumWorkers   int
	Elapsed      time.Duration
}

// Progress describes a partially completed render. Image holds all rows
// rendered so far (unfinished rows are black) and is only valid for the
// duration of the callback.
type Progress struct {
	RowsDone  int
	TotalRows int
	Image     *image.RGBA
}

// ProgressFunc is invoked after each band completes, from a single
// goroutine, in band-completion order
type ProgressFunc func(p Progress)

// Renderer drives the per-pixel multi-sample loop across a pool of row-band
// workers. The output raster is packed RGB, 8 bits per channel, row-major
// from the top of the image.
type Renderer struct {
	scene      Scene
	config     Config
	integrator *integrator.PathTracer
	raster     []uint8
}

// NewRenderer creates a renderer for the given scene and configuration
func NewRenderer(scene Scene, config Config) *Renderer {
	if config.BandRows <= 0 {
		config.BandRows = 1
	}
	top, bottom := scene.GetBackgroundColors()
	return &Renderer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewGradientPathTracer(top, bottom),
		raster:     make([]uint8, config.Width*config.Height*3),
	}
}

// Render renders the full image, blocking until every band completes
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	return r.RenderProgress(nil)
}

// RenderProgress renders the full image, invoking onProgress (when non-nil)
// as bands complete
func (r *Renderer) RenderProgress(onProgress ProgressFunc) (*image.RGBA, RenderStats) {
	width, height := r.config.Width, r.config.Height
	bandRows := r.config.BandRows
	numBands := (height + bandRows - 1) / bandRows
	startTime := time.Now()

	pool := NewWorkerPool(r.config.NumWorkers, numBands, func(task BandTask) {
		r.renderBand(task.StartRow, task.EndRow, task.Random)
	})
	pool.Start()

	// Every band gets its own generator so parallel streams never share
	// state. Seeding from the band's start row keeps a fixed-seed render
	// reproducible regardless of worker scheduling.
	for start := 0; start < height; start += bandRows {
		end := min(start+bandRows, height)
		pool.Submit(BandTask{
			StartRow: start,
			EndRow:   end,
			Random:   rand.New(rand.NewSource(r.config.Seed + int64(start))),
		})
	}
	go pool.Stop()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowsDone := 0
	for result := range pool.Results() {
		r.copyRowsToImage(img, result.StartRow, result.EndRow)
		rowsDone += result.EndRow - result.StartRow
		if onProgress != nil {
			onProgress(Progress{RowsDone: rowsDone, TotalRows: height, Image: img})
		}
	}

	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: int64(width) * int64(height) * int64(r.config.SamplesPerPixel),
		NumBands:     numBands,
		NumWorkers:   pool.NumWorkers(),
		Elapsed:      time.Since(startTime),
	}
	return img, stats
}

// Raster returns the packed RGB output, row-major from the top of the
// image, one byte per channel. Only valid after Render returns.
func (r *Renderer) Raster() []uint8 {
	return r.raster
}

// renderBand renders rows [startRow, endRow), where row 0 is the bottom of
// the image. Each pixel averages SamplesPerPixel independently jittered
// samples. The band owns its raster rows exclusively.
func (r *Renderer) renderBand(startRow, endRow int, random *rand.Rand) {
	width, height := r.config.Width, r.config.Height
	samplesPerPixel := r.config.SamplesPerPixel
	camera := r.scene.GetCamera()
	world := r.scene.GetWorld()

	for y := startRow; y < endRow; y++ {
		// Sample rows count from the bottom; raster rows from the top
		rowOffset := (height - 1 - y) * width * 3

		for x := 0; x < width; x++ {
			accum := core.NewColor(0, 0, 0)
			for sample := 0; sample < samplesPerPixel; sample++ {
				u := (float64(x) + random.Float64()) / float64(width-1)
				v := (float64(y) + random.Float64()) / float64(height-1)
				ray := camera.GetRay(u, v, random)
				accum = accum.Add(r.integrator.RayColor(ray, world, random, r.config.MaxDepth))
			}

			red, green, blue := quantizeColor(accum.Divide(float64(samplesPerPixel)))
			r.raster[rowOffset+x*3] = red
			r.raster[rowOffset+x*3+1] = green
			r.raster[rowOffset+x*3+2] = blue
		}
	}
}

// quantizeColor converts linear radiance to display-ready 8-bit channels:
// gamma-2 correction (square root), clamp to [0, 0.9999], scale by 256 and
// truncate
func quantizeColor(c core.Vec3) (red, green, blue uint8) {
	corrected := c.GammaCorrect(2.0).Clamp(0.0, 0.9999)
	return uint8(256.0 * corrected.X),
		uint8(256.0 * corrected.Y),
		uint8(256.0 * corrected.Z)
}

// copyRowsToImage copies completed raster rows into the RGBA snapshot.
// Rows are identified bottom-up like renderBand.
func (r *Renderer) copyRowsToImage(img *image.RGBA, startRow, endRow int) {
	width, height := r.config.Width, r.config.Height
	for y := startRow; y < endRow; y++ {
		rasterRow := height - 1 - y
		src := r.raster[rasterRow*width*3 : (rasterRow+1)*width*3]
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, rasterRow)
			img.Pix[i] = src[x*3]
			img.Pix[i+1] = src[x*3+1]
			img.Pix[i+2] = src[x*3+2]
			img.Pix[i+3] = math.MaxUint8
		}
	}
}
