package renderer

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM serializes a packed RGB raster (row-major from the top, as
// produced by Renderer.Raster) as a plain-text PPM (P3) image: a three-token
// header (format, dimensions, maximum channel value) followed by one
// "R G B" triple per pixel.
func WritePPM(w io.Writer, raster []uint8, width, height int) error {
	if len(raster) != width*height*3 {
		return fmt.Errorf("raster length %d does not match %dx%d image", len(raster), width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for i := 0; i < len(raster); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", raster[i], raster[i+1], raster[i+2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
