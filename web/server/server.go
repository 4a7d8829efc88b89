// Package server exposes the path tracer over HTTP: a websocket endpoint
// streams render progress with downscaled preview frames.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nfnt/resize"

	"github.com/rmark/go-path-tracer/pkg/renderer"
	"github.com/rmark/go-path-tracer/pkg/scene"
)

// previewMaxWidth bounds the width of preview frames sent over the socket
const previewMaxWidth = 320

// previewInterval throttles how often preview frames are sent
const previewInterval = 250 * time.Millisecond

// Server handles web requests for the path tracer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// New creates a new web server
func New(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is the first JSON message a client sends on the websocket
type RenderRequest struct {
	Scene           string `json:"scene"`           // "cover" or "default"
	Width           int    `json:"width"`           // Image width
	Height          int    `json:"height"`          // Image height
	SamplesPerPixel int    `json:"samplesPerPixel"` // Samples per pixel
	MaxDepth        int    `json:"maxDepth"`        // Maximum bounce depth
	Seed            int64  `json:"seed"`            // Base random seed (0 = time-based)
}

// ApplyDefaults fills in zero-valued fields
func (r *RenderRequest) ApplyDefaults() {
	if r.Scene == "" {
		r.Scene = "default"
	}
	if r.Width == 0 {
		r.Width = 400
	}
	if r.Height == 0 {
		r.Height = 225
	}
	if r.SamplesPerPixel == 0 {
		r.SamplesPerPixel = 50
	}
	if r.MaxDepth == 0 {
		r.MaxDepth = 50
	}
	if r.Seed == 0 {
		r.Seed = time.Now().UnixNano()
	}
}

// Validate rejects requests the renderer cannot satisfy
func (r *RenderRequest) Validate() error {
	if r.Scene != "cover" && r.Scene != "default" {
		return fmt.Errorf("unknown scene: %q", r.Scene)
	}
	if r.Width < 2 || r.Height < 2 {
		return fmt.Errorf("image must be at least 2x2, got %dx%d", r.Width, r.Height)
	}
	if r.Width > 4096 || r.Height > 4096 {
		return fmt.Errorf("image too large: %dx%d", r.Width, r.Height)
	}
	if r.SamplesPerPixel < 1 {
		return fmt.Errorf("samplesPerPixel must be positive, got %d", r.SamplesPerPixel)
	}
	if r.MaxDepth < 1 {
		return fmt.Errorf("maxDepth must be positive, got %d", r.MaxDepth)
	}
	return nil
}

// ProgressUpdate is one JSON frame sent back over the websocket
type ProgressUpdate struct {
	RowsDone   int    `json:"rowsDone"`
	TotalRows  int    `json:"totalRows"`
	ImageData  string `json:"imageData,omitempty"` // Base64-encoded PNG preview
	IsComplete bool   `json:"isComplete"`
	ElapsedMs  int64  `json:"elapsedMs"`
	Error      string `json:"error,omitempty"`
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("web/static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/ws/render", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender upgrades to a websocket, reads one RenderRequest, and streams
// ProgressUpdate frames until the render completes
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.sendError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		s.sendError(conn, err.Error())
		return
	}

	aspectRatio := float64(req.Width) / float64(req.Height)
	var sceneObj *scene.Scene
	switch req.Scene {
	case "cover":
		sceneObj = scene.NewCoverScene(aspectRatio, rand.New(rand.NewSource(req.Seed)))
	default:
		sceneObj = scene.NewDefaultScene(aspectRatio)
	}

	config := renderer.Config{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
	}

	log.Printf("Rendering %q %dx%d at %d samples for %s",
		req.Scene, req.Width, req.Height, req.SamplesPerPixel, r.RemoteAddr)

	startTime := time.Now()
	lastPreview := time.Time{}
	writeErr := error(nil)

	rend := renderer.NewRenderer(sceneObj, config)
	img, stats := rend.RenderProgress(func(p renderer.Progress) {
		if writeErr != nil || time.Since(lastPreview) < previewInterval {
			return
		}
		lastPreview = time.Now()

		preview, err := encodePreview(p.Image, previewMaxWidth)
		if err != nil {
			log.Printf("Preview encoding failed: %v", err)
			return
		}
		writeErr = conn.WriteJSON(ProgressUpdate{
			RowsDone:  p.RowsDone,
			TotalRows: p.TotalRows,
			ImageData: preview,
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	})
	if writeErr != nil {
		log.Printf("Client went away: %v", writeErr)
		return
	}

	final, err := encodePreview(img, previewMaxWidth)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("encoding final frame: %v", err))
		return
	}
	if err := conn.WriteJSON(ProgressUpdate{
		RowsDone:   req.Height,
		TotalRows:  req.Height,
		ImageData:  final,
		IsComplete: true,
		ElapsedMs:  stats.Elapsed.Milliseconds(),
	}); err != nil {
		log.Printf("Client went away: %v", err)
		return
	}

	log.Printf("Render finished in %v (%d samples)", stats.Elapsed, stats.TotalSamples)
}

// sendError reports a failure to the client before the render starts
func (s *Server) sendError(conn *websocket.Conn, msg string) {
	if err := conn.WriteJSON(ProgressUpdate{Error: msg}); err != nil {
		log.Printf("Sending error to client: %v", err)
	}
}

// encodePreview downscales a frame to at most maxWidth wide and returns it
// as a base64-encoded PNG
func encodePreview(img *image.RGBA, maxWidth uint) (string, error) {
	var frame image.Image = img
	if uint(img.Bounds().Dx()) > maxWidth {
		frame = resize.Resize(maxWidth, 0, img, resize.Bilinear)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
