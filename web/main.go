package main

import (
	"flag"
	"log"

	"github.com/rmark/go-path-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the web server")
	flag.Parse()

	srv := server.New(*port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
