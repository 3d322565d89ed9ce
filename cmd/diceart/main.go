// Command diceart writes dice1.png through dice6.png for the game to load.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/thousand/internal/assets"
	"github.com/KirkDiggler/thousand/internal/models"
	"github.com/KirkDiggler/thousand/internal/render"
)

func main() {
	dir := flag.String("dir", "assets", "directory to write the face images into")
	size := flag.Int("size", render.DieSize, "edge length of each image in pixels")
	flag.Parse()

	if *size <= 0 {
		log.Fatalf("size must be positive, got %d", *size)
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *dir, err)
	}

	for face := 1; face <= models.FaceCount; face++ {
		path := filepath.Join(*dir, assets.FileName(face))
		if err := render.SaveFace(path, face, *size); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("wrote %s", path)
	}
}
