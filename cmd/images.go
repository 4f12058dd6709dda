package cmd

import (
	"fmt"

	"github.com/alkasm1/pixlock/internal/source"
)

// Images lists the bundled image catalogue in order. These are the
// identifiers accepted by -image.
func Images(cfg Config) {
	catalog, err := source.OpenCatalog(cfg.ImagesDir)
	if err != nil {
		fatal(fmt.Errorf("failed to open image catalogue %s: %w", cfg.ImagesDir, err))
	}
	defer catalog.Close()

	if catalog.Len() == 0 {
		fmt.Printf("No images in %s\n", cfg.ImagesDir)
		return
	}

	for _, id := range catalog.IDs() {
		fmt.Println(id)
	}
}
