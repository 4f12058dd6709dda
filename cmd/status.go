package cmd

import (
	"context"
	"fmt"

	"github.com/alkasm1/pixlock/internal/store"
)

// Status shows whether a key is set and which backend holds it.
// It never prompts for a password and never prints the secret.
func Status(ctx context.Context, cfg Config) {
	st, closeStore, err := openStore(cfg)
	if err != nil {
		fatal(err)
	}
	defer closeStore()

	_, present, err := st.Read(ctx)
	if err != nil {
		fatal(err)
	}

	if present {
		fmt.Println("Key: set")
	} else {
		fmt.Println("Key: not set")
	}

	if cfg.StorePath == "" {
		fmt.Println("Backend: OS keyring")
		return
	}

	fmt.Println("Backend: vault file")
	if b, ok := st.(*store.Bolt); ok {
		info, err := b.Info()
		if err != nil {
			fatal(err)
		}
		fmt.Printf("  Path:     %s\n", info.Path)
		fmt.Printf("  Version:  %s\n", info.Version)
		fmt.Printf("  Install:  %s\n", info.InstallID)
		fmt.Printf("  Created:  %s\n", info.Created.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Modified: %s\n", info.Modified.Format("2006-01-02 15:04:05"))
	}
}
