package cmd

import (
	"context"

	"github.com/alkasm1/pixlock/internal/derive"
	"github.com/alkasm1/pixlock/internal/lock"
)

// Set derives the lock secret from the selected image and a prompted
// password and stores it, replacing any previous key.
func Set(ctx context.Context, cfg Config, imageID, filePath string) {
	sel, err := resolveSelection(imageID, filePath)
	if err != nil {
		fatal(err)
	}

	controller, cleanup, err := newController(cfg, imageID != "")
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	password, err := GetPassword(true)
	if err != nil {
		fatal(err)
	}
	defer derive.Wipe(password)

	res := controller.SetKey(ctx, string(password), sel)
	exitResult(res, lock.OutcomeKeySet)
}
