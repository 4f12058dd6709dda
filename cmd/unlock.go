package cmd

import (
	"context"

	"github.com/alkasm1/pixlock/internal/derive"
	"github.com/alkasm1/pixlock/internal/lock"
)

// Unlock verifies the selected image and a prompted password against
// the stored secret. The exit code is zero only on a match.
func Unlock(ctx context.Context, cfg Config, imageID, filePath string) {
	sel, err := resolveSelection(imageID, filePath)
	if err != nil {
		fatal(err)
	}

	controller, cleanup, err := newController(cfg, imageID != "")
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	password, err := GetPassword(false)
	if err != nil {
		fatal(err)
	}
	defer derive.Wipe(password)

	res := controller.Unlock(ctx, string(password), sel)
	exitResult(res, lock.OutcomeMatch)
}
