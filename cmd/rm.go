package cmd

import (
	"context"

	"github.com/alkasm1/pixlock/internal/lock"
)

// Remove deletes the stored secret. Removing when no key is set
// succeeds; the end state is the same.
func Remove(ctx context.Context, cfg Config) {
	controller, cleanup, err := newController(cfg, false)
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	res := controller.RemoveKey(ctx)
	exitResult(res, lock.OutcomeKeyRemoved)
}
