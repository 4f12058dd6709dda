package cmd

import (
	"fmt"
	"os"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/alkasm1/pixlock/internal/derive"
	"github.com/alkasm1/pixlock/internal/lock"
	"github.com/alkasm1/pixlock/internal/source"
	"github.com/alkasm1/pixlock/internal/store"
)

// Config carries the flags shared by every command.
type Config struct {
	// ImagesDir is the bundled image catalogue directory.
	ImagesDir string
	// StorePath switches from the OS keyring to a vault file when set.
	StorePath string
	// Verbose enables structured development logging.
	Verbose bool
}

// newLogger builds the structured logger for a command run.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openStore selects the secret store backend: the OS keyring by
// default, a BBolt vault file when -store is given.
func openStore(cfg Config) (store.Store, func(), error) {
	if cfg.StorePath == "" {
		return store.NewKeyring(), func() {}, nil
	}
	b, err := store.OpenBolt(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}
	return b, func() { b.Close() }, nil
}

// newController wires catalogue, byte source, store and logger into a
// lock controller. The returned cleanup closes whatever was opened.
func newController(cfg Config, needCatalog bool) (*lock.Controller, func(), error) {
	var catalog *source.Catalog
	closeCatalog := func() {}

	if needCatalog {
		var err error
		catalog, err = source.OpenCatalog(cfg.ImagesDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open image catalogue %s: %w", cfg.ImagesDir, err)
		}
		closeCatalog = func() { catalog.Close() }
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		closeCatalog()
		return nil, nil, err
	}

	log := newLogger(cfg.Verbose)
	controller := lock.New(
		source.NewFiles(catalog),
		store.NewNotifying(st),
		lock.WithLogger(log),
	)

	return controller, func() {
		closeStore()
		closeCatalog()
		log.Sync()
	}, nil
}

// resolveSelection turns the -image/-file flags into a Selection.
// At most one of the two may be set.
func resolveSelection(imageID, filePath string) (source.Selection, error) {
	switch {
	case imageID != "" && filePath != "":
		return source.Selection{}, fmt.Errorf("use either -image or -file, not both")
	case imageID != "":
		return source.AssetSelection(imageID), nil
	case filePath != "":
		return source.GallerySelection(filePath), nil
	default:
		return source.Selection{}, nil
	}
}

// readPassword reads a password from the terminal without echoing.
func readPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// readPasswordConfirm reads a password twice and ensures they match.
func readPasswordConfirm() ([]byte, error) {
	first, err := readPassword("Enter password: ")
	if err != nil {
		return nil, err
	}
	defer derive.Wipe(first)

	second, err := readPassword("Confirm password: ")
	if err != nil {
		return nil, err
	}
	defer derive.Wipe(second)

	if string(first) != string(second) {
		return nil, fmt.Errorf("passwords do not match")
	}

	result := make([]byte, len(first))
	copy(result, first)
	return result, nil
}

// passwordFromEnv reads the password from PIXLOCK_PASSWORD. It returns
// a copy so the caller can wipe it like a prompted one.
func passwordFromEnv() []byte {
	password := os.Getenv("PIXLOCK_PASSWORD")
	if password == "" {
		return nil
	}
	result := make([]byte, len(password))
	copy(result, password)
	return result
}

// GetPassword retrieves the password from the environment or prompts.
// The caller is responsible for wiping the returned bytes.
func GetPassword(confirm bool) ([]byte, error) {
	if password := passwordFromEnv(); password != nil {
		return password, nil
	}
	if confirm {
		return readPasswordConfirm()
	}
	return readPassword("Enter password: ")
}

// exitResult prints the user-facing status and exits non-zero unless
// the outcome is the wanted one.
func exitResult(res lock.Result, want lock.Outcome) {
	if res.Outcome == want {
		fmt.Println(res.Message())
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", res.Message())
	os.Exit(1)
}

// fatal prints an error and exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
