package source

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNoSelection is returned when Load is called with the zero
// Selection. The controller validates before loading, so hitting this
// means a caller skipped validation.
var ErrNoSelection = errors.New("no image selected")

// ReadError reports that a selected image could not be read.
type ReadError struct {
	Selection Selection
	Err       error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %s", e.Selection, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Files loads image bytes from the local filesystem: catalogue assets
// through the confined catalogue root, gallery picks by direct path.
type Files struct {
	catalog *Catalog
}

// NewFiles creates a byte source backed by the given catalogue.
// catalog may be nil when only gallery selections are expected.
func NewFiles(catalog *Catalog) *Files {
	return &Files{catalog: catalog}
}

// Load returns the raw encoded bytes of the selected image. The bytes
// are ephemeral: callers use them for one derivation and drop them.
func (f *Files) Load(ctx context.Context, sel Selection) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch sel.Kind() {
	case KindAsset:
		if f.catalog == nil {
			return nil, &ReadError{Selection: sel, Err: ErrNoCatalog}
		}
		data, err := f.catalog.ReadAsset(sel.Ref())
		if err != nil {
			return nil, &ReadError{Selection: sel, Err: err}
		}
		return data, nil
	case KindGallery:
		data, err := os.ReadFile(sel.Ref())
		if err != nil {
			return nil, &ReadError{Selection: sel, Err: err}
		}
		return data, nil
	default:
		return nil, ErrNoSelection
	}
}
