package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrEmptyAssetID = errors.New("empty asset id not allowed")
	ErrAssetEscapes = errors.New("asset id escapes catalogue")
	ErrUnknownAsset = errors.New("asset not in catalogue")
	ErrNoCatalog    = errors.New("no catalogue configured")
)

// imageExtensions are the file types listed by the catalogue.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// Catalog is the ordered set of bundled asset images, backed by a
// directory. Asset identifiers are file names relative to the
// catalogue root; all reads go through os.Root so an identifier can
// never resolve outside the directory.
type Catalog struct {
	root *os.Root
	ids  []string
}

// OpenCatalog opens the catalogue rooted at dir. The listing is
// deterministic: image files only, sorted by name.
func OpenCatalog(dir string) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue root: %w", err)
	}

	entries, err := os.ReadDir(absPath)
	if err != nil {
		root.Close()
		return nil, fmt.Errorf("failed to list catalogue: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)

	return &Catalog{root: root, ids: ids}, nil
}

// Close releases the catalogue root handle.
func (c *Catalog) Close() error {
	if c.root != nil {
		return c.root.Close()
	}
	return nil
}

// IDs returns the asset identifiers in catalogue order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Len returns the number of catalogued assets.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// validateID rejects identifiers that are empty or not local to the
// catalogue root. os.Root would also refuse the read, but validating
// first gives the caller a typed error instead of a platform one.
func validateID(id string) error {
	if id == "" {
		return ErrEmptyAssetID
	}
	if !filepath.IsLocal(id) {
		return fmt.Errorf("%w: %s", ErrAssetEscapes, id)
	}
	return nil
}

// ReadAsset returns the raw bytes of a catalogued asset.
func (c *Catalog) ReadAsset(id string) ([]byte, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	data, err := c.root.ReadFile(filepath.FromSlash(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, id)
		}
		return nil, fmt.Errorf("failed to read asset %s: %w", id, err)
	}
	return data, nil
}
