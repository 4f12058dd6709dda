package source

// Kind discriminates the selection variants.
type Kind uint8

const (
	// KindNone is the zero value: nothing selected.
	KindNone Kind = iota
	// KindAsset selects a bundled catalogue image by identifier.
	KindAsset
	// KindGallery selects a user-picked file by path.
	KindGallery
)

// String returns the kind name for logging and status output.
func (k Kind) String() string {
	switch k {
	case KindAsset:
		return "asset"
	case KindGallery:
		return "gallery"
	default:
		return "none"
	}
}

// Selection is a tagged choice of image: a catalogue asset, a gallery
// file, or nothing. The zero value means no selection. Constructing a
// new selection replaces the previous one wholesale, so at most one
// variant is ever active.
type Selection struct {
	kind Kind
	ref  string
}

// AssetSelection selects a bundled catalogue image by identifier.
func AssetSelection(id string) Selection {
	return Selection{kind: KindAsset, ref: id}
}

// GallerySelection selects a user-picked file by path.
func GallerySelection(path string) Selection {
	return Selection{kind: KindGallery, ref: path}
}

// Kind reports which variant is active.
func (s Selection) Kind() Kind {
	return s.kind
}

// Ref returns the asset identifier or gallery path, "" for none.
func (s Selection) Ref() string {
	return s.ref
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s.kind == KindNone
}

// String renders the selection as kind:ref for logs and errors.
// It never exposes file contents, only the reference.
func (s Selection) String() string {
	if s.kind == KindNone {
		return "none"
	}
	return s.kind.String() + ":" + s.ref
}
