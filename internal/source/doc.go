// Package source loads the raw bytes of a selected image.
//
// A Selection names either a bundled catalogue asset or a file the user
// picked from their gallery; the tagged representation makes it
// impossible to have both active at once. Catalogue reads are confined
// to the catalogue directory using Go 1.24's os.Root API, so an asset
// identifier can never escape it.
package source
