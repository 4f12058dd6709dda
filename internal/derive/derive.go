package derive

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"hash"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest selects the digest algorithm.
type Digest uint8

const (
	// SHA256 is the default digest.
	SHA256 Digest = iota
	// BLAKE2b256 is BLAKE2b with a 256-bit output.
	BLAKE2b256
	// SHA3256 is SHA3-256.
	SHA3256
)

// Encoding selects the text encoding of the digest output.
type Encoding uint8

const (
	// Base64 is the default encoding (standard alphabet, padded).
	Base64 Encoding = iota
	// Hex is lowercase hexadecimal.
	Hex
)

var (
	ErrPasswordEncoding = errors.New("password is not valid UTF-8")
	ErrUnknownDigest    = errors.New("unknown digest algorithm")
	ErrUnknownEncoding  = errors.New("unknown encoding")
)

// digestRegistry maps Digest values to hash constructors.
var digestRegistry = map[Digest]func() hash.Hash{
	SHA256: sha256.New,
	BLAKE2b256: func() hash.Hash {
		h, _ := blake2b.New256(nil) // only errors with a key
		return h
	},
	SHA3256: sha3.New256,
}

// encodingRegistry maps Encoding values to encoders.
var encodingRegistry = map[Encoding]func([]byte) string{
	Base64: base64.StdEncoding.EncodeToString,
	Hex:    hex.EncodeToString,
}

// Secret is the text-encoded derived secret. It is the exact form that
// gets stored and compared; two secrets match only if their encoded
// text is identical.
type Secret string

// Equal compares two secrets in constant time.
func (s Secret) Equal(other Secret) bool {
	return subtle.ConstantTimeCompare([]byte(s), []byte(other)) == 1
}

// Deriver computes secrets. The zero value uses SHA-256 and base64,
// which is the stored-format default; changing either field changes
// every derived secret.
type Deriver struct {
	Digest   Digest
	Encoding Encoding
}

// Derive computes the secret for an image and a password.
// The digest input is imageBytes followed by the UTF-8 bytes of
// password; the order is fixed.
func (d Deriver) Derive(imageBytes []byte, password string) (Secret, error) {
	if !utf8.ValidString(password) {
		return "", ErrPasswordEncoding
	}
	newHash, ok := digestRegistry[d.Digest]
	if !ok {
		return "", ErrUnknownDigest
	}
	encode, ok := encodingRegistry[d.Encoding]
	if !ok {
		return "", ErrUnknownEncoding
	}

	h := newHash()
	h.Write(imageBytes)
	h.Write([]byte(password))

	return Secret(encode(h.Sum(nil))), nil
}

// Wipe zeroes a sensitive byte slice.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
