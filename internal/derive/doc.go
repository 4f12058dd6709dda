// Package derive turns an image and a password into the lock's secret.
//
// The secret is a cryptographic digest over the image bytes followed by
// the UTF-8 bytes of the password, text-encoded for storage and
// comparison. The concatenation order is part of the format: image
// bytes first, password bytes second.
//
// Both the digest algorithm and the text encoding are pluggable:
//   - Digest: SHA-256 (default), BLAKE2b-256, SHA3-256
//   - Encoding: base64 (default), hex
//
// Derivation is pure. Inputs are never logged or retained; callers
// holding password bytes should zero them with Wipe after use.
package derive
