package derive

import (
	"bytes"
	"testing"
)

// Known-answer vector: base64(SHA-256(0x01 0x02 0x03 || "ab")). Guards
// the concatenation order and the encoding of the stored format.
func TestDeriveKnownVector(t *testing.T) {
	image := []byte{0x01, 0x02, 0x03}

	var d Deriver
	secret, err := d.Derive(image, "ab")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	want := Secret("vgDxrtrKTfGTpZtA3D+ffb4D2la5e4m59twN2ksFKeo=")
	if secret != want {
		t.Errorf("Secret mismatch: got %s, want %s", secret, want)
	}
}

func TestDeriveHexVector(t *testing.T) {
	d := Deriver{Encoding: Hex}
	secret, err := d.Derive([]byte{0x01, 0x02, 0x03}, "ab")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	want := Secret("be00f1aedaca4df193a59b40dc3f9f7dbe03da56b97b89b9f6dc0dda4b0529ea")
	if secret != want {
		t.Errorf("Secret mismatch: got %s, want %s", secret, want)
	}
}

// Swapping image and password bytes must change the digest. The swapped
// vector is base64(SHA-256("ab" || 0x01 0x02 0x03)).
func TestDeriveOrderSensitivity(t *testing.T) {
	var d Deriver
	secret, err := d.Derive([]byte{0x01, 0x02, 0x03}, "ab")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	swapped := Secret("KcE1VHPOEXWkktNlJWYR6/il1Z4lA0v4m6PcmZtBzyU=")
	if secret == swapped {
		t.Error("Secret matches the swapped-order digest; concatenation order is wrong")
	}
}

func TestDeriveDeterminism(t *testing.T) {
	image := []byte("not really an image, but bytes are bytes")

	var d Deriver
	first, err := d.Derive(image, "hunter2")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := d.Derive(image, "hunter2")
		if err != nil {
			t.Fatalf("Derive failed on repeat %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("Derive is not deterministic: got %s, want %s", again, first)
		}
	}
}

func TestDeriveSensitivity(t *testing.T) {
	imageA := []byte{0xde, 0xad, 0xbe, 0xef}
	imageB := []byte{0xde, 0xad, 0xbe, 0xee}

	var d Deriver
	base, err := d.Derive(imageA, "pw1")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	otherPassword, err := d.Derive(imageA, "pw2")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if otherPassword == base {
		t.Error("Different passwords produced the same secret")
	}

	otherImage, err := d.Derive(imageB, "pw1")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if otherImage == base {
		t.Error("Different images produced the same secret")
	}
}

func TestDeriveDigestsDiffer(t *testing.T) {
	image := []byte{0x01, 0x02, 0x03}

	digests := []Digest{SHA256, BLAKE2b256, SHA3256}
	seen := make(map[Secret]Digest)
	for _, dg := range digests {
		d := Deriver{Digest: dg}
		secret, err := d.Derive(image, "ab")
		if err != nil {
			t.Fatalf("Derive with digest %d failed: %v", dg, err)
		}
		if prev, dup := seen[secret]; dup {
			t.Errorf("Digests %d and %d produced the same secret", prev, dg)
		}
		seen[secret] = dg
	}
}

func TestDeriveInvalidPassword(t *testing.T) {
	var d Deriver
	_, err := d.Derive([]byte{0x01}, string([]byte{0xff, 0xfe}))
	if err != ErrPasswordEncoding {
		t.Errorf("Expected ErrPasswordEncoding, got %v", err)
	}
}

func TestDeriveUnknownAlgorithms(t *testing.T) {
	d := Deriver{Digest: Digest(200)}
	if _, err := d.Derive(nil, "pw"); err != ErrUnknownDigest {
		t.Errorf("Expected ErrUnknownDigest, got %v", err)
	}

	d = Deriver{Encoding: Encoding(200)}
	if _, err := d.Derive(nil, "pw"); err != ErrUnknownEncoding {
		t.Errorf("Expected ErrUnknownEncoding, got %v", err)
	}
}

func TestSecretEqual(t *testing.T) {
	a := Secret("vgDxrtrKTfGTpZtA3D+ffb4D2la5e4m59twN2ksFKeo=")
	b := Secret("vgDxrtrKTfGTpZtA3D+ffb4D2la5e4m59twN2ksFKeo=")
	c := Secret("KcE1VHPOEXWkktNlJWYR6/il1Z4lA0v4m6PcmZtBzyU=")

	if !a.Equal(b) {
		t.Error("Equal secrets reported unequal")
	}
	if a.Equal(c) {
		t.Error("Unequal secrets reported equal")
	}
	if a.Equal("") {
		t.Error("Secret equals empty string")
	}
}

func TestWipe(t *testing.T) {
	b := []byte("sensitive")
	Wipe(b)
	if !bytes.Equal(b, make([]byte, len("sensitive"))) {
		t.Errorf("Wipe left data behind: %v", b)
	}
}

func FuzzDerive(f *testing.F) {
	f.Add([]byte{0x01, 0x02, 0x03}, "ab")
	f.Add([]byte{}, "")
	f.Add([]byte{0x00}, "password with spaces and ünïcödé")

	f.Fuzz(func(t *testing.T, image []byte, password string) {
		var d Deriver
		first, err := d.Derive(image, password)
		if err != nil {
			if err == ErrPasswordEncoding {
				return
			}
			t.Fatalf("Derive failed: %v", err)
		}
		// base64 of a 256-bit digest is always 44 characters
		if len(first) != 44 {
			t.Errorf("Unexpected secret length %d for %q", len(first), first)
		}
		again, err := d.Derive(image, password)
		if err != nil {
			t.Fatalf("Derive failed on repeat: %v", err)
		}
		if again != first {
			t.Errorf("Derive is not deterministic: %s vs %s", first, again)
		}
	})
}

func BenchmarkDerive(b *testing.B) {
	image := make([]byte, 1<<20) // 1 MiB, a plausible photo size
	var d Deriver
	b.SetBytes(int64(len(image)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Derive(image, "benchmark"); err != nil {
			b.Fatal(err)
		}
	}
}
