package id

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32Shape(t *testing.T) {
	got := NewID32()
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// must round-trip to the 16 random bytes underneath
	b, err := hex.DecodeString(got)
	if err != nil || len(b) != 16 {
		t.Fatalf("decode: %v (%d bytes)", err, len(b))
	}
}

func TestNewID32Uniqueness(t *testing.T) {
	// public loan and notification ids carry no uniqueness constraint
	// beyond the database index, so collisions must be vanishingly rare
	const n = 500
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
