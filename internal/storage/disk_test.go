package storage

import (
	"bytes"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}

	data := []byte("qr bytes")
	path, err := d.Put("receipts/ORD-AAAAAA.png", data)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if path != "receipts/ORD-AAAAAA.png" {
		t.Fatalf("put returned %q", path)
	}

	got, err := d.Get(path)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestRejectsEscapingPaths(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	for _, p := range []string{"../outside.png", "/etc/passwd", "a/../../b"} {
		if _, err := d.Put(p, []byte("x")); err == nil {
			t.Errorf("path %q must be rejected", p)
		}
	}
}
