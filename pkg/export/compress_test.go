package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSnappyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv.snappy")
	data := bytes.Repeat([]byte("description,inter_chain_total\ndesign_0001,7\n"), 100)

	if err := WriteSnappyFile(path, data); err != nil {
		t.Fatalf("WriteSnappyFile failed: %v", err)
	}

	got, err := ReadSnappyFile(path)
	if err != nil {
		t.Fatalf("ReadSnappyFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("round trip corrupted the payload")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() >= int64(len(data)) {
		t.Errorf("repetitive payload should compress: %d -> %d bytes", len(data), info.Size())
	}
}

func TestReadSnappyFileDetectsCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv.snappy")
	if err := WriteSnappyFile(path, []byte("payload payload payload")); err != nil {
		t.Fatalf("WriteSnappyFile failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	raw[len(raw)/2] ^= 0xFF
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("writing corrupted file: %v", err)
	}

	if _, err := ReadSnappyFile(path); err == nil {
		t.Error("expected checksum or decode error on corrupted file")
	}
}

func TestReadSnappyFileTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.snappy")
	if err := os.WriteFile(path, []byte{0x00, 0x01}, 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := ReadSnappyFile(path); err == nil {
		t.Error("expected error on truncated file")
	}
}
