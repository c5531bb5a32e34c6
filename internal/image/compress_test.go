package image

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompressRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("raster"), 1000)

	packed, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if len(packed) >= len(data) {
		t.Errorf("compressed size %d not smaller than %d", len(packed), len(data))
	}

	got, err := Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("round trip changed data")
	}
}

func TestDecompressErrors(t *testing.T) {
	if _, err := Decompress(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decompress(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := Decompress([]byte("plain bytes")); err == nil {
		t.Error("Decompress(garbage) should fail")
	}
}
