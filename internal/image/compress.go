package image

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders are expensive to create and safe for concurrent
// EncodeAll/DecodeAll calls, so one of each is shared.
var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
	zstdErr  error
)

func initZstd() {
	zstdEnc, zstdErr = zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if zstdErr != nil {
		return
	}
	zstdDec, zstdErr = zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
}

// Compress wraps data in a single zstd frame.
func Compress(data []byte) ([]byte, error) {
	zstdOnce.Do(initZstd)
	if zstdErr != nil {
		return nil, fmt.Errorf("image: zstd init: %w", zstdErr)
	}
	return zstdEnc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress unwraps zstd-framed data.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	zstdOnce.Do(initZstd)
	if zstdErr != nil {
		return nil, fmt.Errorf("image: zstd init: %w", zstdErr)
	}
	out, err := zstdDec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("image: zstd decode: %w", err)
	}
	return out, nil
}
