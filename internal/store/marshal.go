package store

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic starts every zstd frame. Values without it are stored raw.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var (
	encoderOnce sync.Once
	encoder     *zstd.Encoder
	encoderErr  error

	decoderOnce sync.Once
	decoder     *zstd.Decoder
	decoderErr  error
)

func zstdEncoder() (*zstd.Encoder, error) {
	encoderOnce.Do(func() {
		encoder, encoderErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	})
	return encoder, encoderErr
}

func zstdDecoder() (*zstd.Decoder, error) {
	decoderOnce.Do(func() {
		decoder, decoderErr = zstd.NewReader(nil)
	})
	return decoder, decoderErr
}

// marshalAuxInfo converts an RAuxInfo string to its stored form.
// EncodeAll and DecodeAll are safe for concurrent use.
func marshalAuxInfo(rauxinfo string, compress bool) ([]byte, error) {
	if !compress || rauxinfo == "" {
		return []byte(rauxinfo), nil
	}
	enc, err := zstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("marshal rauxinfo: %w", err)
	}
	return enc.EncodeAll([]byte(rauxinfo), nil), nil
}

// unmarshalAuxInfo reverses marshalAuxInfo for either stored form.
func unmarshalAuxInfo(data []byte) (string, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return string(data), nil
	}
	dec, err := zstdDecoder()
	if err != nil {
		return "", fmt.Errorf("unmarshal rauxinfo: %w", err)
	}
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return "", fmt.Errorf("unmarshal rauxinfo: %w", err)
	}
	return string(out), nil
}
