package objcache

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses cache payloads. Like codecs, compressors carry a
// stable name that is recorded next to each entry.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// CompressorByName returns a built-in compressor by its stable name.
func CompressorByName(name string) (Compressor, bool) {
	switch name {
	case "gzip":
		return Gzip{}, true
	case "lz4":
		return LZ4{}, true
	case "none":
		return None{}, true
	default:
		return nil, false
	}
}

// DefaultCompressor is used when none is configured. The cached matrices are
// written once and read on every subsequent call, so the slow/maximal setting
// pays for itself.
var DefaultCompressor Compressor = Gzip{}

// Gzip compresses with gzip at maximum compression.
type Gzip struct{}

// Compress gzips the payload.
func (Gzip) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress gunzips the payload.
func (Gzip) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Name returns "gzip".
func (Gzip) Name() string { return "gzip" }

// LZ4 compresses with the lz4 frame format. Faster than gzip on both ends at
// a worse ratio; a reasonable pick when the cache lives on fast local disk.
type LZ4 struct{}

// Compress writes an lz4 frame.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reads an lz4 frame.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// None stores payloads uncompressed.
type None struct{}

// Compress returns the payload unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns the payload unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns "none".
func (None) Name() string { return "none" }
