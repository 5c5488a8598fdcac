package objcache

import (
	"fmt"

	"github.com/hupe1980/rcv1go/codec"
)

// Cache payloads are framed with the codec and compressor names so entries
// written under older defaults decode correctly:
//
//	[1B codec name len][codec name][1B compressor name len][compressor name][body]

// Encode serializes v with the given codec, compresses it, and frames the
// result. A nil codec or compressor selects the defaults.
func Encode(c codec.Codec, comp Compressor, v any) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	if comp == nil {
		comp = DefaultCompressor
	}

	raw, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("objcache: encode: %w", err)
	}
	body, err := comp.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("objcache: compress: %w", err)
	}

	cn, pn := c.Name(), comp.Name()
	if len(cn) > 255 || len(pn) > 255 {
		return nil, fmt.Errorf("objcache: codec/compressor name too long")
	}

	out := make([]byte, 0, 2+len(cn)+len(pn)+len(body))
	out = append(out, byte(len(cn)))
	out = append(out, cn...)
	out = append(out, byte(len(pn)))
	out = append(out, pn...)
	out = append(out, body...)
	return out, nil
}

// Decode reads a framed payload into v, selecting codec and compressor by the
// names recorded in the frame.
func Decode(data []byte, v any) error {
	cn, rest, err := readName(data)
	if err != nil {
		return fmt.Errorf("objcache: decode: %w", err)
	}
	pn, body, err := readName(rest)
	if err != nil {
		return fmt.Errorf("objcache: decode: %w", err)
	}

	c, ok := codec.ByName(cn)
	if !ok {
		return fmt.Errorf("objcache: unknown codec %q", cn)
	}
	comp, ok := CompressorByName(pn)
	if !ok {
		return fmt.Errorf("objcache: unknown compressor %q", pn)
	}

	raw, err := comp.Decompress(body)
	if err != nil {
		return fmt.Errorf("objcache: decompress: %w", err)
	}
	if err := c.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("objcache: decode: %w", err)
	}
	return nil
}

func readName(data []byte) (string, []byte, error) {
	if len(data) < 1 {
		return "", nil, fmt.Errorf("truncated frame")
	}
	n := int(data[0])
	if len(data) < 1+n {
		return "", nil, fmt.Errorf("truncated frame")
	}
	return string(data[1 : 1+n]), data[1+n:], nil
}
