// Package svmlight parses the svmlight/libsvm sparse vector text format:
// one document per line, a numeric target followed by index:value pairs with
// ascending indices. The RCV1 vector files use this format with the document
// identifier in the target column.
package svmlight

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/rcv1go/sparse"
)

// Lines in the RCV1 vector files stay under a few hundred KB; one megabyte of
// scanner headroom covers them.
const maxLineSize = 1 << 20

// Options configures parsing.
type Options struct {
	// NumFeatures fixes the column count of the resulting matrix. Required.
	NumFeatures int

	// OneBased indicates the file uses 1-based feature indices, which are
	// shifted down to 0-based columns. The RCV1 files are 1-based.
	OneBased bool
}

// Result holds one parsed file.
type Result struct {
	// Matrix has one row per input line.
	Matrix *sparse.CSR

	// Targets holds the leading numeric column of each line, in line order.
	Targets []float64
}

// Parse reads an entire svmlight-format stream. Blank lines and comment-only
// lines are skipped; trailing "# ..." comments and qid tokens are ignored.
// Malformed feature pairs are an error, unlike the tolerant topic parser:
// a damaged vector file should fail loudly rather than drop features.
func Parse(r io.Reader, opts Options) (*Result, error) {
	if opts.NumFeatures <= 0 {
		return nil, fmt.Errorf("svmlight: feature count must be positive, got %d", opts.NumFeatures)
	}

	b := sparse.NewBuilder(opts.NumFeatures)
	var targets []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		target, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("svmlight: line %d: bad target %q: %w", lineNo, fields[0], err)
		}

		var (
			indices []int32
			values  []float64
		)
		for _, f := range fields[1:] {
			if strings.HasPrefix(f, "qid:") {
				continue
			}
			idx, val, err := parsePair(f, opts.OneBased)
			if err != nil {
				return nil, fmt.Errorf("svmlight: line %d: %w", lineNo, err)
			}
			indices = append(indices, idx)
			values = append(values, val)
		}

		if err := b.AppendRow(indices, values); err != nil {
			return nil, fmt.Errorf("svmlight: line %d: %w", lineNo, err)
		}
		targets = append(targets, target)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("svmlight: line %d: %w", lineNo, err)
	}

	return &Result{Matrix: b.Build(), Targets: targets}, nil
}

func parsePair(f string, oneBased bool) (int32, float64, error) {
	colon := strings.IndexByte(f, ':')
	if colon <= 0 {
		return 0, 0, fmt.Errorf("bad feature pair %q", f)
	}

	idx, err := strconv.ParseInt(f[:colon], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("bad feature index %q: %w", f[:colon], err)
	}
	if oneBased {
		idx--
	}

	val, err := strconv.ParseFloat(f[colon+1:], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad feature value %q: %w", f[colon+1:], err)
	}
	return int32(idx), val, nil
}
