// Package topics parses the RCV1-v2 topic assignment (qrels) file: one
// "category docID relevance" triple per line, grouped into blocks of
// consecutive lines per document. Documents are numbered in first-seen order
// and categories are assigned columns in first-seen order, so the resulting
// row order is independent of the vector files and must be reconciled by the
// caller.
package topics

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Assignments is the parsed topic file.
type Assignments struct {
	// DocIDs lists document identifiers in first-seen order, one per row.
	DocIDs []int32

	// Rows holds one bitmap per document; set bits are category columns.
	Rows []*roaring.Bitmap

	// Categories lists category names in column order.
	Categories []string

	columns map[string]int
}

// NumDocs returns the number of distinct documents seen.
func (a *Assignments) NumDocs() int {
	return len(a.DocIDs)
}

// Column returns the column index assigned to a category name.
func (a *Assignments) Column(category string) (int, bool) {
	c, ok := a.columns[category]
	return c, ok
}

// Parse consumes the whole stream. Lines that do not split into exactly three
// fields are skipped; the published file carries such lines and the original
// loaders tolerate them. A three-field line with a non-integer document ID is
// a hard error.
func Parse(r io.Reader) (*Assignments, error) {
	a := &Assignments{columns: make(map[string]int)}

	var current int32
	seenAny := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			continue
		}
		category, docField := fields[0], fields[1]

		doc64, err := strconv.ParseInt(docField, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("topics: line %d: bad document id %q: %w", lineNo, docField, err)
		}
		doc := int32(doc64)

		col, ok := a.columns[category]
		if !ok {
			col = len(a.Categories)
			a.columns[category] = col
			a.Categories = append(a.Categories, category)
		}

		if !seenAny || doc != current {
			seenAny = true
			current = doc
			a.DocIDs = append(a.DocIDs, doc)
			a.Rows = append(a.Rows, roaring.New())
		}
		a.Rows[len(a.Rows)-1].Add(uint32(col))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("topics: line %d: %w", lineNo, err)
	}
	return a, nil
}
