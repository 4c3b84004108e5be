// Package classmap reads the label table that ships with an audio event
// classifier: a CSV with the header row "index,mid,display_name" followed by
// one row per output class, in output order.
package classmap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads the class map CSV at path. See [Parse].
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse returns the display names from a class map, index-aligned with the
// classifier's score columns. The header row is skipped. Each row must have
// exactly three fields and its index must equal its position.
func Parse(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("classmap: empty file")
		}
		return nil, fmt.Errorf("classmap: header: %w", err)
	}

	var names []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("classmap: %w", err)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("classmap: row %d: bad index %q", len(names)+1, rec[0])
		}
		if idx != len(names) {
			return nil, fmt.Errorf("classmap: row %d: index %d out of order", len(names)+1, idx)
		}
		names = append(names, rec[2])
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("classmap: no classes")
	}
	return names, nil
}

// Index returns the position of each name in names. Duplicate display
// names map to their first occurrence.
func Index(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := m[n]; !ok {
			m[n] = i
		}
	}
	return m
}
