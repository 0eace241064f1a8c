package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyInput is returned when the source has no header or no data rows.
var ErrEmptyInput = errors.New("input is empty or has no data rows")

// delimiterCandidates are tried in order; on a tie the earlier one wins,
// so plain CSV stays the default.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// LoadFile reads and parses the delimited table at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	tbl, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tbl, nil
}

// Load parses a delimited table from r. The delimiter is auto-detected,
// header names and cell values are trimmed, and rows shorter than the
// header are blank-filled (extras beyond the header are dropped).
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.LazyQuotes = true
	// No TrimLeadingSpace: it would swallow tab delimiters, and every
	// value is trimmed below regardless.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		columns[i] = strings.TrimSpace(name)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	return &Table{Columns: columns, Records: records}, nil
}

// detectDelimiter scores each candidate by the column count it produces
// on the header line and picks the highest. A candidate only scores if
// every sampled line splits into the same number of columns, which
// filters out delimiters that merely appear inside free-text cells.
func detectDelimiter(text string) rune {
	lines := sampleLines(text, 10)

	best := delimiterCandidates[0]
	bestCount := 1
	for _, cand := range delimiterCandidates {
		count := consistentColumnCount(lines, cand)
		if count > bestCount {
			best = cand
			bestCount = count
		}
	}
	return best
}

// consistentColumnCount returns the shared column count of lines when
// split on delim, or 1 when the lines disagree.
func consistentColumnCount(lines []string, delim rune) int {
	count := 0
	for _, line := range lines {
		n := strings.Count(line, string(delim)) + 1
		if count == 0 {
			count = n
		} else if n != count {
			return 1
		}
	}
	return count
}

func sampleLines(text string, limit int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == limit {
			break
		}
	}
	return lines
}
