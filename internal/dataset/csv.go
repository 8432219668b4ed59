package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadCSV loads a delimited file with a header row into a Table. A column is
// numeric when every non-empty cell parses as a number, text otherwise; empty
// numeric cells load as NaN.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return readCSV(f, sniffDelimiter(path))
}

func readCSV(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New()
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ncol := len(header)
	raw := make([][]string, ncol)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	row := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		if len(rec) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		for j := 0; j < ncol; j++ {
			raw[j] = append(raw[j], strings.TrimSpace(rec[j]))
		}
	}

	cols := make([]Column, 0, ncol)
	for j, name := range header {
		cols = append(cols, buildColumn(name, raw[j]))
	}
	return New(cols...)
}

func buildColumn(name string, cells []string) Column {
	floats := make([]float64, len(cells))
	for i, cell := range cells {
		if cell == "" {
			floats[i] = math.NaN()
			continue
		}
		x, ok := parseNumeric(cell)
		if !ok {
			return TextColumn(name, cells)
		}
		floats[i] = x
	}
	return NumericColumn(name, floats)
}

// parseNumeric accepts plain floats plus the locale variants seen in exported
// data: a trailing percent sign and a decimal comma when no dot is present.
func parseNumeric(s string) (float64, bool) {
	raw := strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
