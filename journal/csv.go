package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"id", "date", "pnl", "trades", "direction", "bias", "long_count", "short_count", "reason", "image"}

// WriteCSV writes entries with a header row.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		err := cw.Write([]string{
			e.ID,
			e.Date,
			f(e.PnL),
			strconv.Itoa(e.Trades),
			string(e.Direction),
			string(e.Bias),
			strconv.Itoa(e.Longs()),
			strconv.Itoa(e.Shorts()),
			e.Reason,
			e.Image,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads entries written by WriteCSV. Numeric fields go through the
// same reconciliation as form input, so hand-edited files stay consistent.
// Rows without an id get one from ids.
func ReadCSV(r io.Reader, ids IDFunc) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header[0] != csvHeader[0] {
		return nil, fmt.Errorf("unexpected header %q", header)
	}

	var out []Entry
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		id := row[0]
		e := NewEntry(EntryInput{
			Date:      row[1],
			PnL:       row[2],
			Trades:    row[3],
			Direction: ParseDirection(row[4]),
			Bias:      ParseBias(row[5]),
			Long:      row[6],
			Short:     row[7],
			Reason:    row[8],
			Image:     row[9],
		}, func() string {
			if id != "" {
				return id
			}
			return ids()
		})
		out = append(out, e)
	}
	return out, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
