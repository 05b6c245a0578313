package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// Column renders one field of a row.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Render writes a header row followed by one row per item.
func Render[T any](columns []Column[T], rows []T) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Header
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, c := range columns {
			record[i] = c.Value(row)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds "<name>-<yyyymmdd>.csv".
func Filename(name string, at time.Time) string {
	return fmt.Sprintf("%s-%s.csv", name, at.Format("20060102"))
}

// ContentDisposition is the attachment header value for a filename.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=\"%s\"", filename)
}

func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func Time(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func TimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Time(*t)
}

func Int(v int) string {
	return strconv.Itoa(v)
}
