package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/username/week-parity/internal/academic"
	"github.com/username/week-parity/pkg/dateutil"
)

const csvSeparator = ';'

var csvHeader = []string{"Номер недели", "Начало недели", "Конец недели", "Четность"}

// utf8BOM is written by spreadsheet programs that re-save the file
var utf8BOM = []byte("\ufeff")

// Row is one exported week as it appears in the CSV file
type Row struct {
	Number int
	Start  time.Time
	End    time.Time
	Parity academic.Parity
}

// RowOf converts a generated week to its exported form
func RowOf(w academic.Week) Row {
	return Row{
		Number: w.Number,
		Start:  w.Start,
		End:    w.End,
		Parity: w.Parity,
	}
}

// WriteCSV writes the header and one semicolon-separated row per week
func WriteCSV(w io.Writer, weeks []academic.Week) error {
	writer := csv.NewWriter(w)
	writer.Comma = csvSeparator

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, week := range weeks {
		record := []string{
			strconv.Itoa(week.Number),
			dateutil.FormatRU(week.Start),
			dateutil.FormatRU(week.End),
			week.Parity.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write week %d: %w", week.Number, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// ReadCSV parses a file produced by WriteCSV back into rows
func ReadCSV(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = csvSeparator
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	for i, name := range csvHeader {
		if records[0][i] != name {
			return nil, fmt.Errorf("unexpected CSV header column %d: %q, want %q", i+1, records[0][i], name)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2

		number, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid week number %q: %w", line, record[0], err)
		}
		start, err := dateutil.ParseDate(record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid start date: %w", line, err)
		}
		end, err := dateutil.ParseDate(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid end date: %w", line, err)
		}
		parity, err := academic.ParseParity(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rows = append(rows, Row{
			Number: number,
			Start:  start,
			End:    end,
			Parity: parity,
		})
	}

	return rows, nil
}
