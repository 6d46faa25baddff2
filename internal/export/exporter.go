package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/username/week-parity/internal/academic"
)

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatICS  Format = "ics"
)

var (
	// ErrUnknownFormat is returned for formats other than csv, xlsx and ics
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrEmptyCalendar is returned when there are no weeks to export
	ErrEmptyCalendar = errors.New("calendar has no weeks to export")
)

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX, FormatICS:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DefaultFilename returns e.g. "четность_недель_2026_2027.csv"
func DefaultFilename(year int, format Format) string {
	return fmt.Sprintf("четность_недель_%d_%d.%s", year, year+1, format)
}

// Write renders the calendar in the given format
func Write(w io.Writer, cal *academic.Calendar, format Format) error {
	if cal == nil || len(cal.Weeks) == 0 {
		return ErrEmptyCalendar
	}

	switch format {
	case FormatCSV:
		return WriteCSV(w, cal.Weeks)
	case FormatXLSX:
		return WriteXLSX(w, cal)
	case FormatICS:
		return WriteICS(w, cal)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// Result describes a saved export file
type Result struct {
	Path   string
	Size   int64
	Weeks  int
	Format Format
}

// Exporter saves calendars to files under an output directory
type Exporter struct {
	outputDir string
	logger    *zap.Logger
}

// NewExporter creates a new Exporter
func NewExporter(outputDir string, logger *zap.Logger) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		logger:    logger,
	}
}

// Save renders the calendar and writes it to filename.
// A bare filename is placed in the output directory, an empty one gets DefaultFilename.
// The file is only created once rendering succeeded.
func (e *Exporter) Save(cal *academic.Calendar, format Format, filename string) (*Result, error) {
	var buf bytes.Buffer
	if err := Write(&buf, cal, format); err != nil {
		return nil, err
	}

	path := e.resolvePath(cal.Year, format, filename)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		e.logger.Error("Export failed",
			zap.String("path", path),
			zap.String("format", string(format)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	e.logger.Info("Calendar exported",
		zap.String("path", absPath),
		zap.String("format", string(format)),
		zap.Int("weeks", len(cal.Weeks)),
		zap.Int("bytes", buf.Len()))

	return &Result{
		Path:   absPath,
		Size:   int64(buf.Len()),
		Weeks:  len(cal.Weeks),
		Format: format,
	}, nil
}

func (e *Exporter) resolvePath(year int, format Format, filename string) string {
	if filename == "" {
		filename = DefaultFilename(year, format)
	}
	if filepath.IsAbs(filename) || strings.ContainsRune(filename, filepath.Separator) || e.outputDir == "" {
		return filename
	}
	return filepath.Join(e.outputDir, filename)
}
