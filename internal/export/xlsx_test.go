package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	cal := generate(t, 2026, 10)

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, cal); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxSheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	// title + header + one row per week
	if len(rows) != 2+len(cal.Weeks) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), 2+len(cal.Weeks))
	}

	if rows[0][0] != "Учебный год 2026-2027" {
		t.Errorf("title = %q, want %q", rows[0][0], "Учебный год 2026-2027")
	}
	for i, name := range csvHeader {
		if rows[1][i] != name {
			t.Errorf("header[%d] = %q, want %q", i, rows[1][i], name)
		}
	}

	want := []string{"1", "31.08.2026", "06.09.2026", "Нечётная"}
	for i, v := range want {
		if rows[2][i] != v {
			t.Errorf("week 1 column %d = %q, want %q", i+1, rows[2][i], v)
		}
	}
	if rows[3][3] != "Чётная" {
		t.Errorf("week 2 parity = %q, want Чётная", rows[3][3])
	}
}
