package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/username/week-parity/internal/academic"
	"github.com/username/week-parity/internal/export"
	"github.com/username/week-parity/pkg/dateutil"
)

func generate(t *testing.T, year, weeks int) *academic.Calendar {
	t.Helper()
	cal, err := academic.Generate(year, weeks, dateutil.Date(2026, 10, 18))
	if err != nil {
		t.Fatalf("Generate(%d, %d) error = %v", year, weeks, err)
	}
	return cal
}

func TestTable(t *testing.T) {
	cal := generate(t, 2026, 8)

	tests := []struct {
		name     string
		detailed bool
		want     []string
		wantNot  []string
	}{
		{
			name:     "Plain table",
			detailed: false,
			want: []string{
				"УЧЕБНЫЙ КАЛЕНДАРЬ 2026-2027",
				"1        31.08.2026   06.09.2026   *",
				"2        07.09.2026   13.09.2026   **",
				"7●       12.10.2026   18.10.2026   *",
			},
			wantNot: []string{"Легенда", "Примечание"},
		},
		{
			name:     "Detailed table",
			detailed: true,
			want: []string{
				"Легенда:",
				"Примечание",
				"Начало учебного года",
				"Текущая",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).Table(cal, tt.detailed)
			out := buf.String()

			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("Table() output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.wantNot {
				if strings.Contains(out, s) {
					t.Errorf("Table() output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestCurrentWeek(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).CurrentWeek(generate(t, 2026, 52))

	want := "ТЕКУЩАЯ НЕДЕЛЯ: №7 (НЕЧЁТНАЯ) 12.10.2026 - 18.10.2026"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("CurrentWeek() = %q, want it to contain %q", buf.String(), want)
	}

	buf.Reset()
	NewPrinter(&buf).CurrentWeek(generate(t, 2030, 4))
	if !strings.Contains(buf.String(), "дата вне диапазона календаря") {
		t.Errorf("CurrentWeek() = %q, want out-of-range note", buf.String())
	}
}

func TestStatistics(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Statistics(generate(t, 2026, 52).Statistics())
	out := buf.String()

	for _, s := range []string{
		"Всего недель: 52",
		"Нечётных: 26",
		"Чётных: 26",
		"Начало: 31.08.2026",
		"Окончание: 29.08.2027",
		"Текущая неделя: №7",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("Statistics() output missing %q:\n%s", s, out)
		}
	}
}

func TestAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Analysis(academic.AnalyzeYear(2024))
	out := buf.String()

	for _, s := range []string{
		"АНАЛИЗ УЧЕБНОГО ГОДА 2024-2025",
		"1 сентября 2024 года: воскресенье",
		"Учебный год начинается: 02.09.2024",
		"Первая учебная неделя: 02.09.2024 - 08.09.2024",
		"Четность первой недели: ЧЁТНАЯ",
		"2023-2024: 1 сентября - пятница",
		"2024-2025: 1 сентября - воскресенье ←",
		"2025-2026: 1 сентября - понедельник",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("Analysis() output missing %q:\n%s", s, out)
		}
	}
}

func TestExported(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Exported(&export.Result{Path: "/tmp/weeks.csv", Size: 2048, Format: export.FormatCSV})

	want := "Экспортировано в: /tmp/weeks.csv (CSV, 2.0 kB)"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("Exported() = %q, want it to contain %q", buf.String(), want)
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(0); got != "понедельник" {
		t.Errorf("WeekdayName(0) = %q, want понедельник", got)
	}
	if got := WeekdayName(6); got != "воскресенье" {
		t.Errorf("WeekdayName(6) = %q, want воскресенье", got)
	}
	if got := WeekdayName(7); got != "?" {
		t.Errorf("WeekdayName(7) = %q, want ?", got)
	}
}
