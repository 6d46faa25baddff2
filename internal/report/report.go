package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/username/week-parity/internal/academic"
	"github.com/username/week-parity/internal/export"
	"github.com/username/week-parity/pkg/dateutil"
)

const (
	wideRule   = 70
	narrowRule = 50
)

var weekdaysRU = [7]string{
	"понедельник",
	"вторник",
	"среда",
	"четверг",
	"пятница",
	"суббота",
	"воскресенье",
}

// WeekdayName returns the Russian name for an ISO weekday index (Monday = 0)
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday >= len(weekdaysRU) {
		return "?"
	}
	return weekdaysRU[weekday]
}

// Printer renders calendars as console text
type Printer struct {
	w     io.Writer
	upper cases.Caser
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:     w,
		upper: cases.Upper(language.Russian),
	}
}

func (p *Printer) printf(format string, a ...interface{}) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) println(a ...interface{}) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) rule(width int) {
	p.println(strings.Repeat("=", width))
}

// Banner prints the program header
func (p *Printer) Banner() {
	p.printf("\n🎓 УНИВЕРСИТЕТСКИЙ КАЛЕНДАРЬ\n")
	p.rule(narrowRule)
}

// FirstWeek prints the academic year and its first week
func (p *Printer) FirstWeek(cal *academic.Calendar) {
	first, ok := cal.FirstWeek()
	if !ok {
		return
	}
	p.printf("📅 Учебный год: %s\n", cal.Label())
	p.printf("📍 Первая неделя: %s - %s (%s)\n",
		dateutil.FormatRU(first.Start), dateutil.FormatRU(first.End), first.Parity.Mark())
	if cal.Anchor.SpecialCase {
		p.printf("⚠️  Особый год: 1 сентября - воскресенье\n")
	}
}

// Table prints one line per week. Detailed mode adds a legend and a notes column.
func (p *Printer) Table(cal *academic.Calendar, detailed bool) {
	p.println()
	p.rule(wideRule)
	p.printf("УЧЕБНЫЙ КАЛЕНДАРЬ %s\n", cal.Label())
	p.rule(wideRule)

	if detailed {
		p.println("Легенда: [*] - нечётная неделя, [**] - чётная неделя, [●] - текущая неделя")
		p.println(strings.Repeat("-", wideRule))
	}

	header := fmt.Sprintf("%-8s %-12s %-12s %-10s", "Неделя", "Начало", "Конец", "Четность")
	if detailed {
		header += " Примечание"
	}
	p.println(header)
	p.println(strings.Repeat("-", wideRule))

	for _, week := range cal.Weeks {
		number := fmt.Sprintf("%d", week.Number)
		if week.IsCurrent {
			number += "●"
		}

		row := fmt.Sprintf("%-8s %-12s %-12s %-10s",
			number, dateutil.FormatRU(week.Start), dateutil.FormatRU(week.End), week.Parity.Mark())

		if detailed {
			row += " " + strings.Join(notes(week), ", ")
		}
		p.println(strings.TrimRight(row, " "))
	}
}

func notes(week academic.Week) []string {
	var out []string
	if week.ContainsSeptember1 {
		out = append(out, "Начало учебного года")
	}
	if week.IsCurrent {
		out = append(out, "Текущая")
	}
	return out
}

// CurrentWeek prints the week containing today, or that today is outside the range
func (p *Printer) CurrentWeek(cal *academic.Calendar) {
	week, ok := cal.CurrentWeek()
	if !ok {
		p.printf("\n📌 %s: дата вне диапазона календаря\n", dateutil.FormatRU(cal.Today))
		return
	}
	p.printf("\n📌 ТЕКУЩАЯ НЕДЕЛЯ: №%d (%s) %s - %s\n",
		week.Number,
		p.upper.String(week.Parity.String()),
		dateutil.FormatRU(week.Start),
		dateutil.FormatRU(week.End))
}

// Statistics prints the parity counts and the covered range
func (p *Printer) Statistics(stats academic.Statistics) {
	p.println()
	p.rule(narrowRule)
	p.println("СТАТИСТИКА")
	p.rule(narrowRule)
	p.printf("Всего недель: %d\n", stats.Total)
	p.printf("Нечётных: %d\n", stats.OddWeeks)
	p.printf("Чётных: %d\n", stats.EvenWeeks)
	if stats.Total == 0 {
		return
	}
	p.printf("Начало: %s\n", dateutil.FormatRU(stats.Start))
	p.printf("Окончание: %s\n", dateutil.FormatRU(stats.End))
	if stats.HasCurrent() {
		p.printf("Текущая неделя: №%d\n", stats.CurrentWeek)
	}
}

// Analysis prints how the academic year starts and compares it with the neighbouring years
func (p *Printer) Analysis(a academic.YearAnalysis) {
	anchor := a.Anchor

	p.println()
	p.rule(60)
	p.printf("АНАЛИЗ УЧЕБНОГО ГОДА %s\n", academic.YearLabel(anchor.Year))
	p.rule(60)

	p.printf("📅 1 сентября %d года: %s\n", anchor.Year, WeekdayName(anchor.Weekday))
	if anchor.SpecialCase {
		p.println("⚠️  1 сентября - воскресенье")
		p.printf("✅ Учебный год начинается: %s\n", dateutil.FormatRU(anchor.Start))
	}
	p.printf("✅ Первая учебная неделя: %s - %s\n",
		dateutil.FormatRU(anchor.Start), dateutil.FormatRU(a.FirstWeekEnd))
	p.printf("✅ Четность первой недели: %s\n", p.upper.String(a.FirstParity.String()))

	p.println("\nСравнение с соседними годами:")
	for _, n := range a.Neighbors {
		marker := ""
		if n.Year == anchor.Year {
			marker = " ←"
		}
		p.printf("  %s: 1 сентября - %s%s\n", academic.YearLabel(n.Year), WeekdayName(n.Weekday), marker)
	}
}

// Exported confirms a saved export file
func (p *Printer) Exported(result *export.Result) {
	p.printf("\n💾 Экспортировано в: %s (%s, %s)\n",
		result.Path, strings.ToUpper(string(result.Format)), humanize.Bytes(uint64(result.Size)))
}

// Cleared confirms the session was reset
func (p *Printer) Cleared() {
	p.println("Очищено. Сгенерируйте календарь")
}
