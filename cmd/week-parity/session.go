package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/username/week-parity/internal/export"
	"github.com/username/week-parity/internal/report"
	"github.com/username/week-parity/internal/session"
)

const sessionHelp = `Команды:
  <год> [недели]          сгенерировать календарь
  stats                   статистика текущего календаря
  export [формат] [файл]  сохранить текущий календарь (csv, xlsx, ics)
  clear                   очистить
  quit                    выход`

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Интерактивный режим: ввод года и количества недель построчно",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := newSession()
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		},
	}
}

// runSession generates the current academic year, then serves commands line by line until EOF or quit
func runSession(in io.Reader, out io.Writer, sess *session.Session) error {
	printer := report.NewPrinter(out)

	printer.Banner()
	fmt.Fprintln(out, sessionHelp)
	showGenerated(out, printer, sess, "", "")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "выход":
			return nil
		case "help", "?":
			fmt.Fprintln(out, sessionHelp)
		case "clear":
			sess.Clear()
			printer.Cleared()
		case "stats":
			cal := sess.Current()
			if cal == nil {
				fmt.Fprintf(out, "❌ %s\n", describeError(session.ErrNoCalendar))
				continue
			}
			printer.Statistics(cal.Statistics())
		case "export":
			exportFromSession(out, printer, sess, fields[1:])
		default:
			if len(fields) > 2 {
				fmt.Fprintf(out, "❌ %s\n", describeError(session.ErrInvalidInput))
				continue
			}
			weeks := ""
			if len(fields) > 1 {
				weeks = fields[1]
			}
			showGenerated(out, printer, sess, fields[0], weeks)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}

func showGenerated(out io.Writer, printer *report.Printer, sess *session.Session, year, weeks string) {
	cal, err := sess.Submit(year, weeks)
	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", describeError(err))
		return
	}

	printer.FirstWeek(cal)
	printer.Table(cal, false)
	printer.CurrentWeek(cal)

	stats := cal.Statistics()
	fmt.Fprintf(out, "✓ Сгенерировано %d недель (%d нечётных, %d чётных)\n",
		stats.Total, stats.OddWeeks, stats.EvenWeeks)
}

func exportFromSession(out io.Writer, printer *report.Printer, sess *session.Session, args []string) {
	format, err := selectedFormat()
	if len(args) > 0 {
		format, err = export.ParseFormat(args[0])
	}
	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", describeError(err))
		return
	}

	filename := ""
	if len(args) > 1 {
		filename = args[1]
	}

	result, err := sess.Export(format, filename)
	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", describeError(err))
		return
	}
	printer.Exported(result)
}
