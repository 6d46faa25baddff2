package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/week-parity/internal/academic"
	"github.com/username/week-parity/internal/config"
	"github.com/username/week-parity/internal/export"
	"github.com/username/week-parity/internal/report"
	"github.com/username/week-parity/internal/session"
	"github.com/username/week-parity/pkg/dateutil"
)

var (
	configPath string
	cfg        = config.Default()
	logger     = zap.NewNop()

	yearFlag   int
	weeksFlag  int
	formatFlag string
	outputFlag string
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Ошибка: %s\n", describeError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var detailed, doExport, analyze, stats bool

	rootCmd := &cobra.Command{
		Use:   "week-parity",
		Short: "Генератор четности учебных недель",
		Long:  "Computes odd/even academic weeks starting from the September 1st rule and exports them to CSV, XLSX or ICS",
		Example: `  week-parity                 # текущий учебный год
  week-parity -y 2026         # конкретный год
  week-parity -y 2026 -d      # подробный вывод
  week-parity -y 2026 -e      # экспорт в CSV
  week-parity -y 2026 -a      # анализ года
  week-parity -y 2026 -s      # статистика`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := report.NewPrinter(cmd.OutOrStdout())
			year := selectedYear(cmd)

			if analyze {
				if err := validateYear(year); err != nil {
					return err
				}
				printer.Banner()
				printer.Analysis(academic.AnalyzeYear(year))
				return nil
			}

			sess := newSession()
			cal, err := sess.Generate(year, selectedWeeks(cmd))
			if err != nil {
				return err
			}

			printer.Banner()
			printer.FirstWeek(cal)
			printer.Table(cal, detailed)
			printer.CurrentWeek(cal)

			if stats {
				printer.Statistics(cal.Statistics())
			}

			if doExport {
				return exportCurrent(sess, printer)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().IntVarP(&yearFlag, "year", "y", 0, "Год начала учебного года (напр., 2026)")
	rootCmd.PersistentFlags().IntVarP(&weeksFlag, "weeks", "w", 0, "Количество недель (по умолчанию из конфигурации: 52)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Формат экспорта: csv, xlsx, ics")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Файл экспорта (по умолчанию четность_недель_<год>_<год+1>.<формат>)")

	rootCmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Подробный вывод с примечаниями")
	rootCmd.Flags().BoolVarP(&doExport, "export", "e", false, "Экспорт в файл")
	rootCmd.Flags().BoolVarP(&analyze, "analyze", "a", false, "Анализ структуры учебного года")
	rootCmd.Flags().BoolVarP(&stats, "stats", "s", false, "Показать статистику")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(sessionCmd())

	return rootCmd
}

// setup loads the configuration and initializes the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if cfg.Log.File != "" {
		logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			logger = initLogger(cfg.Log.Level) // Fallback to console
		}
	} else {
		logger = initLogger(cfg.Log.Level)
	}

	logger.Debug("Configuration loaded",
		zap.String("config", configPath),
		zap.Int("default_weeks", cfg.Calendar.DefaultWeeks),
		zap.String("output_dir", cfg.Export.OutputDir))
	return nil
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [year]",
		Short: "Анализ структуры учебного года",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := selectedYear(cmd)
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: year %q", session.ErrInvalidInput, args[0])
				}
				year = v
			}
			if err := validateYear(year); err != nil {
				return err
			}

			printer := report.NewPrinter(cmd.OutOrStdout())
			printer.Banner()
			printer.Analysis(academic.AnalyzeYear(year))
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Сгенерировать календарь и сохранить его в файл",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := newSession()
			if _, err := sess.Generate(selectedYear(cmd), selectedWeeks(cmd)); err != nil {
				return err
			}
			return exportCurrent(sess, report.NewPrinter(cmd.OutOrStdout()))
		},
	}
}

func newSession() *session.Session {
	exporter := export.NewExporter(cfg.Export.OutputDir, logger)
	return session.New(cfg.Calendar, exporter, logger)
}

func exportCurrent(sess *session.Session, printer *report.Printer) error {
	format, err := selectedFormat()
	if err != nil {
		return err
	}

	result, err := sess.Export(format, outputFlag)
	if err != nil {
		return err
	}
	printer.Exported(result)
	return nil
}

func selectedYear(cmd *cobra.Command) int {
	if cmd.Flags().Changed("year") {
		return yearFlag
	}
	return academic.AcademicYearFor(dateutil.Today())
}

func selectedWeeks(cmd *cobra.Command) int {
	if cmd.Flags().Changed("weeks") {
		return weeksFlag
	}
	return cfg.Calendar.DefaultWeeks
}

func selectedFormat() (export.Format, error) {
	if formatFlag != "" {
		return export.ParseFormat(formatFlag)
	}
	return export.ParseFormat(cfg.Export.Format)
}

func validateYear(year int) error {
	return academic.ValidateYear(year, dateutil.Today(), cfg.Calendar.MinYear, cfg.Calendar.YearsAhead)
}

// describeError turns domain errors into user-facing messages
func describeError(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidInput):
		return "Пожалуйста, введите корректные числовые значения"
	case errors.Is(err, academic.ErrYearOutOfRange):
		return fmt.Sprintf("Год должен быть между %d и %d",
			cfg.Calendar.MinYear, dateutil.Today().Year()+cfg.Calendar.YearsAhead)
	case errors.Is(err, academic.ErrInvalidWeeks):
		if cfg.Calendar.MaxWeeks > 0 {
			return fmt.Sprintf("Количество недель должно быть от 1 до %d", cfg.Calendar.MaxWeeks)
		}
		return "Количество недель должно быть положительным"
	case errors.Is(err, session.ErrNoCalendar), errors.Is(err, export.ErrEmptyCalendar):
		return "Сначала сгенерируйте календарь"
	case errors.Is(err, export.ErrUnknownFormat):
		return "Неизвестный формат экспорта (csv, xlsx, ics)"
	}
	return err.Error()
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if logFile == "" {
		return nil, errors.New("log file path is empty")
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}
	return zapLevel
}
