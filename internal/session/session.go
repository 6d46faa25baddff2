package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/week-parity/internal/academic"
	"github.com/username/week-parity/internal/config"
	"github.com/username/week-parity/internal/export"
	"github.com/username/week-parity/pkg/dateutil"
)

var (
	// ErrInvalidInput is returned for non-numeric year or week count
	ErrInvalidInput = errors.New("please enter valid numbers")
	// ErrNoCalendar is returned when exporting before anything was generated
	ErrNoCalendar = errors.New("generate a calendar first")
)

// Session holds the calendar currently shown to the user.
// A failed generation leaves the previous calendar in place.
type Session struct {
	cfg      config.CalendarConfig
	exporter *export.Exporter
	now      func() time.Time
	logger   *zap.Logger
	current  *academic.Calendar
}

// Option configures a Session
type Option func(*Session)

// WithClock replaces time.Now, used to pin "today" in tests
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates a new empty session
func New(cfg config.CalendarConfig, exporter *export.Exporter, logger *zap.Logger, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		exporter: exporter,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the session's current calendar date
func (s *Session) Today() time.Time {
	return dateutil.DateOf(s.now())
}

// DefaultYear returns the academic year containing today
func (s *Session) DefaultYear() int {
	return academic.AcademicYearFor(s.Today())
}

// Submit parses form text and generates a calendar.
// An empty year means the current academic year, empty weeks the configured default.
func (s *Session) Submit(yearText, weeksText string) (*academic.Calendar, error) {
	year := s.DefaultYear()
	if t := strings.TrimSpace(yearText); t != "" {
		v, err := strconv.Atoi(t)
		if err != nil {
			s.logger.Debug("Rejected year input", zap.String("input", yearText))
			return nil, fmt.Errorf("%w: year %q", ErrInvalidInput, yearText)
		}
		year = v
	}

	weeks := s.cfg.DefaultWeeks
	if t := strings.TrimSpace(weeksText); t != "" {
		v, err := strconv.Atoi(t)
		if err != nil {
			s.logger.Debug("Rejected weeks input", zap.String("input", weeksText))
			return nil, fmt.Errorf("%w: weeks %q", ErrInvalidInput, weeksText)
		}
		weeks = v
	}

	return s.Generate(year, weeks)
}

// Generate validates the input and replaces the current calendar
func (s *Session) Generate(year, weeks int) (*academic.Calendar, error) {
	today := s.Today()

	if err := academic.ValidateYear(year, today, s.cfg.MinYear, s.cfg.YearsAhead); err != nil {
		return nil, err
	}
	if err := academic.ValidateWeeks(weeks, s.cfg.MaxWeeks); err != nil {
		return nil, err
	}

	cal, err := academic.Generate(year, weeks, today)
	if err != nil {
		return nil, err
	}

	s.current = cal
	s.logger.Info("Calendar generated",
		zap.Int("year", year),
		zap.Int("weeks", weeks),
		zap.Bool("special_case", cal.Anchor.SpecialCase),
		zap.Int("current_week", cal.Statistics().CurrentWeek))

	return cal, nil
}

// Current returns the calendar on display, nil if none
func (s *Session) Current() *academic.Calendar {
	return s.current
}

// Clear drops the current calendar
func (s *Session) Clear() {
	s.current = nil
	s.logger.Info("Session cleared")
}

// Export saves the current calendar. A write failure leaves the calendar untouched.
func (s *Session) Export(format export.Format, filename string) (*export.Result, error) {
	if s.current == nil {
		return nil, ErrNoCalendar
	}
	return s.exporter.Save(s.current, format, filename)
}
