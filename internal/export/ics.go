package export

import (
	"fmt"
	"io"
	"strings"

	ics "github.com/arran4/golang-ical"

	"github.com/username/week-parity/internal/academic"
	"github.com/username/week-parity/pkg/dateutil"
)

const icsProductID = "-//week-parity//Academic week parity//RU"

// WriteICS writes one all-day event per week so the parity shows up in calendar apps
func WriteICS(w io.Writer, cal *academic.Calendar) error {
	out := ics.NewCalendar()
	out.SetMethod(ics.MethodPublish)
	out.SetProductId(icsProductID)
	out.SetXWRCalName(fmt.Sprintf("Четность недель %s", cal.Label()))

	stamp := cal.Today
	for _, week := range cal.Weeks {
		event := out.AddEvent(fmt.Sprintf("week-%d-%d@week-parity", cal.Year, week.Number))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(week.Start)
		// DTEND of an all-day event is exclusive
		event.SetAllDayEndAt(dateutil.AddDays(week.End, 1))
		event.SetSummary(fmt.Sprintf("Неделя %d (%s)", week.Number, strings.ToLower(week.Parity.String())))
		event.SetDescription(fmt.Sprintf("%s - %s, %s",
			dateutil.FormatRU(week.Start), dateutil.FormatRU(week.End), week.Parity.Mark()))
	}

	if _, err := io.WriteString(w, out.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
