// Package notify composes outbound email notices. There is no mail server in
// this deployment; the default composer writes the message to the log, which
// keeps the call sites ready for a real sender.
package notify

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Composer delivers a composed message to a recipient.
type Composer interface {
	ComposeEmail(recipient, subject, body string) error
}

// LogComposer writes composed emails to the structured log.
type LogComposer struct {
	logger zerolog.Logger
}

func NewLogComposer(logger zerolog.Logger) *LogComposer {
	return &LogComposer{logger: logger}
}

func (c *LogComposer) ComposeEmail(recipient, subject, body string) error {
	c.logger.Info().
		Str("recipient", recipient).
		Str("subject", subject).
		Str("body", body).
		Msg("email composed")
	return nil
}

// AttendanceReportBody renders a plain-text attendance summary, one line per
// entry in the order given.
func AttendanceReportBody(date string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Attendance report for %s\n\n", date)
	if len(lines) == 0 {
		b.WriteString("No attendance entries recorded.\n")
		return b.String()
	}
	for _, line := range lines {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// ShortageReportBody renders the equipment shortage notice sent when an
// inventory item is reported low or out of stock.
func ShortageReportBody(itemName, status, reportedBy, date string) string {
	var b strings.Builder
	b.WriteString("Equipment shortage notice\n\n")
	fmt.Fprintf(&b, "Item: %s\n", itemName)
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "Reported by: %s\n", reportedBy)
	fmt.Fprintf(&b, "Date: %s\n", date)
	return b.String()
}
