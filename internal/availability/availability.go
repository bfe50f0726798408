// Package availability models the buyer's meeting windows and renders them
// into the natural-language form the negotiation prompt expects.
package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NoAvailabilityText is the fixed sentence used when the buyer gave no windows.
const NoAvailabilityText = "The buyer has not specified their availability times."

var (
	ErrInvalidDate  = errors.New("availability date must be YYYY-MM-DD")
	ErrInvalidRange = errors.New("availability end date is before start date")
)

// Period is one contiguous window the buyer can meet in. Times are wall-clock
// "HH:MM" strings; they are rendered verbatim, never parsed.
type Period struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// NewPeriod validates date shape and ordering. A period whose end date
// precedes its start date is rejected, not stored.
func NewPeriod(id, startDate, endDate, startTime, endTime string) (Period, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return Period{}, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return Period{}, ErrInvalidDate
	}
	if end.Before(start) {
		return Period{}, ErrInvalidRange
	}
	return Period{
		ID:        id,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// Format renders the periods in insertion order, collapsing same-day ranges to
// a single date, joined with a comma separator.
func Format(periods []Period) string {
	if len(periods) == 0 {
		return NoAvailabilityText
	}
	rendered := make([]string, 0, len(periods))
	for _, p := range periods {
		dateRange := shortDate(p.StartDate)
		if p.EndDate != p.StartDate {
			dateRange = fmt.Sprintf("%s to %s", shortDate(p.StartDate), shortDate(p.EndDate))
		}
		rendered = append(rendered, fmt.Sprintf("%s from %s to %s", dateRange, p.StartTime, p.EndTime))
	}
	return strings.Join(rendered, ", ")
}

// shortDate renders M/D/YYYY, matching the en-US rendering the prompt
// templates were written against. Unparseable input passes through verbatim.
func shortDate(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d/%d", parsed.Month(), parsed.Day(), parsed.Year())
}
