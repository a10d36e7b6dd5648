package comp

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Day-granularity calendar date (UTC)
// =============================================================================

type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime truncates a time.Time to day granularity in UTC.
func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateFromTime(t), nil
}

func (d Date) Before(other Date) bool        { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool         { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool         { return d.Time.Equal(other.Time) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }
func (d Date) IsZero() bool                  { return d.Time.IsZero() }
func (d Date) Year() int                     { return d.Time.Year() }
func (d Date) String() string                { return d.Time.Format("2006-01-02") }

// DaysBetween returns the number of whole days from d to other.
func DaysBetween(from, to Date) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}

// =============================================================================
// FISCAL YEAR - Fixed interval the whole calculation runs against
// =============================================================================

// FiscalYear is the [Start, End] interval compensation is computed for.
// TotalDays is the inclusive day count.
type FiscalYear struct {
	Label     string
	Start     Date
	End       Date
	TotalDays int
}

// FY27 is the reference fiscal year: July 1, 2026 through June 30, 2027.
var FY27 = newFiscalYear("FY27", NewDate(2026, time.July, 1), NewDate(2027, time.June, 30))

func newFiscalYear(label string, start, end Date) FiscalYear {
	return FiscalYear{
		Label:     label,
		Start:     start,
		End:       end,
		TotalDays: DaysBetween(start, end) + 1,
	}
}

// DaysWorked returns the inclusive day count from start through the end of
// the fiscal year. Starts on or before the fiscal year yield the full year;
// starts after it yield zero.
func (fy FiscalYear) DaysWorked(start Date) int {
	switch {
	case start.BeforeOrEqual(fy.Start):
		return fy.TotalDays
	case start.After(fy.End):
		return 0
	default:
		return DaysBetween(start, fy.End) + 1
	}
}

// TimeFraction returns effective days over total days, where effective days
// are the days worked minus leave days, clamped at zero.
func (fy FiscalYear) TimeFraction(start Date, leaveDays int) decimal.Decimal {
	effective := fy.DaysWorked(start) - leaveDays
	if effective < 0 {
		effective = 0
	}
	return decimal.NewFromInt(int64(effective)).Div(decimal.NewFromInt(int64(fy.TotalDays)))
}
