package daterange

import (
	"time"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

// Period option identifiers
const (
	OptionCurrentMonth = "current"
	OptionLastMonth    = "last"
	OptionLast3Months  = "last3"
	OptionLast6Months  = "last6"

	DefaultOption = OptionCurrentMonth
)

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// monthPeriod returns the calendar month that is monthsBack months before now
func monthPeriod(now time.Time, monthsBack int) domain.Period {
	// anchor on the first day so AddDate never overflows (e.g. Mar 31 - 1 month)
	target := startOfMonth(now).AddDate(0, -monthsBack, 0)
	return domain.Period{
		Start: target,
		End:   endOfMonth(target),
	}
}

// CurrentMonth returns the calendar month containing now
func CurrentMonth(now time.Time) domain.Period {
	return monthPeriod(now, 0)
}

// trailingMonths covers n whole calendar months ending with the current one
func trailingMonths(now time.Time, n int) domain.Period {
	return domain.Period{
		Start: monthPeriod(now, n-1).Start,
		End:   CurrentMonth(now).End,
	}
}

// BuildOptions computes the fixed option catalog against now
func BuildOptions(now time.Time) []domain.PeriodOption {
	return []domain.PeriodOption{
		{ID: OptionCurrentMonth, Label: "Current Month", Period: CurrentMonth(now)},
		{ID: OptionLastMonth, Label: "Last Month", Period: monthPeriod(now, 1)},
		{ID: OptionLast3Months, Label: "Last 3 Months", Period: trailingMonths(now, 3)},
		{ID: OptionLast6Months, Label: "Last 6 Months", Period: trailingMonths(now, 6)},
	}
}
