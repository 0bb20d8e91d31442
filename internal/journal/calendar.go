package journal

import (
	"fmt"
	"time"
)

// MonthGrid lays out one month for the calendar screen: the number of
// leading blank cells before day 1 (weeks start on Sunday) and the day
// count of the month.
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          int
}

func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: int(first.Weekday()),
		// Day zero of the next month is the last day of this one.
		Days: time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(),
	}
}

// DateKey returns the calendar key of a day within the grid.
func (g MonthGrid) DateKey(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, int(g.Month), day)
}

func (g MonthGrid) Prev() MonthGrid {
	return NewMonthGrid(g.Year, g.Month-1)
}

func (g MonthGrid) Next() MonthGrid {
	return NewMonthGrid(g.Year, g.Month+1)
}
