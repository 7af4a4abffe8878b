package calendar

import "time"

// DaysInWeek - количество дней в неделе селектора
const DaysInWeek = 7

// daysFromMonday поворачивает Weekday так, чтобы понедельник был 0, а воскресенье 6
func daysFromMonday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd - time.Monday)
}

// WeekDates returns the seven local midnights of the week that is offset weeks
// away from the week containing now. Weeks start on Monday; 0 is the current
// week, negative offsets go back in time.
func WeekDates(now time.Time, offset int, loc *time.Location) []time.Time {
	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	monday := d - daysFromMonday(today.Weekday()) + offset*DaysInWeek

	dates := make([]time.Time, DaysInWeek)
	for i := range dates {
		dates[i] = time.Date(y, m, monday+i, 0, 0, 0, 0, loc)
	}
	return dates
}

// SelectInWeek returns the day that should be selected after the week
// selector moves to offset. The current selection is kept when it is inside
// the shown week, otherwise the week's Monday is selected.
func SelectInWeek(selected time.Time, offset int, now time.Time, loc *time.Location) time.Time {
	dates := WeekDates(now, offset, loc)
	for _, day := range dates {
		if SameDay(day, selected, loc) {
			return day
		}
	}
	return dates[0]
}

// Month is a month laid out for a Monday-first calendar grid.
type Month struct {
	Days        []time.Time // local midnights of every day in the month
	Year        int
	Month       time.Month
	StartOffset int // empty cells before day 1
}

// MonthGrid lays out the given month.
func MonthGrid(year int, month time.Month, loc *time.Location) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// нулевой день следующего месяца - последний день текущего
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	days := make([]time.Time, daysInMonth)
	for i := range days {
		days[i] = time.Date(year, month, i+1, 0, 0, 0, 0, loc)
	}

	return Month{
		Year:        first.Year(),
		Month:       first.Month(),
		StartOffset: daysFromMonday(first.Weekday()),
		Days:        days,
	}
}
