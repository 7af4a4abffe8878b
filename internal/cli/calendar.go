package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/tasktracker/internal/calendar"
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
	"github.com/iudanet/tasktracker/internal/tasks"
)

// tasksPerDay раскладывает задачи по дням диапазона [start, end)
func (c *Cli) tasksPerDay(ctx context.Context, owner int64, start, end time.Time) (map[time.Time][]*models.Task, error) {
	list, err := c.tasks.List(ctx, owner, tasks.Query{Range: &storage.TimeRange{Start: start, End: end}})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	days := make(map[time.Time][]*models.Task)
	for _, task := range list {
		day := calendar.StartOfDay(task.OccursAt, c.loc)
		days[day] = append(days[day], task)
	}
	return days, nil
}

// runWeek печатает неделю со счетчиками задач и задачи выбранного дня.
// Без --day выбран сегодняшний день, а если его нет в неделе - понедельник
func (c *Cli) runWeek(ctx context.Context, offset int, selectedDay string) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	selected := c.today()
	if selectedDay != "" {
		if selected, err = c.parseDay(selectedDay); err != nil {
			return err
		}
	}
	selected = calendar.SelectInWeek(selected, offset, c.now(), c.loc)

	dates := calendar.WeekDates(c.now(), offset, c.loc)
	start := dates[0]
	end := calendar.EndOfDay(dates[len(dates)-1], c.loc)

	perDay, err := c.tasksPerDay(ctx, owner, start, end)
	if err != nil {
		return err
	}

	c.io.Printf("=== Week of %s ===\n\n", start.Format(dateLayout))
	for _, day := range dates {
		marker := " "
		if calendar.SameDay(day, selected, c.loc) {
			marker = ">"
		}
		c.io.Printf("%s %s %s  %d task(s)\n", marker, day.Format("Mon"), day.Format("02 Jan"), len(perDay[day]))
	}
	c.io.Println()

	// Задачи выбранного дня в порядке дневного вида
	dayStart, dayEnd := calendar.DayRange(selected, c.loc)
	list, err := c.tasks.List(ctx, owner, tasks.DayQuery(dayStart, dayEnd))
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	c.io.Printf("%s:\n", selected.Format("Monday, 02 January 2006"))
	return c.render("tasks", list)
}

// runMonth печатает месячную сетку, дни с задачами отмечены звездочкой
func (c *Cli) runMonth(ctx context.Context, year int, month time.Month) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	now := c.now().In(c.loc)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("invalid month %d", month)
	}

	grid := calendar.MonthGrid(year, month, c.loc)
	start := grid.Days[0]
	end := calendar.EndOfDay(grid.Days[len(grid.Days)-1], c.loc)

	perDay, err := c.tasksPerDay(ctx, owner, start, end)
	if err != nil {
		return err
	}

	c.io.Printf("%s %d\n", grid.Month, grid.Year)
	c.io.Println(formatMonthGrid(grid, perDay, c.today()))
	return nil
}

func formatMonthGrid(grid calendar.Month, perDay map[time.Time][]*models.Task, today time.Time) string {
	var sb strings.Builder
	sb.WriteString("Mo  Tu  We  Th  Fr  Sa  Su\n")

	col := grid.StartOffset
	sb.WriteString(strings.Repeat("    ", col))

	for _, day := range grid.Days {
		marker := " "
		if len(perDay[day]) > 0 {
			marker = "*"
		}
		if day.Equal(today) {
			marker = "<"
		}
		fmt.Fprintf(&sb, "%2d%s", day.Day(), marker)

		col++
		if col == calendar.DaysInWeek {
			sb.WriteString("\n")
			col = 0
		} else {
			sb.WriteString(" ")
		}
	}

	return strings.TrimRight(sb.String(), " \n")
}
