package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/tasktracker/internal/calendar"
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
	"github.com/iudanet/tasktracker/internal/tasks"
)

// taskOptions - значения флагов add/edit в текстовом виде
type taskOptions struct {
	Title       string
	Description string
	Tags        string
	Date        string
	Time        string
	Icon        string
	Color       string
	Priority    string
}

// listOptions - фильтры list и watch
type listOptions struct {
	Day    string
	Search string
	Tag    string
	Today  bool
}

func (c *Cli) runAdd(ctx context.Context, opts taskOptions) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	if opts.Title == "" {
		opts.Title, err = c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}

	occursAt, err := c.parseOccursAt(opts.Date, opts.Time)
	if err != nil {
		return err
	}

	task := models.NewTask(opts.Title, occursAt)
	task.Description = opts.Description
	task.Tags = models.ParseTags(opts.Tags)
	if opts.Icon != "" {
		task.Icon = opts.Icon
	}
	if opts.Color != "" {
		task.ColorHex = opts.Color
	}
	if opts.Priority != "" {
		if task.Priority, err = parsePriority(opts.Priority); err != nil {
			return err
		}
	}

	id, err := c.tasks.Insert(ctx, owner, task)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	c.io.Printf("✓ Task added successfully! ID: %d\n", id)
	return nil
}

// runEdit меняет только те поля, флаги которых переданы
func (c *Cli) runEdit(ctx context.Context, rawID string, opts taskOptions, changed func(name string) bool) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	id, err := parseTaskID(rawID)
	if err != nil {
		return err
	}

	task, err := c.tasks.GetByID(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return fmt.Errorf("task not found with ID: %d", id)
	}

	if changed("title") {
		task.Title = opts.Title
	}
	if changed("description") {
		task.Description = opts.Description
	}
	if changed("tags") {
		task.Tags = models.ParseTags(opts.Tags)
	}
	if changed("date") || changed("time") {
		local := task.OccursAt.In(c.loc)
		date, clock := opts.Date, opts.Time
		if !changed("date") {
			date = local.Format(dateLayout)
		}
		if !changed("time") {
			clock = local.Format(clockLayout)
		}
		if task.OccursAt, err = c.parseOccursAt(date, clock); err != nil {
			return err
		}
	}
	if changed("icon") {
		task.Icon = opts.Icon
	}
	if changed("color") {
		task.ColorHex = opts.Color
	}
	if changed("priority") {
		if task.Priority, err = parsePriority(opts.Priority); err != nil {
			return err
		}
	}

	if err := c.tasks.Update(ctx, owner, task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	c.io.Printf("✓ Task #%d updated\n", id)
	return nil
}

func (c *Cli) runGet(ctx context.Context, rawID string) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	id, err := parseTaskID(rawID)
	if err != nil {
		return err
	}

	task, err := c.tasks.GetByID(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return fmt.Errorf("task not found with ID: %d", id)
	}

	return c.render("task", task)
}

func (c *Cli) runDelete(ctx context.Context, rawID string) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	id, err := parseTaskID(rawID)
	if err != nil {
		return err
	}

	if err := c.tasks.DeleteByID(ctx, owner, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.io.Println("✓ Task deleted successfully!")
	return nil
}

func (c *Cli) runClear(ctx context.Context, yes bool) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	if !yes {
		answer, err := c.io.ReadInput("Delete ALL tasks? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	n, err := c.tasks.DeleteAll(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}

	c.io.Printf("✓ Deleted %d task(s)\n", n)
	return nil
}

// buildQuery переводит флаги в запрос. --today и --day задают дневной диапазон
func (c *Cli) buildQuery(opts listOptions) (tasks.Query, error) {
	q := tasks.Query{
		Search: opts.Search,
		Tag:    opts.Tag,
	}

	switch {
	case opts.Today && opts.Day != "":
		return q, fmt.Errorf("use either --today or --day")
	case opts.Today:
		start, end := calendar.DayRange(c.now(), c.loc)
		q.Range = &storage.TimeRange{Start: start, End: end}
	case opts.Day != "":
		day, err := c.parseDay(opts.Day)
		if err != nil {
			return q, err
		}
		start, end := calendar.DayRange(day, c.loc)
		q.Range = &storage.TimeRange{Start: start, End: end}
	}

	return q, nil
}

func (c *Cli) runList(ctx context.Context, opts listOptions) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	q, err := c.buildQuery(opts)
	if err != nil {
		return err
	}

	list, err := c.tasks.List(ctx, owner, q)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	return c.render("tasks", list)
}
