package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/internal/calendar"
	"github.com/iudanet/tasktracker/internal/iocli"
	"github.com/iudanet/tasktracker/internal/models"
)

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04"
	dateTimeLayout = dateLayout + " " + clockLayout
)

// Cli executes client commands on top of the services
type Cli struct {
	io        iocli.IO
	auth      AuthService
	tasks     TaskService
	settings  SettingsService
	loc       *time.Location
	now       func() time.Time
	templates *template.Template
}

// New creates the client. loc is the time zone dates are shown and parsed in
func New(io iocli.IO, authService AuthService, taskService TaskService, settingsService SettingsService, loc *time.Location) *Cli {
	if loc == nil {
		loc = time.Local
	}
	c := &Cli{
		io:       io,
		auth:     authService,
		tasks:    taskService,
		settings: settingsService,
		loc:      loc,
		now:      time.Now,
	}
	c.templates = newTemplates(c)
	return c
}

// ownerID возвращает id текущего пользователя или понятную ошибку
func (c *Cli) ownerID(ctx context.Context) (int64, error) {
	session, err := c.auth.CurrentSession(ctx)
	if err != nil {
		if isNotLoggedIn(err) {
			return 0, fmt.Errorf("not logged in, run 'tasktracker login' first")
		}
		return 0, fmt.Errorf("failed to get session: %w", err)
	}
	return session.UserID, nil
}

func isNotLoggedIn(err error) bool {
	return errors.Is(err, auth.ErrNotLoggedIn)
}

func (c *Cli) render(name string, data any) error {
	if err := c.templates.ExecuteTemplate(c.io, name, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

func (c *Cli) today() time.Time {
	return calendar.Today(c.now(), c.loc)
}

// parseDay разбирает дату YYYY-MM-DD в часовом поясе клиента
func (c *Cli) parseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return day, nil
}

// parseOccursAt собирает дату и время задачи. Пустая дата - сегодня,
// пустое время - текущее время суток
func (c *Cli) parseOccursAt(date, clock string) (time.Time, error) {
	now := c.now().In(c.loc)
	if date == "" {
		date = now.Format(dateLayout)
	}
	if clock == "" {
		clock = now.Format(clockLayout)
	}

	at, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q, expected YYYY-MM-DD and HH:MM", date, clock)
	}
	return at, nil
}

func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

func priorityName(p int) string {
	switch p {
	case models.PriorityHigh:
		return "high"
	case models.PriorityMedium:
		return "medium"
	case models.PriorityLow:
		return "low"
	default:
		return strconv.Itoa(p)
	}
}

func parsePriority(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "high":
		return models.PriorityHigh, nil
	case "2", "medium":
		return models.PriorityMedium, nil
	case "3", "low":
		return models.PriorityLow, nil
	default:
		return 0, fmt.Errorf("invalid priority %q, use high, medium or low", s)
	}
}
