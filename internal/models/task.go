package models

import (
	"regexp"
	"strings"
	"time"
)

// Значения по умолчанию для новой задачи
const (
	DefaultPriority = 1
	DefaultIcon     = "task"
	DefaultColorHex = "#9C27B0"
	// NeutralColorHex is shown when a stored color cannot be parsed.
	NeutralColorHex = "#888888"
)

// Priority tiers shown by the editor. The store accepts any integer.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Icons lists the glyph names a task may reference.
var Icons = []string{
	"work", "shopping", "health", "fitness", "study", "food", "travel",
	"home", "phone", "calendar", "music", "game", "car", "gift", "star",
	"heart", "email", "camera", "task",
}

var colorHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Task представляет задачу пользователя, запланированную на конкретную дату.
type Task struct {
	OccursAt    time.Time `json:"occurs_at"`   // дата и время задачи (в хранилище epoch millis)
	Title       string    `json:"title"`       // заголовок, не пустой
	Description string    `json:"description"` // опциональное описание
	Icon        string    `json:"icon"`        // имя иконки
	ColorHex    string    `json:"color_hex"`   // цвет в формате #RRGGBB
	Tags        []string  `json:"tags"`        // теги в порядке ввода
	ID          int64     `json:"id"`          // 0 пока задача не сохранена
	OwnerID     int64     `json:"owner_id"`    // владелец задачи
	Priority    int       `json:"priority"`    // 1 - высокий, 3 - низкий
}

// NewTask returns a task with editor defaults applied.
func NewTask(title string, occursAt time.Time) *Task {
	return &Task{
		Title:    title,
		OccursAt: occursAt,
		Icon:     DefaultIcon,
		ColorHex: DefaultColorHex,
		Priority: DefaultPriority,
	}
}

// DisplayIcon returns the icon name to render, falling back to the generic glyph.
func (t *Task) DisplayIcon() string {
	if IsKnownIcon(t.Icon) {
		return t.Icon
	}
	return DefaultIcon
}

// DisplayColor returns the color to render. Invalid values are not a storage
// error, they just render neutral.
func (t *Task) DisplayColor() string {
	if IsValidColorHex(t.ColorHex) {
		return t.ColorHex
	}
	return NeutralColorHex
}

// IsKnownIcon reports whether name is one of Icons.
func IsKnownIcon(name string) bool {
	for _, icon := range Icons {
		if icon == name {
			return true
		}
	}
	return false
}

// IsValidColorHex reports whether s has the #RRGGBB form.
func IsValidColorHex(s string) bool {
	return colorHexPattern.MatchString(s)
}

// ParseTags разбирает строку тегов из редактора ("work, home") в список.
// Пробелы по краям обрезаются, пустые элементы отбрасываются.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// NormalizeTags trims tags coming from an API request and drops empty ones.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// JoinTags formats tags back into the editor form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
