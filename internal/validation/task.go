package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/tasktracker/internal/models"
)

var (
	// ErrEmptyTitle is returned when a task is saved without a title.
	ErrEmptyTitle = errors.New("title cannot be empty")
	// ErrPriorityRange is returned by ValidatePriority.
	ErrPriorityRange = fmt.Errorf("priority must be between %d and %d", models.PriorityHigh, models.PriorityLow)
)

// ValidateTask проверяет задачу перед записью.
// Приоритет, иконка и цвет здесь не проверяются: сохраняется любое значение,
// а неизвестные отображаются по умолчанию
func ValidateTask(task *models.Task) error {
	if task == nil {
		return fmt.Errorf("task is nil")
	}

	if strings.TrimSpace(task.Title) == "" {
		return ErrEmptyTitle
	}

	if task.OccursAt.IsZero() {
		return fmt.Errorf("task date is required")
	}

	// Теги хранятся одной строкой через запятую
	for _, tag := range task.Tags {
		if strings.Contains(tag, ",") {
			return fmt.Errorf("tag %q must not contain a comma", tag)
		}
	}

	return nil
}

// ValidatePriority проверяет приоритет из редактора: три уровня, 1 - высокий
func ValidatePriority(p int) error {
	if p < models.PriorityHigh || p > models.PriorityLow {
		return ErrPriorityRange
	}
	return nil
}
