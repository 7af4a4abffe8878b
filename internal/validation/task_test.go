package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/models"
)

func TestValidateTask(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	tests := []struct {
		task    *models.Task
		name    string
		errMsg  string
		wantErr bool
	}{
		{name: "valid", task: models.NewTask("Title", at)},
		{name: "nil task", task: nil, wantErr: true, errMsg: "task is nil"},
		{name: "blank title", task: models.NewTask("  ", at), wantErr: true, errMsg: "title cannot be empty"},
		{name: "priority outside editor tiers", task: &models.Task{Title: "x", OccursAt: at, Priority: 5}},
		{name: "free-form appearance", task: &models.Task{Title: "x", OccursAt: at, Priority: 1, Icon: "rocket", ColorHex: "purple"}},
		{name: "comma in tag", task: &models.Task{Title: "x", OccursAt: at, Priority: 1, Tags: []string{"a,b"}}, wantErr: true, errMsg: "must not contain a comma"},
		{name: "missing date", task: &models.Task{Title: "x", Priority: 2}, wantErr: true, errMsg: "task date is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(tt.task)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePreferences(t *testing.T) {
	assert.NoError(t, ValidateTheme(models.ThemeDark))
	assert.Error(t, ValidateTheme("solarized"))
	assert.NoError(t, ValidateLanguage(models.LanguageRussian))
	assert.Error(t, ValidateLanguage("de"))
}

func TestValidatePriority(t *testing.T) {
	tests := []struct {
		name     string
		priority int
		wantErr  bool
	}{
		{name: "high", priority: models.PriorityHigh},
		{name: "medium", priority: models.PriorityMedium},
		{name: "low", priority: models.PriorityLow},
		{name: "zero", priority: 0, wantErr: true},
		{name: "above low", priority: 4, wantErr: true},
		{name: "negative", priority: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePriority(tt.priority)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPriorityRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}
