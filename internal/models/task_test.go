package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_Defaults(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	task := NewTask("Buy milk", at)

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, at, task.OccursAt)
	assert.Equal(t, DefaultIcon, task.Icon)
	assert.Equal(t, DefaultColorHex, task.ColorHex)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Zero(t, task.ID)
}

func TestTask_DisplayIcon(t *testing.T) {
	tests := []struct {
		name string
		icon string
		want string
	}{
		{name: "known icon", icon: "work", want: "work"},
		{name: "empty icon", icon: "", want: DefaultIcon},
		{name: "unknown icon", icon: "PhoneAndroid", want: DefaultIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Icon: tt.icon}
			assert.Equal(t, tt.want, task.DisplayIcon())
		})
	}
}

func TestTask_DisplayColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  string
	}{
		{name: "valid lowercase", color: "#9c27b0", want: "#9c27b0"},
		{name: "valid uppercase", color: "#FF0000", want: "#FF0000"},
		{name: "empty", color: "", want: NeutralColorHex},
		{name: "missing hash", color: "FF0000", want: NeutralColorHex},
		{name: "short form", color: "#F00", want: NeutralColorHex},
		{name: "not hex", color: "#GGGGGG", want: NeutralColorHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{ColorHex: tt.color}
			assert.Equal(t, tt.want, task.DisplayColor())
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "single", input: "work", want: []string{"work"}},
		{name: "trim and drop empties", input: " work, ,home ,", want: []string{"work", "home"}},
		{name: "duplicates kept in order", input: "a,b,a", want: []string{"a", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"work", "home"}, NormalizeTags([]string{" work", "", "  ", "home "}))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "work, home", JoinTags([]string{"work", "home"}))
	assert.Equal(t, "", JoinTags(nil))
}
