package cli

import (
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/tasktracker/internal/models"
)

const taskDetailsTemplate = `
=== Task #{{.ID}} ===

Title:       {{.Title}}
Date:        {{datetime .OccursAt}}
Priority:    {{priority .Priority}}
Icon:        {{.DisplayIcon}}
Color:       {{.DisplayColor}}
{{- if .Tags }}
Tags:        {{join .Tags}}
{{- end}}
{{- if .Description }}
Description: {{.Description}}
{{- end}}
`

const taskListTemplate = `
{{- if eq (len .) 0 }}
No tasks found.

Use 'tasktracker add' to create a task.
{{ else }}
Found {{len .}} task(s):
{{ range . }}
  #{{.ID}}  {{datetime .OccursAt}}  [{{priority .Priority}}]  {{.Title}}
  {{- if .Tags }}  ({{join .Tags}}){{ end }}
{{- end }}
{{ end }}`

const statusTemplate = `
=== Status ===

{{- if .Session }}
Logged in as: {{.Session.Username}} (id {{.Session.UserID}})
{{- else }}
Not logged in.
{{- end }}
Theme:        {{.Preferences.Theme}}
Language:     {{.Preferences.Language}}
`

type statusView struct {
	Session     *models.Session
	Preferences *models.Preferences
}

func newTemplates(c *Cli) *template.Template {
	funcs := template.FuncMap{
		"datetime": func(t time.Time) string {
			return t.In(c.loc).Format(dateTimeLayout)
		},
		"priority": priorityName,
		"join":     models.JoinTags,
	}

	t := template.New("cli").Funcs(funcs)
	template.Must(t.New("task").Parse(strings.TrimPrefix(taskDetailsTemplate, "\n")))
	template.Must(t.New("tasks").Parse(taskListTemplate))
	template.Must(t.New("status").Parse(strings.TrimPrefix(statusTemplate, "\n")))
	return t
}
