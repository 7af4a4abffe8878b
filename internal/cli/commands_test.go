package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/tasks"
)

// execute запускает подкоманды на готовом Cli без открытия хранилищ
func execute(t *testing.T, c *Cli, args ...string) error {
	t.Helper()
	root := &cobra.Command{Use: "tasktracker", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(commands(func() *Cli { return c })...)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestCommands_AddFlags(t *testing.T) {
	io, _ := newTestIO()
	mockTasks := &TaskServiceMock{
		InsertFunc: func(ctx context.Context, ownerID int64, task *models.Task) (int64, error) {
			return 1, nil
		},
	}
	c := newTestCli(io, loggedIn(1), mockTasks, nil)

	err := execute(t, c, "add", "-t", "Call mom", "--date", "2024-05-09", "--time", "20:00", "--tags", "family", "--priority", "medium")
	require.NoError(t, err)

	task := mockTasks.InsertCalls()[0].Task
	assert.Equal(t, "Call mom", task.Title)
	assert.Equal(t, time.Date(2024, time.May, 9, 20, 0, 0, 0, time.UTC), task.OccursAt)
	assert.Equal(t, []string{"family"}, task.Tags)
	assert.Equal(t, models.PriorityMedium, task.Priority)
}

func TestCommands_EditUsesChangedFlags(t *testing.T) {
	io, _ := newTestIO()
	original := models.NewTask("Call mom", time.Date(2024, time.May, 9, 20, 0, 0, 0, time.UTC))
	original.ID = 5
	original.Description = "keep me"

	mockTasks := &TaskServiceMock{
		GetByIDFunc: func(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
			task := *original
			return &task, nil
		},
		UpdateFunc: func(ctx context.Context, ownerID int64, task *models.Task) error {
			return nil
		},
	}
	c := newTestCli(io, loggedIn(1), mockTasks, nil)

	// Пустой --description явно очищает поле
	require.NoError(t, execute(t, c, "edit", "5", "--description", "", "--date", "2024-05-10"))

	task := mockTasks.UpdateCalls()[0].Task
	assert.Equal(t, "Call mom", task.Title)
	assert.Empty(t, task.Description)
	assert.Equal(t, time.Date(2024, time.May, 10, 20, 0, 0, 0, time.UTC), task.OccursAt)
}

func TestCommands_ListFlags(t *testing.T) {
	io, _ := newTestIO()
	mockTasks := &TaskServiceMock{
		ListFunc: func(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error) {
			return nil, nil
		},
	}
	c := newTestCli(io, loggedIn(1), mockTasks, nil)

	require.NoError(t, execute(t, c, "ls", "--day", "2024-05-01", "-s", "milk", "--tag", "home"))

	q := mockTasks.ListCalls()[0].Q
	require.NotNil(t, q.Range)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), q.Range.Start)
	assert.Equal(t, "milk", q.Search)
	assert.Equal(t, "home", q.Tag)
}

func TestCommands_Args(t *testing.T) {
	io, _ := newTestIO()
	c := newTestCli(io, loggedIn(1), &TaskServiceMock{}, nil)

	assert.Error(t, execute(t, c, "get"))
	assert.Error(t, execute(t, c, "delete", "1", "2"))
	assert.Error(t, execute(t, c, "list", "extra"))
}

func TestApp_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	base := []string{
		"--db", filepath.Join(dir, "tasks.db"),
		"--prefs", filepath.Join(dir, "prefs.db"),
		"--timezone", "UTC",
		"--log-level", "error",
	}

	run := func(args ...string) (string, error) {
		io, out := newTestIO()
		app := NewApp(io, BuildInfo{Version: "test"})
		root := app.Command()
		root.SetArgs(append(append([]string{}, args...), base...))
		err := root.ExecuteContext(context.Background())
		require.NoError(t, app.Close())
		return out.String(), err
	}

	_, err := run("list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")

	out, err := run("login", "-u", "alice", "-p", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Login successful! Logged in as alice")

	out, err = run("add", "-t", "Write report", "--date", "2024-05-08", "--time", "09:00", "--tags", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Task added successfully! ID: 1")

	out, err = run("list", "--day", "2024-05-08")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 task(s):")
	assert.Contains(t, out, "Write report")

	out, err = run("list", "--tag", "home")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found.")

	_, err = run("logout")
	require.NoError(t, err)

	// Повторный вход с неверным паролем
	_, err = run("login", "-u", "alice", "-p", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid password", err.Error())

	out, err = run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")
}

func TestApp_VersionDoesNotOpenStorage(t *testing.T) {
	io, out := newTestIO()
	app := NewApp(io, BuildInfo{Version: "1.2.3", BuildDate: "2024-05-01", GitCommit: "abc123"})
	root := app.Command()
	// Несуществующий каталог: открытие базы упало бы
	root.SetArgs([]string{"version", "--db", "/nonexistent/dir/tasks.db"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	require.NoError(t, app.Close())
	assert.Contains(t, out.String(), "tasktracker 1.2.3")
	assert.Contains(t, out.String(), "abc123")
}
