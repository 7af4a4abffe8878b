package handlers

import (
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/pkg/api"
)

func toTaskResponse(task *models.Task) api.TaskResponse {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		OccursAt:    task.OccursAt,
		Tags:        tags,
		Icon:        task.Icon,
		ColorHex:    task.ColorHex,
		Priority:    task.Priority,
	}
}

func toTaskList(list []*models.Task) []api.TaskResponse {
	out := make([]api.TaskResponse, 0, len(list))
	for _, task := range list {
		out = append(out, toTaskResponse(task))
	}
	return out
}

// fromTaskRequest собирает задачу из запроса, подставляя значения по умолчанию
func fromTaskRequest(req *api.TaskRequest) *models.Task {
	task := models.NewTask(req.Title, req.OccursAt)
	task.Description = req.Description
	task.Tags = models.NormalizeTags(req.Tags)
	if req.Icon != "" {
		task.Icon = req.Icon
	}
	if req.ColorHex != "" {
		task.ColorHex = req.ColorHex
	}
	if req.Priority != 0 {
		task.Priority = req.Priority
	}
	return task
}
