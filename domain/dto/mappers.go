package dto

import (
	"task-manager-api/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.UTC(),
		CreateDate:  task.CreateDate.UTC(),
		Status:      task.Status,
		Priority:    task.Priority,
		Category:    task.Category,
	}
}

// TasksToTaskResponses never returns nil so an empty page encodes as [].
func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		out = append(out, *TaskToTaskResponse(t))
	}
	return out
}

// ToTaskQuery maps the list request onto the repository query. Unknown sort
// text becomes SortNone.
func (r ListTasksRequest) ToTaskQuery() models.TaskQuery {
	return models.TaskQuery{
		Search: r.Search,
		Sort:   models.ParseTaskSortKey(r.Sort),
		Page:   r.Page,
		Limit:  r.Limit,
	}.Normalize()
}
