package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/models"
)

// listTasksHandler handles GET /api/tasks. Optional query params: status,
// limit, offset.
func (s *Server) listTasksHandler(c *echo.Context) error {
	status := c.QueryParam("status")
	if status != "" {
		if err := pipelinetask.StatusValidator(pipelinetask.Status(status)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+status)
		}
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	tasks, total, err := s.tasks.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &TaskListResponse{Tasks: make([]models.TaskSummary, 0, len(tasks)), Total: total}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, s.taskSummary(c, task))
	}
	return c.JSON(http.StatusOK, resp)
}

// cancelTaskHandler handles POST /api/tasks/:id/cancel. Flips the row to
// cancelled and interrupts the local worker if one is executing it; workers
// on other processes observe the row at their next checkpoint.
func (s *Server) cancelTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := s.tasks.Cancel(c.Request().Context(), taskID); err != nil {
		return mapServiceError(err)
	}
	if s.workerPool != nil {
		s.workerPool.CancelTask(taskID)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		TaskID:  taskID,
		Message: "Task cancellation requested",
	})
}

// taskSummary converts a task row to its public view, attaching the latest
// progress snapshot when one exists.
func (s *Server) taskSummary(c *echo.Context, task *ent.PipelineTask) models.TaskSummary {
	summary := models.TaskSummary{
		ID:        task.ID,
		Type:      string(task.Type),
		Status:    string(task.Status),
		Priority:  task.Priority,
		Attempt:   task.Attempt,
		CreatedAt: task.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: task.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if task.DonationID != nil {
		summary.DonationID = *task.DonationID
	}
	if task.Subreddit != nil {
		summary.Subreddit = *task.Subreddit
	}
	if task.PostID != nil {
		summary.PostID = *task.PostID
	}
	if task.ErrorMessage != nil {
		summary.ErrorMessage = *task.ErrorMessage
	}
	if task.ImageURL != nil {
		summary.ImageURL = *task.ImageURL
	}

	if s.broker != nil {
		if progress, err := s.broker.Snapshot(c.Request().Context(), task.ID); err == nil && progress != nil {
			summary.Stage = progress.Stage
			summary.Progress = progress.Percent
		}
	}
	return summary
}
