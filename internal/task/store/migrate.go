package store

import (
	"sort"
	"time"

	"eisenhower-task-management/internal/model"
)

// migrateTask normalizes a stored record. Records missing any required
// field (id, text, quadrant) are rejected whole, never defaulted.
func migrateTask(t model.Task) (model.Task, error) {
	if err := model.ValidateStruct(t); err != nil {
		return model.Task{}, err
	}

	now := time.Now()
	if t.Status == "" {
		t.Status = model.StatusActive
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	if t.Status != model.StatusCompleted {
		t.CompletedAt = nil
	} else if t.CompletedAt == nil {
		ts := t.UpdatedAt
		t.CompletedAt = &ts
	}

	return t, nil
}

// sortTasks orders tasks by quadrant then by order key.
func sortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Quadrant != tasks[j].Quadrant {
			return tasks[i].Quadrant < tasks[j].Quadrant
		}
		return tasks[i].Order < tasks[j].Order
	})
}
