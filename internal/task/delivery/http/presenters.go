package http

import (
	"time"

	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Text        string `json:"text"        binding:"required,min=1,max=500"`
	Quadrant    string `json:"quadrant"    binding:"required,oneof=q1 q2 q3 q4"`
	TaskType    string `json:"task_type"   binding:"omitempty,oneof=personal work business"`
	Description string `json:"description" binding:"max=2000"`
	DueDate     string `json:"due_date"    binding:"omitempty"`
	GoalID      string `json:"goal_id"     binding:"omitempty"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Text:        r.Text,
		Quadrant:    model.Quadrant(r.Quadrant),
		TaskType:    model.TaskType(r.TaskType),
		Description: r.Description,
		DueDate:     r.DueDate,
		GoalID:      r.GoalID,
	}
}

// ---

type createWithAIReq struct {
	Text         string `json:"text"          binding:"required,min=1,max=500"`
	UserGoal     string `json:"user_goal"     binding:"max=500"`
	UserPriority string `json:"user_priority" binding:"max=500"`
}

func (r createWithAIReq) toInput() task.CreateWithAIInput {
	return task.CreateWithAIInput{
		Text:         r.Text,
		UserGoal:     r.UserGoal,
		UserPriority: r.UserPriority,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Text        *string `json:"text"        binding:"omitempty,min=1,max=500"`
	Quadrant    *string `json:"quadrant"    binding:"omitempty,oneof=q1 q2 q3 q4"`
	TaskType    *string `json:"task_type"   binding:"omitempty,oneof=personal work business"`
	Status      *string `json:"status"      binding:"omitempty,oneof=active completed"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	DueDate     *string `json:"due_date"    binding:"omitempty"`
	GoalID      *string `json:"goal_id"     binding:"omitempty"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Text:        r.Text,
		Description: r.Description,
		DueDate:     r.DueDate,
		GoalID:      r.GoalID,
	}
	if r.Quadrant != nil {
		q := model.Quadrant(*r.Quadrant)
		in.Quadrant = &q
	}
	if r.TaskType != nil {
		tt := model.TaskType(*r.TaskType)
		in.TaskType = &tt
	}
	if r.Status != nil {
		st := model.TaskStatus(*r.Status)
		in.Status = &st
	}
	return in
}

// ---

type reorderReq struct {
	Quadrant         string `json:"quadrant"          binding:"required,oneof=q1 q2 q3 q4"`
	SourceIndex      int    `json:"source_index"      binding:"min=0"`
	DestinationIndex int    `json:"destination_index" binding:"min=0"`
}

func (r reorderReq) toInput() task.ReorderInput {
	return task.ReorderInput{
		Quadrant:         model.Quadrant(r.Quadrant),
		SourceIndex:      r.SourceIndex,
		DestinationIndex: r.DestinationIndex,
	}
}

// ---

type reflectionReq struct {
	TaskID        string `json:"-"` // populated from URI param
	Justification string `json:"justification"  binding:"required,min=1,max=2000"`
	FinalQuadrant string `json:"final_quadrant" binding:"omitempty,oneof=q1 q2 q3 q4"`
	UserGoal      string `json:"user_goal"      binding:"max=500"`
	UserPriority  string `json:"user_priority"  binding:"max=500"`
}

func (r reflectionReq) toInput() task.ReflectionInput {
	return task.ReflectionInput{
		TaskID:        r.TaskID,
		Justification: r.Justification,
		FinalQuadrant: model.Quadrant(r.FinalQuadrant),
		UserGoal:      r.UserGoal,
		UserPriority:  r.UserPriority,
	}
}

// --- Response DTOs ---

type reflectionResp struct {
	Justification     string    `json:"justification"`
	SuggestedQuadrant string    `json:"suggested_quadrant"`
	FinalQuadrant     string    `json:"final_quadrant"`
	ReflectedAt       time.Time `json:"reflected_at"`
}

type taskResp struct {
	ID              string          `json:"id"`
	Text            string          `json:"text"`
	Quadrant        string          `json:"quadrant"`
	TaskType        string          `json:"task_type,omitempty"`
	Status          string          `json:"status"`
	NeedsReflection bool            `json:"needs_reflection"`
	Order           int             `json:"order"`
	Description     string          `json:"description,omitempty"`
	DueDate         string          `json:"due_date,omitempty"`
	GoalID          string          `json:"goal_id,omitempty"`
	Reflection      *reflectionResp `json:"reflection,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Text:            t.Text,
		Quadrant:        string(t.Quadrant),
		TaskType:        string(t.TaskType),
		Status:          string(t.Status),
		NeedsReflection: t.NeedsReflection,
		Order:           t.Order,
		Description:     t.Description,
		DueDate:         t.DueDate,
		GoalID:          t.GoalID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		CompletedAt:     t.CompletedAt,
	}
	if t.Reflection != nil {
		resp.Reflection = &reflectionResp{
			Justification:     t.Reflection.Justification,
			SuggestedQuadrant: string(t.Reflection.SuggestedQuadrant),
			FinalQuadrant:     string(t.Reflection.FinalQuadrant),
			ReflectedAt:       t.Reflection.ReflectedAt,
		}
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks               []taskResp `json:"tasks"`
	PersistenceDegraded bool       `json:"persistence_degraded"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{
		Tasks:               tasks,
		PersistenceDegraded: out.PersistenceDegraded,
	}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
