package http

import (
	"time"

	"eisenhower-task-management/internal/idea"
	"eisenhower-task-management/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Text                string `json:"text"                  binding:"required,min=1,max=500"`
	TaskType            string `json:"task_type"             binding:"omitempty,oneof=personal work business idea"`
	ConnectedToPriority bool   `json:"connected_to_priority"`
}

func (r createReq) toInput() idea.CreateInput {
	return idea.CreateInput{
		Text:                r.Text,
		TaskType:            model.TaskType(r.TaskType),
		ConnectedToPriority: r.ConnectedToPriority,
	}
}

// ---

type updateReq struct {
	ID                  string  `json:"-"` // populated from URI param
	Text                *string `json:"text"                  binding:"omitempty,min=1,max=500"`
	ConnectedToPriority *bool   `json:"connected_to_priority" binding:"omitempty"`
}

func (r updateReq) toInput() idea.UpdateInput {
	return idea.UpdateInput{
		ID:                  r.ID,
		Text:                r.Text,
		ConnectedToPriority: r.ConnectedToPriority,
	}
}

// ---

type convertReq struct {
	ID       string `json:"-"` // populated from URI param
	Quadrant string `json:"quadrant" binding:"omitempty,oneof=q1 q2 q3 q4"`
}

func (r convertReq) toInput() idea.ConvertInput {
	return idea.ConvertInput{
		ID:       r.ID,
		Quadrant: model.Quadrant(r.Quadrant),
	}
}

// --- Response DTOs ---

type ideaResp struct {
	ID                  string    `json:"id"`
	Text                string    `json:"text"`
	TaskType            string    `json:"task_type,omitempty"`
	ConnectedToPriority bool      `json:"connected_to_priority"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func newIdeaResp(i model.Idea) ideaResp {
	return ideaResp{
		ID:                  i.ID,
		Text:                i.Text,
		TaskType:            string(i.TaskType),
		ConnectedToPriority: i.ConnectedToPriority,
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
}

type createResp struct {
	Idea ideaResp `json:"idea"`
}

func (h *handler) newCreateResp(out idea.CreateOutput) createResp {
	return createResp{Idea: newIdeaResp(out.Idea)}
}

type listResp struct {
	Ideas []ideaResp `json:"ideas"`
}

func (h *handler) newListResp(out idea.ListOutput) listResp {
	ideas := make([]ideaResp, 0, len(out.Ideas))
	for _, i := range out.Ideas {
		ideas = append(ideas, newIdeaResp(i))
	}
	return listResp{Ideas: ideas}
}

type updateResp struct {
	Idea ideaResp `json:"idea"`
}

func (h *handler) newUpdateResp(out idea.UpdateOutput) updateResp {
	return updateResp{Idea: newIdeaResp(out.Idea)}
}

// convertResp returns the task the idea became; its shape mirrors the task
// domain's response so the client can insert it straight into the matrix.
type convertResp struct {
	Task model.Task `json:"task"`
}

func (h *handler) newConvertResp(out idea.ConvertOutput) convertResp {
	return convertResp{Task: out.Task}
}
