package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"eisenhower-task-management/internal/classifier"
	"eisenhower-task-management/internal/event"
	ideastore "eisenhower-task-management/internal/idea/store"
	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/session"
	"eisenhower-task-management/internal/task"
	"eisenhower-task-management/internal/task/store"
)

// CreateWithAI inserts the task into the default quadrant and returns it
// right away. Classification runs as a continuation: when it lands, the task
// is either moved to the suggested quadrant or diverted to the Ideas Bank.
// The caller never waits on the model.
func (uc *implUseCase) CreateWithAI(ctx context.Context, sc model.Scope, input task.CreateWithAIInput) (task.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateOutput{}, task.ErrEmptyText
	}

	st := uc.sessions.Get(ctx, sc.UserID)
	created, err := st.Tasks.Add(ctx, store.AddOptions{
		Text:     text,
		Quadrant: model.DefaultQuadrant,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.CreateWithAI: %v", err)
		return task.CreateOutput{}, err
	}

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		// The request context dies with the response; the continuation gets
		// its own deadline.
		cctx, cancel := context.WithTimeout(context.Background(), classifyTimeout)
		defer cancel()
		uc.classifyCreated(cctx, sc, st, created, input)
	}()

	return task.CreateOutput{Task: created}, nil
}

// classifyCreated applies a classification outcome to a provisionally placed
// task. The task may have been edited or deleted while the model was
// thinking, so only classification-owned fields are patched, and only after
// a fresh existence check.
func (uc *implUseCase) classifyCreated(ctx context.Context, sc model.Scope, st *session.Stores, created model.Task, input task.CreateWithAIInput) {
	result := uc.classifier.Classify(ctx, classifier.Input{
		TaskText:        created.Text,
		UserGoal:        input.UserGoal,
		UserPriority:    input.UserPriority,
		CurrentQuadrant: created.Quadrant,
	})

	if result.IsIdea {
		if _, err := st.Tasks.Get(ctx, created.ID); err != nil {
			return // user deleted it first; nothing to divert
		}
		_, err := st.Ideas.Add(ctx, ideastore.AddOptions{
			Text:                classifier.StripIdeaMarker(created.Text),
			TaskType:            model.TaskTypeIdea,
			ConnectedToPriority: result.ConnectedToPriority,
		})
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.classifyCreated: diverting to ideas: %v", err)
			return
		}
		if err := st.Tasks.Delete(ctx, created.ID); err != nil && !errors.Is(err, task.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "task.usecase.classifyCreated: removing diverted task: %v", err)
		}
		uc.bus.Publish(event.Event{Type: event.TypeMovedToIdeas, UserID: sc.UserID, TaskID: created.ID})
		return
	}

	if _, err := st.Tasks.Get(ctx, created.ID); err != nil {
		return
	}

	if !result.Fallback {
		needsReflection := result.SuggestedQuadrant == model.QuadrantQ3 ||
			result.SuggestedQuadrant == model.QuadrantQ4
		_, err := st.Tasks.Update(ctx, created.ID, store.Patch{
			Quadrant:        &result.SuggestedQuadrant,
			TaskType:        &result.TaskType,
			NeedsReflection: &needsReflection,
		})
		if err != nil && !errors.Is(err, task.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "task.usecase.classifyCreated: applying classification: %v", err)
		}
	}

	st.Reasoning.Append(ctx, model.ReasoningEntry{
		TaskID:            created.ID,
		SuggestedQuadrant: result.SuggestedQuadrant,
		TaskType:          result.TaskType,
		Reasoning:         result.Reasoning,
		AlignmentScore:    result.AlignmentScore,
		UrgencyScore:      result.UrgencyScore,
		ImportanceScore:   result.ImportanceScore,
		Timestamp:         time.Now(),
	})
}

// SubmitReflection records the user's justification for a q3/q4 placement
// and re-derives the quadrant. An explicit FinalQuadrant wins over the
// AI suggestion.
func (uc *implUseCase) SubmitReflection(ctx context.Context, sc model.Scope, input task.ReflectionInput) (task.UpdateOutput, error) {
	justification := strings.TrimSpace(input.Justification)
	if justification == "" {
		return task.UpdateOutput{}, task.ErrEmptyReflection
	}
	if input.FinalQuadrant != "" && !input.FinalQuadrant.Valid() {
		return task.UpdateOutput{}, task.ErrInvalidQuadrant
	}

	st := uc.sessions.Get(ctx, sc.UserID)
	current, err := st.Tasks.Get(ctx, input.TaskID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	result := uc.classifier.Classify(ctx, classifier.Input{
		TaskText:        current.Text,
		Justification:   justification,
		UserGoal:        input.UserGoal,
		UserPriority:    input.UserPriority,
		CurrentQuadrant: current.Quadrant,
	})

	final := input.FinalQuadrant
	if final == "" {
		final = result.SuggestedQuadrant
	}

	needsReflection := false
	updated, err := st.Tasks.Update(ctx, input.TaskID, store.Patch{
		Quadrant:        &final,
		NeedsReflection: &needsReflection,
		Reflection: &model.Reflection{
			Justification:     justification,
			SuggestedQuadrant: result.SuggestedQuadrant,
			FinalQuadrant:     final,
			ReflectedAt:       time.Now(),
		},
	})
	if err != nil {
		return task.UpdateOutput{}, err
	}

	st.Reasoning.Append(ctx, model.ReasoningEntry{
		TaskID:            updated.ID,
		SuggestedQuadrant: result.SuggestedQuadrant,
		TaskType:          updated.TaskType,
		Reasoning:         result.Reasoning,
		AlignmentScore:    result.AlignmentScore,
		UrgencyScore:      result.UrgencyScore,
		ImportanceScore:   result.ImportanceScore,
		Timestamp:         time.Now(),
	})

	return task.UpdateOutput{Task: updated}, nil
}
