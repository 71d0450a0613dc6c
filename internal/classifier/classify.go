package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"eisenhower-task-management/internal/model"
)

// Classify sends the task text and context to the LLM and returns a
// normalized result. Transport and parse failures are absorbed here: the
// caller always gets a usable Result.
func (c *GeminiClassifier) Classify(ctx context.Context, input Input) Result {
	if isIdeaText(input.TaskText) {
		return c.classifyIdea(ctx, input)
	}
	return c.classifyTask(ctx, input)
}

func (c *GeminiClassifier) classifyTask(ctx context.Context, input Input) Result {
	prompt := fmt.Sprintf(PromptClassifySystem, input.TaskText, string(input.CurrentQuadrant), userContext(input))

	text, err := c.llm.GenerateText(ctx, prompt, ClassifyTemperature)
	if err != nil {
		c.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixClassify, err)
		return c.fallback(input, ReasonServiceError)
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &raw); err != nil {
		c.l.Warnf(ctx, "%s: failed to parse LLM response %q: %v", LogPrefixClassify, text, err)
		return c.fallback(input, ReasonParsingError)
	}

	if raw.IsIdea {
		// The model may recognize an idea even without the marker.
		return Result{
			IsIdea:              true,
			TaskType:            model.TaskTypeIdea,
			ConnectedToPriority: raw.ConnectedToPriority,
			Reasoning:           raw.Reasoning,
		}
	}

	res := Result{
		SuggestedQuadrant: coerceQuadrant(raw.SuggestedQuadrant, input.CurrentQuadrant),
		TaskType:          coerceTaskType(raw.TaskType),
		Reasoning:         raw.Reasoning,
		AlignmentScore:    ClampScore(raw.AlignmentScore),
		UrgencyScore:      ClampScore(raw.UrgencyScore),
		ImportanceScore:   ClampScore(raw.ImportanceScore),
	}
	c.l.Infof(ctx, "%s: %q -> %s (%s)", LogPrefixClassify, input.TaskText, res.SuggestedQuadrant, res.TaskType)
	return res
}

func (c *GeminiClassifier) classifyIdea(ctx context.Context, input Input) Result {
	prompt := fmt.Sprintf(PromptIdeaSystem, strings.TrimSpace(input.TaskText), userContext(input))

	text, err := c.llm.GenerateText(ctx, prompt, ClassifyTemperature)
	if err != nil {
		c.l.Warnf(ctx, "%s: LLM call failed on idea path: %v", LogPrefixClassify, err)
		// The marker alone is authoritative: the text is still an idea.
		return Result{
			IsIdea:    true,
			TaskType:  model.TaskTypeIdea,
			Reasoning: ReasonServiceError,
			Fallback:  true,
		}
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &raw); err != nil {
		c.l.Warnf(ctx, "%s: failed to parse idea response %q: %v", LogPrefixClassify, text, err)
		return Result{
			IsIdea:    true,
			TaskType:  model.TaskTypeIdea,
			Reasoning: ReasonParsingError,
			Fallback:  true,
		}
	}

	return Result{
		IsIdea:              true,
		TaskType:            model.TaskTypeIdea,
		ConnectedToPriority: raw.ConnectedToPriority,
		Reasoning:           raw.Reasoning,
	}
}

// fallback builds the degraded classification: current quadrant, default
// type and scores.
func (c *GeminiClassifier) fallback(input Input, reason string) Result {
	return Result{
		SuggestedQuadrant: coerceQuadrant("", input.CurrentQuadrant),
		TaskType:          model.TaskTypePersonal,
		Reasoning:         reason,
		AlignmentScore:    ScoreDefault,
		UrgencyScore:      ScoreDefault,
		ImportanceScore:   ScoreDefault,
		Fallback:          true,
	}
}

// isIdeaText reports whether the text carries the explicit idea marker prefix.
func isIdeaText(text string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), IdeaMarker)
}

// StripIdeaMarker removes the idea marker prefix from text, if present.
func StripIdeaMarker(text string) string {
	trimmed := strings.TrimSpace(text)
	if !isIdeaText(trimmed) {
		return trimmed
	}
	return strings.TrimSpace(trimmed[len(IdeaMarker):])
}

func userContext(input Input) string {
	var sb strings.Builder
	if input.UserGoal != "" {
		sb.WriteString(fmt.Sprintf("User goal: %q\n", input.UserGoal))
	}
	if input.UserPriority != "" {
		sb.WriteString(fmt.Sprintf("User priority: %q\n", input.UserPriority))
	}
	if input.Justification != "" {
		sb.WriteString(fmt.Sprintf("User justification for current placement: %q\n", input.Justification))
	}
	return sb.String()
}

// ClampScore coerces a raw model score into [ScoreMin, ScoreMax].
// Missing, NaN or infinite values become ScoreDefault.
func ClampScore(v *float64) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return ScoreDefault
	}
	s := int(math.Round(*v))
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}
	return s
}

func coerceQuadrant(s string, current model.Quadrant) model.Quadrant {
	q := model.Quadrant(strings.ToLower(strings.TrimSpace(s)))
	if q.Valid() {
		return q
	}
	if current.Valid() {
		return current
	}
	return model.DefaultQuadrant
}

func coerceTaskType(s string) model.TaskType {
	switch model.TaskType(strings.ToLower(strings.TrimSpace(s))) {
	case model.TaskTypeWork:
		return model.TaskTypeWork
	case model.TaskTypePersonal:
		return model.TaskTypePersonal
	}
	return model.TaskTypePersonal
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
