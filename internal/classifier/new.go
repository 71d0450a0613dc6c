package classifier

import (
	"context"

	"eisenhower-task-management/pkg/log"
)

// Classifier decides which quadrant a task belongs to, or whether the text
// is really an idea. Implementations never return an error: failures degrade
// to a fallback result that leaves the task where it is.
type Classifier interface {
	Classify(ctx context.Context, input Input) Result
}

// LLM is the text-generation transport the classifier runs on.
type LLM interface {
	GenerateText(ctx context.Context, prompt string, temperature float64) (string, error)
}

// GeminiClassifier classifies tasks using an LLM.
type GeminiClassifier struct {
	llm LLM
	l   log.Logger
}

var _ Classifier = (*GeminiClassifier)(nil)

// New creates a new GeminiClassifier.
func New(llm LLM, l log.Logger) *GeminiClassifier {
	return &GeminiClassifier{
		llm: llm,
		l:   l,
	}
}
