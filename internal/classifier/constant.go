package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// IdeaMarker is the user-supplied prefix that marks task text as an idea.
const IdeaMarker = "idea:"

// Generation settings
const (
	ClassifyTemperature = 0.1
)

// Score bounds
const (
	ScoreMin     = 1
	ScoreMax     = 10
	ScoreDefault = 5
)

// Fallback reasons
const (
	ReasonServiceError = "Classification unavailable, task kept in its current quadrant"
	ReasonParsingError = "Classification response could not be parsed, task kept in its current quadrant"
)

// PromptClassifySystem asks the model for a strict-JSON quadrant classification.
const PromptClassifySystem = `You are an Eisenhower Matrix assistant. Classify the task below into one of the four quadrants:
- q1: urgent and important
- q2: not urgent but important
- q3: urgent but not important
- q4: neither urgent nor important

Task: %q
Current quadrant: %q
%s
Return ONLY a JSON object, no markdown, no prose:
{
  "isIdea": false,
  "suggestedQuadrant": "q1|q2|q3|q4",
  "taskType": "personal|work",
  "reasoning": "one short sentence",
  "alignmentScore": 1-10,
  "urgencyScore": 1-10,
  "importanceScore": 1-10
}
alignmentScore measures how well the task supports the user's stated goal and priority.`

// PromptIdeaSystem is the narrow prompt used when the text carries the idea
// marker: only priority-relevance is assessed.
const PromptIdeaSystem = `The user captured an idea, not a task. Idea: %q
%s
Assess only whether the idea is connected to the user's stated priority.
Return ONLY a JSON object, no markdown, no prose:
{
  "isIdea": true,
  "taskType": "idea",
  "connectedToPriority": true|false,
  "reasoning": "one short sentence"
}`
