package question

// Kind identifies how a question is asked and answered.
type Kind string

// Question kinds supported by the wizard.
const (
	FreeText       Kind = "free_text"
	MultipleChoice Kind = "multiple_choice"
	Boolean        Kind = "boolean"
)

// Catalog defines the ordered question sequence loaded from JSON or YAML.
type Catalog struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question represents a single wizard question keyed to a profile field.
type Question struct {
	Key     string   `json:"key" yaml:"key"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Kind    Kind     `json:"kind" yaml:"kind"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

var booleanChoices = []string{"Yes", "No"}

// Choices returns the selectable rows for a question: the configured options
// for MultipleChoice, the fixed Yes/No pair for Boolean, nil for FreeText.
func (q Question) Choices() []string {
	switch q.Kind {
	case MultipleChoice:
		return q.Options
	case Boolean:
		return booleanChoices
	default:
		return nil
	}
}
