// Package catalog defines the question catalog for a reading: an ordered,
// immutable list of questions loaded once at startup. The flow and scoring
// layers treat the catalog as injected configuration; the only coupling is a
// handful of well-known question ids listed below.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// QuestionType discriminates the three answer widgets.
type QuestionType string

const (
	TypeChoice QuestionType = "choice"
	TypeText   QuestionType = "text"
	TypeScale  QuestionType = "scale"
)

// Scale questions always cover the same numeric domain.
const (
	ScaleMin = 1
	ScaleMax = 10

	// DefaultScaleValue is where the scale widget starts. A scale answer is
	// always submittable, so this is also the value submitted untouched.
	DefaultScaleValue = 5
)

// Well-known question ids. Scoring degrades gracefully when these are absent
// from a catalog, but a full-fidelity reading needs all five.
const (
	QuestionFirstMemory     = "first_memory"
	QuestionOneWord         = "one_word"
	QuestionUnsaid          = "unsaid"
	QuestionSilenceTogether = "silence_together"
	QuestionFinalTruth      = "final_truth"
)

// Option is one selectable answer of a choice question. HiddenValue is the
// opaque tag consumed by scoring; it is never shown to the respondent.
type Option struct {
	ID          string `yaml:"id"`
	Text        string `yaml:"text"`
	HiddenValue string `yaml:"hidden_value"`
}

// ScaleLabels captions the two ends of a scale question.
type ScaleLabels struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Question is a single catalog entry.
type Question struct {
	ID          string       `yaml:"id"`
	Type        QuestionType `yaml:"type"`
	Prompt      string       `yaml:"prompt"`
	Subtext     string       `yaml:"subtext,omitempty"`
	Options     []Option     `yaml:"options,omitempty"`
	ScaleLabels *ScaleLabels `yaml:"scale_labels,omitempty"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Catalog is an ordered question list. Immutable after load.
type Catalog struct {
	Questions []Question `yaml:"questions"`
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.Questions) }

// Question returns the question at index i.
func (c *Catalog) Question(i int) Question { return c.Questions[i] }

// ByID returns the question with the given id.
func (c *Catalog) ByID(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Validate checks structural invariants: at least one question, unique ids,
// known types, and well-formed options for choice questions.
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog has no questions")
	}
	seen := make(map[string]bool, len(c.Questions))
	for i, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("question %d: missing id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true
		if q.Prompt == "" {
			return fmt.Errorf("question %q: missing prompt", q.ID)
		}
		switch q.Type {
		case TypeChoice:
			if len(q.Options) < 2 {
				return fmt.Errorf("question %q: choice questions need at least 2 options", q.ID)
			}
			opts := make(map[string]bool, len(q.Options))
			for j, o := range q.Options {
				if o.ID == "" {
					return fmt.Errorf("question %q: option %d missing id", q.ID, j)
				}
				if opts[o.ID] {
					return fmt.Errorf("question %q: duplicate option id %q", q.ID, o.ID)
				}
				opts[o.ID] = true
				if o.Text == "" {
					return fmt.Errorf("question %q: option %q missing text", q.ID, o.ID)
				}
			}
		case TypeText, TypeScale:
			if len(q.Options) > 0 {
				return fmt.Errorf("question %q: %s questions cannot have options", q.ID, q.Type)
			}
		default:
			return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}
	}
	return nil
}

// Lint reports advisory findings that Validate does not treat as errors.
// Currently: the well-known ids the analysis keys on. Missing ids degrade a
// reading to default values but never break it.
func (c *Catalog) Lint() []string {
	var warnings []string
	contract := []struct{ id, want string }{
		{QuestionFirstMemory, string(TypeText)},
		{QuestionOneWord, string(TypeText)},
		{QuestionUnsaid, string(TypeText)},
		{QuestionSilenceTogether, string(TypeScale)},
		{QuestionFinalTruth, string(TypeScale)},
	}
	for _, c2 := range contract {
		q, ok := c.ByID(c2.id)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("question %q is missing; the analysis will use default values for it", c2.id))
			continue
		}
		if string(q.Type) != c2.want {
			warnings = append(warnings, fmt.Sprintf("question %q should have type %q, got %q", c2.id, c2.want, q.Type))
		}
	}
	return warnings
}

//go:embed questions.yaml
var defaultCatalogYAML []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded twelve-question catalog. The embedded data is
// validated at first use; a malformed embed is a build defect, so this panics
// rather than returning an error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}
