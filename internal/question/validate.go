package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question catalog.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question catalog validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeCatalog trims whitespace and validates a question catalog.
func NormalizeCatalog(catalog Catalog) (Catalog, error) {
	collector := &issueCollector{}
	if catalog.Version == 0 {
		collector.add("version", "is required")
	} else if catalog.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", catalog.Version))
	}
	if len(catalog.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenKeys := map[string]struct{}{}
	for i, q := range catalog.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q.Key = strings.TrimSpace(q.Key)
		if q.Key == "" {
			collector.add(prefix+".key", "is required")
		} else if _, exists := seenKeys[q.Key]; exists {
			collector.add(prefix+".key", fmt.Sprintf("duplicate key %q", q.Key))
		} else {
			seenKeys[q.Key] = struct{}{}
		}

		q.Prompt = strings.TrimSpace(q.Prompt)
		if q.Prompt == "" {
			collector.add(prefix+".prompt", "is required")
		}

		q.Kind = Kind(strings.ToLower(strings.TrimSpace(string(q.Kind))))
		switch q.Kind {
		case FreeText, Boolean:
			if len(q.Options) > 0 {
				collector.add(prefix+".options", fmt.Sprintf("not allowed for kind %q", q.Kind))
			}
			q.Options = nil
		case MultipleChoice:
			q.Options = normalizeStringSlice(q.Options)
			if len(q.Options) == 0 {
				collector.add(prefix+".options", "must include at least one entry")
			} else {
				seenOptions := map[string]struct{}{}
				for optionIndex, option := range q.Options {
					if option == "" {
						collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
						continue
					}
					if _, exists := seenOptions[option]; exists {
						collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), fmt.Sprintf("duplicate option %q", option))
					} else {
						seenOptions[option] = struct{}{}
					}
				}
			}
		case "":
			collector.add(prefix+".kind", "is required")
		default:
			collector.add(prefix+".kind", fmt.Sprintf("unknown kind %q", q.Kind))
		}
		catalog.Questions[i] = q
	}

	if err := collector.result(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
