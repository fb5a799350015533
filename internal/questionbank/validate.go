package questionbank

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEmptyBank is returned when a bank has no questions.
var ErrEmptyBank = errors.New("question bank is empty")

// Validate performs all structural checks on the given questions.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyBank
	}

	var errs []string
	seen := make(map[string]int, len(questions))

	for i, q := range questions {
		prefix := fmt.Sprintf("question %d", i)

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: prompt is empty", prefix))
		} else if first, dup := seen[q.Prompt]; dup {
			errs = append(errs, fmt.Sprintf("%s: duplicate prompt (first seen at question %d): %q", prefix, first, q.Prompt))
		} else {
			seen[q.Prompt] = i
		}

		if strings.TrimSpace(q.CorrectAnswer) == "" {
			errs = append(errs, fmt.Sprintf("%s: correct answer is empty", prefix))
		}

		if len(q.Misdirectors) == 0 {
			errs = append(errs, fmt.Sprintf("%s: needs at least one misdirector", prefix))
		}
		for j, m := range q.Misdirectors {
			if strings.TrimSpace(m) == "" {
				errs = append(errs, fmt.Sprintf("%s: misdirector %d is empty", prefix, j))
			}
		}
		if slices.Contains(q.Misdirectors, q.CorrectAnswer) {
			errs = append(errs, fmt.Sprintf("%s: correct answer %q is listed as a misdirector", prefix, q.CorrectAnswer))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
