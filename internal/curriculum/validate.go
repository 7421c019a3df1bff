package curriculum

import (
	"errors"
	"fmt"
	"strings"
)

// validateUnits performs the structural checks on a unit list.
// Returns a combined error describing every problem found, or nil.
func validateUnits(units []Unit) error {
	var errs []string

	seen := make(map[int]bool, len(units))
	lastOrder := 0
	for _, u := range units {
		if u.Order != 0 {
			if u.Order <= lastOrder {
				errs = append(errs, fmt.Sprintf("unit %d has order %d, want more than %d to follow the unit IDs", u.ID, u.Order, lastOrder))
			}
			lastOrder = u.Order
		}
		if u.ID <= 0 {
			errs = append(errs, fmt.Sprintf("unit %q has non-positive ID %d", u.Title, u.ID))
		}
		if seen[u.ID] {
			errs = append(errs, fmt.Sprintf("duplicate unit ID: %d", u.ID))
		}
		seen[u.ID] = true

		errs = append(errs, validateVocab(u)...)
		errs = append(errs, validateQuestions(u.ID, "listening", u.Listening.Questions)...)
		if u.Grammar != nil {
			errs = append(errs, validateQuestions(u.ID, "grammar", u.Grammar.Questions)...)
		}
		if u.Pronunciation != nil {
			for i, w := range u.Pronunciation.Words {
				if w.Stress < 0 || w.Stress >= len(w.Syllables) {
					errs = append(errs, fmt.Sprintf("unit %d pronunciation word %d (%q): stress %d out of range [0,%d)",
						u.ID, i, w.Word, w.Stress, len(w.Syllables)))
				}
			}
		}
		for i, s := range u.Speaking {
			if strings.TrimSpace(s.Sentence) == "" {
				errs = append(errs, fmt.Sprintf("unit %d speaking challenge %d has no sentence", u.ID, i))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New("curriculum validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}

func validateVocab(u Unit) []string {
	var errs []string
	ids := make(map[string]bool, len(u.Vocab))
	for _, v := range u.Vocab {
		if ids[v.ID] {
			errs = append(errs, fmt.Sprintf("unit %d: duplicate vocab ID %q", u.ID, v.ID))
		}
		ids[v.ID] = true
		if v.Word == "" {
			errs = append(errs, fmt.Sprintf("unit %d: vocab %q has no word", u.ID, v.ID))
		}
	}
	return errs
}

func validateQuestions(unitID int, kind string, qs []Question) []string {
	var errs []string
	for i, q := range qs {
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("unit %d %s question %d has no options", unitID, kind, i))
			continue
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("unit %d %s question %d: correct index %d out of range [0,%d)",
				unitID, kind, i, q.Correct, len(q.Options)))
		}
	}
	return errs
}
