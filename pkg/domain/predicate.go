package domain

import "strings"

// Predicate selects patients for a filtered view.
type Predicate func(Patient) bool

// ShowAll matches every patient.
func ShowAll(Patient) bool { return true }

// NameContainsKeywords matches patients whose name contains any keyword as a whole
// word, ignoring case. Blank keywords are ignored; with none left nothing matches.
func NameContainsKeywords(keywords ...string) Predicate {
	wanted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			wanted = append(wanted, k)
		}
	}
	return func(p Patient) bool {
		words := strings.Fields(p.name.String())
		for _, k := range wanted {
			for _, w := range words {
				if strings.EqualFold(w, k) {
					return true
				}
			}
		}
		return false
	}
}

// NameContains matches patients whose name contains substr, ignoring case.
func NameContains(substr string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(substr))
	return func(p Patient) bool {
		return needle != "" && strings.Contains(strings.ToLower(p.name.String()), needle)
	}
}

// HasTag matches patients carrying t.
func HasTag(t Tag) Predicate {
	return func(p Patient) bool { return p.HasTag(t) }
}

// And matches patients satisfying every predicate. Nil predicates are skipped.
func And(preds ...Predicate) Predicate {
	return func(p Patient) bool {
		for _, pred := range preds {
			if pred != nil && !pred(p) {
				return false
			}
		}
		return true
	}
}
