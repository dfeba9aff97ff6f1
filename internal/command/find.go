package command

import (
	"fmt"

	"casetrack/internal/core"
	"casetrack/pkg/domain"
)

// Find shows patients matching every criterion given: a name containing any of
// Keywords as a whole word, a name containing Substring, and carrying Tag. Empty
// criteria are skipped; with none at all nothing matches.
type Find struct {
	Keywords  []string
	Substring string
	Tag       domain.Tag
}

// Predicate combines the criteria of c.
func (c Find) Predicate() domain.Predicate {
	var preds []domain.Predicate
	if len(c.Keywords) > 0 {
		preds = append(preds, domain.NameContainsKeywords(c.Keywords...))
	}
	if c.Substring != "" {
		preds = append(preds, domain.NameContains(c.Substring))
	}
	if !c.Tag.IsZero() {
		preds = append(preds, domain.HasTag(c.Tag))
	}
	if len(preds) == 0 {
		return domain.NameContainsKeywords()
	}
	return domain.And(preds...)
}

// Execute narrows the filtered list.
func (c Find) Execute(m *core.Manager) (Result, error) {
	m.UpdateFilteredPatients(c.Predicate())
	return listed(m), nil
}

// FindTag shows patients carrying Tag.
type FindTag struct {
	Tag domain.Tag
}

// Execute narrows the filtered list to patients carrying the tag.
func (c FindTag) Execute(m *core.Manager) (Result, error) {
	m.UpdateFilteredPatients(domain.HasTag(c.Tag))
	return listed(m), nil
}

// List shows every patient.
type List struct{}

// Execute clears the filter.
func (List) Execute(m *core.Manager) (Result, error) {
	m.UpdateFilteredPatients(nil)
	return Result{Feedback: MessageListSuccess}, nil
}

func listed(m *core.Manager) Result {
	return Result{Feedback: fmt.Sprintf(MessagePatientsListed, len(m.FilteredPatients()))}
}
