package core

import "casetrack/pkg/domain"

// FilteredView presents the patients of a source that satisfy a predicate. It
// holds no copy of the source; every read reflects the source's current contents.
type FilteredView struct {
	source ReadOnlyAddressBook
	pred   Predicate
}

// NewFilteredView returns a view over source that shows every patient.
func NewFilteredView(source ReadOnlyAddressBook) *FilteredView {
	return &FilteredView{source: source, pred: domain.ShowAll}
}

// SetPredicate replaces the filter. A nil predicate shows every patient.
func (v *FilteredView) SetPredicate(pred Predicate) {
	if pred == nil {
		pred = domain.ShowAll
	}
	v.pred = pred
}

// Predicate returns the active filter.
func (v *FilteredView) Predicate() Predicate { return v.pred }

// Visible returns the matching patients in source order.
func (v *FilteredView) Visible() []Patient {
	if v.source == nil {
		return nil
	}
	all := v.source.Patients()
	out := make([]Patient, 0, len(all))
	for _, p := range all {
		if v.pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of visible patients.
func (v *FilteredView) Len() int { return len(v.Visible()) }

// At returns the visible patient at the zero-based index i.
func (v *FilteredView) At(i int) (Patient, bool) {
	visible := v.Visible()
	if i < 0 || i >= len(visible) {
		return Patient{}, false
	}
	return visible[i], true
}
