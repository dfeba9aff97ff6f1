package core

import (
	"time"

	"go.uber.org/zap"
)

// Manager owns the address book and the filtered view shown to users. It logs
// and records metrics for every mutation.
type Manager struct {
	book    *AddressBook
	view    *FilteredView
	logger  *zap.Logger
	metrics MetricsRecorder
}

// Option customises a Manager.
type Option func(*Manager)

// WithLogger sets the logger. A nil logger is replaced with a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(recorder MetricsRecorder) Option {
	return func(m *Manager) {
		if recorder != nil {
			m.metrics = recorder
		}
	}
}

// NewManager builds a Manager holding a copy of initial. A nil initial book
// starts empty.
func NewManager(initial ReadOnlyAddressBook, opts ...Option) (*Manager, error) {
	m := &Manager{
		book:    NewAddressBook(),
		logger:  zap.NewNop(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if initial != nil {
		if err := m.book.ResetData(initial); err != nil {
			return nil, err
		}
	}
	m.view = NewFilteredView(m.book)
	m.metrics.SetPatientCount(m.book.Len())
	return m, nil
}

// AddressBook returns a detached copy of the current book.
func (m *Manager) AddressBook() *AddressBook {
	return &AddressBook{patients: m.book.Patients()}
}

// Patients returns every patient in order, ignoring the filter.
func (m *Manager) Patients() []Patient { return m.book.Patients() }

// Len returns the number of patients in the book.
func (m *Manager) Len() int { return m.book.Len() }

// SetAddressBook replaces the book contents with those of src.
func (m *Manager) SetAddressBook(src ReadOnlyAddressBook) error {
	start := time.Now()
	err := m.book.ResetData(src)
	m.observe("reset", start, err, zap.Int("patients", m.book.Len()))
	return err
}

// HasPatient reports whether a patient with the same identity as p exists.
func (m *Manager) HasPatient(p Patient) bool { return m.book.HasPatient(p) }

// AddPatient adds p and resets the filter so the new patient is visible.
func (m *Manager) AddPatient(p Patient) error {
	start := time.Now()
	err := m.book.AddPatient(p)
	if err == nil {
		m.view.SetPredicate(nil)
	}
	m.observe("add", start, err, zap.String("patient", p.Name().String()))
	return err
}

// DeletePatient removes the patient equal to p.
func (m *Manager) DeletePatient(p Patient) error {
	start := time.Now()
	err := m.book.RemovePatient(p)
	m.observe("delete", start, err, zap.String("patient", p.Name().String()))
	return err
}

// SetPatient replaces target with edited.
func (m *Manager) SetPatient(target, edited Patient) error {
	start := time.Now()
	err := m.book.SetPatient(target, edited)
	m.observe("update", start, err,
		zap.String("patient", target.Name().String()),
		zap.String("edited", edited.Name().String()))
	return err
}

// FilteredPatients returns the patients matching the active filter.
func (m *Manager) FilteredPatients() []Patient { return m.view.Visible() }

// FilteredPatient returns the patient at the zero-based position i of the
// filtered list.
func (m *Manager) FilteredPatient(i int) (Patient, bool) { return m.view.At(i) }

// UpdateFilteredPatients replaces the active filter. Nil shows every patient.
func (m *Manager) UpdateFilteredPatients(pred Predicate) {
	m.view.SetPredicate(pred)
	m.logger.Debug("filter updated", zap.Int("visible", m.view.Len()))
}

// Subscribe registers fn for changes committed to the book.
func (m *Manager) Subscribe(fn func(Change)) (cancel func()) {
	return m.book.Subscribe(fn)
}

func (m *Manager) observe(op string, start time.Time, err error, fields ...zap.Field) {
	m.metrics.Observe(op, err == nil, time.Since(start))
	if err != nil {
		m.logger.Warn("address book "+op+" failed", append(fields, zap.Error(err))...)
		return
	}
	m.metrics.SetPatientCount(m.book.Len())
	m.logger.Debug("address book "+op, append(fields, zap.Int("total", m.book.Len()))...)
}
