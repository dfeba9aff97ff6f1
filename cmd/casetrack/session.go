package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"casetrack/internal/command"
	"casetrack/internal/core"
	"casetrack/internal/sample"
	"casetrack/pkg/domain"
)

// session is one load, execute, save cycle against the configured store.
type session struct {
	store   core.PersistentStore
	manager *core.Manager
	metrics *core.PrometheusRecorder
	logger  *zap.Logger
	dirty   bool
}

func (a *app) openSession(ctx context.Context) (*session, error) {
	store, err := core.OpenPersistentStore(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	s := &session{
		store:   store,
		metrics: core.NewPrometheusRecorder(),
		logger:  a.logger.With(zap.String("driver", string(store.Driver()))),
	}
	var initial core.ReadOnlyAddressBook
	patients, err := store.Load(ctx)
	switch {
	case errors.Is(err, core.ErrNoData):
		if a.cfg.SeedSampleData {
			initial = sample.AddressBook()
			s.dirty = true
			s.logger.Info("no data found, starting with sample patients")
		} else {
			s.logger.Info("no data found, starting with an empty book")
		}
	case err != nil:
		_ = store.Close()
		return nil, fmt.Errorf("load address book: %w", err)
	default:
		initial = core.PatientList(patients)
	}
	s.manager, err = core.NewManager(initial, core.WithLogger(a.logger), core.WithMetrics(s.metrics))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load address book: %w", err)
	}
	s.logger.Debug("address book loaded", zap.Int("patients", s.manager.Len()))
	return s, nil
}

// execute runs c, writes its feedback to out and marks the session dirty when
// the book changed.
func (s *session) execute(c command.Command, out io.Writer) (command.Result, error) {
	res, err := c.Execute(s.manager)
	if err != nil {
		return res, err
	}
	s.dirty = s.dirty || res.Mutated
	fmt.Fprintln(out, res.Feedback)
	return res, nil
}

// close saves a dirty book, exports metrics and releases the store.
func (s *session) close(ctx context.Context, textfile string) error {
	var errs []error
	if s.dirty {
		if err := s.store.Save(ctx, s.manager.Patients()); err != nil {
			errs = append(errs, fmt.Errorf("save address book: %w", err))
		} else {
			s.logger.Debug("address book saved", zap.Int("patients", s.manager.Len()))
		}
	}
	if textfile != "" {
		if err := s.metrics.WriteTextfile(textfile); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	return errors.Join(errs...)
}

// run opens a session, executes c and closes the session.
func (a *app) run(ctx context.Context, out io.Writer, c command.Command) error {
	return a.withSession(ctx, func(s *session) error {
		_, err := s.execute(c, out)
		return err
	})
}

// withSession opens a session, hands it to fn and always closes it. A failing
// fn leaves the stored book untouched.
func (a *app) withSession(ctx context.Context, fn func(*session) error) error {
	s, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		s.dirty = false
		return errors.Join(err, s.close(ctx, a.cfg.Metrics.Textfile))
	}
	return s.close(ctx, a.cfg.Metrics.Textfile)
}

// printPatients writes each visible patient with its one-based position in all.
func printPatients(out io.Writer, all, visible []core.Patient) {
	positions := make(map[domain.Name]int, len(all))
	for i, p := range all {
		positions[p.Name()] = i + 1
	}
	for _, p := range visible {
		fmt.Fprintf(out, "%d. %s\n", positions[p.Name()], p)
	}
}
