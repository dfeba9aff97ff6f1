// Package backup archives address book snapshots in a blob store and restores
// them through the Manager.
package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casetrack/internal/blob"
	"casetrack/internal/core"
	"casetrack/internal/infra/persistence/codec"
)

const (
	keySuffix     = ".json"
	contentType   = "application/json"
	metaPatients  = "patients"
	timestampForm = "20060102T150405.000000000Z"
)

// ErrNotFound is returned when a backup key does not exist.
var ErrNotFound = errors.New("backup not found")

// Entry describes an archived snapshot.
type Entry struct {
	Key       string
	Patients  int
	Size      int64
	CreatedAt time.Time
}

// Service writes and reads snapshots.
type Service struct {
	store  blob.Store
	logger *zap.Logger
	nowFn  func() time.Time
	newID  func() string
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used to name backups.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// New returns a Service over store.
func New(store blob.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: zap.NewNop(),
		nowFn:  func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create archives the patients of book under a new key of the form
// <UTC timestamp>-<uuid>.json at the root of the store.
func (s *Service) Create(ctx context.Context, book core.ReadOnlyAddressBook) (Entry, error) {
	if book == nil {
		return Entry{}, core.ErrNilSnapshot
	}
	patients := book.Patients()
	data, err := codec.Marshal(patients)
	if err != nil {
		return Entry{}, err
	}
	created := s.nowFn().UTC()
	key := created.Format(timestampForm) + "-" + s.newID() + keySuffix
	info, err := s.store.Put(ctx, key, bytes.NewReader(data), blob.PutOptions{
		ContentType: contentType,
		Metadata:    map[string]string{metaPatients: strconv.Itoa(len(patients))},
	})
	if err != nil {
		return Entry{}, fmt.Errorf("write backup: %w", err)
	}
	s.logger.Info("backup created", zap.String("key", info.Key), zap.Int("patients", len(patients)))
	return Entry{Key: info.Key, Patients: len(patients), Size: info.Size, CreatedAt: created}, nil
}

// List returns every backup, newest first.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	infos, err := s.store.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if strings.HasSuffix(info.Key, keySuffix) {
			entries = append(entries, entryFromInfo(info))
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Key > entries[j].Key })
	return entries, nil
}

// Load reads and validates the backup at key.
func (s *Service) Load(ctx context.Context, key string) ([]core.Patient, error) {
	_, rc, err := s.store.Get(ctx, key)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", key, err)
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", key, err)
	}
	patients, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("backup %s: %w", key, err)
	}
	return patients, nil
}

// Restore replaces the manager's book with the backup at key. The book is left
// untouched when the backup cannot be read or validated.
func (s *Service) Restore(ctx context.Context, key string, m *core.Manager) (Entry, error) {
	patients, err := s.Load(ctx, key)
	if err != nil {
		return Entry{}, err
	}
	if err := m.SetAddressBook(core.PatientList(patients)); err != nil {
		return Entry{}, err
	}
	s.logger.Info("backup restored", zap.String("key", key), zap.Int("patients", len(patients)))
	info, err := s.store.Head(ctx, key)
	if err != nil {
		return Entry{Key: key, Patients: len(patients)}, nil
	}
	return entryFromInfo(info), nil
}

// Delete removes the backup at key.
func (s *Service) Delete(ctx context.Context, key string) error {
	existed, err := s.store.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("delete backup %s: %w", key, err)
	}
	if !existed {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	s.logger.Info("backup deleted", zap.String("key", key))
	return nil
}

func entryFromInfo(info blob.Info) Entry {
	n, _ := strconv.Atoi(info.Metadata[metaPatients])
	return Entry{Key: info.Key, Patients: n, Size: info.Size, CreatedAt: info.LastModified}
}
