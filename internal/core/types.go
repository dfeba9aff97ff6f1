package core

import "casetrack/pkg/domain"

type (
	Patient         = domain.Patient
	Details         = domain.Details
	Predicate       = domain.Predicate
	PersistentStore = domain.PersistentStore
	StorageDriver   = domain.StorageDriver
)

const (
	StorageMemory = domain.StorageMemory
	StorageJSON   = domain.StorageJSON
	StorageSQLite = domain.StorageSQLite
)

var (
	ErrNoData              = domain.ErrNoData
	ErrDuplicatePatient    = domain.ErrDuplicatePatient
	ErrPatientNotFound     = domain.ErrPatientNotFound
	ErrNoteIndexOutOfRange = domain.ErrNoteIndexOutOfRange
)
