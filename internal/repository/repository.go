package repository

// Package repository contains data access abstractions for the clinic records.
// The flat-file implementation lives in the flatfile subpackage.

import (
	"context"
	"io"

	"clinicrecords/internal/model"
)

// Repository is the CRUD contract shared by every entity store.
// No business logic here; callers render whatever comes back.
type Repository[T model.Record] interface {
	// List returns every record in file order.
	List(ctx context.Context) ([]T, error)

	// Get returns the first record with the given id, or ErrNotFound.
	Get(ctx context.Context, id int) (*T, error)

	// Add validates and appends a new record. Returns ErrDuplicateID if the id is taken.
	Add(ctx context.Context, rec T) error

	// Update validates and replaces the record with the same id. Returns ErrNotFound if absent.
	Update(ctx context.Context, rec T) error

	// Delete removes the record with the given id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int) error

	// ReplaceAll rewrites the store with exactly recs.
	ReplaceAll(ctx context.Context, recs []T) error
}

// MatchMode selects how a name search pattern is interpreted.
type MatchMode int

const (
	// MatchLiteral treats the pattern as plain text.
	MatchLiteral MatchMode = iota
	// MatchRegex compiles the pattern as a regular expression, unescaped.
	MatchRegex
)

type PatientRepository interface {
	Repository[model.Patient]

	// FindByName returns patients whose name contains pattern, ignoring case.
	FindByName(ctx context.Context, pattern string, mode MatchMode) ([]model.Patient, error)
}

type DoctorRepository interface {
	Repository[model.Doctor]
}

type AppointmentRepository interface {
	Repository[model.Appointment]

	// FindByDatePrefix returns appointments whose minute-resolution timestamp starts with prefix.
	// A blank prefix returns every appointment, including those without a timestamp.
	FindByDatePrefix(ctx context.Context, prefix string) ([]model.Appointment, error)
}

type EquipmentRepository interface {
	Repository[model.Equipment]
}

type InventoryRepository interface {
	Repository[model.InventoryItem]
}

// Archivable is a store whose raw backing file can be snapshotted and restored.
type Archivable interface {
	// Entity names the store, e.g. "patient".
	Entity() string
	Snapshot(ctx context.Context) ([]byte, error)
	// Restore replaces the stored content; it must decode cleanly first.
	Restore(ctx context.Context, r io.Reader) error
}
