package mocks

import (
	"context"
	"io"

	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock for the generic CRUD contract.
type MockRepository[T model.Record] struct {
	mock.Mock
}

func (m *MockRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Get(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Add(ctx context.Context, rec T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, rec T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository[T]) ReplaceAll(ctx context.Context, recs []T) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}

type MockPatientRepository struct {
	MockRepository[model.Patient]
}

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

func (m *MockPatientRepository) FindByName(ctx context.Context, pattern string, mode repository.MatchMode) ([]model.Patient, error) {
	args := m.Called(ctx, pattern, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

type MockAppointmentRepository struct {
	MockRepository[model.Appointment]
}

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

func (m *MockAppointmentRepository) FindByDatePrefix(ctx context.Context, prefix string) ([]model.Appointment, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

type (
	MockDoctorRepository    = MockRepository[model.Doctor]
	MockEquipmentRepository = MockRepository[model.Equipment]
	MockInventoryRepository = MockRepository[model.InventoryItem]
)

// MockArchivable is a testify mock for a snapshot-capable store.
type MockArchivable struct {
	mock.Mock
}

func (m *MockArchivable) Entity() string {
	return m.Called().String(0)
}

func (m *MockArchivable) Snapshot(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Restore drains r so expectations can match on the restored content.
func (m *MockArchivable) Restore(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	args := m.Called(ctx, string(data))
	return args.Error(0)
}
