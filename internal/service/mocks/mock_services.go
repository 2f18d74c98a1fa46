package mocks

import (
	"context"
	"time"

	"clinicrecords/internal/model"
	"clinicrecords/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) Book(ctx context.Context, a model.Appointment) (*model.Appointment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentService) Reschedule(ctx context.Context, a model.Appointment) (*model.Appointment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) AdjustEquipment(ctx context.Context, id, delta int) (*model.Equipment, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Equipment), args.Error(1)
}

func (m *MockStockService) AdjustInventory(ctx context.Context, id, delta int) (*model.InventoryItem, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InventoryItem), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Patients(ctx context.Context, q service.PatientQuery) ([]model.Patient, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockReportService) DoctorsBySpecialty(ctx context.Context) ([]model.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockReportService) AppointmentsBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockReportService) AppointmentsPerDoctor(ctx context.Context) ([]service.DoctorLoad, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DoctorLoad), args.Error(1)
}

func (m *MockReportService) Inventory(ctx context.Context, lowStock int) (*service.InventoryReport, error) {
	args := m.Called(ctx, lowStock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InventoryReport), args.Error(1)
}

func (m *MockReportService) Equipment(ctx context.Context) (*service.EquipmentReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EquipmentReport), args.Error(1)
}

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) Snapshot(ctx context.Context) (*service.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Snapshot), args.Error(1)
}

func (m *MockBackupService) Restore(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackupService) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBackupService) DownloadURL(ctx context.Context, id, entity string) (string, error) {
	args := m.Called(ctx, id, entity)
	return args.String(0), args.Error(1)
}
