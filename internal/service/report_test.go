package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicrecords/internal/model"
	repoMocks "clinicrecords/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportMocks struct {
	patients     *repoMocks.MockPatientRepository
	doctors      *repoMocks.MockDoctorRepository
	appointments *repoMocks.MockAppointmentRepository
	equipment    *repoMocks.MockEquipmentRepository
	inventory    *repoMocks.MockInventoryRepository
}

func newReportService() (ReportService, reportMocks) {
	m := reportMocks{
		patients:     new(repoMocks.MockPatientRepository),
		doctors:      new(repoMocks.MockDoctorRepository),
		appointments: new(repoMocks.MockAppointmentRepository),
		equipment:    new(repoMocks.MockEquipmentRepository),
		inventory:    new(repoMocks.MockInventoryRepository),
	}
	svc := NewReportService(Repositories{
		Patients:     m.patients,
		Doctors:      m.doctors,
		Appointments: m.appointments,
		Equipment:    m.equipment,
		Inventory:    m.inventory,
	})
	return svc, m
}

func at(y int, mo time.Month, d, h int) *time.Time {
	t := time.Date(y, mo, d, h, 0, 0, 0, time.UTC)
	return &t
}

func TestReportService_Patients(t *testing.T) {
	ctx := context.Background()
	all := []model.Patient{
		{ID: 1, Name: "Ana", Address: "Calle Mayor 1", Age: 30},
		{ID: 2, Name: "Luis", Address: "Avenida Sol", Age: 70},
		{ID: 3, Name: "Marta", Address: "calle luna", Age: 65},
	}

	tests := []struct {
		name    string
		query   PatientQuery
		wantIDs []int
	}{
		{name: "no criteria", query: PatientQuery{}, wantIDs: []int{1, 2, 3}},
		{name: "min age", query: PatientQuery{MinAge: 65}, wantIDs: []int{2, 3}},
		{name: "address ignores case", query: PatientQuery{Address: "CALLE"}, wantIDs: []int{1, 3}},
		{name: "both criteria", query: PatientQuery{MinAge: 60, Address: "calle"}, wantIDs: []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReportService()
			m.patients.On("List", ctx).Return(all, nil)

			got, err := svc.Patients(ctx, tt.query)
			require.NoError(t, err)
			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestReportService_AppointmentsBetween(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()
	m.appointments.On("List", ctx).Return([]model.Appointment{
		{ID: 1, Timestamp: at(2024, 1, 10, 23)},
		{ID: 2, Timestamp: at(2024, 1, 1, 8)},
		{ID: 3},
		{ID: 4, Timestamp: at(2024, 2, 1, 8)},
	}, nil)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	got, err := svc.AppointmentsBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 1, got[1].ID)

	_, err = svc.AppointmentsBetween(ctx, to, from)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestReportService_AppointmentsPerDoctor(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()
	m.appointments.On("List", ctx).Return([]model.Appointment{
		{ID: 1, DoctorID: 7}, {ID: 2, DoctorID: 3}, {ID: 3, DoctorID: 7}, {ID: 4, DoctorID: 9},
	}, nil)
	m.doctors.On("List", ctx).Return([]model.Doctor{
		{ID: 3, Name: "Dr. House"}, {ID: 7, Name: "Dra. Grey"},
	}, nil)

	got, err := svc.AppointmentsPerDoctor(ctx)
	require.NoError(t, err)
	assert.Equal(t, []DoctorLoad{
		{DoctorID: 7, Name: "Dra. Grey", Appointments: 2},
		{DoctorID: 3, Name: "Dr. House", Appointments: 1},
		{DoctorID: 9, Appointments: 1},
	}, got)
}

func TestReportService_Inventory(t *testing.T) {
	ctx := context.Background()
	items := []model.InventoryItem{
		{ID: 1, Name: "Gauze", Quantity: 40},
		{ID: 2, Name: "Syringe", Quantity: 3},
		{ID: 3, Name: "Gloves", Quantity: 0},
	}

	svc, m := newReportService()
	m.inventory.On("List", ctx).Return(items, nil)

	got, err := svc.Inventory(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 43, got.TotalQuantity)
	assert.Len(t, got.Items, 3)
	require.Len(t, got.LowStock, 2)
	assert.Equal(t, 3, got.LowStock[0].ID)

	got, err = svc.Inventory(ctx, -1)
	require.NoError(t, err)
	assert.Nil(t, got.LowStock)
}

func TestReportService_EquipmentAndDoctors(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()
	m.equipment.On("List", ctx).Return([]model.Equipment{{ID: 1, AvailableCount: 2}, {ID: 2, AvailableCount: 5}}, nil)
	m.doctors.On("List", ctx).Return(nil, errors.New("read failed"))

	eq, err := svc.Equipment(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, eq.TotalAvailable)

	_, err = svc.DoctorsBySpecialty(ctx)
	assert.EqualError(t, err, "read failed")
}
