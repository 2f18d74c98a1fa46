package service

import (
	"context"
	"fmt"
	"time"

	"clinicrecords/internal/model"
	"clinicrecords/internal/report"
	"clinicrecords/internal/repository"
)

// PatientQuery selects patients for the patient report. Zero values disable a criterion.
type PatientQuery struct {
	MinAge  int
	Address string
}

// DoctorLoad is the number of appointments booked with one doctor.
type DoctorLoad struct {
	DoctorID     int    `json:"doctor_id"`
	Name         string `json:"name,omitempty"`
	Appointments int    `json:"appointments"`
}

type InventoryReport struct {
	TotalQuantity int                   `json:"total_quantity"`
	Items         []model.InventoryItem `json:"items"`
	LowStock      []model.InventoryItem `json:"low_stock,omitempty"`
}

type EquipmentReport struct {
	TotalAvailable int               `json:"total_available"`
	Items          []model.Equipment `json:"items"`
}

// ReportService builds read-only views over the stores. It never writes back.
type ReportService interface {
	Patients(ctx context.Context, q PatientQuery) ([]model.Patient, error)
	DoctorsBySpecialty(ctx context.Context) ([]model.Doctor, error)
	// AppointmentsBetween returns appointments dated within [from, to], chronologically.
	AppointmentsBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error)
	AppointmentsPerDoctor(ctx context.Context) ([]DoctorLoad, error)
	// Inventory totals stock. A negative lowStock skips the low-stock list.
	Inventory(ctx context.Context, lowStock int) (*InventoryReport, error)
	Equipment(ctx context.Context) (*EquipmentReport, error)
}

// Repositories bundles the stores a ReportService reads from.
type Repositories struct {
	Patients     repository.PatientRepository
	Doctors      repository.DoctorRepository
	Appointments repository.AppointmentRepository
	Equipment    repository.EquipmentRepository
	Inventory    repository.InventoryRepository
}

type reportService struct {
	repos Repositories
}

func NewReportService(repos Repositories) ReportService {
	return &reportService{repos: repos}
}

func (s *reportService) Patients(ctx context.Context, q PatientQuery) ([]model.Patient, error) {
	all, err := s.repos.Patients.List(ctx)
	if err != nil {
		return nil, err
	}
	var preds []report.Predicate[model.Patient]
	if q.MinAge > 0 {
		preds = append(preds, report.MinAge(q.MinAge))
	}
	if q.Address != "" {
		preds = append(preds, report.AddressContains(q.Address))
	}
	return report.Filter(all, preds...), nil
}

func (s *reportService) DoctorsBySpecialty(ctx context.Context) ([]model.Doctor, error) {
	all, err := s.repos.Doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.DoctorsBySpecialty(all), nil
}

func (s *reportService) AppointmentsBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%s > %s: %w", from.Format(time.DateOnly), to.Format(time.DateOnly), ErrInvalidRange)
	}
	all, err := s.repos.Appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.AppointmentsBetween(all, from, to), nil
}

func (s *reportService) AppointmentsPerDoctor(ctx context.Context) ([]DoctorLoad, error) {
	appts, err := s.repos.Appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := s.repos.Doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(doctors))
	for _, d := range doctors {
		if _, ok := names[d.ID]; !ok {
			names[d.ID] = d.Name
		}
	}
	counts := report.AppointmentsPerDoctor(appts)
	out := make([]DoctorLoad, 0, len(counts))
	for id, n := range counts {
		out = append(out, DoctorLoad{DoctorID: id, Name: names[id], Appointments: n})
	}
	return report.SortBy(out,
		func(a, b DoctorLoad) int { return b.Appointments - a.Appointments },
		report.By(func(l DoctorLoad) int { return l.DoctorID }),
	), nil
}

func (s *reportService) Inventory(ctx context.Context, lowStock int) (*InventoryReport, error) {
	items, err := s.repos.Inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	r := &InventoryReport{TotalQuantity: report.TotalInventory(items), Items: items}
	if lowStock >= 0 {
		r.LowStock = report.LowStock(items, lowStock)
	}
	return r, nil
}

func (s *reportService) Equipment(ctx context.Context) (*EquipmentReport, error) {
	items, err := s.repos.Equipment.List(ctx)
	if err != nil {
		return nil, err
	}
	return &EquipmentReport{TotalAvailable: report.TotalAvailableEquipment(items), Items: items}, nil
}
