package service

import (
	"context"
	"time"

	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
)

// AppointmentService defines the booking use cases on top of the appointment store.
type AppointmentService interface {
	// Book stores a new appointment. A missing timestamp defaults to the current time.
	Book(ctx context.Context, a model.Appointment) (*model.Appointment, error)

	// Reschedule replaces an existing appointment. A missing timestamp defaults to the current time.
	Reschedule(ctx context.Context, a model.Appointment) (*model.Appointment, error)
}

type appointmentService struct {
	repo repository.AppointmentRepository
	now  func() time.Time
}

// NewAppointmentService constructs an AppointmentService. now may be nil.
func NewAppointmentService(repo repository.AppointmentRepository, now func() time.Time) AppointmentService {
	if now == nil {
		now = time.Now
	}
	return &appointmentService{repo: repo, now: now}
}

func (s *appointmentService) Book(ctx context.Context, a model.Appointment) (*model.Appointment, error) {
	s.stamp(&a)
	if err := s.repo.Add(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *appointmentService) Reschedule(ctx context.Context, a model.Appointment) (*model.Appointment, error) {
	s.stamp(&a)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

// stamp fills a missing timestamp with the local wall-clock time at minute resolution.
func (s *appointmentService) stamp(a *model.Appointment) {
	if a.Timestamp != nil {
		return
	}
	n := s.now()
	ts := time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), 0, 0, time.UTC)
	a.Timestamp = &ts
}
