package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
	repoMocks "clinicrecords/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 10, 15, 42, 0, time.UTC)
}

func TestAppointmentService_Book(t *testing.T) {
	ctx := context.Background()
	given := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	stamped := time.Date(2024, 3, 5, 10, 15, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      model.Appointment
		repoErr error
		wantTS  time.Time
		wantErr error
	}{
		{
			name:   "keeps given timestamp",
			in:     model.Appointment{ID: 1, PatientID: 2, DoctorID: 3, Timestamp: &given},
			wantTS: given,
		},
		{
			name:   "defaults missing timestamp to now",
			in:     model.Appointment{ID: 1, PatientID: 2, DoctorID: 3},
			wantTS: stamped,
		},
		{
			name:    "duplicate id",
			in:      model.Appointment{ID: 1, PatientID: 2, DoctorID: 3, Timestamp: &given},
			repoErr: repository.ErrDuplicateID,
			wantErr: repository.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockAppointmentRepository)
			mRepo.On("Add", ctx, mock.MatchedBy(func(a model.Appointment) bool {
				return a.Timestamp != nil && a.ID == tt.in.ID
			})).Return(tt.repoErr)

			svc := NewAppointmentService(mRepo, fixedClock)
			got, err := svc.Book(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTS, *got.Timestamp)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestAppointmentService_Reschedule(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAppointmentRepository)
	mRepo.On("Update", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	svc := NewAppointmentService(mRepo, fixedClock)
	_, err := svc.Reschedule(ctx, model.Appointment{ID: 9, PatientID: 1, DoctorID: 1})
	assert.EqualError(t, err, "disk full")

	mRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	got, err := svc.Reschedule(ctx, model.Appointment{ID: 9, PatientID: 1, DoctorID: 1})
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-05T10:15", got.Timestamp.Format(model.TimestampPrefixLayout))
	mRepo.AssertExpectations(t)
}
