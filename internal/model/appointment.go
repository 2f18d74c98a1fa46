package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampPrefixLayout is the minute-resolution layout used for date prefix searches.
const TimestampPrefixLayout = "2006-01-02T15:04"

// Appointment links a patient and a doctor at an optional local date-time.
// Timestamps are wall-clock values without a zone.
type Appointment struct {
	ID        int        `json:"id"`
	PatientID int        `json:"patient_id"`
	DoctorID  int        `json:"doctor_id"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Reason    string     `json:"reason"`
	Notes     string     `json:"notes"`
}

func (a Appointment) RecordID() int { return a.ID }

// Date returns the calendar day of the appointment and false when it has no timestamp.
func (a Appointment) Date() (time.Time, bool) {
	if a.Timestamp == nil {
		return time.Time{}, false
	}
	y, m, d := a.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// appointmentJSON carries the timestamp as a zone-less local date-time string.
type appointmentJSON struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patient_id"`
	DoctorID  int    `json:"doctor_id"`
	Timestamp string `json:"timestamp,omitempty"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

func (a Appointment) MarshalJSON() ([]byte, error) {
	return json.Marshal(appointmentJSON{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Timestamp: FormatTimestamp(a.Timestamp),
		Reason:    a.Reason,
		Notes:     a.Notes,
	})
}

func (a *Appointment) UnmarshalJSON(b []byte) error {
	var v appointmentJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	ts, err := ParseTimestamp(v.Timestamp)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*a = Appointment{
		ID:        v.ID,
		PatientID: v.PatientID,
		DoctorID:  v.DoctorID,
		Timestamp: ts,
		Reason:    v.Reason,
		Notes:     v.Notes,
	}
	return nil
}
