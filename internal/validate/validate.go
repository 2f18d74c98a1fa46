// Package validate holds the field predicates applied before records are persisted.
// Predicates are pure; the entity checks turn the first failing field into a ValidationError.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"clinicrecords/internal/model"
)

// letters covers ASCII letters and the accented forms used in Spanish names.
const letters = `A-Za-zÁÉÍÓÚÜÑáéíóúüñ`

var (
	wordsPattern         = regexp.MustCompile(`^[` + letters + `]+(?: [` + letters + `]+)*$`)
	addressPattern       = regexp.MustCompile(`^[` + letters + `0-9 ,.-]{1,100}$`)
	doctorNamePattern    = regexp.MustCompile(`^(Dr\.?|Dra\.?) [` + letters + `]+(?: [` + letters + `]+)*$`)
	equipmentNamePattern = regexp.MustCompile(`^[` + letters + `0-9]{1,30}$`)
)

// ValidationError reports the field of an entity that failed its predicate.
type ValidationError struct {
	Entity string
	Field  string
	Value  any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %v", e.Entity, e.Field, e.Value)
}

func invalid(entity, field string, value any) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Value: value}
}

// PatientName accepts letters and single interior spaces, 1 to 50 characters.
func PatientName(name string) bool {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < 1 || n > 50 {
		return false
	}
	return wordsPattern.MatchString(name)
}

// PatientAge accepts ages in [0,120].
func PatientAge(age int) bool {
	return age >= 0 && age <= 120
}

// PatientAddress accepts letters, digits, spaces, commas, periods and hyphens, 1 to 100 characters.
func PatientAddress(address string) bool {
	return addressPattern.MatchString(strings.TrimSpace(address))
}

// DoctorName requires a "Dr", "Dr.", "Dra" or "Dra." title followed by letter-only names, at most 50 characters.
func DoctorName(name string) bool {
	if utf8.RuneCountInString(name) > 50 {
		return false
	}
	return doctorNamePattern.MatchString(strings.TrimSpace(name))
}

// DoctorSpecialty accepts letters and single interior spaces, at most 30 characters.
func DoctorSpecialty(specialty string) bool {
	if utf8.RuneCountInString(specialty) > 30 {
		return false
	}
	return wordsPattern.MatchString(strings.TrimSpace(specialty))
}

// EquipmentName accepts letters and digits only, 1 to 30 characters. Spaces are rejected.
func EquipmentName(name string) bool {
	return equipmentNamePattern.MatchString(strings.TrimSpace(name))
}

// EquipmentCount is the add-time check: at least one unit must be available.
func EquipmentCount(count int) bool {
	return count > 0
}

// InventoryQuantity accepts any non-negative quantity.
func InventoryQuantity(quantity int) bool {
	return quantity >= 0
}

// ID rejects non-positive record ids.
func ID(entity string, id int) error {
	if id <= 0 {
		return invalid(entity, "id", id)
	}
	return nil
}

// Patient checks every validated patient field.
func Patient(p model.Patient) error {
	switch {
	case !PatientName(p.Name):
		return invalid(model.EntityPatient, "name", p.Name)
	case !PatientAddress(p.Address):
		return invalid(model.EntityPatient, "address", p.Address)
	case !PatientAge(p.Age):
		return invalid(model.EntityPatient, "age", p.Age)
	}
	return nil
}

// Doctor checks the doctor name and specialty.
func Doctor(d model.Doctor) error {
	if !DoctorName(d.Name) {
		return invalid(model.EntityDoctor, "name", d.Name)
	}
	if !DoctorSpecialty(d.Specialty) {
		return invalid(model.EntityDoctor, "specialty", d.Specialty)
	}
	return nil
}

// Appointment requires positive patient and doctor references.
func Appointment(a model.Appointment) error {
	if a.PatientID <= 0 {
		return invalid(model.EntityAppointment, "patient_id", a.PatientID)
	}
	if a.DoctorID <= 0 {
		return invalid(model.EntityAppointment, "doctor_id", a.DoctorID)
	}
	return nil
}

// NewEquipment is applied on add, where at least one unit must be available.
func NewEquipment(e model.Equipment) error {
	if err := Equipment(e); err != nil {
		return err
	}
	if !EquipmentCount(e.AvailableCount) {
		return invalid(model.EntityEquipment, "available_count", e.AvailableCount)
	}
	return nil
}

// Equipment is applied on update; every unit may be checked out.
func Equipment(e model.Equipment) error {
	if !EquipmentName(e.Name) {
		return invalid(model.EntityEquipment, "name", e.Name)
	}
	if e.AvailableCount < 0 {
		return invalid(model.EntityEquipment, "available_count", e.AvailableCount)
	}
	return nil
}

// InventoryItem checks the stock quantity.
func InventoryItem(i model.InventoryItem) error {
	if !InventoryQuantity(i.Quantity) {
		return invalid(model.EntityInventory, "quantity", i.Quantity)
	}
	return nil
}
