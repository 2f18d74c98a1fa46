package flatfile

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"clinicrecords/internal/codec"
	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
	"clinicrecords/internal/validate"
)

// File names inside the data directory.
const (
	PatientsFile     = "patients.dat"
	DoctorsFile      = "doctors.dat"
	AppointmentsFile = "appointments.dat"
	EquipmentFile    = "equipment.dat"
	InventoryFile    = "inventory.dat"
)

// PatientStore adds name search to the generic store.
type PatientStore struct {
	*Store[model.Patient]
}

var _ repository.PatientRepository = (*PatientStore)(nil)

func NewPatientStore(path string, opts ...Option) (*PatientStore, error) {
	s, err := NewStore(path, Schema[model.Patient]{
		Entity:         model.EntityPatient,
		Codec:          codec.PatientCodec{},
		ValidateAdd:    validate.Patient,
		ValidateUpdate: validate.Patient,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &PatientStore{Store: s}, nil
}

// FindByName matches pattern against patient names, case-insensitively. In
// MatchLiteral mode the pattern is escaped; MatchRegex passes it through as given.
func (s *PatientStore) FindByName(ctx context.Context, pattern string, mode repository.MatchMode) ([]model.Patient, error) {
	expr := pattern
	if mode == repository.MatchLiteral {
		expr = regexp.QuoteMeta(pattern)
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, &validate.ValidationError{Entity: model.EntityPatient, Field: "pattern", Value: pattern}
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Patient
	for _, p := range all {
		if re.MatchString(p.Name) {
			out = append(out, p)
		}
	}
	return out, nil
}

func NewDoctorStore(path string, opts ...Option) (*Store[model.Doctor], error) {
	return NewStore(path, Schema[model.Doctor]{
		Entity:         model.EntityDoctor,
		Codec:          codec.DoctorCodec{},
		ValidateAdd:    validate.Doctor,
		ValidateUpdate: validate.Doctor,
	}, opts...)
}

// AppointmentStore adds date prefix search to the generic store.
type AppointmentStore struct {
	*Store[model.Appointment]
}

var _ repository.AppointmentRepository = (*AppointmentStore)(nil)

// NewAppointmentStore opens the appointment file. Appointment ids are unique
// like every other entity: adding a taken id fails with ErrDuplicateID.
func NewAppointmentStore(path string, opts ...Option) (*AppointmentStore, error) {
	s, err := NewStore(path, Schema[model.Appointment]{
		Entity:         model.EntityAppointment,
		Codec:          codec.AppointmentCodec{},
		ValidateAdd:    validate.Appointment,
		ValidateUpdate: validate.Appointment,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &AppointmentStore{Store: s}, nil
}

// FindByDatePrefix compares prefix with the timestamp formatted as yyyy-MM-ddTHH:mm.
// Appointments without a timestamp only match a blank prefix.
func (s *AppointmentStore) FindByDatePrefix(ctx context.Context, prefix string) ([]model.Appointment, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	blank := strings.TrimSpace(prefix) == ""
	var out []model.Appointment
	for _, a := range all {
		if a.Timestamp == nil {
			if blank {
				out = append(out, a)
			}
			continue
		}
		if blank || strings.HasPrefix(a.Timestamp.Format(model.TimestampPrefixLayout), prefix) {
			out = append(out, a)
		}
	}
	return out, nil
}

func NewEquipmentStore(path string, opts ...Option) (*Store[model.Equipment], error) {
	return NewStore(path, Schema[model.Equipment]{
		Entity:         model.EntityEquipment,
		Codec:          codec.EquipmentCodec{},
		ValidateAdd:    validate.NewEquipment,
		ValidateUpdate: validate.Equipment,
	}, opts...)
}

func NewInventoryStore(path string, opts ...Option) (*Store[model.InventoryItem], error) {
	return NewStore(path, Schema[model.InventoryItem]{
		Entity:         model.EntityInventory,
		Codec:          codec.InventoryCodec{},
		ValidateAdd:    validate.InventoryItem,
		ValidateUpdate: validate.InventoryItem,
	}, opts...)
}

// Stores groups the five entity stores of one data directory.
type Stores struct {
	Dir          string
	Patients     *PatientStore
	Doctors      *Store[model.Doctor]
	Appointments *AppointmentStore
	Equipment    *Store[model.Equipment]
	Inventory    *Store[model.InventoryItem]
}

// Open creates the data directory and the five backing files when missing.
func Open(dir string, opts ...Option) (*Stores, error) {
	var (
		st  = &Stores{Dir: dir}
		err error
	)
	if st.Patients, err = NewPatientStore(filepath.Join(dir, PatientsFile), opts...); err != nil {
		return nil, fmt.Errorf("open patients: %w", err)
	}
	if st.Doctors, err = NewDoctorStore(filepath.Join(dir, DoctorsFile), opts...); err != nil {
		return nil, fmt.Errorf("open doctors: %w", err)
	}
	if st.Appointments, err = NewAppointmentStore(filepath.Join(dir, AppointmentsFile), opts...); err != nil {
		return nil, fmt.Errorf("open appointments: %w", err)
	}
	if st.Equipment, err = NewEquipmentStore(filepath.Join(dir, EquipmentFile), opts...); err != nil {
		return nil, fmt.Errorf("open equipment: %w", err)
	}
	if st.Inventory, err = NewInventoryStore(filepath.Join(dir, InventoryFile), opts...); err != nil {
		return nil, fmt.Errorf("open inventory: %w", err)
	}
	return st, nil
}

// Archivables lists the stores in a fixed order.
func (st *Stores) Archivables() []repository.Archivable {
	return []repository.Archivable{st.Patients, st.Doctors, st.Appointments, st.Equipment, st.Inventory}
}
