package codec

import (
	"strconv"

	"clinicrecords/internal/model"
)

// PatientCodec lays out id|name|address|age|phone.
type PatientCodec struct{}

func (PatientCodec) Header() string { return "#id|name|address|age|phone" }
func (PatientCodec) Fields() int    { return 5 }

func (PatientCodec) Encode(p model.Patient) string {
	return join(strconv.Itoa(p.ID), Sanitize(p.Name), Sanitize(p.Address), strconv.Itoa(p.Age), Sanitize(p.Phone))
}

func (PatientCodec) Decode(f []string) (model.Patient, error) {
	id, err := parseInt("id", f[0])
	if err != nil {
		return model.Patient{}, err
	}
	age, err := parseInt("age", f[3])
	if err != nil {
		return model.Patient{}, err
	}
	return model.Patient{ID: id, Name: f[1], Address: f[2], Age: age, Phone: f[4]}, nil
}

// DoctorCodec lays out id|name|specialty.
type DoctorCodec struct{}

func (DoctorCodec) Header() string { return "#id|name|specialty" }
func (DoctorCodec) Fields() int    { return 3 }

func (DoctorCodec) Encode(d model.Doctor) string {
	return join(strconv.Itoa(d.ID), Sanitize(d.Name), Sanitize(d.Specialty))
}

func (DoctorCodec) Decode(f []string) (model.Doctor, error) {
	id, err := parseInt("id", f[0])
	if err != nil {
		return model.Doctor{}, err
	}
	return model.Doctor{ID: id, Name: f[1], Specialty: f[2]}, nil
}

// AppointmentCodec lays out id|patientId|doctorId|timestamp|reason|notes.
// An absent timestamp is an empty field.
type AppointmentCodec struct{}

func (AppointmentCodec) Header() string { return "#id|patientId|doctorId|timestampIsoOrEmpty|reason|notes" }
func (AppointmentCodec) Fields() int    { return 6 }

func (AppointmentCodec) Encode(a model.Appointment) string {
	return join(strconv.Itoa(a.ID), strconv.Itoa(a.PatientID), strconv.Itoa(a.DoctorID),
		model.FormatTimestamp(a.Timestamp), Sanitize(a.Reason), Sanitize(a.Notes))
}

func (AppointmentCodec) Decode(f []string) (model.Appointment, error) {
	id, err := parseInt("id", f[0])
	if err != nil {
		return model.Appointment{}, err
	}
	patientID, err := parseInt("patientId", f[1])
	if err != nil {
		return model.Appointment{}, err
	}
	doctorID, err := parseInt("doctorId", f[2])
	if err != nil {
		return model.Appointment{}, err
	}
	ts, err := model.ParseTimestamp(f[3])
	if err != nil {
		return model.Appointment{}, &ParseError{Field: "timestamp", Value: f[3], Err: err}
	}
	return model.Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		Timestamp: ts,
		Reason:    f[4],
		Notes:     f[5],
	}, nil
}

// EquipmentCodec lays out id|name|description|availableCount.
type EquipmentCodec struct{}

func (EquipmentCodec) Header() string { return "#id|name|description|availableCount" }
func (EquipmentCodec) Fields() int    { return 4 }

func (EquipmentCodec) Encode(e model.Equipment) string {
	return join(strconv.Itoa(e.ID), Sanitize(e.Name), Sanitize(e.Description), strconv.Itoa(e.AvailableCount))
}

func (EquipmentCodec) Decode(f []string) (model.Equipment, error) {
	id, err := parseInt("id", f[0])
	if err != nil {
		return model.Equipment{}, err
	}
	count, err := parseInt("availableCount", f[3])
	if err != nil {
		return model.Equipment{}, err
	}
	return model.Equipment{ID: id, Name: f[1], Description: f[2], AvailableCount: count}, nil
}

// InventoryCodec lays out id|name|quantity|unit.
type InventoryCodec struct{}

func (InventoryCodec) Header() string { return "#id|name|quantity|unit" }
func (InventoryCodec) Fields() int    { return 4 }

func (InventoryCodec) Encode(i model.InventoryItem) string {
	return join(strconv.Itoa(i.ID), Sanitize(i.Name), strconv.Itoa(i.Quantity), Sanitize(i.Unit))
}

func (InventoryCodec) Decode(f []string) (model.InventoryItem, error) {
	id, err := parseInt("id", f[0])
	if err != nil {
		return model.InventoryItem{}, err
	}
	qty, err := parseInt("quantity", f[2])
	if err != nil {
		return model.InventoryItem{}, err
	}
	return model.InventoryItem{ID: id, Name: f[1], Quantity: qty, Unit: f[3]}, nil
}

var (
	_ Codec[model.Patient]       = PatientCodec{}
	_ Codec[model.Doctor]        = DoctorCodec{}
	_ Codec[model.Appointment]   = AppointmentCodec{}
	_ Codec[model.Equipment]     = EquipmentCodec{}
	_ Codec[model.InventoryItem] = InventoryCodec{}
)
