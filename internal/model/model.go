package model

// Package model contains the clinic's domain records.
// They carry no persistence details; the flat-file layout lives in codec.

// Record is implemented by every entity kept in a store.
type Record interface {
	RecordID() int
}

// Entity names, used as labels in errors, logs and metrics.
const (
	EntityPatient     = "patient"
	EntityDoctor      = "doctor"
	EntityAppointment = "appointment"
	EntityEquipment   = "equipment"
	EntityInventory   = "inventory"
)
