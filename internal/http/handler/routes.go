package handler

import (
	"github.com/gofiber/fiber/v2"

	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
	"clinicrecords/internal/service"
)

// Deps carries what the routes need. Backups may be a service whose storage is
// disabled; its handlers then answer 503.
type Deps struct {
	DataDir      string
	Patients     repository.PatientRepository
	Doctors      repository.DoctorRepository
	Appointments repository.AppointmentRepository
	Equipment    repository.EquipmentRepository
	Inventory    repository.InventoryRepository

	Scheduling service.AppointmentService
	Stock      service.StockService
	Reports    service.ReportService
	Backups    service.BackupService
}

// RegisterRoutes attaches the clinic HTTP routes to app.
// Handlers only translate HTTP; rules live in the stores and services.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DataDir))
	app.Get("/healthz", LivenessProbe())

	patients := app.Group("/patients")
	patients.Get("/", ListPatients(d.Patients))
	patients.Post("/", CreateRecord[model.Patient](d.Patients))
	patients.Get("/:id", GetRecord[model.Patient](d.Patients))
	patients.Put("/:id", UpdateRecord[model.Patient](d.Patients, patientWithID))
	patients.Delete("/:id", DeleteRecord[model.Patient](d.Patients))

	doctors := app.Group("/doctors")
	doctors.Get("/", ListRecords[model.Doctor](d.Doctors))
	doctors.Post("/", CreateRecord[model.Doctor](d.Doctors))
	doctors.Get("/:id", GetRecord[model.Doctor](d.Doctors))
	doctors.Put("/:id", UpdateRecord[model.Doctor](d.Doctors, doctorWithID))
	doctors.Delete("/:id", DeleteRecord[model.Doctor](d.Doctors))

	appts := app.Group("/appointments")
	appts.Get("/", ListAppointments(d.Appointments))
	appts.Post("/", BookAppointment(d.Scheduling))
	appts.Get("/:id", GetRecord[model.Appointment](d.Appointments))
	appts.Put("/:id", RescheduleAppointment(d.Scheduling))
	appts.Delete("/:id", DeleteRecord[model.Appointment](d.Appointments))

	equipment := app.Group("/equipment")
	equipment.Get("/", ListRecords[model.Equipment](d.Equipment))
	equipment.Post("/", CreateRecord[model.Equipment](d.Equipment))
	equipment.Get("/:id", GetRecord[model.Equipment](d.Equipment))
	equipment.Put("/:id", UpdateRecord[model.Equipment](d.Equipment, equipmentWithID))
	equipment.Delete("/:id", DeleteRecord[model.Equipment](d.Equipment))
	equipment.Post("/:id/adjust", AdjustEquipment(d.Stock))

	inventory := app.Group("/inventory")
	inventory.Get("/", ListRecords[model.InventoryItem](d.Inventory))
	inventory.Post("/", CreateRecord[model.InventoryItem](d.Inventory))
	inventory.Get("/:id", GetRecord[model.InventoryItem](d.Inventory))
	inventory.Put("/:id", UpdateRecord[model.InventoryItem](d.Inventory, inventoryWithID))
	inventory.Delete("/:id", DeleteRecord[model.InventoryItem](d.Inventory))
	inventory.Post("/:id/adjust", AdjustInventory(d.Stock))

	reports := app.Group("/reports")
	reports.Get("/patients", PatientReport(d.Reports))
	reports.Get("/doctors", DoctorReport(d.Reports))
	reports.Get("/appointments", AppointmentReport(d.Reports))
	reports.Get("/appointments/by-doctor", DoctorLoadReport(d.Reports))
	reports.Get("/inventory", InventoryReport(d.Reports))
	reports.Get("/equipment", EquipmentReport(d.Reports))

	backups := app.Group("/backups")
	backups.Post("/", CreateBackup(d.Backups))
	backups.Get("/", ListBackups(d.Backups))
	backups.Get("/:id/:entity", BackupDownloadURL(d.Backups))
}
