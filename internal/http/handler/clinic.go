package handler

import (
	"github.com/gofiber/fiber/v2"

	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
	"clinicrecords/internal/service"
)

// ListPatients lists patients, optionally filtered by ?name= (literal, or a
// regular expression with ?regex=true). Matching ignores case.
func ListPatients(repo repository.PatientRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return ListRecords[model.Patient](repo)(c)
		}
		mode := repository.MatchLiteral
		if c.QueryBool("regex") {
			mode = repository.MatchRegex
		}
		items, err := repo.FindByName(c.UserContext(), name, mode)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(items))
	}
}

// ListAppointments lists appointments whose timestamp starts with ?date=
// (e.g. 2024-06 or 2024-06-15T09). Without it every appointment is returned.
func ListAppointments(repo repository.AppointmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := repo.FindByDatePrefix(c.UserContext(), c.Query("date"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(items))
	}
}

// BookAppointment stores a new appointment; a missing timestamp means now.
func BookAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a model.Appointment
		if err := c.BodyParser(&a); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		booked, err := svc.Book(c.UserContext(), a)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(booked)
	}
}

func RescheduleAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, ok, err := bindForUpdate(c, appointmentWithID)
		if !ok {
			return err
		}
		updated, err := svc.Reschedule(c.UserContext(), a)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(updated)
	}
}

type adjustRequest struct {
	Delta *int `json:"delta"`
}

func bindAdjust(c *fiber.Ctx) (id, delta int, ok bool, err error) {
	id, valid := pathID(c)
	if !valid {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req adjustRequest
	if err := c.BodyParser(&req); err != nil || req.Delta == nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "delta is required")
	}
	return id, *req.Delta, true, nil
}

// AdjustEquipment checks units out (negative delta) or returns them.
func AdjustEquipment(svc service.StockService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, delta, ok, err := bindAdjust(c)
		if !ok {
			return err
		}
		e, err := svc.AdjustEquipment(c.UserContext(), id, delta)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(e)
	}
}

// AdjustInventory consumes (negative delta) or restocks an inventory item.
func AdjustInventory(svc service.StockService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, delta, ok, err := bindAdjust(c)
		if !ok {
			return err
		}
		it, err := svc.AdjustInventory(c.UserContext(), id, delta)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(it)
	}
}
