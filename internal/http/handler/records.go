package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
)

// listResult wraps a collection response.
type listResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListResult[T any](items []T) listResult[T] {
	if items == nil {
		items = []T{}
	}
	return listResult[T]{Items: items, Total: len(items)}
}

// pathID reads the :id route parameter. Ids are positive integers.
func pathID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListRecords returns every record of a store in file order.
func ListRecords[T model.Record](repo repository.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := repo.List(c.UserContext())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(items))
	}
}

// GetRecord returns one record by id.
func GetRecord[T model.Record](repo repository.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := repo.Get(c.UserContext(), id)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(rec)
	}
}

// CreateRecord validates and appends a record from the JSON body.
func CreateRecord[T model.Record](repo repository.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rec T
		if err := c.BodyParser(&rec); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := repo.Add(c.UserContext(), rec); err != nil {
			return writeFailure(c, err)
		}
		stored, err := repo.Get(c.UserContext(), rec.RecordID())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// UpdateRecord replaces the record at :id with the JSON body. The body id
// may be omitted; if present it must match the path.
func UpdateRecord[T model.Record](repo repository.Repository[T], withID func(T, int) T) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, ok, err := bindForUpdate(c, withID)
		if !ok {
			return err
		}
		if err := repo.Update(c.UserContext(), rec); err != nil {
			return writeFailure(c, err)
		}
		stored, err := repo.Get(c.UserContext(), rec.RecordID())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(stored)
	}
}

// DeleteRecord removes the record at :id.
func DeleteRecord[T model.Record](repo repository.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := repo.Delete(c.UserContext(), id); err != nil {
			return writeFailure(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// bindForUpdate parses the body and reconciles its id with :id. When ok is
// false the error response has already been written and err is its result.
func bindForUpdate[T model.Record](c *fiber.Ctx, withID func(T, int) T) (rec T, ok bool, err error) {
	id, valid := pathID(c)
	if !valid {
		return rec, false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := c.BodyParser(&rec); err != nil {
		return rec, false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	switch rec.RecordID() {
	case 0:
		rec = withID(rec, id)
	case id:
	default:
		return rec, false, writeError(c, fiber.StatusBadRequest, "ID_MISMATCH", "body id does not match path id")
	}
	return rec, true, nil
}

func patientWithID(p model.Patient, id int) model.Patient {
	p.ID = id
	return p
}

func doctorWithID(d model.Doctor, id int) model.Doctor {
	d.ID = id
	return d
}

func appointmentWithID(a model.Appointment, id int) model.Appointment {
	a.ID = id
	return a
}

func equipmentWithID(e model.Equipment, id int) model.Equipment {
	e.ID = id
	return e
}

func inventoryWithID(i model.InventoryItem, id int) model.InventoryItem {
	i.ID = id
	return i
}
