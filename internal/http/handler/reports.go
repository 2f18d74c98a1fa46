package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicrecords/internal/service"
)

// PatientReport filters patients by ?min_age= and ?address= (substring, any case).
func PatientReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		minAge, err := queryInt(c, "min_age", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MIN_AGE", "invalid min_age")
		}
		items, err := svc.Patients(c.UserContext(), service.PatientQuery{MinAge: minAge, Address: c.Query("address")})
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(items))
	}
}

// DoctorReport lists doctors ordered by specialty, then name.
func DoctorReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.DoctorsBySpecialty(c.UserContext())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(items))
	}
}

// AppointmentReport lists appointments dated within ?from= and ?to= (YYYY-MM-DD, inclusive).
func AppointmentReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := time.Parse(time.DateOnly, c.Query("from"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FROM", "from must be YYYY-MM-DD")
		}
		to, err := time.Parse(time.DateOnly, c.Query("to"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TO", "to must be YYYY-MM-DD")
		}
		items, err := svc.AppointmentsBetween(c.UserContext(), from, to)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(items))
	}
}

// DoctorLoadReport counts appointments per doctor, busiest first.
func DoctorLoadReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.AppointmentsPerDoctor(c.UserContext())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(items))
	}
}

// InventoryReport totals stock; ?low_stock=N adds the items at or below N.
func InventoryReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threshold, err := queryInt(c, "low_stock", -1)
		if err != nil || threshold < -1 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LOW_STOCK", "invalid low_stock")
		}
		r, err := svc.Inventory(c.UserContext(), threshold)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(r)
	}
}

func EquipmentReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.Equipment(c.UserContext())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(r)
	}
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
