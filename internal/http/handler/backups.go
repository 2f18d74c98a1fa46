package handler

import (
	"github.com/gofiber/fiber/v2"

	"clinicrecords/internal/service"
)

// CreateBackup snapshots every data file to object storage.
func CreateBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.Snapshot(c.UserContext())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(snap)
	}
}

func ListBackups(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids, err := svc.List(c.UserContext())
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(newListResult(ids))
	}
}

// BackupDownloadURL returns a presigned link to one entity file of a snapshot.
func BackupDownloadURL(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.DownloadURL(c.UserContext(), c.Params("id"), c.Params("entity"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
