package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clinicrecords/internal/codec"
	"clinicrecords/internal/http/middleware"
	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
	repoMocks "clinicrecords/internal/repository/mocks"
	"clinicrecords/internal/service"
	serviceMocks "clinicrecords/internal/service/mocks"
	"clinicrecords/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(t.TempDir()))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(filepath.Join(t.TempDir(), "missing")))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListPatients(t *testing.T) {
	repo := new(repoMocks.MockPatientRepository)
	app := newApp()
	app.Get("/patients", ListPatients(repo))

	t.Run("all", func(t *testing.T) {
		repo.On("List", mock.Anything).Return([]model.Patient{{ID: 1, Name: "Ana"}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/patients", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result listResult[model.Patient]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "Ana", result.Items[0].Name)
	})

	t.Run("literal name", func(t *testing.T) {
		repo.On("FindByName", mock.Anything, "a.a", repository.MatchLiteral).Return([]model.Patient{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/patients?name=a.a", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result listResult[model.Patient]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.NotNil(t, result.Items)
		assert.Equal(t, 0, result.Total)
	})

	t.Run("bad regex", func(t *testing.T) {
		repo.On("FindByName", mock.Anything, "(", repository.MatchRegex).
			Return(nil, &validate.ValidationError{Entity: "patient", Field: "pattern", Value: "("}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/patients?name=(&regex=true", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)
	})

	repo.AssertExpectations(t)
}

func TestCreateRecord(t *testing.T) {
	repo := new(repoMocks.MockDoctorRepository)
	app := newApp()
	app.Post("/doctors", CreateRecord[model.Doctor](repo))

	doc := model.Doctor{ID: 3, Name: "Dr. House", Specialty: "Diagnostico"}
	body := `{"id":3,"name":"Dr. House","specialty":"Diagnostico"}`

	tests := []struct {
		name       string
		body       string
		repoErr    error
		callsRepo  bool
		wantStatus int
		wantCode   string
	}{
		{name: "created", body: body, callsRepo: true, wantStatus: http.StatusCreated},
		{
			name:       "validation error",
			body:       body,
			callsRepo:  true,
			repoErr:    &validate.ValidationError{Entity: "doctor", Field: "name", Value: "House"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "duplicate id",
			body:       body,
			callsRepo:  true,
			repoErr:    fmt.Errorf("doctor 3: %w", repository.ErrDuplicateID),
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_ID",
		},
		{
			name:       "storage failure",
			body:       body,
			callsRepo:  true,
			repoErr:    &repository.IOError{Op: "append", Path: "doctors.dat", Err: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORAGE_ERROR",
		},
		{name: "malformed body", body: `{"id":`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_BODY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.callsRepo {
				repo.On("Add", mock.Anything, doc).Return(tt.repoErr).Once()
				if tt.repoErr == nil {
					stored := doc
					repo.On("Get", mock.Anything, 3).Return(&stored, nil).Once()
				}
			}

			resp, _ := app.Test(jsonRequest(http.MethodPost, "/doctors", tt.body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantCode != "" {
				res := decodeError(t, resp)
				assert.Equal(t, tt.wantCode, res.Error.Code)
				assert.NotEmpty(t, res.RequestID)
				assert.NotContains(t, res.Error.Message, "disk full")
			} else {
				var got model.Doctor
				json.NewDecoder(resp.Body).Decode(&got)
				assert.Equal(t, doc, got)
			}
		})
	}
	repo.AssertExpectations(t)
}

func TestGetRecord(t *testing.T) {
	repo := new(repoMocks.MockEquipmentRepository)
	app := newApp()
	app.Get("/equipment/:id", GetRecord[model.Equipment](repo))

	t.Run("success", func(t *testing.T) {
		repo.On("Get", mock.Anything, 2).Return(&model.Equipment{ID: 2, Name: "ECG", AvailableCount: 1}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/equipment/2", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.Equipment
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "ECG", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo.On("Get", mock.Anything, 9).Return(nil, fmt.Errorf("equipment 9: %w", repository.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/equipment/9", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("corrupt file", func(t *testing.T) {
		repo.On("Get", mock.Anything, 4).Return(nil, &codec.ParseError{Line: 3, Field: "availableCount", Value: "x"}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/equipment/4", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "CORRUPT_RECORD", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-1"} {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/equipment/"+id, nil))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
		}
	})

	repo.AssertExpectations(t)
}

func TestCreateRecordReturnsStoredRecord(t *testing.T) {
	repo := new(repoMocks.MockRepository[model.Appointment])
	app := newApp()
	app.Post("/appointments", CreateRecord[model.Appointment](repo))

	sent := model.Appointment{ID: 4, PatientID: 1, DoctorID: 1, Reason: "Control", Notes: "ok\n1|-5"}
	stored := model.Appointment{ID: 4, PatientID: 1, DoctorID: 1, Reason: "Control", Notes: "ok 1 -5"}
	repo.On("Add", mock.Anything, sent).Return(nil).Once()
	repo.On("Get", mock.Anything, 4).Return(&stored, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/appointments",
		`{"id":4,"patient_id":1,"doctor_id":1,"reason":"Control","notes":"ok\n1|-5"}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got model.Appointment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "ok 1 -5", got.Notes)
	repo.AssertExpectations(t)
}

func TestUpdateRecord(t *testing.T) {
	repo := new(repoMocks.MockInventoryRepository)
	app := newApp()
	app.Put("/inventory/:id", UpdateRecord[model.InventoryItem](repo, inventoryWithID))

	t.Run("id taken from path", func(t *testing.T) {
		want := model.InventoryItem{ID: 5, Name: "Gauze", Quantity: 10, Unit: "box"}
		stored := model.InventoryItem{ID: 5, Name: "Gauze", Quantity: 10, Unit: "box"}
		repo.On("Update", mock.Anything, want).Return(nil).Once()
		repo.On("Get", mock.Anything, 5).Return(&stored, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/inventory/5", `{"name":"Gauze","quantity":10,"unit":"box"}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.InventoryItem
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, stored, got)
	})

	t.Run("id mismatch", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/inventory/5", `{"id":6,"name":"Gauze"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_MISMATCH", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		repo.On("Update", mock.Anything, mock.MatchedBy(func(i model.InventoryItem) bool { return i.ID == 7 })).
			Return(repository.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/inventory/7", `{"id":7,"name":"Gauze","quantity":1,"unit":"box"}`))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	repo.AssertExpectations(t)
}

func TestDeleteRecord(t *testing.T) {
	repo := new(repoMocks.MockPatientRepository)
	app := newApp()
	app.Delete("/patients/:id", DeleteRecord[model.Patient](repo))

	repo.On("Delete", mock.Anything, 1).Return(nil).Once()
	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/patients/1", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	repo.On("Delete", mock.Anything, 2).Return(repository.ErrNotFound).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/patients/2", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	repo.AssertExpectations(t)
}

func TestAppointments(t *testing.T) {
	repo := new(repoMocks.MockAppointmentRepository)
	svc := new(serviceMocks.MockAppointmentService)
	app := newApp()
	app.Get("/appointments", ListAppointments(repo))
	app.Post("/appointments", BookAppointment(svc))
	app.Put("/appointments/:id", RescheduleAppointment(svc))

	ts := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	t.Run("list by date prefix", func(t *testing.T) {
		repo.On("FindByDatePrefix", mock.Anything, "2024-06").
			Return([]model.Appointment{{ID: 1, PatientID: 1, DoctorID: 2, Timestamp: &ts}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/appointments?date=2024-06", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"timestamp":"2024-06-15T09:30"`)
	})

	t.Run("book", func(t *testing.T) {
		in := model.Appointment{ID: 4, PatientID: 1, DoctorID: 2, Reason: "Checkup"}
		out := in
		out.Timestamp = &ts
		svc.On("Book", mock.Anything, in).Return(&out, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/appointments", `{"id":4,"patient_id":1,"doctor_id":2,"reason":"Checkup"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var got model.Appointment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, out, got)
	})

	t.Run("book with bad timestamp", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/appointments", `{"id":4,"timestamp":"15/06/2024"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("reschedule", func(t *testing.T) {
		in := model.Appointment{ID: 4, PatientID: 1, DoctorID: 2, Timestamp: &ts}
		svc.On("Reschedule", mock.Anything, in).Return(&in, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/appointments/4", `{"patient_id":1,"doctor_id":2,"timestamp":"2024-06-15T09:30"}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	repo.AssertExpectations(t)
	svc.AssertExpectations(t)
}

func TestAdjustStock(t *testing.T) {
	svc := new(serviceMocks.MockStockService)
	app := newApp()
	app.Post("/equipment/:id/adjust", AdjustEquipment(svc))
	app.Post("/inventory/:id/adjust", AdjustInventory(svc))

	t.Run("check out equipment", func(t *testing.T) {
		svc.On("AdjustEquipment", mock.Anything, 1, -1).Return(&model.Equipment{ID: 1, AvailableCount: 0}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/equipment/1/adjust", `{"delta":-1}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		svc.On("AdjustInventory", mock.Anything, 2, -50).
			Return(nil, fmt.Errorf("inventory item 2 has 3 in stock: %w", service.ErrInsufficientStock)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/inventory/2/adjust", `{"delta":-50}`))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Error.Code)
	})

	t.Run("missing delta", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/inventory/2/adjust", `{}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	svc.AssertExpectations(t)
}

func TestReports(t *testing.T) {
	svc := new(serviceMocks.MockReportService)
	app := newApp()
	app.Get("/reports/patients", PatientReport(svc))
	app.Get("/reports/appointments", AppointmentReport(svc))
	app.Get("/reports/inventory", InventoryReport(svc))
	app.Get("/reports/appointments/by-doctor", DoctorLoadReport(svc))

	t.Run("patients", func(t *testing.T) {
		svc.On("Patients", mock.Anything, service.PatientQuery{MinAge: 60, Address: "calle"}).
			Return([]model.Patient{{ID: 3}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/reports/patients?min_age=60&address=calle", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/reports/patients?min_age=old", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("appointments range", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		svc.On("AppointmentsBetween", mock.Anything, from, to).Return([]model.Appointment{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/reports/appointments?from=2024-01-01&to=2024-12-31", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/reports/appointments?from=2024-01-01", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_TO", decodeError(t, resp).Error.Code)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc.On("AppointmentsBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrInvalidRange).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/reports/appointments?from=2024-12-31&to=2024-01-01", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_RANGE", decodeError(t, resp).Error.Code)
	})

	t.Run("inventory", func(t *testing.T) {
		svc.On("Inventory", mock.Anything, -1).Return(&service.InventoryReport{TotalQuantity: 7}, nil).Once()
		svc.On("Inventory", mock.Anything, 5).Return(&service.InventoryReport{TotalQuantity: 7}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/reports/inventory", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/reports/inventory?low_stock=5", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("per doctor", func(t *testing.T) {
		svc.On("AppointmentsPerDoctor", mock.Anything).Return([]service.DoctorLoad{{DoctorID: 1, Appointments: 2}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/reports/appointments/by-doctor", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result listResult[service.DoctorLoad]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 2, result.Items[0].Appointments)
	})

	svc.AssertExpectations(t)
}

func TestBackups(t *testing.T) {
	svc := new(serviceMocks.MockBackupService)
	app := newApp()
	app.Post("/backups", CreateBackup(svc))
	app.Get("/backups", ListBackups(svc))
	app.Get("/backups/:id/:entity", BackupDownloadURL(svc))

	t.Run("disabled", func(t *testing.T) {
		svc.On("Snapshot", mock.Anything).Return(nil, service.ErrBackupDisabled).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/backups", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "BACKUP_DISABLED", decodeError(t, resp).Error.Code)
	})

	t.Run("snapshot", func(t *testing.T) {
		svc.On("Snapshot", mock.Anything).Return(&service.Snapshot{ID: "20240101T000000Z-aaaa"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/backups", nil))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("list", func(t *testing.T) {
		svc.On("List", mock.Anything).Return([]string{"b", "a"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/backups", nil))
		var result listResult[string]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, []string{"b", "a"}, result.Items)
	})

	t.Run("download url", func(t *testing.T) {
		svc.On("DownloadURL", mock.Anything, "snap", "patient").Return("https://minio/signed", nil).Once()
		svc.On("DownloadURL", mock.Anything, "gone", "patient").Return("", service.ErrSnapshotNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/backups/snap/patient", nil))
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "https://minio/signed", body["url"])

		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/backups/gone/patient", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	svc.AssertExpectations(t)
}

func TestErrorHandler(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
}
