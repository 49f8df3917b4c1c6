package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

type (
	AttendanceService  = ports.RecordService[domain.AttendanceFields, domain.AttendanceEntry]
	CertificateService = ports.RecordService[domain.CertificateFields, domain.MedicalCertificate]
	LeaveService       = ports.RecordService[domain.LeaveFields, domain.Leave]
)

// AttendanceHandler handles /api/presenca.
type AttendanceHandler struct {
	service AttendanceService
}

func NewAttendanceHandler(service AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// Create handles POST /api/presenca.
//
// @Summary      Record an attendance entry
// @Tags         presenca
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                   false  "Replays the first record created under this key"
// @Param        body             body      createAttendanceRequest  true   "Attendance entry"
// @Success      200              {object}  domain.AttendanceEntry
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ValidationResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/presenca [post]
func (h *AttendanceHandler) Create(c echo.Context) error {
	return createRecord(c, domain.CollectionAttendance, h.service, toAttendanceFields)
}

// List handles GET /api/presenca.
//
// @Summary      List attendance entries (at most 1000)
// @Tags         presenca
// @Produce      json
// @Success      200  {array}   domain.AttendanceEntry
// @Failure      500  {object}  ErrorResponse
// @Router       /api/presenca [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	return listRecords(c, h.service)
}

// CertificateHandler handles /api/atestados.
type CertificateHandler struct {
	service CertificateService
}

func NewCertificateHandler(service CertificateService) *CertificateHandler {
	return &CertificateHandler{service: service}
}

// Create handles POST /api/atestados.
//
// @Summary      Record a medical certificate
// @Tags         atestados
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                    false  "Replays the first record created under this key"
// @Param        body             body      createCertificateRequest  true   "Medical certificate"
// @Success      200              {object}  domain.MedicalCertificate
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ValidationResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/atestados [post]
func (h *CertificateHandler) Create(c echo.Context) error {
	return createRecord(c, domain.CollectionCertificates, h.service, toCertificateFields)
}

// List handles GET /api/atestados.
//
// @Summary      List medical certificates (at most 1000)
// @Tags         atestados
// @Produce      json
// @Success      200  {array}   domain.MedicalCertificate
// @Failure      500  {object}  ErrorResponse
// @Router       /api/atestados [get]
func (h *CertificateHandler) List(c echo.Context) error {
	return listRecords(c, h.service)
}

// LeaveHandler handles /api/licencas.
type LeaveHandler struct {
	service LeaveService
}

func NewLeaveHandler(service LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// Create handles POST /api/licencas.
//
// @Summary      Record a leave
// @Tags         licencas
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Replays the first record created under this key"
// @Param        body             body      createLeaveRequest  true   "Leave"
// @Success      200              {object}  domain.Leave
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ValidationResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/licencas [post]
func (h *LeaveHandler) Create(c echo.Context) error {
	return createRecord(c, domain.CollectionLeaves, h.service, toLeaveFields)
}

// List handles GET /api/licencas.
//
// @Summary      List leaves (at most 1000)
// @Tags         licencas
// @Produce      json
// @Success      200  {array}   domain.Leave
// @Failure      500  {object}  ErrorResponse
// @Router       /api/licencas [get]
func (h *LeaveHandler) List(c echo.Context) error {
	return listRecords(c, h.service)
}
