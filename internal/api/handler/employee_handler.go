package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

type EmployeeService = ports.RecordService[domain.EmployeeFields, domain.Employee]

// EmployeeHandler handles /api/funcionarios.
type EmployeeHandler struct {
	service EmployeeService
}

func NewEmployeeHandler(service EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /api/funcionarios.
//
// @Summary      Register an employee
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                 false  "Replays the first record created under this key"
// @Param        body             body      createEmployeeRequest  true   "Employee"
// @Success      200              {object}  domain.Employee
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ValidationResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/funcionarios [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	return createRecord(c, domain.CollectionEmployees, h.service, toEmployeeFields)
}

// List handles GET /api/funcionarios.
//
// @Summary      List employees (at most 1000)
// @Tags         funcionarios
// @Produce      json
// @Success      200  {array}   domain.Employee
// @Failure      500  {object}  ErrorResponse
// @Router       /api/funcionarios [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	return listRecords(c, h.service)
}

// Get handles GET /api/funcionarios/:id.
//
// @Summary      Get an employee by id
// @Tags         funcionarios
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/funcionarios/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	rec, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Funcionário não encontrado").SetInternal(err)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}
