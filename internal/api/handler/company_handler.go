package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

type (
	CompanyService = ports.RecordService[domain.CompanyFields, domain.Company]
	ClientService  = ports.RecordService[domain.ClientFields, domain.Client]
	RoleService    = ports.RecordService[domain.RoleFields, domain.Role]
)

// CompanyHandler handles /api/empresas.
type CompanyHandler struct {
	service CompanyService
}

func NewCompanyHandler(service CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create handles POST /api/empresas.
//
// @Summary      Register a company
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Replays the first record created under this key"
// @Param        body             body      createCompanyRequest  true   "Company"
// @Success      200              {object}  domain.Company
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ValidationResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/empresas [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	return createRecord(c, domain.CollectionCompanies, h.service, toCompanyFields)
}

// List handles GET /api/empresas.
//
// @Summary      List companies (at most 1000)
// @Tags         empresas
// @Produce      json
// @Success      200  {array}   domain.Company
// @Failure      500  {object}  ErrorResponse
// @Router       /api/empresas [get]
func (h *CompanyHandler) List(c echo.Context) error {
	return listRecords(c, h.service)
}

// ClientHandler handles /api/clientes.
type ClientHandler struct {
	service ClientService
}

func NewClientHandler(service ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /api/clientes.
//
// @Summary      Register a client contract
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string               false  "Replays the first record created under this key"
// @Param        body             body      createClientRequest  true   "Client"
// @Success      200              {object}  domain.Client
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ValidationResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/clientes [post]
func (h *ClientHandler) Create(c echo.Context) error {
	return createRecord(c, domain.CollectionClients, h.service, toClientFields)
}

// List handles GET /api/clientes.
//
// @Summary      List clients (at most 1000)
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   domain.Client
// @Failure      500  {object}  ErrorResponse
// @Router       /api/clientes [get]
func (h *ClientHandler) List(c echo.Context) error {
	return listRecords(c, h.service)
}

// RoleHandler handles /api/funcoes.
type RoleHandler struct {
	service RoleService
}

func NewRoleHandler(service RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// Create handles POST /api/funcoes.
//
// @Summary      Register a job role
// @Tags         funcoes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Replays the first record created under this key"
// @Param        body             body      createRoleRequest  true   "Role"
// @Success      200              {object}  domain.Role
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ValidationResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/funcoes [post]
func (h *RoleHandler) Create(c echo.Context) error {
	return createRecord(c, domain.CollectionRoles, h.service, toRoleFields)
}

// List handles GET /api/funcoes.
//
// @Summary      List job roles (at most 1000)
// @Tags         funcoes
// @Produce      json
// @Success      200  {array}   domain.Role
// @Failure      500  {object}  ErrorResponse
// @Router       /api/funcoes [get]
func (h *RoleHandler) List(c echo.Context) error {
	return listRecords(c, h.service)
}
