package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcepro/terceirizacao-api/internal/api/handler"
	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

type fakeService[F, R any] struct {
	recs      []R
	assemble  func(domain.Stamp, F) R
	createErr error
	listErr   error
	get       func(id string) (*R, error)
}

func (s *fakeService[F, R]) Create(_ context.Context, _ string, f F) (*R, bool, error) {
	if s.createErr != nil {
		return nil, false, s.createErr
	}
	rec := s.assemble(domain.Stamp{ID: "generated"}, f)
	s.recs = append(s.recs, rec)
	return &rec, false, nil
}

func (s *fakeService[F, R]) List(context.Context) ([]R, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]R{}, s.recs...), nil
}

func (s *fakeService[F, R]) Get(_ context.Context, id string) (*R, error) {
	if s.get == nil {
		return nil, domain.ErrNotFound
	}
	return s.get(id)
}

type fakeDashboard struct {
	stats *domain.DashboardStats
	err   error
}

func (d fakeDashboard) Stats(context.Context) (*domain.DashboardStats, error) { return d.stats, d.err }

type fixture struct {
	companies *fakeService[domain.CompanyFields, domain.Company]
	clients   *fakeService[domain.ClientFields, domain.Client]
	employees *fakeService[domain.EmployeeFields, domain.Employee]
	dashboard fakeDashboard
	opts      Options
	router    http.Handler
}

func newFixture() *fixture {
	return &fixture{
		companies: &fakeService[domain.CompanyFields, domain.Company]{assemble: domain.NewCompany},
		clients:   &fakeService[domain.ClientFields, domain.Client]{assemble: domain.NewClient},
		employees: &fakeService[domain.EmployeeFields, domain.Employee]{assemble: domain.NewEmployee},
		dashboard: fakeDashboard{stats: &domain.DashboardStats{}},
		opts:      Options{Registry: prometheus.NewRegistry()},
	}
}

func (f *fixture) serve(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	if f.router == nil {
		f.router = f.build()
	}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// build wires the router once; a registry accepts each collector only once.
func (f *fixture) build() http.Handler {
	return NewRouter(Services{
		Companies:    f.companies,
		Clients:      f.clients,
		Roles:        &fakeService[domain.RoleFields, domain.Role]{assemble: domain.NewRole},
		Employees:    f.employees,
		Attendance:   &fakeService[domain.AttendanceFields, domain.AttendanceEntry]{assemble: domain.NewAttendanceEntry},
		Certificates: &fakeService[domain.CertificateFields, domain.MedicalCertificate]{assemble: domain.NewMedicalCertificate},
		Leaves:       &fakeService[domain.LeaveFields, domain.Leave]{assemble: domain.NewLeave},
		Dashboard:    f.dashboard,
	}, f.opts, zerolog.Nop())
}

const companyBody = `{"razao_social":"Serviços Gerais Ltda","cnpj":"11.111.111/0001-11",
	"logradouro":"Rua A, 1","cep":"01000-000","cidade":"São Paulo","estado":"SP"}`

func TestRouter_Greeting(t *testing.T) {
	rec := newFixture().serve(t, http.MethodGet, "/api/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Sistema de Terceirização de Serviços"}`, rec.Body.String())
}

func TestRouter_CreateThenList(t *testing.T) {
	f := newFixture()

	rec := f.serve(t, http.MethodPost, "/api/empresas", companyBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.serve(t, http.MethodGet, "/api/empresas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "generated", list[0]["id"])
	assert.Equal(t, "Serviços Gerais Ltda", list[0]["razao_social"])
}

func TestRouter_EmptyListIsArray(t *testing.T) {
	rec := newFixture().serve(t, http.MethodGet, "/api/licencas", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_ValidationIs422WithDetail(t *testing.T) {
	f := newFixture()
	rec := f.serve(t, http.MethodPost, "/api/funcionarios", `{"nome":"Maria","salario":"muito","estado_civil":"Noivo"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)

	reasons := map[string]string{}
	for _, is := range resp.Detail {
		reasons[is.Field] = is.Reason
	}
	assert.Equal(t, domain.ReasonMissing, reasons["data_emissao_rg"])
	assert.Contains(t, reasons["salario"], domain.ReasonWrongType)
	assert.Contains(t, reasons["estado_civil"], domain.ReasonNotInSet)
	assert.NotContains(t, reasons, "nome")
	assert.NotContains(t, reasons, "quantidade_dependentes")

	assert.Empty(t, f.employees.recs, "nothing stored on validation failure")
}

func TestRouter_MalformedJSONIs400(t *testing.T) {
	rec := newFixture().serve(t, http.MethodPost, "/api/empresas", `{"razao_social":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"request body must be a JSON object"}`, rec.Body.String())
}

func TestRouter_EmployeeNotFound(t *testing.T) {
	rec := newFixture().serve(t, http.MethodGet, "/api/funcionarios/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Funcionário não encontrado"}`, rec.Body.String())
}

func TestRouter_EmployeeFound(t *testing.T) {
	f := newFixture()
	f.employees.get = func(id string) (*domain.Employee, error) {
		rec := domain.NewEmployee(domain.Stamp{ID: id}, domain.EmployeeFields{Name: "Maria"})
		return &rec, nil
	}

	rec := f.serve(t, http.MethodGet, "/api/funcionarios/e-42", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "e-42", resp["id"])
	assert.Equal(t, "Maria", resp["nome"])
}

func TestRouter_StorageFailureIs500WithDescription(t *testing.T) {
	f := newFixture()
	f.clients.listErr = errors.New("list clientes: server selection timeout")

	rec := f.serve(t, http.MethodGet, "/api/clientes", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"list clientes: server selection timeout"}`, rec.Body.String())
}

func TestRouter_CreateFailureIs500(t *testing.T) {
	f := newFixture()
	f.companies.createErr = errors.New("insert empresas: not primary")

	rec := f.serve(t, http.MethodPost, "/api/empresas", companyBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not primary")
}

func TestRouter_Dashboard(t *testing.T) {
	f := newFixture()
	f.dashboard = fakeDashboard{stats: &domain.DashboardStats{
		TotalEmployees: 1, TotalClients: 1, TotalCompanies: 1, PresentToday: 1,
	}}

	rec := f.serve(t, http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_funcionarios": 1, "total_clientes": 1, "total_empresas": 1,
		"funcionarios_presentes_hoje": 1, "funcionarios_ausentes_hoje": 0, "atestados_ativos": 0
	}`, rec.Body.String())
}

func TestRouter_DashboardFailure(t *testing.T) {
	f := newFixture()
	f.dashboard = fakeDashboard{err: errors.New("dashboard total_clientes: timeout")}

	rec := f.serve(t, http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"dashboard total_clientes: timeout"}`, rec.Body.String())
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	rec := newFixture().serve(t, http.MethodGet, "/api/usuarios", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	f := newFixture()
	f.opts.CORSOrigins = []string{"https://painel.example"}

	rec := f.serve(t, http.MethodGet, "/api/", "", "Origin", "https://painel.example")
	assert.Equal(t, "https://painel.example", rec.Header().Get("Access-Control-Allow-Origin"))

	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = f.serve(t, http.MethodGet, "/api/", "", "Origin", "https://other.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSWildcardWithoutCredentials(t *testing.T) {
	f := newFixture()

	rec := f.serve(t, http.MethodGet, "/api/", "", "Origin", "https://painel.example")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_CreateRejectsTimestampDate(t *testing.T) {
	f := newFixture()
	body := `{"funcionario_id":"emp-1","data":"2026-10-19T10:00:00Z","presente":true}`

	rec := f.serve(t, http.MethodPost, "/api/presenca", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data"`)
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	f := newFixture()
	f.opts.Dependencies = []handler.Dependency{
		{Name: "mongodb", Ping: func(context.Context) error { return nil }},
	}

	assert.Equal(t, http.StatusOK, f.serve(t, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, f.serve(t, http.MethodGet, "/health/ready", "").Code)

	f.serve(t, http.MethodGet, "/api/empresas", "")
	rec := f.serve(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
