package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

type stubRecordService[F, R any] struct {
	createFn func(ctx context.Context, key string, fields F) (*R, bool, error)
	listFn   func(ctx context.Context) ([]R, error)
	getFn    func(ctx context.Context, id string) (*R, error)
}

func (s *stubRecordService[F, R]) Create(ctx context.Context, key string, fields F) (*R, bool, error) {
	return s.createFn(ctx, key, fields)
}

func (s *stubRecordService[F, R]) List(ctx context.Context) ([]R, error) {
	return s.listFn(ctx)
}

func (s *stubRecordService[F, R]) Get(ctx context.Context, id string) (*R, error) {
	return s.getFn(ctx, id)
}

type stubDashboard struct {
	statsFn func(ctx context.Context) (*domain.DashboardStats, error)
}

func (s *stubDashboard) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.statsFn(ctx)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// validEmployee returns a complete employee payload; tests delete or
// overwrite keys to produce invalid ones.
func validEmployee() map[string]any {
	return map[string]any{
		"nome":               "Maria da Silva",
		"endereco":           "Rua das Flores, 100",
		"telefone":           "11 99999-0000",
		"cidade":             "São Paulo",
		"estado":             "SP",
		"cep":                "01000-000",
		"funcao_id":          "f-1",
		"local_nascimento":   "Campinas",
		"nome_pai":           "José da Silva",
		"nome_mae":           "Ana da Silva",
		"matricula_esocial":  "ES-123",
		"cbo":                "5174-10",
		"rg":                 "12.345.678-9",
		"data_emissao_rg":    "2010-05-20",
		"orgao_emissor_rg":   "SSP",
		"cpf":                "123.456.789-00",
		"ctps":               "1234567",
		"data_emissao_ctps":  "2012-03-01",
		"orgao_emissor_ctps": "MTE",
		"titulo_eleitor":     "1234 5678 9012",
		"zona_eleitoral":     "001",
		"secao_eleitoral":    "0123",
		"escolaridade":       "Médio Completo",
		"estado_civil":       "Casado",
		"nacionalidade":      "Brasileira",
		"horario_trabalho":   "08:00-17:00",
		"numero_pis":         "123.45678.90-1",
		"salario":            2150.75,
		"empresa_id":         "emp-1",
		"data_admissao":      "2024-01-15",
		"tem_dependentes":    false,
		"cliente_id":         "cli-1",
		"posto_alocacao":     "Portaria A",
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
}

