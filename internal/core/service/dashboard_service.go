package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

// DashboardCounters are the collections the dashboard reads from.
type DashboardCounters struct {
	Employees    ports.Counter
	Clients      ports.Counter
	Companies    ports.Counter
	Attendance   ports.Counter
	Certificates ports.Counter
}

type DashboardService struct {
	counters DashboardCounters
	loc      *time.Location
	now      func() time.Time
	log      zerolog.Logger
}

// NewDashboardService returns a DashboardService that resolves "today" in loc.
// A nil loc means time.Local.
func NewDashboardService(counters DashboardCounters, loc *time.Location, log zerolog.Logger) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{counters: counters, loc: loc, now: time.Now, log: log}
}

type countQuery struct {
	name    string
	counter ports.Counter
	filter  ports.Filter
	dst     *int64
}

// Stats runs six independent count queries. They share no snapshot, so
// writes landing between them can show up in some counts and not others.
// Any failing query fails the whole call.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	today := domain.DateOf(s.now().In(s.loc))

	var stats domain.DashboardStats
	queries := []countQuery{
		{"total_funcionarios", s.counters.Employees, ports.Filter{}, &stats.TotalEmployees},
		{"total_clientes", s.counters.Clients, ports.Filter{}, &stats.TotalClients},
		{"total_empresas", s.counters.Companies, ports.Filter{}, &stats.TotalCompanies},
		{"funcionarios_presentes_hoje", s.counters.Attendance, AttendanceOn(today, true), &stats.PresentToday},
		{"funcionarios_ausentes_hoje", s.counters.Attendance, AttendanceOn(today, false), &stats.AbsentToday},
		{"atestados_ativos", s.counters.Certificates, CertificatesActiveOn(today), &stats.ActiveCertificates},
	}

	for _, q := range queries {
		n, err := q.counter.Count(ctx, q.filter)
		if err != nil {
			s.log.Error().Err(err).Str("count", q.name).Msg("dashboard query failed")
			return nil, fmt.Errorf("dashboard %s: %w", q.name, err)
		}
		*q.dst = n
	}

	s.log.Debug().Str("day", today.String()).Msg("dashboard computed")
	return &stats, nil
}

// AttendanceOn matches attendance entries for day with the given presence.
func AttendanceOn(day domain.Date, present bool) ports.Filter {
	return ports.Where(ports.Eq("data", day), ports.Eq("presente", present))
}

// CertificatesActiveOn matches certificates whose expected return is day or later.
func CertificatesActiveOn(day domain.Date) ports.Filter {
	return ports.Where(ports.Gte("data_retorno_prevista", day))
}
