package main

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/workforcepro/terceirizacao-api/internal/api"
	"github.com/workforcepro/terceirizacao-api/internal/api/handler"
	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
	"github.com/workforcepro/terceirizacao-api/internal/core/service"
	mongostore "github.com/workforcepro/terceirizacao-api/internal/infrastructure/db/mongo"
	redisstore "github.com/workforcepro/terceirizacao-api/internal/infrastructure/db/redis"
	"github.com/workforcepro/terceirizacao-api/pkg/logger"
)

// deps are the process-lifetime connections shared by every request.
type deps struct {
	mongo *mongo.Client
	db    *mongo.Database
	redis *goredis.Client
}

func connect(ctx context.Context) (*deps, error) {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return nil, err
	}
	d := &deps{mongo: client, db: db}

	rcfg := redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}
	if rcfg.Enabled() {
		d.redis, err = redisstore.Connect(ctx, rcfg)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}
	return d, nil
}

func (d *deps) close(ctx context.Context) error {
	var errs []error
	if d.redis != nil {
		errs = append(errs, d.redis.Close())
	}
	if err := d.mongo.Disconnect(ctx); err != nil {
		errs = append(errs, fmt.Errorf("mongo disconnect: %w", err))
	}
	return errors.Join(errs...)
}

// readiness lists the pings behind /health/ready.
func (d *deps) readiness() []handler.Dependency {
	out := []handler.Dependency{{
		Name: "mongodb",
		Ping: func(ctx context.Context) error { return d.mongo.Ping(ctx, readpref.Primary()) },
	}}
	if d.redis != nil {
		out = append(out, handler.Dependency{
			Name: "redis",
			Ping: func(ctx context.Context) error { return d.redis.Ping(ctx).Err() },
		})
	}
	return out
}

func newRecordService[F, R any](d *deps, col domain.Collection, assemble func(domain.Stamp, F) R, replay ports.ReplayStore) (*service.RecordService[F, R], *mongostore.RecordStore[R]) {
	store := mongostore.NewRecordStore[R](d.db, col, cfg.Mongo.Timeout)
	return service.NewRecordService[F, R](store, assemble, service.NewStamper(), replay, logger.Get()), store
}

// services builds one record service per collection plus the dashboard.
func (d *deps) services() (api.Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return api.Services{}, err
	}

	var replay ports.ReplayStore
	if d.redis != nil {
		replay = redisstore.NewReplayStore(d.redis, cfg.Redis.IdempotencyTTL)
	}

	companies, companyStore := newRecordService(d, domain.CollectionCompanies, domain.NewCompany, replay)
	clients, clientStore := newRecordService(d, domain.CollectionClients, domain.NewClient, replay)
	roles, _ := newRecordService(d, domain.CollectionRoles, domain.NewRole, replay)
	employees, employeeStore := newRecordService(d, domain.CollectionEmployees, domain.NewEmployee, replay)
	attendance, attendanceStore := newRecordService(d, domain.CollectionAttendance, domain.NewAttendanceEntry, replay)
	certificates, certificateStore := newRecordService(d, domain.CollectionCertificates, domain.NewMedicalCertificate, replay)
	leaves, _ := newRecordService(d, domain.CollectionLeaves, domain.NewLeave, replay)

	dashboard := service.NewDashboardService(service.DashboardCounters{
		Employees:    employeeStore,
		Clients:      clientStore,
		Companies:    companyStore,
		Attendance:   attendanceStore,
		Certificates: certificateStore,
	}, loc, logger.Get())

	return api.Services{
		Companies:    companies,
		Clients:      clients,
		Roles:        roles,
		Employees:    employees,
		Attendance:   attendance,
		Certificates: certificates,
		Leaves:       leaves,
		Dashboard:    dashboard,
	}, nil
}
