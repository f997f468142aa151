package app

import (
	"context"

	authAPI "student_portal_backend/internal/api/auth"
	dashboardAPI "student_portal_backend/internal/api/dashboard"
	healthAPI "student_portal_backend/internal/api/health"
	apimw "student_portal_backend/internal/api/middleware"
	"student_portal_backend/internal/config"
	"student_portal_backend/internal/config/env"
	"student_portal_backend/internal/repository"
	"student_portal_backend/internal/repository/assignment_repo"
	"student_portal_backend/internal/repository/enrollment_repo"
	"student_portal_backend/internal/repository/fee_repo"
	"student_portal_backend/internal/repository/student_repo"
	"student_portal_backend/internal/service"
	"student_portal_backend/internal/service/auth"
	"student_portal_backend/internal/service/dashboard"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Config bits
	jwtCfg  config.JWTConfig
	appCfg  config.AppConfig
	gateCfg config.GateConfig

	// Repositories
	studentRepo    repository.StudentRepository
	feeRepo        repository.FeeRepository
	enrollmentRepo repository.EnrollmentRepository
	assignmentRepo repository.AssignmentRepository

	// Auth bits
	authServ service.AuthService
	authHand *authAPI.Handler

	// Dashboard bits
	dashboardServ service.DashboardService
	dashboardHand *dashboardAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AppCfg() config.AppConfig {
	if sp.appCfg == nil {
		cfg, err := env.NewAppConfig()
		if err != nil {
			panic("failed to get app config: " + err.Error())
		}
		sp.appCfg = cfg
	}
	return sp.appCfg
}

func (sp *ServiceProvider) GateCfg() config.GateConfig {
	if sp.gateCfg == nil {
		cfg, err := env.NewGateConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get gate config: " + err.Error())
		}
		sp.gateCfg = cfg
	}
	return sp.gateCfg
}

func (sp *ServiceProvider) StudentRepo(ctx context.Context) repository.StudentRepository {
	if sp.studentRepo == nil {
		sp.studentRepo = student_repo.NewStudentRepository(sp.DBClient(ctx))
	}
	return sp.studentRepo
}

func (sp *ServiceProvider) FeeRepo(ctx context.Context) repository.FeeRepository {
	if sp.feeRepo == nil {
		sp.feeRepo = fee_repo.NewFeeRepository(sp.DBClient(ctx))
	}
	return sp.feeRepo
}

func (sp *ServiceProvider) EnrollmentRepo(ctx context.Context) repository.EnrollmentRepository {
	if sp.enrollmentRepo == nil {
		sp.enrollmentRepo = enrollment_repo.NewEnrollmentRepository(sp.DBClient(ctx))
	}
	return sp.enrollmentRepo
}

func (sp *ServiceProvider) AssignmentRepo(ctx context.Context) repository.AssignmentRepository {
	if sp.assignmentRepo == nil {
		sp.assignmentRepo = assignment_repo.NewAssignmentRepository(sp.DBClient(ctx))
	}
	return sp.assignmentRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.StudentRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:   sp.AuthService(ctx),
			AppCfg: sp.AppCfg(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) DashboardService(ctx context.Context) service.DashboardService {
	if sp.dashboardServ == nil {
		sp.dashboardServ = dashboard.NewDashboardService(
			sp.StudentRepo(ctx),
			sp.FeeRepo(ctx),
			sp.EnrollmentRepo(ctx),
			sp.AssignmentRepo(ctx),
		)
	}
	return sp.dashboardServ
}

func (sp *ServiceProvider) DashboardHandler(ctx context.Context) *dashboardAPI.Handler {
	if sp.dashboardHand == nil {
		sp.dashboardHand = dashboardAPI.NewHandler(dashboardAPI.HandlerDeps{
			Serv:   sp.DashboardService(ctx),
			JWTCfg: sp.JWTCfg(),
		})
	}
	return sp.dashboardHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Session gate: page routes are protected by default
		r.Use(apimw.NewSessionGate(sp.GateCfg(), sp.JWTCfg()))

		healthHandler := healthAPI.NewHandler()
		r.Get("/health", healthHandler.Health)

		// Auth and dashboard endpoints
		authHandler := sp.AuthHandler(ctx)
		dashboardHandler := sp.DashboardHandler(ctx)
		r.Route("/api", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/logout", authHandler.Logout)
			rr.Get("/dashboard", dashboardHandler.Overview)
		})

		sp.router = r
	}

	return sp.router
}
