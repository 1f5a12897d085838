package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tradiehq/tradiehq/internal/config"
	"github.com/tradiehq/tradiehq/internal/customer"
	customerdomain "github.com/tradiehq/tradiehq/internal/customer/domain"
	"github.com/tradiehq/tradiehq/internal/demo"
	demodomain "github.com/tradiehq/tradiehq/internal/demo/domain"
	"github.com/tradiehq/tradiehq/internal/identity"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	"github.com/tradiehq/tradiehq/internal/job"
	jobdomain "github.com/tradiehq/tradiehq/internal/job/domain"
	"github.com/tradiehq/tradiehq/internal/market"
	"github.com/tradiehq/tradiehq/internal/observability"
	"github.com/tradiehq/tradiehq/internal/onboarding"
	onboardingdomain "github.com/tradiehq/tradiehq/internal/onboarding/domain"
	"github.com/tradiehq/tradiehq/internal/organization"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
	"github.com/tradiehq/tradiehq/internal/ratelimit"
	"github.com/tradiehq/tradiehq/internal/session"
	"github.com/tradiehq/tradiehq/internal/signup"
	signupdomain "github.com/tradiehq/tradiehq/internal/signup/domain"
	"github.com/tradiehq/tradiehq/internal/tokens"
	"github.com/tradiehq/tradiehq/pkg/telemetry"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	market.Module,
	session.Module,
	identity.Module,
	organization.Module,
	onboarding.Module,
	demo.Module,
	signup.Module,
	customer.Module,
	job.Module,
	tokens.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, metrics *telemetry.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log))
	r.Use(observability.HTTPMetrics(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.AppName,
			"version": cfg.AppVersion,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger, metrics *telemetry.Metrics) *gin.Engine {
	return NewEngine(cfg, log, metrics)
}

func run(lc fx.Lifecycle, r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	log            *zap.Logger
	store          session.Store
	sessions       *session.Manager
	identitySvc    identitydomain.Service
	orgs           orgdomain.Repository
	onboardingSvc  onboardingdomain.Service
	demoSvc        demodomain.Service
	signupSvc      signupdomain.Service
	customerSvc    customerdomain.Service
	jobSvc         jobdomain.Service
	tokensSvc      tokens.Service
	advisorLimiter *ratelimit.AdvisorLimiter
	metrics        *telemetry.Metrics
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	Log            *zap.Logger
	Store          session.Store
	Sessions       *session.Manager
	IdentitySvc    identitydomain.Service
	Orgs           orgdomain.Repository
	OnboardingSvc  onboardingdomain.Service
	DemoSvc        demodomain.Service
	SignupSvc      signupdomain.Service
	CustomerSvc    customerdomain.Service
	JobSvc         jobdomain.Service
	TokensSvc      tokens.Service
	AdvisorLimiter *ratelimit.AdvisorLimiter `optional:"true"`
	Metrics        *telemetry.Metrics        `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		log:            p.Log.Named("server"),
		store:          p.Store,
		sessions:       p.Sessions,
		identitySvc:    p.IdentitySvc,
		orgs:           p.Orgs,
		onboardingSvc:  p.OnboardingSvc,
		demoSvc:        p.DemoSvc,
		signupSvc:      p.SignupSvc,
		customerSvc:    p.CustomerSvc,
		jobSvc:         p.JobSvc,
		tokensSvc:      p.TokensSvc,
		advisorLimiter: p.AdvisorLimiter,
		metrics:        p.Metrics,
	}

	s.registerAuthRoutes()
	s.registerUserRoutes()
	s.registerDemoRoutes()
	s.registerAPIRoutes()
	s.registerDebugRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/api/auth")

	auth.POST("/signup", s.Signup)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/user", s.Me)
}

func (s *Server) registerUserRoutes() {
	user := s.engine.Group("/api/user")

	user.GET("/first-run", s.RequireAuth(), s.FirstRun)
	user.POST("/onboarding", s.RequireIdentified(), s.CompleteOnboarding)
}

func (s *Server) registerDemoRoutes() {
	s.engine.POST("/api/demo/verify", s.RequirePreview(), s.VerifyDemoCode)
	s.engine.GET("/demo/dashboard", s.RequireDemoDashboard(), s.DemoDashboard)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/tokens", s.TokenUsage)
	api.POST("/advisor/chat", s.RequireAuth(), s.AdvisorChat)

	customers := api.Group("/customers", s.RequireAuth(), s.RequireOnboarded())
	{
		customers.GET("", s.ListCustomers)
		customers.POST("", s.CreateCustomer)
		customers.GET("/:id", s.GetCustomerByID)
		customers.PATCH("/:id", s.UpdateCustomer)
		customers.DELETE("/:id", s.DeleteCustomer)
	}

	jobs := api.Group("/jobs", s.RequireAuth(), s.RequireOnboarded())
	{
		jobs.GET("", s.ListJobs)
		jobs.POST("", s.CreateJob)
		jobs.GET("/:id", s.GetJobByID)
		jobs.PATCH("/:id", s.UpdateJob)
		jobs.DELETE("/:id", s.DeleteJob)
	}
}

func (s *Server) registerDebugRoutes() {
	s.engine.GET("/debug/session", s.RequirePreview(), s.DebugSession)
}
