package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	"github.com/BruksfildServices01/customer-service/internal/config"
	authDomain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
	"github.com/BruksfildServices01/customer-service/internal/handlers"
	"github.com/BruksfildServices01/customer-service/internal/httperr"
	infraRepo "github.com/BruksfildServices01/customer-service/internal/infra/repository"
	"github.com/BruksfildServices01/customer-service/internal/middleware"
	"github.com/BruksfildServices01/customer-service/internal/observability"
	"github.com/BruksfildServices01/customer-service/internal/security"
	ucAuth "github.com/BruksfildServices01/customer-service/internal/usecase/auth"
	ucCustomer "github.com/BruksfildServices01/customer-service/internal/usecase/customer"
)

const msgRouteNotFound = "Not Found"

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Tokens  authDomain.TokenStore
	Audit   *audit.Dispatcher
	Metrics *observability.Metrics
	Logger  *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger, d.Metrics),
		middleware.Recovery(d.Logger),
		middleware.CORSMiddleware(d.Config.CORSOrigins),
	)

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, msgRouteNotFound)
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	customerRepo := infraRepo.NewCustomerGormRepository(d.DB, d.Logger)
	signer := security.NewTokenService(d.Config.JWTSecret, d.Config.TokenTTL)
	auditLogger := audit.New(d.DB)

	// ======================================================
	// 🧠 USE CASES — AUTH
	// ======================================================
	issueTokenUC := ucAuth.NewIssueToken(
		customerRepo,
		d.Tokens,
		signer,
		d.Audit,
		d.Metrics,
		d.Logger,
	)

	resolveCurrentUserUC := ucAuth.NewResolveCurrentUser(
		customerRepo,
		d.Tokens,
		signer,
		d.Logger,
	)

	revokeTokenUC := ucAuth.NewRevokeToken(
		d.Tokens,
		d.Audit,
	)

	// ======================================================
	// 🧠 USE CASES — CUSTOMERS
	// ======================================================
	createCustomerUC := ucCustomer.NewCreate(
		customerRepo,
		d.Audit,
		d.Metrics,
		d.Logger,
	)

	getCustomersUC := ucCustomer.NewGet(customerRepo)
	identifyCustomerUC := ucCustomer.NewIdentify(customerRepo)

	createAnonymousUC := ucCustomer.NewCreateAnonymous(
		customerRepo,
		d.Audit,
		d.Metrics,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(issueTokenUC, revokeTokenUC, d.Logger)

	customerHandler := handlers.NewCustomerHandler(
		createCustomerUC,
		getCustomersUC,
		identifyCustomerUC,
		createAnonymousUC,
		d.Logger,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, d.Logger)

	requireAuth := middleware.AuthMiddleware(resolveCurrentUserUC, d.Metrics, d.Logger)

	// ------------------------------
	// 🌐 PÚBLICO
	// ------------------------------
	r.GET("/health", handlers.Health)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ------------------------------
	// 🔐 AUTH
	// ------------------------------
	r.POST("/token", authHandler.Token)
	r.GET("/auth", requireAuth, authHandler.Me)
	r.POST("/logout", requireAuth, authHandler.Logout)
	r.GET("/audit-logs", requireAuth, auditLogsHandler.List)

	// ------------------------------
	// 🔐 CUSTOMERS
	// ------------------------------
	customers := r.Group("/customers")
	customers.Use(requireAuth)
	{
		customers.POST("/admin", customerHandler.CreateAdmin)
		customers.POST("/register", customerHandler.Register)
		customers.GET("/", customerHandler.Get)
		customers.POST("/identify", customerHandler.Identify)
		customers.POST("/anonymous", customerHandler.CreateAnonymous)
	}
}
