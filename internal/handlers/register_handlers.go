package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/middleware"
	"github.com/awtech/cashdesk/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, cfg, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes exposes the public, rate limited register and login endpoints.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT value, falling back to 30-M", slog.String("value", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	h := newAuthHandler(services.Auth)
	auth := r.Group("/auth", middleware.RateLimit(limiterInstance))
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
}

// setupAPIV1Routes configures the /api/v1 group behind the auth middleware.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerCompanyRoutes(v1, services.Company, services.Account, services.Document, services.Ledger, services.Reporting)
}

// registerCompanyRoutes nests account, document, journal and reporting routes
// under their company.
func registerCompanyRoutes(
	rg *gin.RouterGroup,
	companySvc portssvc.CompanySvcFacade,
	accountSvc portssvc.AccountSvcFacade,
	documentSvc portssvc.DocumentSvcFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	reportingSvc portssvc.ReportingSvcFacade,
) {
	companyHandler := newCompanyHandler(companySvc)
	accountHandler := newAccountHandler(accountSvc)
	journalHandler := newJournalHandler(ledgerSvc)
	reportingHandler := newReportingHandler(reportingSvc)

	companies := rg.Group("/companies")
	companies.POST("", companyHandler.createCompany)
	companies.GET("", companyHandler.listMyCompanies)

	company := companies.Group("/:companyID")
	company.GET("", companyHandler.getCompany)
	company.POST("/members", companyHandler.addMember)
	company.PUT("/lock-date", companyHandler.setLockDate)

	accounts := company.Group("/accounts")
	accounts.POST("", accountHandler.createAccount)
	accounts.GET("", accountHandler.listAccounts)
	accounts.GET("/:accountID", accountHandler.getAccount)
	accounts.DELETE("/:accountID", accountHandler.deactivateAccount)

	RegisterDocumentRoutes(company, documentSvc)

	journals := company.Group("/journals")
	journals.POST("", journalHandler.postJournal)
	journals.GET("/:journalID", journalHandler.getJournal)
	journals.POST("/:journalID/reverse", journalHandler.reverseJournal)

	reports := company.Group("/reports")
	reports.GET("/trial-balance", reportingHandler.trialBalance)
	reports.POST("/donation-summaries", reportingHandler.rebuildDonationSummaries)
	reports.GET("/donation-summaries", reportingHandler.listDonationSummaries)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
