package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/controllers"
	"github.com/hpd-transportes/wash-registry/database"
	"github.com/hpd-transportes/wash-registry/middlewares"
	"github.com/hpd-transportes/wash-registry/services"
)

// Options toggles the optional parts of the API.
type Options struct {
	// RequireSession guards every data route with the session token.
	RequireSession bool
	// RateLimiter, when set, is applied to every route.
	RateLimiter *middlewares.RateLimiter
}

// Services groups what the controllers depend on.
type Services struct {
	Auth       *services.AuthService
	Washes     *services.WashService
	References *services.ReferenceService
	Reports    *services.ReportService
}

// NewServices wires the services over one store.
func NewServices(store database.Store, auth *services.AuthService) *Services {
	washes := services.NewWashService(store)
	return &Services{
		Auth:       auth,
		Washes:     washes,
		References: services.NewReferenceService(store),
		Reports:    services.NewReportService(washes),
	}
}

func SetupRouter(svc *Services, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.RateLimit())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(svc.Auth)
	washCtrl := controllers.NewWashController(svc.Washes)
	washerCtrl := controllers.NewWasherController(svc.References)
	companyCtrl := controllers.NewCompanyController(svc.References)
	reportCtrl := controllers.NewReportController(svc.Reports)

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	api.POST("/auth", authCtrl.Login)
	api.GET("/auth/session", authCtrl.Session)
	api.POST("/auth/logout", authCtrl.Logout)

	// ----------------------------------------------------------------
	//                      DATA ROUTES
	// ----------------------------------------------------------------
	data := api.Group("")
	if opts.RequireSession {
		data.Use(middlewares.AuthMiddleware(svc.Auth))
	}

	// WASH RECORDS
	data.POST("/lavagens", washCtrl.CreateWash)
	data.GET("/lavagens", washCtrl.GetAllWashes)
	data.GET("/lavagens/today", washCtrl.GetTodayWashes)
	data.GET("/lavagens/month/:year/:month", washCtrl.GetMonthWashes)
	data.DELETE("/lavagens/:wash_id", washCtrl.DeleteWash)

	// WASHERS
	data.POST("/lavadores", washerCtrl.CreateWasher)
	data.GET("/lavadores", washerCtrl.GetAllWashers)

	// EXTERNAL COMPANIES
	data.POST("/empresas-externas", companyCtrl.CreateCompany)
	data.GET("/empresas-externas", companyCtrl.GetAllCompanies)

	// REPORTS
	data.GET("/relatorios/month/:year/:month", reportCtrl.GetMonthSummary)
	data.GET("/relatorios/month/:year/:month/export", reportCtrl.ExportMonth)

	return r
}
