package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	_ "renovation_estimator/docs"
	"renovation_estimator/internal/adapter/http/handlers"
	"renovation_estimator/internal/adapter/http/middleware"
	"renovation_estimator/internal/adapter/persistence/repository"
	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/infrastructure/config"
	"renovation_estimator/internal/infrastructure/database"
	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/internal/infrastructure/payments"
	"renovation_estimator/internal/usecase"
	"renovation_estimator/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Config      config.Config
	Log         *logger.Logger
	Taxonomy    *estimating.Taxonomy
	Projects    usecase.IProjectUseCase
	Payments    usecase.IProjectPaymentUseCase
	Maintenance usecase.IMaintenanceUseCase
}

// Run will start the server
func Run(cfg config.Config, log *logger.Logger) error {
	ctx := context.Background()

	taxonomy, err := LoadTaxonomy(cfg)
	if err != nil {
		return err
	}
	log.Info("taxonomy loaded", "version", taxonomy.Version(), "source", taxonomySource(cfg))

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	enforcer := estimating.NewEnforcer(taxonomy)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", "error", err)
	} else {
		paymentGateway = mpGateway
	}

	router := NewRouter(Dependencies{
		Config:      cfg,
		Log:         log,
		Taxonomy:    taxonomy,
		Projects:    usecase.NewProjectUseCase(projectRepo, enforcer, log),
		Payments:    usecase.NewProjectPaymentUseCase(projectRepo, paymentGateway, enforcer, log),
		Maintenance: usecase.NewMaintenanceUseCase(projectRepo, log),
	})

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info("starting http server", "addr", addr)
	if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter wires middlewares, handlers and routes onto a fresh engine.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	projectHandler := handlers.NewProjectHandler(deps.Projects)
	paymentHandler := handlers.NewProjectPaymentHandler(deps.Payments, deps.Log)
	taxonomyHandler := handlers.NewTaxonomyHandler(deps.Taxonomy)
	maintenanceHandler := handlers.NewMaintenanceHandler(deps.Maintenance)
	auth := middleware.NewAuth(deps.Config.JWTSecret, deps.Log)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTaxonomyRoutes(v1, taxonomyHandler)
	addMaintenanceRoutes(v1, middleware.RequireMaintenanceToken(deps.Config.MaintenanceToken), maintenanceHandler)

	// Rotas autenticadas
	private := v1.Group("", auth.RequireAuth())
	addProjectRoutes(private, projectHandler, paymentHandler)

	return router
}

// LoadTaxonomy returns the table from TAXONOMY_FILE, or the embedded default.
func LoadTaxonomy(cfg config.Config) (*estimating.Taxonomy, error) {
	if cfg.TaxonomyFile == "" {
		return estimating.DefaultTaxonomy(), nil
	}
	t, err := estimating.LoadTaxonomyFile(cfg.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %s: %w", cfg.TaxonomyFile, err)
	}
	return t, nil
}

func taxonomySource(cfg config.Config) string {
	if cfg.TaxonomyFile == "" {
		return "embedded"
	}
	return cfg.TaxonomyFile
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))
}
