package routes

import (
	"renovation_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects    = "/projects"
	PathTaxonomy    = "/taxonomy"
	PathMaintenance = "/maintenance"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, paymentHandler *handlers.ProjectPaymentHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.POST("/calculate", projectHandler.CalculateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
		projects.POST("/:id/payments/card", paymentHandler.CollectCardPayment)
	}
}

func addTaxonomyRoutes(rg *gin.RouterGroup, taxonomyHandler *handlers.TaxonomyHandler) {
	rg.GET(PathTaxonomy, taxonomyHandler.GetTaxonomy)
}

func addMaintenanceRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc, maintenanceHandler *handlers.MaintenanceHandler) {
	maintenance := rg.Group(PathMaintenance, guard)
	{
		maintenance.POST("/repair-custom-work-names", maintenanceHandler.RepairCustomWorkNames)
	}
}
