package handlers

import (
	"net/http"

	"renovation_estimator/internal/adapter/http/dto/response"
	"renovation_estimator/internal/usecase"
	"renovation_estimator/pkg"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

// RepairCustomWorkNames godoc
// @Summary      Name every unnamed custom work item in storage
// @Description  Per-record failures are listed in the report. A scan failure returns 500 with the partial report in details.
// @Tags         maintenance
// @Produce      json
// @Param        X-Maintenance-Token  header    string  true  "Maintenance token"
// @Success      200                  {object}  response.RepairReportResponse
// @Failure      403                  {object}  pkg.HTTPError
// @Router       /maintenance/repair-custom-work-names [post]
func (h *MaintenanceHandler) RepairCustomWorkNames(c *gin.Context) {
	report, err := h.usecase.RepairCustomWorkNames(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("REPAIR_SCAN_FAILED", "Repair scan stopped before completing", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"report":  response.FromRepairReport(report),
		})
		return
	}

	c.JSON(http.StatusOK, response.FromRepairReport(report))
}
