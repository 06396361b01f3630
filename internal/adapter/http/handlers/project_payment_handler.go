package handlers

import (
	"net/http"

	"renovation_estimator/internal/adapter/http/dto/request"
	"renovation_estimator/internal/adapter/http/dto/response"
	"renovation_estimator/internal/adapter/http/middleware"
	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectPaymentHandler handles card payments against a project's balance.
type ProjectPaymentHandler struct {
	usecase usecase.IProjectPaymentUseCase
	log     *logger.Logger
}

func NewProjectPaymentHandler(uc usecase.IProjectPaymentUseCase, log *logger.Logger) *ProjectPaymentHandler {
	return &ProjectPaymentHandler{usecase: uc, log: log.With("handler", "project-payment")}
}

// CollectCardPayment godoc
// @Summary      Charge a card for part or all of the balance due
// @Description  mp_payload is forwarded to Mercado Pago. Omit amount to charge the full balance.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Project ID"
// @Param        payment  body      request.CardPaymentRequest  true  "Card payment"
// @Success      201      {object}  response.CardPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/payments/card [post]
func (h *ProjectPaymentHandler) CollectCardPayment(c *gin.Context) {
	projectID := pathID(c)

	var payload request.CardPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	mpPayload, err := payload.ResolvePayload()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	result, err := h.usecase.CollectCardPayment(c.Request.Context(), middleware.OwnerID(c), projectID, payload.Amount, mpPayload)
	if err != nil {
		h.log.Warn("card payment failed", "project_id", projectID, "error", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCardPayment(result.Project.ID, result.Payment, result.Project.PaymentDetails))
}
