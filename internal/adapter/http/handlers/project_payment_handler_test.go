package handlers

import (
	"errors"
	"net/http"
	"testing"

	"renovation_estimator/internal/adapter/http/handlers/mocks"
	"renovation_estimator/internal/domain/entities"
	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *ProjectPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/projects/:id/payments/card", withOwner("owner-1"), h.CollectCardPayment)
	return r
}

func TestProjectPaymentHandler_CollectCardPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectPaymentUseCase(ctrl)
		r := newPaymentRouter(NewProjectPaymentHandler(uc, logger.NewNop()))

		w := doJSON(r, http.MethodPost, "/v1/projects/p-1/payments/card", `{"amount": 10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectPaymentUseCase(ctrl)
		r := newPaymentRouter(NewProjectPaymentHandler(uc, logger.NewNop()))

		uc.EXPECT().CollectCardPayment(gomock.Any(), "owner-1", "p-1", 100.0, gomock.Any()).Return(usecase.CardPaymentResult{
			Payment: entities.Payment{ID: "pay-1", Amount: 100, Status: entities.PaymentStatusPaid, IsPaid: true, ProviderPaymentID: "mp-1"},
			Project: entities.Project{ID: "p-1", PaymentDetails: entities.PaymentDetails{TotalPaid: 100, TotalDue: 440}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/projects/p-1/payments/card", `{"amount": 100, "mp_payload": {"payment_method_id": "visa", "token": "tok"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"nothing due", usecase.ErrNothingDue, http.StatusConflict},
		{"exceeds due", usecase.ErrPaymentAmountExceedsDue, http.StatusConflict},
		{"provider bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{"gateway off", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{"not found", usecase.ErrProjectNotFound, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIProjectPaymentUseCase(ctrl)
			r := newPaymentRouter(NewProjectPaymentHandler(uc, logger.NewNop()))

			uc.EXPECT().CollectCardPayment(gomock.Any(), "owner-1", "p-1", 0.0, gomock.Any()).Return(usecase.CardPaymentResult{}, tt.err)

			w := doJSON(r, http.MethodPost, "/v1/projects/p-1/payments/card", `{"mp_payload": {"payment_method_id": "visa"}}`)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}
