package handlers

import (
	"errors"
	"net/http"

	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/usecase"
	"renovation_estimator/pkg"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
	errInvalidRequest        = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapProjectError(err error) *pkg.AppError {
	var verr *estimating.ValidationError
	switch {
	case errors.As(err, &verr) && verr.Reason == estimating.ReasonTaxonomy:
		return pkg.NewDomainError("TAXONOMY_MISMATCH", verr.Message, err, http.StatusBadRequest).
			WithDetails(verr.Errors, verr.Fields)
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_FAILED", verr.Message, err, http.StatusBadRequest).
			WithDetails(verr.Errors, verr.Fields)
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingDue):
		return pkg.NewDomainErrorSimple("NOTHING_DUE", "Project has no balance due", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAmountExceedsDue):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_DUE", "Payment amount exceeds balance due", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENTS_UNAVAILABLE", "Card payments are not configured", http.StatusServiceUnavailable)
	default:
		return mapProjectError(err)
	}
}
