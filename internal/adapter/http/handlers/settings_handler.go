package handlers

import (
	"errors"
	"net/http"

	request "checkout-service/internal/adapter/http/dto/request"
	response "checkout-service/internal/adapter/http/dto/response"
	"checkout-service/internal/usecase"
	"checkout-service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

// SettingsHandler exposes the merchant configuration rows.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetPaymentSettings(c *gin.Context) {
	settings, err := h.usecase.GetPaymentSettings(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSettings(settings))
}

func (h *SettingsHandler) UpdatePaymentSettings(c *gin.Context) {
	var payload request.PaymentSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.UpdatePaymentSettings(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSettings(settings))
}

func (h *SettingsHandler) GetPixelSettings(c *gin.Context) {
	settings, err := h.usecase.GetPixelSettings(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixelSettings(settings))
}

func (h *SettingsHandler) UpdatePixelSettings(c *gin.Context) {
	var payload request.PixelSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.UpdatePixelSettings(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixelSettings(settings))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSettingsManualStatus):
		return pkg.NewDomainError("INVALID_SETTINGS_INPUT", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
