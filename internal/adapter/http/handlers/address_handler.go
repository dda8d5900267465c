package handlers

import (
	"errors"
	"net/http"

	response "checkout-service/internal/adapter/http/dto/response"
	"checkout-service/internal/usecase"
	"checkout-service/internal/validation"
	"checkout-service/pkg"

	"github.com/gin-gonic/gin"
)

// AddressHandler resolves postal codes for the checkout address step.

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

func (h *AddressHandler) GetAddress(c *gin.Context) {
	info, err := h.usecase.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAddressInfo(info))
}

func mapAddressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, validation.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", "Invalid postal code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCEPNotFound):
		return pkg.NewDomainErrorSimple("CEP_NOT_FOUND", "Postal code not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("POSTAL_LOOKUP_ERROR", "Postal lookup failed", err, http.StatusBadGateway)
	}
}
