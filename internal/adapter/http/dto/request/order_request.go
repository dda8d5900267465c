package request

import (
	"strings"

	"checkout-service/internal/domain/entities"
)

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) ResolveStatus() entities.PaymentStatus {
	return entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
