package check_availability

import (
	checkAvailability "github.com/yagera/bazaar-mtuci/internal/usecase/check_availability"
)

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available  bool    `json:"available"`
	Reason     string  `json:"reason,omitempty"`
	TotalPrice *string `json:"totalPrice,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	result := &CheckAvailabilityResponse{
		Available: resp.Available,
		Reason:    resp.Reason,
	}

	if resp.TotalPrice != nil {
		price := resp.TotalPrice.String()
		result.TotalPrice = &price
	}

	return result
}
