package cancel_booking

import (
	"time"

	updateStatus "github.com/yagera/bazaar-mtuci/internal/usecase/update_booking_status"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	ItemID     int64  `json:"itemId"`
	RenterID   int64  `json:"renterId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	TotalPrice string `json:"totalPrice"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		ItemID:     resp.ItemID,
		RenterID:   resp.RenterID,
		StartTime:  resp.StartTime.Format(time.RFC3339),
		EndTime:    resp.EndTime.Format(time.RFC3339),
		TotalPrice: resp.TotalPrice.String(),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
