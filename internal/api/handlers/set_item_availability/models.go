package set_item_availability

import (
	"github.com/yagera/bazaar-mtuci/internal/service/availability/models"
)

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	Windows []models.WindowInput `json:"windows"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetAvailabilityRequest) ToServiceRequest(itemID, userID int64) *models.SetAvailabilityRequest {
	return &models.SetAvailabilityRequest{
		UserID:  userID,
		ItemID:  itemID,
		Windows: r.Windows,
	}
}
