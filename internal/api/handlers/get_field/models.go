package get_field

import (
	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

// FieldResponse HTTP response model детальной карточки поля
type FieldResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Location     string           `json:"location"`
	Description  string           `json:"description"`
	PricePerHour float64          `json:"pricePerHour"`
	OpenHour     string           `json:"openHour"`
	CloseHour    string           `json:"closeHour"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"reviewCount"`
	Images       []string         `json:"images"`
	Amenities    domain.Amenities `json:"amenities"`
	IsPremium    bool             `json:"isPremium"`
	FreeSlots    int              `json:"freeSlots"`
	FreeKnown    bool             `json:"freeKnown"`
}

// FromDomainField конвертирует domain поле в HTTP response
func FromDomainField(f *domain.Field) *FieldResponse {
	free, known := domain.CountAvailable(f.OpenHour, f.CloseHour, len(f.BookedSlots))
	return &FieldResponse{
		ID:           f.ID,
		Name:         f.Name,
		Location:     f.Location,
		Description:  f.Description,
		PricePerHour: f.PricePerHour,
		OpenHour:     f.OpenHour.String(),
		CloseHour:    f.CloseHour.String(),
		Rating:       f.Rating,
		ReviewCount:  f.ReviewCount,
		Images:       f.Images,
		Amenities:    f.Amenities,
		IsPremium:    f.IsPremium,
		FreeSlots:    free,
		FreeKnown:    known,
	}
}
