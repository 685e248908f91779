package models

import (
	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

// FieldCard карточка поля для списка витрины
type FieldCard struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Location     string           `json:"location"`
	PricePerHour float64          `json:"pricePerHour"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"reviewCount"`
	Images       []string         `json:"images"`
	IsPremium    bool             `json:"isPremium"`
	FreeSlots    int              `json:"freeSlots"` // Грубая оценка свободных слотов
	FreeKnown    bool             `json:"freeKnown"` // false, если часы работы нечитаемы
	Amenities    domain.Amenities `json:"amenities"`
}

// FromDomainField конвертирует domain поле в карточку
func FromDomainField(f *domain.Field) *FieldCard {
	free, known := domain.CountAvailable(f.OpenHour, f.CloseHour, len(f.BookedSlots))
	return &FieldCard{
		ID:           f.ID,
		Name:         f.Name,
		Location:     f.Location,
		PricePerHour: f.PricePerHour,
		Rating:       f.Rating,
		ReviewCount:  f.ReviewCount,
		Images:       f.Images,
		IsPremium:    f.IsPremium,
		FreeSlots:    free,
		FreeKnown:    known,
		Amenities:    f.Amenities,
	}
}

// FromDomainFieldList конвертирует список domain полей в карточки
func FromDomainFieldList(list []domain.Field) []FieldCard {
	cards := make([]FieldCard, 0, len(list))
	for i := range list {
		cards = append(cards, *FromDomainField(&list[i]))
	}
	return cards
}
