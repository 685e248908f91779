package transform

import (
	"encoding/json"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/pkg/types"
)

// Дефолты для частичных документов поля
const (
	fallbackFieldName    = "Без названия"
	fallbackFieldAddress = "Адрес не указан"
)

// fallbackImages фиксированный упорядоченный набор изображений-заглушек,
// когда бэкенд не прислал ни одного.
var fallbackImages = []string{
	"/static/fields/placeholder-1.jpg",
	"/static/fields/placeholder-2.jpg",
	"/static/fields/placeholder-3.jpg",
}

// Field нормализует документ поля. Отсутствующие атрибуты заменяются
// заглушками; рейтинг принудительно обнуляется при нулевом числе отзывов,
// чтобы не показывать оценку без подтверждающих отзывов.
func (t *Transformer) Field(p *sahaapi.FieldPayload) domain.Field {
	field := domain.Field{
		ID:       p.ID,
		Name:     fallbackFieldName,
		Location: fallbackFieldAddress,
		Images:   fallbackImages,
	}

	if p.Name != nil && *p.Name != "" {
		field.Name = *p.Name
	}
	if p.Location != nil && *p.Location != "" {
		field.Location = *p.Location
	}
	if p.Description != nil {
		field.Description = *p.Description
	}
	if p.PricePerHour != nil {
		field.PricePerHour = *p.PricePerHour
	}
	if p.OpenHour != nil {
		field.OpenHour = types.TimeString(*p.OpenHour)
	}
	if p.CloseHour != nil {
		field.CloseHour = types.TimeString(*p.CloseHour)
	}
	if p.ReviewCount != nil {
		field.ReviewCount = *p.ReviewCount
	}
	if field.ReviewCount > 0 && p.Rating != nil {
		field.Rating = *p.Rating
	}
	if len(p.Images) > 0 {
		field.Images = p.Images
	}

	field.Amenities = domain.Amenities{
		Shower:   p.Amenities["shower"],
		Parking:  p.Amenities["parking"],
		Cafe:     p.Amenities["cafe"],
		Lighting: p.Amenities["lighting"],
		Lockers:  p.Amenities["lockers"],
	}

	field.IsPremium = field.PricePerHour > t.premiumThreshold
	field.BookedSlots = t.ParseInstants(p.BookedDates)

	return field
}

// Fields нормализует сырой список полей. Не-массив или null дают пустой
// список; битые элементы пропускаются.
func (t *Transformer) Fields(raw json.RawMessage) []domain.Field {
	fields := make([]domain.Field, 0)

	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		t.log.Warn("transform: field list payload is not an array, returning empty list")
		return fields
	}

	for i, item := range items {
		var payload sahaapi.FieldPayload
		if err := json.Unmarshal(item, &payload); err != nil || payload.ID == "" {
			t.log.Warn("transform: skipping malformed field entry at index %d", i)
			continue
		}
		fields = append(fields, t.Field(&payload))
	}

	return fields
}
