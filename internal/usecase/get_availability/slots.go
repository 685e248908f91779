package get_availability

import (
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/pkg/types"
)

// slotGrid строит дневную сетку: фиксированное перечисление часов,
// обрезанное по рабочему окну поля, с признаками "занят" и "в прошлом".
// Слот занят, только если его абсолютный instant присутствует в booked
// (сравнение моментов, не строк).
func slotGrid(
	date time.Time,
	openHour, closeHour types.TimeString,
	booked domain.BookedSlotSet,
	now time.Time,
	loc *time.Location,
) []Slot {
	open, openErr := openHour.Hour()
	closing, closeErr := closeHour.Hour()
	hoursKnown := openErr == nil && closeErr == nil && open < closing

	slots := make([]Slot, 0)
	for _, label := range domain.HourLabels() {
		hour, err := label.Hour()
		if err != nil {
			continue
		}

		// Рабочее окно обрезает сетку; при нечитаемых часах работы
		// показываем полную сетку, а не прячем весь день
		if hoursKnown && (hour < open || hour >= closing) {
			continue
		}

		instant, err := domain.ToInstant(date, label, loc)
		if err != nil {
			continue
		}

		slots = append(slots, Slot{
			Hour:   label,
			Booked: booked.Contains(instant),
			Past:   !instant.After(now),
		})
	}

	return slots
}
