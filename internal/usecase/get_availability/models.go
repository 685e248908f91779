package get_availability

import (
	"time"

	"github.com/m04kA/HSB-ReservationService/pkg/types"
)

// Request модель запроса дневной сетки слотов
type Request struct {
	FieldID string    // ID поля
	Date    time.Time // Календарная дата (без времени)
}

// Response модель ответа с дневной сеткой
type Response struct {
	FieldID      string             // ID поля
	Date         time.Time          // Дата, на которую строилась сетка
	OpenHour     types.TimeString   // Час открытия поля
	CloseHour    types.TimeString   // Час закрытия поля
	Slots        []Slot             // Сетка слотов рабочего окна
	BookedLabels []types.TimeString // Занятые часы на эту дату, хронологически
	FreeCount    int                // Грубая оценка свободной емкости generic-дня
	CountKnown   bool               // false, если часы работы нечитаемы
}

// Slot один час дневной сетки
type Slot struct {
	Hour   types.TimeString // Метка часа ("14:00")
	Booked bool             // Занят на запрошенную дату
	Past   bool             // Уже в прошлом на момент запроса
}
