// Package transform нормализует сырые payload-ы Saha API в строго
// типизированные доменные модели. Слой тотальный: частичный или битый
// payload деградирует до дефолтов и пропусков с логом, но никогда не
// роняет вычисление доступности или рендеринг.
package transform

import (
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Transformer преобразует payload-ы бэкенда в доменные модели с учётом
// политики (таймзона слотов, порог премиальности).
type Transformer struct {
	loc              *time.Location
	premiumThreshold float64
	log              Logger
}

// New создает Transformer
func New(loc *time.Location, premiumThreshold float64, log Logger) *Transformer {
	return &Transformer{
		loc:              loc,
		premiumThreshold: premiumThreshold,
		log:              log,
	}
}

// ParseInstants разбирает ISO-8601 метки занятых слотов. Одна битая запись
// не должна делать недоступной всю дневную сетку - она пропускается с логом.
func (t *Transformer) ParseInstants(raw []string) domain.BookedSlotSet {
	set := make(domain.BookedSlotSet, 0, len(raw))
	for _, s := range raw {
		instant, err := time.Parse(time.RFC3339, s)
		if err != nil {
			t.log.Warn("transform: skipping malformed booked instant %q: %v", s, err)
			continue
		}
		set = append(set, instant)
	}
	return set
}
