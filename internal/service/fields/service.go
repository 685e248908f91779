package fields

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/infra/cache"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/fields/models"
)

// Service сервис для работы с полями витрины.
// Читает сквозь кеш: промах кеша ведёт к походу на бэкенд и
// нормализации сырого ответа, попадание отдаёт локальную копию.
type Service struct {
	client      SahaAPIClient
	fieldCache  FieldCache
	transformer Transformer
	logger      Logger
}

// NewService создает новый экземпляр сервиса полей
func NewService(client SahaAPIClient, fieldCache FieldCache, transformer Transformer, logger Logger) *Service {
	return &Service{
		client:      client,
		fieldCache:  fieldCache,
		transformer: transformer,
		logger:      logger,
	}
}

// GetField получает нормализованное поле по ID (кеш, затем бэкенд)
func (s *Service) GetField(ctx context.Context, fieldID string) (*domain.Field, error) {
	cached, err := s.fieldCache.GetField(ctx, fieldID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("GetField: cache error for field id=%s: %v", fieldID, err)
	}

	payload, err := s.client.GetField(ctx, fieldID)
	if err != nil {
		if errors.Is(err, sahaapi.ErrNotFound) {
			s.logger.Warn("GetField: field id=%s not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetField: backend error for field id=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetField - backend error: %v", ErrInternal, err)
	}

	field := s.transformer.Field(payload)
	if err := s.fieldCache.SetField(ctx, &field); err != nil {
		s.logger.Warn("GetField: failed to cache field id=%s: %v", fieldID, err)
	}

	return &field, nil
}

// ListFields получает список карточек полей (кеш, затем бэкенд).
// Нормализация тотальная: нечитаемые записи пропускаются, список
// отдается всегда.
func (s *Service) ListFields(ctx context.Context) ([]models.FieldCard, error) {
	cached, err := s.fieldCache.GetFieldList(ctx)
	if err == nil {
		return models.FromDomainFieldList(cached), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("ListFields: cache error: %v", err)
	}

	raw, err := s.client.ListFields(ctx)
	if err != nil {
		s.logger.Error("ListFields: backend error: %v", err)
		return nil, fmt.Errorf("%w: ListFields - backend error: %v", ErrBackendUnavailable, err)
	}

	list := s.transformer.Fields(raw)
	if err := s.fieldCache.SetFieldList(ctx, list); err != nil {
		s.logger.Warn("ListFields: failed to cache field list: %v", err)
	}

	s.logger.Info("ListFields: fetched %d fields from backend", len(list))
	return models.FromDomainFieldList(list), nil
}
