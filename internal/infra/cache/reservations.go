package cache

import (
	"context"
	"errors"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

const (
	cacheNameReservation     = "reservation"
	cacheNameReservationList = "reservation_list"
)

func reservationKey(reservationID string) string {
	return "reservation:" + reservationID
}

func userReservationsKey(userID string) string {
	return "reservations:user:" + userID
}

// GetReservation читает бронирование по идентификатору
func (c *Cache) GetReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.get(ctx, cacheNameReservation, reservationKey(reservationID), &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// SetReservation сохраняет бронирование
func (c *Cache) SetReservation(ctx context.Context, reservation *domain.Reservation) error {
	return c.set(ctx, reservationKey(reservation.ID), reservation, c.reservationTTL)
}

// GetUserReservations читает список бронирований пользователя (newest-first)
func (c *Cache) GetUserReservations(ctx context.Context, userID string) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := c.get(ctx, cacheNameReservationList, userReservationsKey(userID), &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// SetUserReservations сохраняет список бронирований пользователя
func (c *Cache) SetUserReservations(ctx context.Context, userID string, reservations []domain.Reservation) error {
	return c.set(ctx, userReservationsKey(userID), reservations, c.reservationTTL)
}

// PushReservation вставляет авторитетную запись в голову списка пользователя
// (список упорядочен newest-first) и обновляет одиночный ключ. Если списка в
// кеше нет - ничего не выдумываем, следующее чтение сходит на бэкенд.
func (c *Cache) PushReservation(ctx context.Context, reservation *domain.Reservation) error {
	if err := c.SetReservation(ctx, reservation); err != nil {
		return err
	}

	existing, err := c.GetUserReservations(ctx, reservation.UserID)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil
		}
		return err
	}

	updated := make([]domain.Reservation, 0, len(existing)+1)
	updated = append(updated, *reservation)
	updated = append(updated, existing...)

	return c.SetUserReservations(ctx, reservation.UserID, updated)
}

// ReplaceReservation заменяет запись с тем же идентификатором в одиночном
// ключе и в списке пользователя на авторитетную версию.
func (c *Cache) ReplaceReservation(ctx context.Context, reservation *domain.Reservation) error {
	if err := c.SetReservation(ctx, reservation); err != nil {
		return err
	}

	existing, err := c.GetUserReservations(ctx, reservation.UserID)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil
		}
		return err
	}

	for i := range existing {
		if existing[i].ID == reservation.ID {
			existing[i] = *reservation
		}
	}

	return c.SetUserReservations(ctx, reservation.UserID, existing)
}

// InvalidateUserReservations сбрасывает список бронирований пользователя
func (c *Cache) InvalidateUserReservations(ctx context.Context, userID string) error {
	return c.del(ctx, userReservationsKey(userID))
}
