package reviews

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review not found")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("field not found")

	// ErrAccessDenied возвращается при попытке изменить чужой отзыв
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRating возвращается, когда оценка вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrEmptyComment возвращается, когда текст отзыва пуст
	ErrEmptyComment = errors.New("comment must not be empty")

	// ErrCommentTooLong возвращается, когда текст отзыва превышает лимит
	ErrCommentTooLong = errors.New("comment is too long")

	// ErrBackendRejected возвращается, когда бэкенд отклонил операцию
	ErrBackendRejected = errors.New("backend rejected review operation")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews service: internal error")
)
