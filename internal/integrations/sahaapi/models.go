package sahaapi

// Модели сырых payload-ов бэкенда. Поля намеренно указательные: бэкенд может
// прислать частичный или нетипизированный документ, нормализация происходит
// в internal/transform.

// FieldPayload сырой документ поля (halı saha) из Saha API
type FieldPayload struct {
	ID           string          `json:"_id"`
	Name         *string         `json:"name"`
	Location     *string         `json:"location"`
	Description  *string         `json:"description"`
	PricePerHour *float64        `json:"pricePerHour"`
	OpenHour     *string         `json:"openHour"`  // "HH:MM"
	CloseHour    *string         `json:"closeHour"` // "HH:MM"
	Rating       *float64        `json:"rating"`
	ReviewCount  *int            `json:"reviewCount"`
	Images       []string        `json:"images"`
	Amenities    map[string]bool `json:"amenities"`
	BookedDates  []string        `json:"bookedDates"` // ISO-8601 instants
}

// UserRef денормализованная ссылка на пользователя
type UserRef struct {
	ID   string  `json:"_id"`
	Name *string `json:"name"`
}

// ReviewPayload сырой документ отзыва
type ReviewPayload struct {
	ID        string   `json:"_id"`
	FieldID   string   `json:"fieldId"`
	UserID    *string  `json:"userId"`
	User      *UserRef `json:"user"`
	Rating    *int     `json:"rating"`
	Comment   *string  `json:"comment"`
	CreatedAt *string  `json:"createdAt"`
}

// ReservationPayload сырой документ бронирования
type ReservationPayload struct {
	ID             string        `json:"_id"`
	UserID         string        `json:"userId"`
	FieldID        string        `json:"fieldId"`
	Date           string        `json:"date"` // ISO-8601 instant
	Status         string        `json:"status"`
	Recurring      bool          `json:"isRecurring"`
	SubscriptionID *string       `json:"subscriptionId"`
	Field          *FieldPayload `json:"field"`
	User           *UserRef      `json:"user"`
	CreatedAt      *string       `json:"createdAt"`
	UpdatedAt      *string       `json:"updatedAt"`
}

// UserPayload пользователь из ответа аутентификации
type UserPayload struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthPayload ответ логина/регистрации
type AuthPayload struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// CreateReservationRequest запрос на создание бронирования
type CreateReservationRequest struct {
	UserID         string  `json:"userId"`
	FieldID        string  `json:"fieldId"`
	Date           string  `json:"date"` // ISO-8601 instant
	Status         string  `json:"status,omitempty"`
	Recurring      bool    `json:"isRecurring,omitempty"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
}

// UpdateReservationRequest частичное обновление бронирования
type UpdateReservationRequest struct {
	Status *string `json:"status,omitempty"`
}

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	UserID  string `json:"userId"`
	FieldID string `json:"fieldId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest запрос на изменение отзыва
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// LoginRequest запрос логина
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest запрос регистрации
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse модель ошибки от Saha API
type ErrorResponse struct {
	Message string `json:"message"`
}
