package sahaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для наблюдения за исходящими запросами
type MetricsObserver interface {
	ObserveUpstreamRequest(operation string, err error, duration time.Duration)
}

// Client клиент для работы с бэкендом Saha API.
// Бэкенд - единственный владелец данных полей, отзывов и бронирований;
// клиент не принимает решений, только транспорт и нормализация ошибок.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    MetricsObserver
	log        Logger
}

// NewClient создает новый экземпляр клиента Saha API
func NewClient(baseURL string, timeout time.Duration, rps float64, burst int, metrics MetricsObserver, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		metrics: metrics,
		log:     log,
	}
}

// do выполняет один запрос к бэкенду: rate limit, заголовки, разбор ответа.
// Для retryable запросов (только чтение) транспортная ошибка повторяется
// один раз; мутации не повторяются никогда, чтобы исключить двойное
// бронирование.
func (c *Client) do(ctx context.Context, operation, method, path, token string, body interface{}, headers map[string]string, out interface{}, retryable bool) error {
	start := time.Now()
	err := c.doOnce(ctx, method, path, token, body, headers, out)
	if err != nil && retryable && isTransportError(err) {
		c.log.Warn("sahaapi: %s transport error, retrying once: %v", operation, err)
		err = c.doOnce(ctx, method, path, token, body, headers, out)
	}
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(operation, err, time.Since(start))
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path, token string, body interface{}, headers map[string]string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// decodeError нормализует не-2xx ответ: предпочитаем message из тела,
// затем текст статуса, затем generic сообщение.
func (c *Client) decodeError(resp *http.Response) error {
	message := ""

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(body) > 0 {
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil {
			message = errResp.Message
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = "something went wrong"
	}

	sentinel := ErrBackend
	switch resp.StatusCode {
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = ErrUnauthorized
	case http.StatusConflict:
		sentinel = ErrConflict
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		sentinel:   sentinel,
	}
}

// isTransportError отличает ошибку транспорта от ответа бэкенда:
// повторять безопасно только первую.
func isTransportError(err error) bool {
	return errors.Is(err, ErrInternal)
}
