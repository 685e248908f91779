package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключа нет в кеше
	ErrCacheMiss = errors.New("cache: miss")

	// ErrInternal возвращается при ошибках redis или сериализации
	ErrInternal = errors.New("cache: internal error")
)
