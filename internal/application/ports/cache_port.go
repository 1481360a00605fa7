package ports

import (
	"context"
	"time"
)

// RateLimiter porta do contador de quota em janela fixa por usuário/endpoint.
// Allow verifica e incrementa em duas chamadas remotas (GET + INCR no Redis).
type RateLimiter interface {
	Allow(ctx context.Context, userID, endpoint string) (allowed bool, remaining int, err error)
}

// ReferenceCache porta do cache com TTL das listas de referência (CNAEs, municípios).
// Substitui os caches em memória sem invalidação da versão original.
type ReferenceCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil em cache miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
