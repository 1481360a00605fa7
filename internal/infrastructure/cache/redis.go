// Package cache fornece rate limiting e cache de listas de referência em Redis.
//
// Estratégia de chaves:
//   - Quota por usuário:  achei:rl:v1:{user_id}:{endpoint} → TTL = janela fixa
//   - Listas de referência:  achei:ref:v1:{nome}           → TTL 24 h
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/acheileads/achei-leads-api/internal/application/ports"
)

const (
	rateLimitPrefix = "achei:rl:v1:"
	refPrefix       = "achei:ref:v1:"

	// ReferenceTTL validade das listas de CNAEs e municípios em cache.
	ReferenceTTL = 24 * time.Hour
)

var _ ports.RateLimiter = (*Client)(nil)
var _ ports.ReferenceCache = (*Client)(nil)

// Client envolve redis.Client com os helpers do domínio.
type Client struct {
	rdb    *redis.Client
	limite int
	janela time.Duration
}

// New cria o cliente. addr no formato "localhost:6379".
// limite e janela definem a quota de busca por usuário/endpoint.
func New(addr, password string, db, limite int, janela time.Duration) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Client{rdb: rdb, limite: limite, janela: janela}
}

// Ping verifica conectividade.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close fecha a conexão.
func (c *Client) Close() error { return c.rdb.Close() }

// ─── Rate limiting ────────────────────────────────────────────────────────────

// Allow verifica a quota da janela corrente e, se houver espaço, consome uma
// unidade. São duas chamadas remotas (GET e depois INCR): duas requisições
// simultâneas na borda da quota podem ambas passar, o que é aceitável para
// controle de custo de provedor.
func (c *Client) Allow(ctx context.Context, userID, endpoint string) (bool, int, error) {
	key := rateLimitPrefix + userID + ":" + endpoint

	usados, err := c.rdb.Get(ctx, key).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, fmt.Errorf("rate limit get: %w", err)
	}
	if usados >= c.limite {
		return false, 0, nil
	}

	novo, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit incr: %w", err)
	}
	if novo == 1 {
		// Primeira requisição da janela define o TTL.
		if err := c.rdb.Expire(ctx, key, c.janela).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	restantes := c.limite - int(novo)
	if restantes < 0 {
		restantes = 0
	}
	return true, restantes, nil
}

// ─── Cache de referência ──────────────────────────────────────────────────────

// Get devolve o valor em cache como JSON bruto, ou nil em cache miss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, refPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Set grava o valor com o TTL dado.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, refPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
