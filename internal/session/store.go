package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gestaoweb/portal-documentos/internal/config"
)

type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Data é o valor da sessão: dois slots de identidade independentes
// (administrador e cliente) que nunca se misturam, mais as mensagens
// transitórias exibidas no próximo request.
type Data struct {
	AdminID   uint    `json:"admin_id,omitempty"`
	ClienteID uint    `json:"cliente_id,omitempty"`
	Flashes   []Flash `json:"flashes,omitempty"`
}

func (d *Data) AddFlash(level, message string) {
	d.Flashes = append(d.Flashes, Flash{Level: level, Message: message})
}

// PopFlashes devolve as mensagens pendentes e limpa a fila.
func (d *Data) PopFlashes() []Flash {
	out := d.Flashes
	d.Flashes = nil
	return out
}

type Store interface {
	// Load devolve nil quando o token não existe.
	Load(ctx context.Context, token string) (*Data, error)
	Save(ctx context.Context, token string, data *Data) error
	Delete(ctx context.Context, token string) error
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg *config.Config) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisStore{
		client: client,
		ttl:    cfg.SessionTTL,
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Load(ctx context.Context, token string) (*Data, error) {
	val, err := s.client.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &data, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, data *Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	if err := s.client.Set(ctx, key(token), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func key(token string) string {
	return "sessao:" + token
}
