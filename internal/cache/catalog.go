package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/notetime/booking-api/internal/models"
)

// CatalogCache guarda a lista pública de serviços ativos. Agendamentos
// nunca passam por aqui; checagem de conflito sempre relê o banco.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(addr, password string, db int, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (c *CatalogCache) GetActiveServices(ctx context.Context) ([]models.Service, error) {
	data, err := c.client.Get(ctx, servicesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var services []models.Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *CatalogCache) SetActiveServices(ctx context.Context, services []models.Service) error {
	payload, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, servicesKey(), payload, c.ttl).Err()
}

// Invalidate descarta o cache após qualquer escrita no catálogo.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, servicesKey()).Err()
}

func servicesKey() string {
	return "cache:services:active"
}
