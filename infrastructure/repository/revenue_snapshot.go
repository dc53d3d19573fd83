package repository

//go:generate mockgen -source=revenue_snapshot.go -destination=mocks/revenue_snapshot.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	revenueSnapshotKeyPrefix = "revenue_ranking:snapshot"
	revenueSnapshotLatestKey = "revenue_ranking:snapshot:latest"

	// Mantém o mês anterior disponível para calcular mudanças de posição na virada do mês
	revenueSnapshotTTL = 62 * 24 * time.Hour
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RevenueSnapshotRepository interface {
	// Get retorna nil, nil quando não existe snapshot para o mês (formato mm-yyyy)
	Get(ctx context.Context, month string) (*domain.RevenueRankingSnapshot, error)
	// Latest retorna nil, nil quando nenhum snapshot foi gerado
	Latest(ctx context.Context) (*domain.RevenueRankingSnapshot, error)
	Save(ctx context.Context, snapshot *domain.RevenueRankingSnapshot) error
}

type revenueSnapshotRepository struct {
	client goredis.UniversalClient
}

func NewRevenueSnapshotRepository(client goredis.UniversalClient) RevenueSnapshotRepository {
	return &revenueSnapshotRepository{
		client: client,
	}
}

func (r *revenueSnapshotRepository) Get(ctx context.Context, month string) (*domain.RevenueRankingSnapshot, error) {
	return r.load(ctx, snapshotKey(month))
}

func (r *revenueSnapshotRepository) Latest(ctx context.Context) (*domain.RevenueRankingSnapshot, error) {
	month, err := r.client.Get(ctx, revenueSnapshotLatestKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar último snapshot no Redis: %w", err)
	}

	return r.load(ctx, snapshotKey(month))
}

func (r *revenueSnapshotRepository) Save(ctx context.Context, snapshot *domain.RevenueRankingSnapshot) error {
	if snapshot == nil {
		return nil
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, snapshotKey(snapshot.Month), payload, revenueSnapshotTTL)
		pipe.Set(ctx, revenueSnapshotLatestKey, snapshot.Month, revenueSnapshotTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao salvar snapshot no Redis: %w", err)
	}

	return nil
}

func (r *revenueSnapshotRepository) load(ctx context.Context, key string) (*domain.RevenueRankingSnapshot, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar snapshot no Redis: %w", err)
	}

	snapshot := &domain.RevenueRankingSnapshot{}
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao deserializar snapshot: %w", err)
	}

	return snapshot, nil
}

func snapshotKey(month string) string {
	return fmt.Sprintf("%s:%s", revenueSnapshotKeyPrefix, month)
}
