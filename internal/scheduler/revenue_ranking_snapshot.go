// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-analytics-api/pkg/metrics"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

const (
	snapshotStatusSuccess = "success"
	snapshotStatusError   = "error"
	snapshotStatusSkipped = "skipped"
)

type RevenueSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
	TopK         int
}

// RevenueRankingSnapshotService recalcula diariamente o ranking de receita do mês corrente
type RevenueRankingSnapshotService struct {
	scheduler           *gocron.Scheduler
	ranker              ranking.RankingService
	snapshotRepo        repository.RevenueSnapshotRepository
	config              RevenueSnapshotConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewRevenueRankingSnapshotService(
	ranker ranking.RankingService,
	snapshotRepo repository.RevenueSnapshotRepository,
	cfg *config.Config,
) *RevenueRankingSnapshotService {
	snapshotConfig := RevenueSnapshotConfig{
		CronSchedule: cfg.RevenueSnapshot.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.RevenueSnapshot.Enabled,      // Default: desabilitado
		TopK:         cfg.RevenueSnapshot.TopK,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"top_k":         snapshotConfig.TopK,
	}).Info("Configuração do agendador do snapshot de ranking de receita carregada")

	return &RevenueRankingSnapshotService{
		scheduler:    gocron.NewScheduler(time.UTC),
		ranker:       ranker,
		snapshotRepo: snapshotRepo,
		config:       snapshotConfig,
		now:          time.Now,
	}
}

func (s *RevenueRankingSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do snapshot de ranking de receita desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do snapshot de ranking de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateRevenueSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do snapshot de ranking de receita")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de ranking de receita: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do snapshot de ranking de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateRevenueSnapshot calcula e salva o snapshot do mês de ontem. Execuções concorrentes são ignoradas.
func (s *RevenueRankingSnapshotService) UpdateRevenueSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Snapshot de ranking de receita já está em execução")
		metrics.ObserveSnapshotRun(snapshotStatusSkipped)
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	_, err := s.processSnapshotWithDate(ctx, s.lastSyncStartedAt)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		metrics.ObserveSnapshotRun(snapshotStatusError)
		return err
	}

	metrics.ObserveSnapshotRun(snapshotStatusSuccess)
	return nil
}

// processSnapshotWithDate calcula o ranking do primeiro dia do mês de ontem até o fim de ontem (UTC)
func (s *RevenueRankingSnapshotService) processSnapshotWithDate(ctx context.Context, processingDate time.Time) (*domain.RevenueRankingSnapshot, error) {
	yesterday := processingDate.UTC().AddDate(0, 0, -1)
	startDate := utils.FirstDayOfMonth(yesterday)
	endDate := utils.EndOfDay(yesterday)
	month := utils.MonthKey(yesterday)

	logger := logrus.WithFields(logrus.Fields{
		"month":      month,
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	})
	logger.Info("Iniciando atualização do snapshot de ranking de receita")

	var (
		wg          sync.WaitGroup
		entries     []domain.RevenueRankEntry
		previous    *domain.RevenueRankingSnapshot
		rankErr     error
		previousErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		entries, rankErr = s.ranker.RankPeriod(ctx, domain.OrderFilter{StartDate: &startDate, EndDate: &endDate}, s.config.TopK)
	}()

	go func() {
		defer wg.Done()
		previous, previousErr = s.snapshotRepo.Get(ctx, month)
	}()

	wg.Wait()

	if rankErr != nil {
		logger.WithError(rankErr).Error("Erro ao calcular ranking de receita")
		return nil, rankErr
	}

	// Sem o snapshot anterior o ranking ainda é salvo, apenas sem variação de posição
	if previousErr != nil {
		logger.WithError(previousErr).Warn("Erro ao buscar snapshot anterior, variações de posição serão zeradas")
		previous = nil
	}

	rankingsBeforeUpdate := make(map[int64]domain.RevenueRankingItem)
	if previous != nil {
		for _, item := range previous.Ranking {
			rankingsBeforeUpdate[item.RestaurantID] = item
		}
	}

	updatedRankings := make([]*domain.RevenueRankingItem, 0, len(entries))
	for _, entry := range entries {
		entry.TotalRevenue = utils.RoundMoney(entry.TotalRevenue)
		updatedRankings = append(updatedRankings, &domain.RevenueRankingItem{RevenueRankEntry: entry})
	}

	s.updatePositions(updatedRankings, rankingsBeforeUpdate)

	id, err := utils.GenerateSnapshotID(month)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.RevenueRankingSnapshot{
		ID:         id,
		Month:      month,
		Ranking:    make([]domain.RevenueRankingItem, 0, len(updatedRankings)),
		LastUpdate: s.now().UTC(),
	}
	for _, item := range updatedRankings {
		snapshot.Ranking = append(snapshot.Ranking, *item)
	}

	if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
		logger.WithError(err).Error("Erro ao salvar snapshot de ranking de receita")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"restaurants": len(snapshot.Ranking),
	}).Info("Snapshot de ranking de receita atualizado")

	return snapshot, nil
}

// updatePositions numera o ranking e compara com as posições do snapshot anterior do mesmo mês
func (*RevenueRankingSnapshotService) updatePositions(
	updatedRankings []*domain.RevenueRankingItem,
	rankingsBeforeUpdate map[int64]domain.RevenueRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		return updatedRankings[i].TotalRevenue.GreaterThan(updatedRankings[j].TotalRevenue)
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[ranking.RestaurantID]
		if exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente a atualização do snapshot em background
func (s *RevenueRankingSnapshotService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Snapshot de ranking de receita já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização manual do snapshot de ranking de receita")
	go func() {
		if err := s.UpdateRevenueSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do snapshot de ranking de receita")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *RevenueRankingSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"top_k":                  s.config.TopK,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
