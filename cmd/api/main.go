package main

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/mongodb"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/redis"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/api"
	"github.com/vfg2006/restaurant-analytics-api/internal/api/handler"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/scheduler"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/listing"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/trending"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

// dataSource reúne os repositórios de leitura e o ciclo de vida da conexão
type dataSource struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	ping        handler.HealthChecker
	close       func()
}

// snapshotStore reúne o repositório de snapshots e o ciclo de vida do Redis.
// Com o snapshot desabilitado repo fica nil e o Redis não é conectado.
type snapshotStore struct {
	repo  repository.RevenueSnapshotRepository
	ping  handler.HealthChecker
	close func()
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := openDataSource(ctx, cfg)
	defer source.close()

	snapshots := openSnapshotStore(ctx, cfg)
	defer snapshots.close()

	trendsService := trending.NewService(source.orders)
	rankingService := ranking.NewService(source.orders, source.restaurants, snapshots.repo, cfg.Ranking.DefaultK)
	listingService := listing.NewService(source.restaurants)

	healthChecks := map[string]handler.HealthChecker{
		cfg.DataSource: source.ping,
	}

	var cronJobs handler.CronJobServices
	if snapshots.repo != nil {
		healthChecks["redis"] = snapshots.ping

		revenueSnapshotService := scheduler.NewRevenueRankingSnapshotService(rankingService, snapshots.repo, cfg)
		if err := revenueSnapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador do snapshot de ranking de receita")
		} else {
			logrus.Info("Agendador do snapshot de ranking de receita iniciado com sucesso")
		}
		cronJobs.RevenueSnapshotService = revenueSnapshotService
	}

	server, err := api.New(cfg, api.Services{
		Trends:   trendsService,
		Ranking:  rankingService,
		Listing:  listingService,
		CronJobs:     cronJobs,
		HealthChecks: healthChecks,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// openDataSource abre a fonte de pedidos e restaurantes escolhida em DATA_SOURCE
func openDataSource(ctx context.Context, cfg *config.Config) dataSource {
	switch cfg.DataSource {
	case config.DataSourceMongoDB:
		conn := mongoconn(ctx, cfg.MongoDB)
		return dataSource{
			orders:      repository.NewMongoOrderRepository(conn.Orders()),
			restaurants: repository.NewMongoRestaurantRepository(conn.Restaurants()),
			ping:        conn.Ping,
			close: func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := conn.Close(closeCtx); err != nil {
					logrus.WithError(err).Warn("Erro ao fechar conexão com MongoDB")
				}
			},
		}
	default:
		conn := pgconn(ctx, cfg.Database)
		return dataSource{
			orders:      repository.NewOrderRepository(conn),
			restaurants: repository.NewRestaurantRepository(conn),
			ping:        conn.Ping,
			close: func() {
				if err := conn.Close(); err != nil {
					logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
				}
			},
		}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func mongoconn(ctx context.Context, mongoConfig config.MongoDB) *mongodb.Connection {
	conn, err := mongodb.NewConnection(ctx, mongoConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
	}

	logrus.WithField("database", mongoConfig.Database).Info("Conexão com MongoDB estabelecida com sucesso")
	return conn
}

// openSnapshotStore conecta ao Redis apenas quando o snapshot de ranking de receita está habilitado
func openSnapshotStore(ctx context.Context, cfg *config.Config) snapshotStore {
	if !cfg.RevenueSnapshot.Enabled {
		logrus.Info("Snapshot de ranking de receita desabilitado, Redis não será conectado")
		return snapshotStore{close: func() {}}
	}

	client := redisconn(ctx, cfg.Redis)
	return snapshotStore{
		repo: repository.NewRevenueSnapshotRepository(client),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		close: func() {
			if err := client.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
			}
		},
	}
}

func redisconn(ctx context.Context, redisConfig config.Redis) *goredis.Client {
	client, err := redis.NewClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return client
}
