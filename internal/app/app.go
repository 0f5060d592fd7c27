package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "payrollCalc/internal/api/http"
	payrollctrl "payrollCalc/internal/api/http/controllers/payroll"
	"payrollCalc/internal/api/http/controllers/system"
	"payrollCalc/internal/domain"
	"payrollCalc/internal/history"
	"payrollCalc/internal/infrastructure/click"
	"payrollCalc/internal/infrastructure/file"
	"payrollCalc/internal/infrastructure/kafka"
	"payrollCalc/internal/infrastructure/memory"
	"payrollCalc/internal/infrastructure/mongo"
	"payrollCalc/internal/infrastructure/payrollapi"
	"payrollCalc/internal/infrastructure/pg"
	"payrollCalc/internal/infrastructure/redis"
	"payrollCalc/internal/pkg/logger"
	"payrollCalc/internal/ports"
	payrollUsecase "payrollCalc/internal/usecase/payroll"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает выбранный бэкенд истории и опциональную аналитику,
// собирает зависимости и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := a.newStorage(ctx, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer closeKV()

	store := history.NewStore(kv, log)
	calc := payrollapi.New(&a.cfg.API, log)

	var producer ports.IProducer
	if a.cfg.Kafka.Enabled {
		p := kafka.NewProducer(&a.cfg.Kafka)
		defer p.Close()
		producer = p
	}

	var analytics ports.ICalculationAnalytics
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewCalculationWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		analytics = writer
	}

	uc := payrollUsecase.New(calc, store, producer, analytics, log)
	uc.Subscribe(func(st domain.SessionState) {
		log.Debug("session state changed", "phase", st.Phase)
	})

	if a.cfg.Kafka.Enabled && a.cfg.ClickHouse.Enabled {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(kv, log),
		payrollctrl.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "storage", a.cfg.Storage.Backend)

	return srv.Start(ctx)
}

// newStorage подключает key-value бэкенд по конфигу и возвращает функцию закрытия.
func (a *App) newStorage(ctx context.Context, log *slog.Logger) (ports.IKeyValue, func(), error) {
	noop := func() {}
	switch a.cfg.Storage.Backend {
	case "file", "":
		kv, err := file.New(&a.cfg.File)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil
	case "memory":
		return memory.New(), noop, nil
	case "redis":
		cli, err := redis.New(&a.cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return redis.NewKV(cli, log), func() { _ = cli.Close() }, nil
	case "pg":
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewKV(db, log), func() { _ = db.Close() }, nil
	case "mongo":
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, noop, err
		}
		return mongo.NewKV(cli, log), func() { _ = cli.Disconnect(context.Background()) }, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}
