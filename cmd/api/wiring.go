package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"estimaciones_obra/internal/adapter/http/handlers"
	"estimaciones_obra/internal/adapter/http/routes"
	"estimaciones_obra/internal/adapter/persistence/postgres"
	"estimaciones_obra/internal/adapter/persistence/repository"
	"estimaciones_obra/internal/config"
	"estimaciones_obra/internal/infrastructure/cache"
	"estimaciones_obra/internal/infrastructure/database"
	"estimaciones_obra/internal/infrastructure/notification"
	"estimaciones_obra/internal/infrastructure/payments"
	"estimaciones_obra/internal/infrastructure/tracing"
	"estimaciones_obra/internal/usecase"
	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const postgresMaxConns = 10

type storage struct {
	estimations interfaces.IEstimationRepository
	history     interfaces.IApprovalHistoryRepository
	projects    interfaces.IProjectRepository
	payments    interfaces.IBillingPaymentRepository
	close       func()
}

func openStorage(ctx context.Context, cfg config.Config, migrate bool) (storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, postgresMaxConns)
		if err != nil {
			return storage{}, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if migrate {
			if err := database.RunMigrations(ctx, db); err != nil {
				closeDB()
				return storage{}, err
			}
		}
		repos := postgres.NewRepositories(db)
		return storage{
			estimations: repos.Estimations,
			history:     repos.History,
			projects:    repos.Projects,
			payments:    repos.Payments,
			close:       closeDB,
		}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return storage{}, err
		}
		if migrate {
			if err := database.EnsureTables(ctx, ddb, cfg); err != nil {
				return storage{}, err
			}
		}
		return storage{
			estimations: repository.NewEstimationDynamoRepository(ddb, cfg.EstimationsTable, cfg.ApprovalHistoryTable),
			history:     repository.NewApprovalHistoryDynamoRepository(ddb, cfg.ApprovalHistoryTable),
			projects:    repository.NewProjectDynamoRepository(ddb, cfg.ProjectsTable),
			payments:    repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable),
			close:       func() {},
		}, nil
	}
	return storage{}, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.StorageDriver)
}

type app struct {
	router  *gin.Engine
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp composes storage, the approval lock, the notification worker, the payment
// gateway and the HTTP router. The notification worker drains its queue on close.
func buildApp(ctx context.Context, cfg config.Config, migrate bool) (*app, error) {
	a := &app{}

	if cfg.TracingEnabled {
		shutdown, err := tracing.Init(routes.ServiceName, version, os.Stdout)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = shutdown(context.Background()) })
	}

	store, err := openStorage(ctx, cfg, migrate)
	if err != nil {
		a.close()
		return nil, err
	}
	a.closers = append(a.closers, store.close)

	var locker interfaces.IApprovalLocker
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		locker = cache.NewRedisApprovalLocker(client, cfg.LockTTL)
	} else {
		log.Printf("[main] REDIS_URL not set; approvals are serialized in-process only")
		locker = cache.NewLocalApprovalLocker()
	}

	var publisher interfaces.INotificationPublisher = notification.LoggingPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := notification.NewKafkaPublisher(cfg.KafkaBrokers, cfg.Topic)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = kp.Close() })
		publisher = kp
	}
	queue := notification.NewQueue(publisher, cfg.QueueSize)
	workerCtx, stopWorker := context.WithCancel(ctx)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		queue.Run(workerCtx)
	}()
	// Runs before the publisher is closed so queued notifications are flushed.
	a.closers = append(a.closers, func() {
		stopWorker()
		<-workerDone
	})

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("[main] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mp
	}

	estimationUseCase := usecase.NewEstimationUseCase(store.estimations, store.history, store.projects, cfg.DelayThreshold)
	approvalUseCase := usecase.NewApprovalUseCase(store.estimations, queue, locker)
	projectUseCase := usecase.NewProjectUseCase(store.projects)
	paymentUseCase := usecase.NewBillingPaymentUseCase(store.payments, store.estimations, gateway, approvalUseCase, usecase.PaymentOptions{
		MockMode:        cfg.PaymentGatewayMock,
		SandboxMode:     cfg.SandboxMode(),
		TestPayerEmail:  cfg.TestPayerEmail,
		TestPayerUserID: cfg.TestPayerUserID,
	})

	a.router = routes.NewRouter(routes.Handlers{
		Projects:    handlers.NewProjectHandler(projectUseCase, estimationUseCase),
		Estimations: handlers.NewEstimationHandler(estimationUseCase, approvalUseCase),
		Payments:    handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
	}, routes.Options{
		JWTSecret: cfg.JWTSecret,
		Tracing:   cfg.TracingEnabled,
		Swagger:   true,
	})
	return a, nil
}
