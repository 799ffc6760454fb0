package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/streets_etl/config"
	cachemem "github.com/Gunvolt24/streets_etl/internal/cache/memory"
	"github.com/Gunvolt24/streets_etl/internal/ports"
	"github.com/Gunvolt24/streets_etl/internal/rabbitmq"
	rest "github.com/Gunvolt24/streets_etl/internal/transport/http"
	"github.com/Gunvolt24/streets_etl/internal/usecase"
	"github.com/Gunvolt24/streets_etl/pkg/logger"
	"github.com/Gunvolt24/streets_etl/pkg/metrics"
	"github.com/Gunvolt24/streets_etl/pkg/telemetry"
	"github.com/Gunvolt24/streets_etl/pkg/validate"
)

// App - собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // служебный HTTP-сервер
	Consumer        ports.MessageConsumer // потребитель очереди
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup - функция освобождения ресурсов.
type Cleanup func()

// applyGinMode - устанавливает режим Gin по строке;
// неизвестное значение -> debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// ConsumerConfigFrom - параметры потребителя из секции RABBIT.
func ConsumerConfigFrom(r *config.Rabbit) rabbitmq.ConsumerConfig {
	return rabbitmq.ConsumerConfig{
		Exchange:        r.Exchange,
		Queue:           r.Queue,
		RouteKey:        r.RouteKey,
		DeadLetterQueue: r.DeadLetterQueue,
		RetryShortQueue: r.RetryShortQueue,
		RetryLongQueue:  r.RetryLongQueue,
		RetryShortDelay: r.RetryShortDelay,
		RetryLongDelay:  r.RetryLongDelay,
		Prefetch:        r.Prefetch,
		ConsumerTag:     r.ConsumerTag,
	}
}

// Bootstrap - собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Ошибка объявления топологии фатальна: потребитель не стартует.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Стек очистки: выполняется в обратном порядке.
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	closers = append(closers, func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	})
	fail := func(err error) (*App, Cleanup, error) {
		logg.Errorf(ctx, "bootstrap failed: %v", err)
		cleanup()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию - no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			closers = append(closers, func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	// Хранилище.
	repo, closeStorage, err := openStorage(ctx, cfg, logg)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closeStorage)

	// Соединение с брокером и топология.
	conn, err := rabbitmq.Dial(cfg.Rabbit.URI)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func() {
		if cErr := conn.Close(); cErr != nil {
			logg.Warnf(ctx, "rabbitmq close: %v", cErr)
		}
	})

	consumerCfg := ConsumerConfigFrom(&cfg.Rabbit)
	if err := rabbitmq.DeclareTopology(conn.Channel(), consumerCfg.Topology()); err != nil {
		return fail(err)
	}
	logg.Infof(ctx, "topology declared exchange=%s queue=%s dlq=%s",
		cfg.Rabbit.Exchange, cfg.Rabbit.Queue, cfg.Rabbit.DeadLetterQueue)

	// Сборка зависимостей доменного слоя.
	streetCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	streetService := usecase.NewStreetService(repo, streetCache, logg, validate.NewStreetValidator())

	// Прогрев кэша
	if n := cfg.Cache.WarmUpN; n > 0 {
		if err := streetService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	// Потребитель: канал соединения для приёма, тот же канал в confirm-режиме для перенаправлений.
	publisher := rabbitmq.NewPublisher(conn.Channel(), cfg.Rabbit.Exchange, logg)
	consumer := rabbitmq.NewConsumer(&consumerCfg, conn.Channel(), publisher, streetService, logg)
	closers = append(closers, func() {
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "consumer close error: %v", err)
		}
	})

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(streetService, logg, cfg.HTTP.HandlerTimeout)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           rest.NewRouter(httpHandler, otelServiceName),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Consumer:        consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	return app, cleanup, nil
}

// Run - запускает HTTP-сервер и потребителя; ждёт отмены контекста или ошибки и останавливает их.
// Ошибка потребителя (кроме отмены контекста) возвращается вызывающему.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	consumerDone := make(chan struct{})

	// Запуск потребителя.
	go func() {
		defer close(consumerDone)
		a.Logger.Infof(ctx, "consumer starting")
		if err := a.Consumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка приёма; Run потребителя дожидается обработки уже полученных сообщений.
	if err := a.Consumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "consumer close error: %v", err)
	}
	if runErr == nil {
		<-consumerDone
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
