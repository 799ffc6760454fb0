package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/streets_etl/config"
	"github.com/Gunvolt24/streets_etl/internal/app"
	"github.com/Gunvolt24/streets_etl/internal/rabbitmq"
	"github.com/Gunvolt24/streets_etl/internal/streetsapi"
	"github.com/Gunvolt24/streets_etl/internal/usecase"
	"github.com/Gunvolt24/streets_etl/pkg/logger"
)

// CLI-продюсер: выгружает улицы города из открытого API в очередь.
//
//	publisher -l          список городов
//	publisher haifa       все улицы города
//	publisher -id 12345   одна запись по _id источника
func main() {
	listCities := flag.Bool("l", false, "list available cities")
	id := flag.Int64("id", 0, "publish a single street by its API _id")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-l] [-id N] <city>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listCities {
		fmt.Println("Available cities:")
		for _, c := range streetsapi.Cities() {
			fmt.Printf("  - %s\n", c)
		}
		return
	}

	cityKey := flag.Arg(0)
	cityName, ok := streetsapi.CityName(cityKey)
	if *id <= 0 && !ok {
		fmt.Fprintf(os.Stderr, "city %q not found, use -l to list available cities\n", cityKey)
		os.Exit(2)
	}

	_ = godotenv.Load(".env.local")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &cfg, cityKey, cityName, *id); err != nil {
		fmt.Fprintf(os.Stderr, "publisher: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, cityKey, cityName string, id int64) error {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanupLogger() }()

	source, err := streetsapi.NewClient(streetsapi.Config{
		URL:        cfg.StreetsAPI.URL,
		ResourceID: cfg.StreetsAPI.ResourceID,
		Limit:      cfg.StreetsAPI.Limit,
		Timeout:    cfg.StreetsAPI.Timeout,
	})
	if err != nil {
		return err
	}

	conn, err := rabbitmq.Dial(cfg.Rabbit.URI)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := conn.Close(); cErr != nil {
			logg.Warnf(ctx, "rabbitmq close: %v", cErr)
		}
	}()

	// Топология объявляется и продюсером: сообщения не теряются, даже если потребитель ещё не стартовал.
	consumerCfg := app.ConsumerConfigFrom(&cfg.Rabbit)
	if err := rabbitmq.DeclareTopology(conn.Channel(), consumerCfg.Topology()); err != nil {
		return err
	}

	svc := usecase.NewPublishService(source, rabbitmq.NewPublisher(conn.Channel(), cfg.Rabbit.Exchange, logg), logg,
		usecase.PublishConfig{
			RoutingKey: cfg.Rabbit.RouteKey,
			BatchSize:  cfg.Publisher.BatchSize,
			BatchDelay: cfg.Publisher.BatchDelay,
		})

	if id > 0 {
		street, err := svc.PublishByID(ctx, id)
		if err != nil {
			return err
		}
		logg.Infof(ctx, "published street %q (city=%d street=%d)", street.StreetName, street.CityCode, street.StreetCode)
		return nil
	}

	logg.Infof(ctx, "starting street publishing for city=%s", cityKey)
	n, err := svc.PublishCity(ctx, cityName)
	if err != nil {
		return fmt.Errorf("city %s: published %d before failure: %w", cityKey, n, err)
	}
	logg.Infof(ctx, "successfully published %d streets for %s", n, cityKey)
	return nil
}
