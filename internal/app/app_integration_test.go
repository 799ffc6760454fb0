//go:build integration

package app_test

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/streets_etl/config"
	"github.com/Gunvolt24/streets_etl/internal/app"
	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/rabbitmq"
	mongorepo "github.com/Gunvolt24/streets_etl/internal/repo/mongo"
	"github.com/Gunvolt24/streets_etl/internal/testutil"
)

// Полный путь: публикация -> потребитель -> Mongo; битое сообщение -> retry -> DLQ.
func TestApp_EndToEnd_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	rc, stopRabbit, err := testutil.StartRabbitTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stopRabbit(context.Background()) }()

	mc, stopMongo, err := testutil.StartMongoTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stopMongo(context.Background()) }()

	cfg, err := config.LoadWithPrefix("STREETS_E2E")
	require.NoError(t, err)
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.GinMode = "test"
	cfg.Rabbit.URI = rc.URI
	cfg.Rabbit.RetryShortDelay = 200 * time.Millisecond
	cfg.Rabbit.RetryLongDelay = 300 * time.Millisecond
	cfg.Storage.Driver = "mongo"
	cfg.Mongo.URI = mc.URI
	cfg.Mongo.Database = "streets_e2e"

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	require.NoError(t, err)
	defer cleanup()

	runCtx, stopRun := context.WithCancel(ctx)
	runErr := make(chan error, 1)
	go func() { runErr <- a.Run(runCtx) }()

	// отдельное соединение продюсера
	prodConn, err := rabbitmq.Dial(rc.URI)
	require.NoError(t, err)
	defer func() { _ = prodConn.Close() }()
	pub := rabbitmq.NewPublisher(prodConn.Channel(), cfg.Rabbit.Exchange, nopLogger{})

	valid := []byte(`{"cityCode":5000,"cityName":"תל אביב - יפו","streetCode":100,"streetName":" Ha-Carmel ","additionalMeta":{"officialCode":7}}`)
	missingName := []byte(`{"cityCode":5000,"streetCode":101}`)
	require.NoError(t, pub.PublishBatch(ctx, cfg.Rabbit.RouteKey, [][]byte{valid, missingName}))

	// валидное сообщение сохраняется с нормализованным именем
	client, err := mongorepo.Connect(ctx, mc.URI, 10*time.Second)
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(context.Background()) }()
	repo := mongorepo.NewStreetRepository(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)

	var saved *domain.Street
	require.Eventually(t, func() bool {
		saved, err = repo.GetByKey(ctx, domain.StreetKey{CityCode: 5000, StreetCode: 100})
		return err == nil && saved != nil
	}, 30*time.Second, 100*time.Millisecond)
	require.Equal(t, "ha-carmel", saved.StreetNameNormalized)
	require.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	// повторная публикация той же улицы - одна запись, createdAt не меняется
	require.NoError(t, pub.PublishBatch(ctx, cfg.Rabbit.RouteKey, [][]byte{valid}))
	require.Eventually(t, func() bool {
		again, gErr := repo.GetByKey(ctx, domain.StreetKey{CityCode: 5000, StreetCode: 100})
		return gErr == nil && again != nil && again.UpdatedAt.After(saved.UpdatedAt) &&
			again.CreatedAt.Equal(saved.CreatedAt)
	}, 30*time.Second, 100*time.Millisecond)

	// битое сообщение после исчерпания повторов оказывается в DLQ
	var dead amqp.Delivery
	require.Eventually(t, func() bool {
		d, ok, gErr := prodConn.Channel().Get(cfg.Rabbit.DeadLetterQueue, true)
		if gErr != nil || !ok {
			return false
		}
		dead = d
		return true
	}, 60*time.Second, 200*time.Millisecond)

	require.JSONEq(t, string(missingName), string(dead.Body))
	require.Contains(t, dead.Headers["error"], "streetName")
	require.NotEmpty(t, dead.Headers["failedAt"])
	orig, ok := dead.Headers["originalHeaders"].(amqp.Table)
	require.True(t, ok, "originalHeaders must be a table")
	require.EqualValues(t, rabbitmq.MaxRetries, orig["x-retry-count"])

	stopRun()
	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("app did not stop")
	}
}
