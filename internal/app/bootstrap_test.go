package app_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/streets_etl/config"
	"github.com/Gunvolt24/streets_etl/internal/app"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый потребитель: ждёт отмены контекста или возвращает runErr сразу
type fakeConsumer struct {
	runErr     error
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	if f.runErr != nil {
		return f.runErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func newApp(fc *fakeConsumer) *app.App {
	// HTTP-сервер на случайном свободном порту
	return &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		Consumer:   fc,
	}
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	fc := &fakeConsumer{}
	a := newApp(fc)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if atomic.LoadInt32(&fc.runCalls) == 0 {
		t.Fatalf("consumer.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestAppRun_ConsumerFailure_Propagates(t *testing.T) {
	boom := errors.New("channel closed")
	fc := &fakeConsumer{runErr: boom}
	a := newApp(fc)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.Run(ctx); !errors.Is(err, boom) {
		t.Fatalf("want consumer error, got %v", err)
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestConsumerConfigFrom(t *testing.T) {
	r := config.Rabbit{
		Exchange:        "ex",
		Queue:           "q",
		RouteKey:        "rk",
		DeadLetterQueue: "dlq",
		RetryShortQueue: "rs",
		RetryLongQueue:  "rl",
		Prefetch:        7,
		RetryShortDelay: time.Second,
		RetryLongDelay:  time.Minute,
		ConsumerTag:     "tag",
	}
	cc := app.ConsumerConfigFrom(&r)

	topo := cc.Topology()
	if topo.Exchange != "ex" || topo.Queue != "q" || topo.RouteKey != "rk" ||
		topo.DeadLetterQueue != "dlq" || topo.RetryShortQueue != "rs" || topo.RetryLongQueue != "rl" {
		t.Fatalf("unexpected topology: %+v", topo)
	}
	if topo.RetryShortDelay != time.Second || topo.RetryLongDelay != time.Minute {
		t.Fatalf("unexpected delays: %+v", topo)
	}
	if cc.Prefetch != 7 || cc.ConsumerTag != "tag" {
		t.Fatalf("unexpected consumer config: %+v", cc)
	}
}
