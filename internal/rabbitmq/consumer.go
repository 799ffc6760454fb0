package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/streets_etl/internal/ports"
)

// ErrDeliveriesClosed - брокер закрыл канал доставок (соединение потеряно).
var ErrDeliveriesClosed = errors.New("rabbitmq: deliveries channel closed")

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// channel - минимальный контракт над *amqp.Channel для потребления,
// чтобы легко подменять его моками в тестах.
type channel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
}

// redirector - публикация перенаправлений (retry/DLQ) с подтверждением.
type redirector interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// messageSaver - зависимость на бизнес-логику,
// которая парсит/валидирует/нормализует/сохраняет сообщение.
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer - обработчик основной очереди с ретраями через очереди брокера.
// Счётчик попыток живёт только в заголовках сообщения.
type Consumer struct {
	ch       channel
	pub      redirector
	service  messageSaver
	log      ports.Logger
	cfg      ConsumerConfig
	prefetch int
	tag      string
	now      func() time.Time

	canceled  atomic.Bool
	closeOnce sync.Once
}

func NewConsumer(cfg *ConsumerConfig, ch channel, pub redirector, service messageSaver, log ports.Logger) *Consumer {
	return &Consumer{
		ch:       ch,
		pub:      pub,
		service:  service,
		log:      log,
		cfg:      *cfg,
		prefetch: cfg.prefetch(),
		tag:      cfg.consumerTag(),
		now:      time.Now,
	}
}

// Run - основной цикл:
// 1) Qos(prefetch) ограничивает число неподтверждённых доставок;
// 2) каждая доставка обрабатывается в своей горутине, не больше prefetch одновременно;
// 3) успех -> ack; ошибка -> публикация в retry/DLQ с подтверждением, затем ack;
// 4) отмена контекста -> Cancel(tag), ожидание обработчиков в работе, выход.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("rabbitmq qos: %w", err)
	}

	deliveries, err := c.ch.Consume(c.cfg.Queue, c.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq consume %s: %w", c.cfg.Queue, err)
	}
	c.log.Infof(ctx, "rabbitmq consumer started queue=%s prefetch=%d tag=%s", c.cfg.Queue, c.prefetch, c.tag)

	// Обработчики доводят начатую доставку до ack даже после сигнала остановки.
	handlerCtx := context.WithoutCancel(ctx)
	sem := make(chan struct{}, c.prefetch)
	var wg sync.WaitGroup

	stop := func() error {
		c.cancelConsume(handlerCtx)
		wg.Wait()
		c.log.Infof(handlerCtx, "rabbitmq consumer stopped queue=%s", c.cfg.Queue)
		return ctx.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return stop()
		case d, ok := <-deliveries:
			if !ok {
				wg.Wait()
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrDeliveriesClosed
			}

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				// Доставка не подтверждена: брокер вернёт её после закрытия канала.
				return stop()
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				c.handleDelivery(handlerCtx, &d)
			}()
		}
	}
}

// Close - отписывает потребителя от очереди. Вызывается при остановке приложения.
// Соединение и канал закрывает их владелец.
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() {
		c.cancelConsume(context.Background())
	})
	return nil
}

// cancelConsume - basic.cancel ровно один раз.
func (c *Consumer) cancelConsume(ctx context.Context) {
	if !c.canceled.CompareAndSwap(false, true) {
		return
	}
	if err := c.ch.Cancel(c.tag, false); err != nil && !errors.Is(err, amqp.ErrClosed) {
		c.log.Warnf(ctx, "rabbitmq cancel consumer tag=%s: %v", c.tag, err)
	}
}
