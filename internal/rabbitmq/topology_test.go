package rabbitmq

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/streets_etl/internal/rabbitmq/mocks"
)

func testTopology() Topology {
	return Topology{
		Exchange:        "streets",
		Queue:           "streets.q",
		RouteKey:        "streets.insert",
		DeadLetterQueue: "streets.dlq",
		RetryShortQueue: "streets.retry.short",
		RetryLongQueue:  "streets.retry.long",
	}
}

func TestDeclareTopology_DeclaresEverythingInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockdeclarer(ctrl)

	gomock.InOrder(
		d.EXPECT().ExchangeDeclare("streets", "direct", true, false, false, false, gomock.Nil()).Return(nil),

		d.EXPECT().QueueDeclare("streets.dlq", true, false, false, false, gomock.Nil()).Return(amqp.Queue{}, nil),
		d.EXPECT().QueueBind("streets.dlq", "streets.dlq", "streets", false, gomock.Nil()).Return(nil),

		d.EXPECT().QueueDeclare("streets.q", true, false, false, false, amqp.Table{
			"x-dead-letter-exchange":    "streets",
			"x-dead-letter-routing-key": "streets.dlq",
		}).Return(amqp.Queue{}, nil),
		d.EXPECT().QueueBind("streets.q", "streets.insert", "streets", false, gomock.Nil()).Return(nil),

		d.EXPECT().QueueDeclare("streets.retry.short", true, false, false, false, amqp.Table{
			"x-message-ttl":             int32(60_000),
			"x-dead-letter-exchange":    "streets",
			"x-dead-letter-routing-key": "streets.insert",
		}).Return(amqp.Queue{}, nil),
		d.EXPECT().QueueBind("streets.retry.short", "streets.retry.short", "streets", false, gomock.Nil()).Return(nil),

		d.EXPECT().QueueDeclare("streets.retry.long", true, false, false, false, amqp.Table{
			"x-message-ttl":             int32(300_000),
			"x-dead-letter-exchange":    "streets",
			"x-dead-letter-routing-key": "streets.insert",
		}).Return(amqp.Queue{}, nil),
		d.EXPECT().QueueBind("streets.retry.long", "streets.retry.long", "streets", false, gomock.Nil()).Return(nil),
	)

	if err := DeclareTopology(d, testTopology()); err != nil {
		t.Fatalf("DeclareTopology: %v", err)
	}
}

func TestDeclareTopology_CustomDelays(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockdeclarer(ctrl)

	var ttls []any
	d.EXPECT().ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.EXPECT().QueueDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, _, _, _, _ bool, args amqp.Table) (amqp.Queue, error) {
			if v, ok := args["x-message-ttl"]; ok {
				ttls = append(ttls, v)
			}
			return amqp.Queue{}, nil
		}).Times(4)
	d.EXPECT().QueueBind(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)

	topo := testTopology()
	topo.RetryShortDelay = 1500 * time.Millisecond
	topo.RetryLongDelay = 2 * time.Second

	if err := DeclareTopology(d, topo); err != nil {
		t.Fatalf("DeclareTopology: %v", err)
	}
	if len(ttls) != 2 || ttls[0] != int32(1500) || ttls[1] != int32(2000) {
		t.Fatalf("unexpected ttls: %v", ttls)
	}
}

func TestDeclareTopology_FailureIsTopologyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockdeclarer(ctrl)

	brokerErr := &amqp.Error{Code: amqp.PreconditionFailed, Reason: "inequivalent arg 'x-message-ttl'"}
	d.EXPECT().ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.EXPECT().QueueDeclare("streets.dlq", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(amqp.Queue{}, brokerErr)
	// Дальше объявлений быть не должно.

	err := DeclareTopology(d, testTopology())
	if !errors.Is(err, ErrTopology) {
		t.Fatalf("want ErrTopology, got %v", err)
	}
	var amqpErr *amqp.Error
	if !errors.As(err, &amqpErr) || amqpErr.Code != amqp.PreconditionFailed {
		t.Fatalf("broker error must be wrapped, got %v", err)
	}
}

func TestDeclareTopology_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockdeclarer(ctrl)

	topo := testTopology()
	topo.RetryLongQueue = ""

	if err := DeclareTopology(d, topo); !errors.Is(err, ErrTopology) {
		t.Fatalf("want ErrTopology, got %v", err)
	}
}
