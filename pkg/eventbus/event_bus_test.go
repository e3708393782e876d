package eventbus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/pkg/eventbus"
)

type orderShipped struct {
	OrderID int
}

func TestPublish_DeliversToMatchingHandler(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())

	var got []int
	bus.Subscribe(func(e orderShipped) {
		got = append(got, e.OrderID)
	})

	bus.Publish(orderShipped{OrderID: 7})
	bus.Publish(orderShipped{OrderID: 9})

	require.Len(t, got, 2)
	assert.Equal(t, []int{7, 9}, got)
}

func TestPublish_SkipsNonMatchingHandler(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())

	called := false
	bus.Subscribe(func(s string) {
		called = true
	})

	bus.Publish(orderShipped{OrderID: 1})
	assert.False(t, called)
}

func TestPublish_RecoversFromHandlerPanic(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())

	var secondRan bool
	bus.Subscribe(func(e orderShipped) {
		panic("boom")
	})
	bus.Subscribe(func(e orderShipped) {
		secondRan = true
	})

	assert.NotPanics(t, func() {
		bus.Publish(orderShipped{OrderID: 3})
	})
	assert.True(t, secondRan)
}

func TestUnsubscribeAndClear(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())

	handler := func(e orderShipped) {}
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	assert.Equal(t, 0, bus.SubscribersCount())

	bus.Subscribe(handler)
	bus.Subscribe(func(s string) {})
	bus.Clear()
	assert.Equal(t, 0, bus.SubscribersCount())
}
