package eventbus

import (
	"context"
	"testing"
)

type testEvent struct{ N int }

func TestPublishSubscribe(t *testing.T) {
	Use(New())
	defer Use(nil)

	var got []int
	unsub := Subscribe(func(ctx context.Context, e testEvent) {
		got = append(got, e.N)
	})

	Publish(context.Background(), testEvent{N: 1})
	Publish(context.Background(), testEvent{N: 2})
	unsub()
	Publish(context.Background(), testEvent{N: 3})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestPublishWithoutBus(t *testing.T) {
	Use(nil)
	// Must not panic.
	Publish(context.Background(), testEvent{N: 1})
	unsub := Subscribe(func(ctx context.Context, e testEvent) {})
	unsub()
}
