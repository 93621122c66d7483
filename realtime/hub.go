package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Hub is the table-change feed: every successful write publishes the
// table name, and dashboard clients re-fetch that table on notification.
// Notifications fan out to in-process subscribers and, when Redis is
// reachable, across instances on one channel. Without Redis the hub
// degrades to in-process only.

type Handler func(table string)

type Hub struct {
	mu      sync.RWMutex
	subs    map[string][]Handler
	client  *redis.Client
	channel string
}

func NewHub(addr, password, channel string) *Hub {
	h := &Hub{
		subs:    make(map[string][]Handler),
		channel: channel,
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable (%v), change feed runs in-process only", err)
		client.Close()
		return h
	}

	h.client = client
	return h
}

// Subscribe registers a handler for one table's change notifications.
func (h *Hub) Subscribe(table string, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[table] = append(h.subs[table], fn)
}

// Publish announces that a table changed. Redis publish is best-effort.
func (h *Hub) Publish(table string) {
	h.dispatch(table)

	if h.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.client.Publish(ctx, h.channel, table).Err(); err != nil {
		log.Printf("Failed to publish change for %s: %v", table, err)
	}
}

// Listen relays change notifications published by other instances to the
// local subscribers. Blocks until ctx is done.
func (h *Hub) Listen(ctx context.Context) {
	if h.client == nil {
		<-ctx.Done()
		return
	}

	sub := h.client.Subscribe(ctx, h.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.dispatch(msg.Payload)
		}
	}
}

func (h *Hub) dispatch(table string) {
	h.mu.RLock()
	handlers := make([]Handler, len(h.subs[table]))
	copy(handlers, h.subs[table])
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(table)
	}
}
