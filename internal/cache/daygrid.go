package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/EspacoVitaServices/salon-scheduler/internal/events"
)

// DayGrid guarda a grade classificada de um dia no redis. A invalidação
// vem dos eventos de domínio, então a cor dos slots nunca fica para trás
// depois de criar, finalizar ou excluir um agendamento. Sem redis
// configurado tudo aqui vira passthrough.
type DayGrid struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDayGrid(rdb *redis.Client) *DayGrid {
	return &DayGrid{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

func key(salonID uint, date string) string {
	return fmt.Sprintf("daygrid:%d:%s", salonID, date)
}

func (c *DayGrid) Get(ctx context.Context, salonID uint, date string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	b, err := c.rdb.Get(ctx, key(salonID, date)).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(b, dest) == nil
}

func (c *DayGrid) Set(ctx context.Context, salonID uint, date string, v any) {
	if c == nil || c.rdb == nil {
		return
	}

	if b, err := json.Marshal(v); err == nil {
		c.rdb.Set(ctx, key(salonID, date), b, c.ttl)
	}
}

func (c *DayGrid) Invalidate(salonID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Del(context.Background(), key(salonID, date))
}

// SubscribeInvalidation assina os eventos que mudam a grade do dia.
func (c *DayGrid) SubscribeInvalidation(bus *events.Bus) {
	if c == nil || bus == nil {
		return
	}

	bus.Subscribe("appointment_created", func(ev events.Event) {
		if e, ok := ev.(events.AppointmentCreated); ok {
			c.Invalidate(e.SalonID, e.Date)
		}
	})

	bus.Subscribe("appointment_finalized", func(ev events.Event) {
		if e, ok := ev.(events.AppointmentFinalized); ok {
			c.Invalidate(e.SalonID, e.Date)
		}
	})

	bus.Subscribe("appointment_deleted", func(ev events.Event) {
		if e, ok := ev.(events.AppointmentDeleted); ok {
			c.Invalidate(e.SalonID, e.Date)
		}
	})
}
