package events

import (
	"log"
	"sync"
)

// Eventos de domínio do motor de agenda. As views assinam o barramento; o
// motor nunca alcança widgets.

type Event interface {
	Name() string
}

type AppointmentCreated struct {
	SalonID uint
	Date    string
}

func (AppointmentCreated) Name() string { return "appointment_created" }

type AppointmentFinalized struct {
	SalonID uint
	Date    string
}

func (AppointmentFinalized) Name() string { return "appointment_finalized" }

type AppointmentDeleted struct {
	SalonID uint
	Date    string
}

func (AppointmentDeleted) Name() string { return "appointment_deleted" }

type Handler func(Event)

type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	queue    chan Event
}

func NewBus() *Bus {
	b := &Bus{
		handlers: make(map[string][]Handler),
		queue:    make(chan Event, 100), // buffer seguro
	}

	go b.worker()
	return b
}

func (b *Bus) worker() {
	for ev := range b.queue {
		b.mu.RLock()
		handlers := b.handlers[ev.Name()]
		b.mu.RUnlock()

		for _, h := range handlers {
			h(ev)
		}
	}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish nunca bloqueia a operação de origem: fila cheia descarta o evento.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}

	select {
	case b.queue <- ev:
		// enviado
	default:
		log.Println("event queue full, dropping", ev.Name())
	}
}
