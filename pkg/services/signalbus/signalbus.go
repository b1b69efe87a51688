package signalbus

import (
	"sync"
)

type SignalBus interface {
	// Notify will notify all the subscriptions created for the given named signal.
	Notify(name string)
	// Subscribe creates a subscription the named signal.
	Subscribe(name string) *Subscription
}

var _ SignalBus = &signalBus{} // type check the interface is implemented.

// signalBus is an in memory implementation of the SignalBus interface.
type signalBus struct {
	mu      sync.Mutex
	signals map[string]*signal
}

// signal holds all the subscriptions interested in a named signal.
type signal struct {
	subscriptions map[*Subscription]struct{}
}

// Subscription lets you get notified when a named signal is raised on the bus.
type Subscription struct {
	bus       *signalBus
	name      string
	c         chan struct{}
	closeOnce sync.Once
}

// NewSignalBus creates a new in memory signal bus.
func NewSignalBus() SignalBus {
	return &signalBus{
		signals: map[string]*signal{},
	}
}

func (sb *signalBus) Notify(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	s, found := sb.signals[name]
	if !found {
		// nobody is subscribed to the signal.
		return
	}
	for sub := range s.subscriptions {
		select {
		case sub.c <- struct{}{}:
		default:
			// subscription already has a signal pending.
		}
	}
}

func (sb *signalBus) Subscribe(name string) *Subscription {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	s, found := sb.signals[name]
	if !found {
		s = &signal{
			subscriptions: map[*Subscription]struct{}{},
		}
		sb.signals[name] = s
	}
	sub := &Subscription{
		bus:  sb,
		name: name,
		c:    make(chan struct{}, 1),
	}
	s.subscriptions[sub] = struct{}{}
	return sub
}

// Signal returns the channel that receives a message when the subscription is notified.
func (sub *Subscription) Signal() <-chan struct{} {
	return sub.c
}

// IsSignaled performs a non-blocking check to see if the subscription has been notified
// since it was created or since the last IsSignaled call.
func (sub *Subscription) IsSignaled() bool {
	select {
	case <-sub.c:
		return true
	default:
		return false
	}
}

// Close releases the resources associated with the subscription.
func (sub *Subscription) Close() {
	sub.closeOnce.Do(func() {
		sub.bus.mu.Lock()
		defer sub.bus.mu.Unlock()
		s, found := sub.bus.signals[sub.name]
		if !found {
			return
		}
		delete(s.subscriptions, sub)
		if len(s.subscriptions) == 0 {
			delete(sub.bus.signals, sub.name)
		}
	})
}
