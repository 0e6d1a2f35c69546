package localestate

import (
	"sync"

	"github.com/alquimiadental/site/core/locale"
)

// Reader is the read side handed to rendering and translation collaborators.
type Reader interface {
	Current() locale.Code
	OnChange(fn func(locale.Code)) (unsubscribe func())
}

type subscription struct {
	id uint64
	fn func(locale.Code)
}

// Publisher holds the locale in effect for one client runtime and notifies
// subscribers when it changes. Safe for concurrent use.
type Publisher struct {
	mu      sync.RWMutex
	current locale.Code
	subs    []subscription
	nextID  uint64
}

// New returns a publisher whose current value is initial.
func New(initial locale.Code) *Publisher {
	return &Publisher{current: initial}
}

// Current returns the locale in effect.
func (p *Publisher) Current() locale.Code {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// OnChange registers fn to receive every new locale. The returned function
// removes the subscription and may be called more than once.
func (p *Publisher) OnChange(fn func(locale.Code)) func() {
	if fn == nil {
		return func() {}
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscription{id: id, fn: fn})
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { p.remove(id) })
	}
}

// Set publishes code and reports whether it differs from the previous value.
// Subscribers run synchronously, in subscription order, before Set returns, and
// observe the new value through Current.
func (p *Publisher) Set(code locale.Code) bool {
	p.mu.Lock()
	if p.current == code {
		p.mu.Unlock()
		return false
	}
	p.current = code
	subs := make([]subscription, len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, s := range subs {
		s.fn(code)
	}
	return true
}

func (p *Publisher) remove(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, s := range p.subs {
		if s.id == id {
			p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
			return
		}
	}
}
