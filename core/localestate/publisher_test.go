package localestate_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/localestate"
)

func TestPublisherCurrent(t *testing.T) {
	t.Parallel()

	p := localestate.New("es")
	assert.Equal(t, locale.Code("es"), p.Current())

	assert.True(t, p.Set("en"))
	assert.Equal(t, locale.Code("en"), p.Current())
}

func TestPublisherNotifiesInOrder(t *testing.T) {
	t.Parallel()

	p := localestate.New("es")
	var calls []string

	p.OnChange(func(c locale.Code) { calls = append(calls, "first:"+string(c)) })
	p.OnChange(func(c locale.Code) { calls = append(calls, "second:"+string(c)) })

	p.Set("en")

	assert.Equal(t, []string{"first:en", "second:en"}, calls)
}

func TestPublisherSubscriberSeesNewValue(t *testing.T) {
	t.Parallel()

	p := localestate.New("es")
	var seen locale.Code
	p.OnChange(func(locale.Code) { seen = p.Current() })

	p.Set("en")

	assert.Equal(t, locale.Code("en"), seen)
}

func TestPublisherSkipsUnchangedValue(t *testing.T) {
	t.Parallel()

	p := localestate.New("es")
	calls := 0
	p.OnChange(func(locale.Code) { calls++ })

	assert.False(t, p.Set("es"))
	assert.Zero(t, calls)
}

func TestPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	p := localestate.New("es")
	calls := 0
	unsubscribe := p.OnChange(func(locale.Code) { calls++ })
	other := 0
	p.OnChange(func(locale.Code) { other++ })

	p.Set("en")
	unsubscribe()
	unsubscribe()
	p.Set("es")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestPublisherNilSubscriber(t *testing.T) {
	t.Parallel()

	p := localestate.New("es")
	unsubscribe := p.OnChange(nil)
	assert.NotPanics(t, func() {
		p.Set("en")
		unsubscribe()
	})
}

func TestPublisherConcurrentReaders(t *testing.T) {
	t.Parallel()

	p := localestate.New("es")
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe := p.OnChange(func(locale.Code) {})
			_ = p.Current()
			unsubscribe()
		}()
	}
	for _, c := range []locale.Code{"en", "es", "en"} {
		p.Set(c)
	}
	wg.Wait()

	assert.Equal(t, locale.Code("en"), p.Current())
}
