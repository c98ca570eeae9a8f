package selene

import (
	"sync"

	"github.com/grindlemire/selene/internal/debug"
)

// Stop detaches an effect from all of its dependencies.
type Stop func()

// Scope is the handle an effect receives on each run. Passing it to
// Signal.Get is what makes a read reactive; there is no ambient "current
// effect".
type Scope struct {
	eff *effect
}

// track records src as a dependency of the scope's effect for this run.
func (sc *Scope) track(src source) {
	if sc.eff != nil {
		sc.eff.track(src)
	}
}

type effect struct {
	id uint64
	fn func(*Scope)

	mu      sync.Mutex
	running bool
	dirty   bool // triggered while running; run again once fn returns
	stopped bool
	tracked map[source]bool
	deps    []Unsubscribe
}

// maxEffectReruns bounds how often one run call repeats an effect whose
// dependencies keep changing underneath it.
const maxEffectReruns = 100

// Effect runs fn immediately and again whenever a signal that fn read
// through its scope during the previous run changes. Dependencies are
// collected afresh on every run. An effect is never re-entered: a change
// that arrives while fn is running, including one fn makes itself, marks
// the effect dirty and fn runs again after it returns.
func (rt *Runtime) Effect(fn func(sc *Scope)) Stop {
	e := &effect{id: rt.nextID(), fn: fn}
	e.run()
	return e.stop
}

func (e *effect) run() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	if e.running {
		e.dirty = true
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.dirty = false
		e.mu.Unlock()
	}()

	for reruns := 0; ; reruns++ {
		e.mu.Lock()
		if e.stopped {
			e.mu.Unlock()
			return
		}
		e.dirty = false
		deps := e.deps
		e.deps = nil
		e.tracked = make(map[source]bool)
		e.mu.Unlock()

		for _, unsubscribe := range deps {
			unsubscribe()
		}

		debug.Log("effect %d: running", e.id)
		e.fn(&Scope{eff: e})

		e.mu.Lock()
		again := e.dirty
		e.mu.Unlock()
		if !again {
			return
		}
		if reruns == maxEffectReruns {
			debug.Log("effect %d: still changing after %d reruns, giving up", e.id, maxEffectReruns)
			return
		}
	}
}

func (e *effect) track(src source) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped || e.tracked[src] {
		return
	}
	e.tracked[src] = true
	e.deps = append(e.deps, src.addEffect(e))
}

func (e *effect) stop() {
	e.mu.Lock()
	e.stopped = true
	deps := e.deps
	e.deps = nil
	e.mu.Unlock()

	for _, unsubscribe := range deps {
		unsubscribe()
	}
}
