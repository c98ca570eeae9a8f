package selene

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/selene/internal/debug"
)

// Runtime owns the batching state shared by a group of signals and
// effects. Signals and effects from different runtimes never interact.
type Runtime struct {
	ids   atomic.Uint64
	batch batchContext
}

// batchContext tracks batch state for deferring observer execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending callbacks keyed by observer ID
	pendingOrder []uint64          // order in which observers were first triggered
}

// NewRuntime creates an empty runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		batch: batchContext{pending: make(map[uint64]func())},
	}
}

func (rt *Runtime) nextID() uint64 {
	return rt.ids.Add(1)
}

// dispatch runs callbacks now, or queues them when a batch is open.
// A later callback for the same observer replaces an earlier queued one.
func (rt *Runtime) dispatch(ids []uint64, callbacks []func()) {
	batch := &rt.batch
	batch.mu.Lock()
	isBatching := batch.depth > 0
	if isBatching {
		for i, id := range ids {
			if _, exists := batch.pending[id]; !exists {
				batch.pendingOrder = append(batch.pendingOrder, id)
			}
			batch.pending[id] = callbacks[i]
		}
	}
	batch.mu.Unlock()

	if isBatching {
		debug.Log("Runtime.dispatch: deferred %d observer(s) (batching)", len(callbacks))
		return
	}
	for _, cb := range callbacks {
		cb()
	}
}

// Batch executes fn and defers all observer callbacks until fn returns.
//
// When the same observer is triggered multiple times during a batch it runs
// once, with the final value, in the order observers were first triggered.
// Nested Batch calls are supported; callbacks fire when the outermost Batch
// completes, even if fn panics.
//
// Example:
//
//	rt.Batch(func() {
//	    firstName.Set("Bob")
//	    lastName.Set("Smith")
//	})
//	// an effect reading both names re-runs once here
func (rt *Runtime) Batch(fn func()) {
	batch := &rt.batch
	batch.mu.Lock()
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var pendingCallbacks []func()
		if batch.depth == 0 && len(batch.pending) > 0 {
			pendingCallbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if callback, exists := batch.pending[id]; exists {
					pendingCallbacks = append(pendingCallbacks, callback)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		// Execute callbacks outside the lock
		for _, callback := range pendingCallbacks {
			callback()
		}
	}()

	fn()
}

// Signal wraps a value and notifies observers when it changes.
//
// Reads made through Get with a non-nil Scope register the reading effect
// as a dependency; Peek and Get(nil) never do.
type Signal[T any] struct {
	rt        *Runtime
	mu        sync.RWMutex
	value     T
	equal     func(a, b T) bool
	observers []*observer[T]
}

// observer is a registered callback that fires when the signal changes.
type observer[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unsubscribe removes a subscription. Calling it more than once is safe.
type Unsubscribe func()

// NewSignal creates a signal whose Set is a no-op when the new value equals
// the current one.
//
// Example:
//
//	rt := selene.NewRuntime()
//	count := selene.NewSignal(rt, 0)
//	count.Set(count.Peek() + 1)
func NewSignal[T comparable](rt *Runtime, initial T) *Signal[T] {
	return NewSignalFunc(rt, initial, func(a, b T) bool { return a == b })
}

// NewSignalFunc creates a signal for any type using equal to suppress
// redundant updates. A nil equal notifies on every Set.
func NewSignalFunc[T any](rt *Runtime, initial T, equal func(a, b T) bool) *Signal[T] {
	if rt == nil {
		panic("selene: nil runtime in NewSignal")
	}
	return &Signal[T]{rt: rt, value: initial, equal: equal}
}

// Get returns the current value and, when sc is non-nil, records the
// signal as a dependency of the effect that owns sc.
func (s *Signal[T]) Get(sc *Scope) T {
	if sc != nil {
		sc.track(s)
	}
	return s.Peek()
}

// Peek returns the current value without tracking.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies observers. If called within a Batch,
// notification is deferred until the batch completes.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	if s.equal != nil && s.equal(s.value, v) {
		s.mu.Unlock()
		return
	}
	s.value = v
	// Drop unsubscribed observers while holding the lock
	activeObservers := make([]*observer[T], 0, len(s.observers))
	for _, o := range s.observers {
		if o.active {
			activeObservers = append(activeObservers, o)
		}
	}
	s.observers = activeObservers
	s.mu.Unlock()

	debug.Log("Signal.Set: notifying %d observer(s)", len(activeObservers))

	ids := make([]uint64, len(activeObservers))
	callbacks := make([]func(), len(activeObservers))
	for i, o := range activeObservers {
		fn := o.fn
		ids[i] = o.id
		callbacks[i] = func() { fn(v) }
	}
	s.rt.dispatch(ids, callbacks)
}

// Update applies fn to the current value and sets the result.
//
//	count.Update(func(v int) int { return v + 1 })
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Peek()))
}

// Subscribe registers fn to be called with the new value after every change.
// Subscribers run in registration order.
func (s *Signal[T]) Subscribe(fn func(T)) Unsubscribe {
	return s.subscribe(s.rt.nextID(), fn)
}

func (s *Signal[T]) subscribe(id uint64, fn func(T)) Unsubscribe {
	s.mu.Lock()
	o := &observer[T]{id: id, fn: fn, active: true}
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		o.active = false
		s.mu.Unlock()
	}
}

// addEffect subscribes an effect; it is how Scope reaches a Signal of any T.
func (s *Signal[T]) addEffect(e *effect) Unsubscribe {
	return s.subscribe(e.id, func(T) { e.run() })
}

// source is implemented by every *Signal[T].
type source interface {
	addEffect(e *effect) Unsubscribe
}

// Computed creates a signal holding fn's result, recomputed whenever a
// signal fn reads through its scope changes.
//
//	full := selene.Computed(rt, func(sc *selene.Scope) string {
//	    return first.Get(sc) + " " + last.Get(sc)
//	})
func Computed[T comparable](rt *Runtime, fn func(sc *Scope) T) *Signal[T] {
	var zero T
	s := NewSignal(rt, zero)
	rt.Effect(func(sc *Scope) {
		s.Set(fn(sc))
	})
	return s
}
