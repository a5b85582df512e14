package store

import (
	"log"
	"sync"
)

// Reducer is the registration handle for a state slice. *Slice[S]
// satisfies it for any S.
type Reducer interface {
	apply(action Action)
}

// Effect observes dispatched actions and performs asynchronous work
// (network I/O, timers). Effects never mutate a slice directly; they
// re-enter the funnel by dispatching new actions.
type Effect interface {
	// Name returns a human-readable name for logging.
	Name() string

	// Wants returns true if this effect should handle the given action.
	Wants(action Action) bool

	// Handle is called synchronously after reducers have run. Long-running
	// work must be moved to a goroutine so dispatch stays fast.
	Handle(action Action)
}

// Dispatcher is the event-dispatch funnel. Every action is applied to all
// registered slices serially under a single lock, then offered to effects.
// Thread-safe for concurrent use.
type Dispatcher struct {
	mu      sync.Mutex // serializes reducer application
	slices  []Reducer
	emu     sync.RWMutex
	effects []Effect
	verbose bool
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SetVerbose enables per-action dispatch logging.
func (d *Dispatcher) SetVerbose(v bool) {
	d.verbose = v
}

// Register adds a state slice to the funnel. Slices receive every action,
// in registration order.
func (d *Dispatcher) Register(slice Reducer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slices = append(d.slices, slice)
}

// RegisterEffect adds an effect. Effects are notified after all reducers
// have applied the action.
func (d *Dispatcher) RegisterEffect(effect Effect) {
	d.emu.Lock()
	defer d.emu.Unlock()
	d.effects = append(d.effects, effect)
	log.Printf("[Dispatcher] Registered effect: %s", effect.Name())
}

// Dispatch applies the action to every slice, then notifies interested
// effects. Reducer application is serialized: two concurrent Dispatch
// calls never interleave their state mutations.
func (d *Dispatcher) Dispatch(action Action) {
	if d.verbose {
		log.Printf("[Dispatcher] %s", action.ActionName())
	}

	d.mu.Lock()
	for _, slice := range d.slices {
		slice.apply(action)
	}
	d.mu.Unlock()

	d.emu.RLock()
	effects := make([]Effect, len(d.effects))
	copy(effects, d.effects)
	d.emu.RUnlock()

	for _, effect := range effects {
		if !effect.Wants(action) {
			continue
		}
		effect.Handle(action)
	}
}

// EffectCount returns the number of registered effects.
func (d *Dispatcher) EffectCount() int {
	d.emu.RLock()
	defer d.emu.RUnlock()
	return len(d.effects)
}
