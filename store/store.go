// Package store provides a minimal state container that can be used as the
// dispatch target of action creators.
package store

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/stateforward/go-act"
	"github.com/stateforward/go-act/kinds"
	"github.com/stateforward/go-act/queue"
)

// ReduceFunc computes the next state for an action.
type ReduceFunc[S any] func(state S, action act.Action) S

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type subscriber[S any] struct {
	id uint64
	fn func(S)
}

// Store holds a state value that only changes through dispatched actions.
type Store[S any] struct {
	id          string
	reduce      ReduceFunc[S]
	logger      *slog.Logger
	mutex       sync.RWMutex
	state       S
	subscribers []subscriber[S]
	next        uint64
	queue       *queue.Queue[act.Action]
	processing  atomic.Bool
}

// New creates a store from an initial state and a reducer table.
func New[S any](initial S, reducer *Reducer[S], opts ...Option) *Store[S] {
	return NewFunc(initial, reducer.Reduce, opts...)
}

// NewFunc creates a store from an initial state and a reduce function.
func NewFunc[S any](initial S, reduce ReduceFunc[S], opts ...Option) *Store[S] {
	options := options{logger: act.Logger}
	for _, opt := range opts {
		opt(&options)
	}
	return &Store[S]{
		id:     uuid.NewString(),
		reduce: reduce,
		logger: options.logger,
		state:  initial,
		queue:  queue.New[act.Action](),
	}
}

func (store *Store[S]) Kind() uint64 {
	return kinds.Store
}

func (store *Store[S]) Id() string {
	return store.id
}

func (store *Store[S]) State() S {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	return store.state
}

// Subscribe registers fn to be called with the new state after every
// dispatch. The returned function removes the subscription.
func (store *Store[S]) Subscribe(fn func(S)) func() {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	id := store.next
	store.next++
	store.subscribers = append(store.subscribers, subscriber[S]{id: id, fn: fn})
	return func() {
		store.mutex.Lock()
		defer store.mutex.Unlock()
		store.subscribers = slices.DeleteFunc(store.subscribers, func(s subscriber[S]) bool {
			return s.id == id
		})
	}
}

// Dispatch reduces action into the state and returns it. Actions dispatched
// while another dispatch is running are queued and reduced afterwards in order.
// If a reducer or subscriber panics, the pending actions are dropped and the
// panic propagates to the caller; the store stays usable.
func (store *Store[S]) Dispatch(action act.Action) any {
	store.queue.Push(action)
	for store.queue.Len() > 0 {
		if !store.processing.CompareAndSwap(false, true) {
			store.logger.Debug("queued action", "type", action.Type, "store", store.id)
			return action
		}
		store.drain()
	}
	return action
}

func (store *Store[S]) drain() {
	completed := false
	defer func() {
		if !completed {
			dropped := store.queue.Clear()
			store.logger.Error("dispatch panicked, dropped pending actions", "store", store.id, "dropped", dropped)
		}
		store.processing.Store(false)
	}()
	for {
		next, ok := store.queue.Pop()
		if !ok {
			break
		}
		store.process(next)
	}
	completed = true
}

func (store *Store[S]) reduceLocked(action act.Action) (S, []subscriber[S]) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.state = store.reduce(store.state, action)
	return store.state, slices.Clone(store.subscribers)
}

func (store *Store[S]) process(action act.Action) {
	state, subscribers := store.reduceLocked(action)
	store.logger.Debug("reduced action", "type", action.Type, "store", store.id)
	for _, subscriber := range subscribers {
		subscriber.fn(state)
	}
}
