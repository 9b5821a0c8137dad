package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/stateforward/go-act"
	"github.com/stateforward/go-act/kinds"
)

// Handler computes the next state from the payload and metadata of an action.
type Handler[S any] func(state S, payload any, meta any) S

// Reducer routes actions to handlers by action type.
type Reducer[S any] struct {
	id       string
	mutex    sync.RWMutex
	handlers map[string]Handler[S]
}

func NewReducer[S any]() *Reducer[S] {
	return &Reducer[S]{
		id:       uuid.NewString(),
		handlers: map[string]Handler[S]{},
	}
}

func (reducer *Reducer[S]) Kind() uint64 {
	return kinds.Reducer
}

func (reducer *Reducer[S]) Id() string {
	return reducer.id
}

// On registers handler for actions built by creator, replacing any previous one.
func (reducer *Reducer[S]) On(creator act.Creator, handler Handler[S]) *Reducer[S] {
	reducer.mutex.Lock()
	defer reducer.mutex.Unlock()
	reducer.handlers[creator.Type()] = handler
	return reducer
}

func (reducer *Reducer[S]) Off(creator act.Creator) *Reducer[S] {
	reducer.mutex.Lock()
	defer reducer.mutex.Unlock()
	delete(reducer.handlers, creator.Type())
	return reducer
}

func (reducer *Reducer[S]) Has(creator act.Creator) bool {
	reducer.mutex.RLock()
	defer reducer.mutex.RUnlock()
	_, ok := reducer.handlers[creator.Type()]
	return ok
}

// Reduce applies the handler registered for action.Type. Unknown types leave
// state unchanged.
func (reducer *Reducer[S]) Reduce(state S, action act.Action) S {
	reducer.mutex.RLock()
	handler, ok := reducer.handlers[action.Type]
	reducer.mutex.RUnlock()
	if !ok {
		return state
	}
	return handler(state, action.Payload, action.Meta)
}
