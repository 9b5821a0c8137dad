package act

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"github.com/google/uuid"
	"github.com/stateforward/go-act/embedded"
	"github.com/stateforward/go-act/kinds"
)

/******* Action *******/

// Action is the message produced by a creator.
type Action struct {
	Type    string
	Payload any
	Meta    any
}

/******* Targets *******/

// Target receives actions forwarded by a creator, typically a store.
type Target interface {
	Dispatch(action Action) any
}

// DispatchFunc adapts a plain function to a Target.
type DispatchFunc func(action Action) any

func (fn DispatchFunc) Dispatch(action Action) any {
	return fn(action)
}

// Func adapts a function without a result to a Target. Dispatching through it
// yields nil.
func Func(fn func(action Action)) Target {
	return DispatchFunc(func(action Action) any {
		fn(action)
		return nil
	})
}

func normalize(targets []Target) []func(Action) any {
	dispatchers := make([]func(Action) any, 0, len(targets))
	for _, target := range targets {
		if target == nil {
			continue
		}
		if fn, ok := target.(DispatchFunc); ok && fn == nil {
			continue
		}
		dispatchers = append(dispatchers, target.Dispatch)
	}
	if len(dispatchers) == 0 {
		return nil
	}
	return dispatchers
}

/******* Errors *******/

var ErrDuplicateType = errors.New("duplicate action type")

// DuplicateTypeError is returned when a serializable type is registered twice
// in the same registry.
type DuplicateTypeError struct {
	Type string
}

func (err *DuplicateTypeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateType, err.Type)
}

func (err *DuplicateTypeError) Is(target error) bool {
	return target == ErrDuplicateType
}

/******* Options *******/

// Transform computes a payload or metadata value from the call arguments.
type Transform func(args ...any) any

func identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

func undefined(...any) any {
	return nil
}

type config struct {
	payload Transform
	meta    Transform
}

type Option func(*config)

// WithPayload sets the payload transform. The default returns the first argument.
func WithPayload(fn Transform) Option {
	return func(config *config) {
		if fn != nil {
			config.payload = fn
		}
	}
}

// WithMeta sets the metadata transform. The default always yields nil.
func WithMeta(fn Transform) Option {
	return func(config *config) {
		if fn != nil {
			config.meta = fn
		}
	}
}

// Trace is called at the start of a step and returns a function called when
// the step ends, with the step results.
type Trace func(ctx context.Context, step string, elements ...embedded.Element) func(...any)

var serializable = regexp.MustCompile(`^[A-Z_]+$`)

// IsSerializable reports whether description is used verbatim as an action type.
func IsSerializable(description string) bool {
	return serializable.MatchString(description)
}

/******* Creator *******/

// Creator builds actions and forwards them to its dispatch targets.
type Creator interface {
	embedded.Creator
	fmt.Stringer
	Raw(args ...any) Action
	Call(args ...any) any
	AssignTo(targets ...Target) Creator
	BindTo(targets ...Target) Creator
}

// factory is the part shared between a creator and the creators bound from it.
type factory struct {
	typ      string
	payload  Transform
	meta     Transform
	registry *Registry
}

func (factory *factory) Type() string {
	return factory.typ
}

func (factory *factory) String() string {
	return factory.typ
}

func (factory *factory) Raw(args ...any) Action {
	return Action{
		Type:    factory.typ,
		Payload: factory.payload(args...),
		Meta:    factory.meta(args...),
	}
}

func (factory *factory) call(creator embedded.Creator, dispatchers []func(Action) any, args []any) any {
	if trace := factory.registry.trace; trace != nil {
		end := trace(factory.registry.ctx, "Call", creator)
		result := factory.dispatch(dispatchers, args)
		end(result)
		return result
	}
	return factory.dispatch(dispatchers, args)
}

func (factory *factory) dispatch(dispatchers []func(Action) any, args []any) any {
	action := factory.Raw(args...)
	switch len(dispatchers) {
	case 0:
		return action
	case 1:
		return dispatchers[0](action)
	}
	results := make([]any, len(dispatchers))
	for i, dispatch := range dispatchers {
		results[i] = dispatch(action)
	}
	return results
}

func (factory *factory) bind(targets []Target) *Bound {
	bound := &Bound{
		factory:     factory,
		id:          uuid.NewString(),
		dispatchers: normalize(targets),
	}
	factory.registry.logger.Debug("bound action creator", "type", factory.typ, "id", bound.id, "targets", len(bound.dispatchers))
	return bound
}

/******* Mutable *******/

// Mutable is a creator whose targets can be reassigned.
type Mutable struct {
	*factory
	id          string
	mutex       sync.RWMutex
	dispatchers []func(Action) any
}

func (mutable *Mutable) Kind() uint64 {
	return kinds.Mutable
}

func (mutable *Mutable) Id() string {
	return mutable.id
}

func (mutable *Mutable) Call(args ...any) any {
	mutable.mutex.RLock()
	dispatchers := mutable.dispatchers
	mutable.mutex.RUnlock()
	return mutable.call(mutable, dispatchers, args)
}

// AssignTo replaces the targets of mutable and returns it. Calling it without
// targets, or with only nil targets, clears the assignment, so Assigned
// reports false and Call returns the action.
func (mutable *Mutable) AssignTo(targets ...Target) Creator {
	dispatchers := normalize(targets)
	mutable.mutex.Lock()
	mutable.dispatchers = dispatchers
	mutable.mutex.Unlock()
	return mutable
}

// BindTo returns a new creator permanently bound to targets. mutable is left unchanged.
func (mutable *Mutable) BindTo(targets ...Target) Creator {
	return mutable.bind(targets)
}

func (mutable *Mutable) Assigned() bool {
	mutable.mutex.RLock()
	defer mutable.mutex.RUnlock()
	return len(mutable.dispatchers) > 0
}

func (mutable *Mutable) Bound() bool {
	return false
}

/******* Bound *******/

// Bound is a creator with a fixed set of targets.
type Bound struct {
	*factory
	id          string
	dispatchers []func(Action) any
}

func (bound *Bound) Kind() uint64 {
	return kinds.Bound
}

func (bound *Bound) Id() string {
	return bound.id
}

func (bound *Bound) Call(args ...any) any {
	return bound.call(bound, bound.dispatchers, args)
}

// AssignTo is a no-op on a bound creator.
func (bound *Bound) AssignTo(...Target) Creator {
	return bound
}

// BindTo is a no-op on a bound creator.
func (bound *Bound) BindTo(...Target) Creator {
	return bound
}

func (bound *Bound) Assigned() bool {
	return false
}

func (bound *Bound) Bound() bool {
	return true
}

var (
	_ Creator = (*Mutable)(nil)
	_ Creator = (*Bound)(nil)
	_ Target  = DispatchFunc(nil)
)

/******* Package level *******/

// Logger is the default logger used by registries created without WithLogger.
var Logger = slog.Default()

// Default is the registry used by the package level constructors.
var Default = NewRegistry()

func Named(description string, options ...Option) (*Mutable, error) {
	return Default.Named(description, options...)
}

func MustNamed(description string, options ...Option) *Mutable {
	return Default.MustNamed(description, options...)
}

func Anonymous(options ...Option) *Mutable {
	return Default.Anonymous(options...)
}
