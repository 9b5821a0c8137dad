package embedded

// Element is anything that can be identified and classified by kind.
type Element interface {
	Kind() uint64
	Id() string
}

// Typed is an element that carries an action type identifier.
type Typed interface {
	Element
	Type() string
}

// Creator is the read-only view of an action creator seen by tooling that
// must not import the root package.
type Creator interface {
	Typed
	Assigned() bool
	Bound() bool
}
