package fsm

import "time"

// StateID is a caller-declared state identifier
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = -1

// Machine is a flat finite state machine driven once per tick
// T is the context passed to actions and guards
type Machine[T any] struct {
	nodes map[StateID]*Node[T]
	names map[string]StateID

	InitialStateID StateID

	activeStateID StateID
	timeInState   time.Duration

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]

	onTransition func(from, to StateID)
}

// Node is a single state with lifecycle actions and ordered transitions
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Evaluated in order, first passing guard wins
	Transitions []Transition[T]
}

// Transition is a guarded edge, nil guard always passes
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T]
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
