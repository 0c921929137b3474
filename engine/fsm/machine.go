package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:          make(map[StateID]*Node[T]),
		names:          make(map[string]StateID),
		InitialStateID: StateNone,
		activeStateID:  StateNone,
		guardReg:       make(map[string]GuardFunc[T]),
		actionReg:      make(map[string]ActionFunc[T]),
	}
}

// AddState declares a node, replacing any node with the same id
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	m.names[name] = id
	return node
}

// AddTransition appends a transition to a declared node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// OnTransition installs an observer called after every state change
func (m *Machine[T]) OnTransition(fn func(from, to StateID)) {
	m.onTransition = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	m.activeStateID = node.ID
	m.timeInState = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update advances time in state, runs OnUpdate actions, then takes at most one transition
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return
	}

	m.timeInState += dt
	for _, action := range node.OnUpdate {
		action(ctx)
	}

	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return
		}
	}
}

// Transition forces a state change, running exit and enter actions
func (m *Machine[T]) Transition(ctx T, targetID StateID) {
	m.transition(ctx, targetID)
}

func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	from := m.activeStateID
	if current, ok := m.nodes[from]; ok {
		for _, action := range current.OnExit {
			action(ctx)
		}
	}

	// Active state is switched before OnEnter so actions observe the new state
	m.activeStateID = targetID
	m.timeInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}

	if m.onTransition != nil {
		m.onTransition(from, targetID)
	}
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range node.OnExit {
			action(ctx)
		}
	}
	m.activeStateID = StateNone
	return m.Init(ctx)
}

// Current returns the active state id
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active state name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// StateID resolves a declared state name
func (m *Machine[T]) StateID(name string) (StateID, bool) {
	id, ok := m.names[name]
	return id, ok
}
