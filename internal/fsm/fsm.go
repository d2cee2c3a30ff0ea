// Package fsm implements a small table-driven finite-state machine.
//
// States are dense integer ids below MaxStates. Each state supplies an update
// callback that decides the next state; the machine performs the transition
// itself so exit always runs before enter and neither is skipped or doubled.
package fsm

import (
	"errors"
	"math"
	"reflect"
)

// StateID identifies a state slot. Valid ids are below MaxStates.
type StateID uint32

// MaxStates is the number of state slots in every machine.
const MaxStates = 32

// NoChange is returned by an update callback to stay in the current state.
const NoChange StateID = math.MaxUint32

var (
	ErrStateOutOfRange = errors.New("fsm: state id out of range")
	ErrNilContext      = errors.New("fsm: nil context")
	ErrMissingUpdate   = errors.New("fsm: state has no update handler")
	ErrRemoveCurrent   = errors.New("fsm: cannot remove the current state")
	ErrNotRegistered   = errors.New("fsm: state not registered")
)

// State holds the callbacks for one state. OnEnter and OnExit are optional.
type State[C any] struct {
	OnEnter  func(ctx C)
	OnUpdate func(ctx C, dt float64) StateID
	OnExit   func(ctx C)
}

// Machine runs a set of states over a shared context value.
type Machine[C any] struct {
	states     [MaxStates]State[C]
	registered [MaxStates]bool
	current    StateID
	ctx        C
}

// New creates a machine whose current state is initial. The initial state's
// OnEnter is not called; use Set for the first activation once states are
// registered.
func New[C any](initial StateID, ctx C) (*Machine[C], error) {
	if initial >= MaxStates {
		return nil, ErrStateOutOfRange
	}
	if isNil(ctx) {
		return nil, ErrNilContext
	}
	return &Machine[C]{current: initial, ctx: ctx}, nil
}

// Add registers s at id, replacing any previous registration.
func (m *Machine[C]) Add(id StateID, s State[C]) error {
	if id >= MaxStates {
		return ErrStateOutOfRange
	}
	if s.OnUpdate == nil {
		return ErrMissingUpdate
	}
	m.states[id] = s
	m.registered[id] = true
	return nil
}

// Remove clears the slot at id. The current state cannot be removed.
func (m *Machine[C]) Remove(id StateID) error {
	if id >= MaxStates {
		return ErrStateOutOfRange
	}
	if id == m.current {
		return ErrRemoveCurrent
	}
	m.states[id] = State[C]{}
	m.registered[id] = false
	return nil
}

// Set makes id current and calls its OnEnter. The previous state's OnExit is
// not called, so Set is only for first activation.
func (m *Machine[C]) Set(id StateID) error {
	if id >= MaxStates {
		return ErrStateOutOfRange
	}
	m.current = id
	if enter := m.states[id].OnEnter; enter != nil {
		enter(m.ctx)
	}
	return nil
}

// Update runs the current state's OnUpdate and performs the transition it
// asks for. It reports whether a transition happened.
func (m *Machine[C]) Update(dt float64) bool {
	update := m.states[m.current].OnUpdate
	if update == nil {
		return false
	}
	next := update(m.ctx, dt)
	if next >= MaxStates || next == m.current || !m.registered[next] {
		return false
	}
	m.transition(next)
	return true
}

// Force transitions to id outside of Update, running exit and enter as Update
// would. Forcing the current state is a no-op.
func (m *Machine[C]) Force(id StateID) error {
	if id >= MaxStates {
		return ErrStateOutOfRange
	}
	if !m.registered[id] {
		return ErrNotRegistered
	}
	if id == m.current {
		return nil
	}
	m.transition(id)
	return nil
}

func (m *Machine[C]) transition(next StateID) {
	if exit := m.states[m.current].OnExit; exit != nil {
		exit(m.ctx)
	}
	if enter := m.states[next].OnEnter; enter != nil {
		enter(m.ctx)
	}
	m.current = next
}

// Current returns the active state id.
func (m *Machine[C]) Current() StateID { return m.current }

// Context returns the value passed to every callback.
func (m *Machine[C]) Context() C { return m.ctx }

// SetContext replaces the callback context.
func (m *Machine[C]) SetContext(ctx C) error {
	if isNil(ctx) {
		return ErrNilContext
	}
	m.ctx = ctx
	return nil
}

// Registered reports whether id has a state.
func (m *Machine[C]) Registered(id StateID) bool {
	return id < MaxStates && m.registered[id]
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
