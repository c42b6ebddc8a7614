// Package session implements the lifecycle of budget goals within one user session.
//
// A session starts in AwaitingAllocation. Once the manually entered
// percentages sum to 100, it moves to AllocationValid. Starting the
// experiment copies the entered percentages to the budget goals, which can
// then be adjusted while keeping their sum at 100.
package session

import (
	"errors"
	"fmt"

	"github.com/expense-planner/backend/internal/budget"
)

// State is the state of a session.
type State string

const (
	AwaitingAllocation State = "awaitingAllocation"
	AllocationValid    State = "allocationValid"
	ExperimentActive   State = "experimentActive"
)

var ErrInvalidTransition = errors.New("this action is not possible in the current state of the session")

// Machine holds the budget state of a session.
type Machine struct {
	State  State
	Inputs budget.Allocation // Manually entered percentages
	Goals  budget.Allocation // Budget goals, only set once the experiment was started
}

// New returns a machine waiting for an allocation.
func New() Machine {
	return Machine{State: AwaitingAllocation}
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	switch s {
	case AwaitingAllocation, AllocationValid, ExperimentActive:
		return true
	}
	return false
}

// SubmitAllocation stores manually entered percentages.
//
// When they sum to 100, the machine moves to AllocationValid. Otherwise it
// moves back to AwaitingAllocation. Submitting is not possible while an
// experiment is active, the session needs to be reset first.
func (m *Machine) SubmitAllocation(inputs budget.Allocation) (budget.GateResult, error) {
	if m.State == ExperimentActive {
		return budget.GateResult{}, fmt.Errorf("%w: reset the session before entering new percentages", ErrInvalidTransition)
	}

	result, err := budget.Check(inputs)
	if err != nil {
		return budget.GateResult{}, err
	}

	m.Inputs = inputs.Clone()
	m.State = AwaitingAllocation
	if result.Complete() {
		m.State = AllocationValid
	}

	return result, nil
}

// StartExperiment activates adjusting of the budget goals.
//
// The entered percentages become the goals unless goals already exist.
func (m *Machine) StartExperiment() error {
	switch m.State {
	case ExperimentActive:
		return nil
	case AllocationValid:
	default:
		return fmt.Errorf("%w: the percentages must add up to 100 before experimenting", ErrInvalidTransition)
	}

	if m.Goals.IsZero() {
		m.Goals = m.Inputs.Clone()
	}

	m.State = ExperimentActive
	return nil
}

// Adjust changes one budget goal and redistributes the others.
func (m *Machine) Adjust(category string, value float64) error {
	if m.State != ExperimentActive {
		return fmt.Errorf("%w: start the experiment before adjusting goals", ErrInvalidTransition)
	}

	return m.Goals.Adjust(category, value)
}

// Reset discards inputs and goals.
func (m *Machine) Reset() {
	*m = New()
}
