package domain

import "time"

type ActionType string

const (
	ActionAddNewCycle                ActionType = "ADD_NEW_CYCLE"
	ActionInterruptCurrentCycle      ActionType = "INTERRUPT_CURRENT_CYCLE"
	ActionMarkCurrentCycleAsFinished ActionType = "MARK_CURRENT_CYCLE_AS_FINISHED"
)

type Action interface {
	Type() ActionType
}

type AddNewCycleAction struct {
	Cycle Cycle
}

func (AddNewCycleAction) Type() ActionType { return ActionAddNewCycle }

type InterruptCurrentCycleAction struct {
	At time.Time
}

func (InterruptCurrentCycleAction) Type() ActionType { return ActionInterruptCurrentCycle }

type MarkCurrentCycleAsFinishedAction struct {
	At time.Time
}

func (MarkCurrentCycleAsFinishedAction) Type() ActionType { return ActionMarkCurrentCycleAsFinished }
