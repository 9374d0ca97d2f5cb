package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors (prd001-binder-core R7.1).
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Entity operation errors (prd001-binder-core R7.2).
var (
	ErrBinderNotFound   = errors.New("binder not found")
	ErrEntryNotFound    = errors.New("entry not found")
	ErrInvalidID        = errors.New("invalid entity ID")
	ErrInvalidName      = errors.New("invalid name")
	ErrPositionOccupied = errors.New("position is occupied")
)

// Planning errors (prd002-capacity-planner R6, prd003-set-placement R8).
var (
	ErrCapacityExceeded     = errors.New("placement exceeds binder capacity")
	ErrExpansionUnavailable = errors.New("no expansion option satisfies the shortfall")
	ErrMaxPagesExceeded     = errors.New("page count would exceed the binder maximum")
	ErrInvalidPlacement     = errors.New("invalid placement configuration")
	ErrInvalidCopies        = errors.New("variant copies must be at least 1")
)

// Move execution errors (prd004-position-shifter R3).
// A move collision indicates the caller applied a shift plan out of order;
// plans emitted by the shifter cannot collide when applied as ordered.
var ErrMoveCollision = errors.New("move collides with an occupied position")

// History errors (prd005-history-navigator R5).
var ErrNotConfirmed = errors.New("operation requires explicit confirmation")

// CapacityError reports a placement that cannot fit, carrying the numeric
// shortfall so callers can surface it or feed it to expansion planning.
// Unwraps to ErrCapacityExceeded (prd002-capacity-planner R6.2).
type CapacityError struct {
	Needed    int // slots the plan requires
	Available int // slots free before the plan (0 when the binder will be cleared)
	Shortfall int // slots missing; always positive
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("placement needs %d slots but only %d are free (short %d)",
		e.Needed, e.Available, e.Shortfall)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
