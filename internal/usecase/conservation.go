package usecase

import (
	"errors"
	"fmt"
)

var ErrBudgetExceeded = errors.New("budget exceeded")

// BudgetExceededError carries the computed usage for diagnostics so
// callers can show how much of the ceiling is already committed.
type BudgetExceededError struct {
	UsedCents      int64
	CandidateCents int64
	CeilingCents   int64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget exceeded: used=%d candidate=%d ceiling=%d", e.UsedCents, e.CandidateCents, e.CeilingCents)
}

func (e *BudgetExceededError) Is(target error) bool {
	return target == ErrBudgetExceeded
}

// checkConservation enforces used + candidate <= ceiling. Equality is
// allowed: committing exactly the remaining budget is legal.
func checkConservation(usedCents, candidateCents, ceilingCents int64) error {
	if usedCents+candidateCents > ceilingCents {
		return &BudgetExceededError{
			UsedCents:      usedCents,
			CandidateCents: candidateCents,
			CeilingCents:   ceilingCents,
		}
	}
	return nil
}
