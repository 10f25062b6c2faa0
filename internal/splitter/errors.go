package splitter

import (
	"errors"
	"fmt"
)

// ErrEmptyParticipants is returned when no average share can be computed
// because the participant list is empty.
var ErrEmptyParticipants = errors.New("must have at least one participant")

// ErrInsufficientParticipants is returned when settlement is requested with
// fewer than two participants; there is no meaningful transfer in that case.
var ErrInsufficientParticipants = errors.New("must have at least two participants to settle")

// InvalidAmountError reports an expense whose amount is zero or negative.
// The request carrying it is rejected outright, never dropped or clamped.
type InvalidAmountError struct {
	ExpenseID int64
	Amount    float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("expense %d has non-positive amount %.2f", e.ExpenseID, e.Amount)
}
