package cart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLineNotFound    = errors.New("cart line item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Cardinality violation reasons for an option group.
const (
	ReasonBelowMinimum = "below_minimum"
	ReasonAboveMaximum = "above_maximum"
)

// ValidationError reports a single option group whose selection count falls
// outside its min/max bounds.
type ValidationError struct {
	GroupID   uint   `json:"subProdutoId"`
	GroupName string `json:"nome"`
	Reason    string `json:"motivo"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("group %q (%d): %s", e.GroupName, e.GroupID, e.Reason)
}

// SelectionError aggregates every failing group of a product configuration so
// the caller can surface all problems at once.
type SelectionError struct {
	Violations []ValidationError `json:"violacoes"`
}

func (e *SelectionError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return "invalid option selection: " + strings.Join(msgs, "; ")
}
