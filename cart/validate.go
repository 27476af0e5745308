package cart

import "github.com/cardapio-digital/restaurante-api/models"

// ValidateSelection checks one group's selection count against its min/max
// bounds. Groups with MinChoices == 0 are optional; MaxChoices caps how many
// options within the group may be picked at once.
func ValidateSelection(group models.OptionGroup, selected []models.Option) error {
	count := 0
	members := make(map[uint]bool, len(group.Options))
	for _, o := range group.Options {
		members[o.ID] = true
	}
	for _, o := range selected {
		if members[o.ID] {
			count++
		}
	}

	if count < group.MinChoices {
		return ValidationError{GroupID: group.ID, GroupName: group.Name, Reason: ReasonBelowMinimum}
	}
	if group.MaxChoices > 0 && count > group.MaxChoices {
		return ValidationError{GroupID: group.ID, GroupName: group.Name, Reason: ReasonAboveMaximum}
	}
	return nil
}

// ValidateProduct runs ValidateSelection over every group of the product and
// aggregates all failures, so the caller can report them in one pass.
func ValidateProduct(product models.Product, selected []models.Option) error {
	var violations []ValidationError
	for _, group := range product.Groups {
		if err := ValidateSelection(group, selected); err != nil {
			violations = append(violations, err.(ValidationError))
		}
	}
	if len(violations) > 0 {
		return &SelectionError{Violations: violations}
	}
	return nil
}
