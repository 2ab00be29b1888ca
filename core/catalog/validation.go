// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*Entry) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateName,
		validateMeasures,
		validateCategory,
	}
}

// Validate checks the catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	for _, entry := range c.Entries() {
		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", entry.Name, err))
			}
		}
	}

	return errs
}

// validateName ensures the canonical name survives normalization
func validateName(e *Entry) error {
	if e.Name == "" {
		return fmt.Errorf("entry has empty name")
	}
	if NormalizeLabel(e.Name) == "" {
		return fmt.Errorf("name normalizes to nothing")
	}
	return nil
}

// validateMeasures ensures weight and volume are non-negative
func validateMeasures(e *Entry) error {
	if e.WeightLbs < 0 {
		return fmt.Errorf("negative weight %.2f", e.WeightLbs)
	}
	if e.VolumeCuft < 0 {
		return fmt.Errorf("negative volume %.2f", e.VolumeCuft)
	}
	return nil
}

// validateCategory ensures every entry is categorized
func validateCategory(e *Entry) error {
	if e.Category == "" {
		return fmt.Errorf("entry has no category")
	}
	return nil
}

// MustValidate panics if validation fails.
// Catalog errors are fatal at startup; the process must not serve requests
// against malformed reference data.
func (c *Catalog) MustValidate() {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Printf("Catalog validation error: %v\n", err)
		}
		panic(fmt.Sprintf("Catalog has %d validation errors", len(errs)))
	}
}
