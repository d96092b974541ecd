package schema

import "fmt"

// ValidateKnowledgeBase checks the knowledge-base entries for internal
// consistency before anything is rendered: every definition key must
// resolve, quantities must be non-negative with ordered ranges, and
// composition shares must be percentages. The first problem found is
// returned; a clean dataset returns nil.
func ValidateKnowledgeBase(entries []KnowledgeEntry, definitions map[string]DefinitionEntry) error {
	seen := make(map[string]bool, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.ID == "" {
			return fmt.Errorf("entry %d has no ID", i)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate entry ID %q", e.ID)
		}
		seen[e.ID] = true

		if !e.Category.Valid() {
			return fmt.Errorf("entry %q: unknown category %q", e.ID, e.Category)
		}
		if e.Name.IsZero() {
			return fmt.Errorf("entry %q has no name", e.ID)
		}
		if e.DefinitionKey != "" {
			if _, ok := definitions[e.DefinitionKey]; !ok {
				return fmt.Errorf("entry %q references unknown definition %q", e.ID, e.DefinitionKey)
			}
		}
		if err := validateQuantity(e.ID, "design", e.Design); err != nil {
			return err
		}
		if err := validateQuantity(e.ID, "actual", e.Actual); err != nil {
			return err
		}
		for _, c := range e.Composition {
			if c.Name == "" {
				return fmt.Errorf("entry %q: composition item with no component name", e.ID)
			}
			if c.Min < 0 || c.Max > 100 {
				return fmt.Errorf("entry %q: component %s share %.2f-%.2f outside 0-100", e.ID, c.Name, c.Min, c.Max)
			}
			if c.Min > c.Max {
				return fmt.Errorf("entry %q: component %s has inverted range %.2f > %.2f", e.ID, c.Name, c.Min, c.Max)
			}
		}
	}
	return nil
}

func validateQuantity(entryID, field string, q *Quantity) error {
	if q == nil {
		return nil
	}
	if q.Unit != KilogramsPerHour && q.Unit != TonnesPerHour && q.Unit != TonnesPerYear {
		return fmt.Errorf("entry %q: %s has unknown unit %q", entryID, field, q.Unit)
	}
	if q.IsRange {
		if q.Min < 0 || q.Max < 0 {
			return fmt.Errorf("entry %q: %s range is negative", entryID, field)
		}
		if q.Min > q.Max {
			return fmt.Errorf("entry %q: %s range inverted (%.2f > %.2f)", entryID, field, q.Min, q.Max)
		}
		return nil
	}
	if q.Value < 0 {
		return fmt.Errorf("entry %q: %s is negative (%.2f)", entryID, field, q.Value)
	}
	return nil
}
