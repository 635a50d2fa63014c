package nav

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ExpansionSet is the set of top-level IDs whose children are visible. It is
// advisory UI state and never gates selection. Values are immutable: Toggle
// returns a new set.
type ExpansionSet map[string]struct{}

// NewExpansionSet builds a set from ids.
func NewExpansionSet(ids ...string) ExpansionSet {
	s := make(ExpansionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set is empty.
func (s ExpansionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle returns the symmetric difference of s and {id}.
func (s ExpansionSet) Toggle(id string) ExpansionSet {
	out := s.Clone()
	if out.Has(id) {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// Clone copies the set.
func (s ExpansionSet) Clone() ExpansionSet {
	out := make(ExpansionSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the members in sorted order.
func (s ExpansionSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether both sets hold the same members.
func (s ExpansionSet) Equal(other ExpansionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s ExpansionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *ExpansionSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewExpansionSet(ids...)
	return nil
}

// SelectPolicy decides what selecting a parent item with children does to the
// active section.
type SelectPolicy int

const (
	// PolicyActivateAndToggle makes the parent active and toggles expansion.
	PolicyActivateAndToggle SelectPolicy = iota
	// PolicyToggleOnly toggles expansion and leaves the active section alone.
	PolicyToggleOnly
)

// ParsePolicy maps a config value ("activate" or "toggle") to a policy.
func ParsePolicy(s string) (SelectPolicy, error) {
	switch s {
	case "", "activate":
		return PolicyActivateAndToggle, nil
	case "toggle":
		return PolicyToggleOnly, nil
	default:
		return 0, fmt.Errorf("nav: unknown parent-select policy %q (want activate or toggle)", s)
	}
}

func (p SelectPolicy) String() string {
	if p == PolicyToggleOnly {
		return "toggle"
	}
	return "activate"
}

// Select returns the active section after itemID is clicked.
func Select(activeID, itemID string, hasChildren bool, policy SelectPolicy) string {
	if hasChildren && policy == PolicyToggleOnly {
		return activeID
	}
	return itemID
}
