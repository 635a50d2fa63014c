package nav

import (
	"errors"
	"fmt"
	"strings"
)

// Descriptor is a flattened tree entry: the item's identity plus the content
// it routes to.
type Descriptor struct {
	ID          string
	Label       string
	Icon        string
	ParentID    string // empty for top-level items
	ParentLabel string
	HasChildren bool
	Content     Content
}

// Router resolves section IDs to descriptors. It is built once from the tree
// and is read-only afterwards.
type Router struct {
	tree      []Item
	flat      []Descriptor
	byID      map[string]int
	defaultID string
}

// NewRouter validates the tree and builds the lookup table. defaultID must
// name an entry in the tree.
func NewRouter(tree []Item, defaultID string) (*Router, error) {
	if len(tree) == 0 {
		return nil, errors.New("nav: empty navigation tree")
	}

	r := &Router{
		tree:      tree,
		byID:      make(map[string]int),
		defaultID: defaultID,
	}

	add := func(d Descriptor) error {
		if d.ID == "" {
			return errors.New("nav: item with empty id")
		}
		if _, dup := r.byID[d.ID]; dup {
			return fmt.Errorf("nav: duplicate id %q", d.ID)
		}
		r.byID[d.ID] = len(r.flat)
		r.flat = append(r.flat, d)
		return nil
	}

	for _, item := range tree {
		if strings.Contains(item.ID, ".") {
			return nil, fmt.Errorf("nav: top-level id %q must not contain a dot", item.ID)
		}
		if err := add(Descriptor{
			ID:          item.ID,
			Label:       item.Label,
			Icon:        item.Icon,
			HasChildren: item.HasChildren(),
			Content:     item.Content,
		}); err != nil {
			return nil, err
		}
		for _, child := range item.Children {
			if len(child.Children) > 0 {
				return nil, fmt.Errorf("nav: %q nests deeper than two levels", child.ID)
			}
			if !strings.HasPrefix(child.ID, item.ID+".") {
				return nil, fmt.Errorf("nav: child id %q is not namespaced under %q", child.ID, item.ID)
			}
			if err := add(Descriptor{
				ID:          child.ID,
				Label:       child.Label,
				Icon:        child.Icon,
				ParentID:    item.ID,
				ParentLabel: item.Label,
				Content:     child.Content,
			}); err != nil {
				return nil, err
			}
		}
	}

	if _, ok := r.byID[defaultID]; !ok {
		return nil, fmt.Errorf("nav: default section %q not in tree", defaultID)
	}
	return r, nil
}

// MustRouter is NewRouter for trees known to be valid at compile time.
func MustRouter(tree []Item, defaultID string) *Router {
	r, err := NewRouter(tree, defaultID)
	if err != nil {
		panic(err)
	}
	return r
}

// Tree returns the navigation tree the router was built from.
func (r *Router) Tree() []Item { return r.tree }

// DefaultID returns the fallback section ID.
func (r *Router) DefaultID() string { return r.defaultID }

// Flatten returns parents followed by their children, in tree order.
func (r *Router) Flatten() []Descriptor {
	return append([]Descriptor(nil), r.flat...)
}

// Lookup returns the descriptor for id and whether it exists.
func (r *Router) Lookup(id string) (Descriptor, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.flat[idx], true
}

// Resolve returns the descriptor for activeID. Unknown IDs silently fall back
// to the default section.
func (r *Router) Resolve(activeID string) Descriptor {
	if d, ok := r.Lookup(activeID); ok {
		return d
	}
	return r.flat[r.byID[r.defaultID]]
}

// Title renders the heading for activeID: "Parent - Child" for sub-items,
// the label for top-level items, and "Dashboard" when the ID is unknown.
func (r *Router) Title(activeID string) string {
	d, ok := r.Lookup(activeID)
	if !ok {
		return "Dashboard"
	}
	if d.ParentLabel != "" {
		return d.ParentLabel + " - " + d.Label
	}
	return d.Label
}

// IsActiveBranch reports whether the top-level item id is the active section
// or the parent of it.
func (r *Router) IsActiveBranch(id, activeID string) bool {
	if id == activeID {
		return true
	}
	d, ok := r.Lookup(activeID)
	return ok && d.ParentID == id
}
