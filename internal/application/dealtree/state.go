package dealtree

import (
	"fmt"
	"strings"
)

// TreeState holds the expand/collapse state of the rendered deal tree. Nodes
// are keyed by path: "deal-{i}", "inst-{i}-{j}", "pay-{i}-{j}-{k}". Refunds
// render inline under their payment and carry no state of their own.
//
// The state is sibling-exclusive: at most one child per parent node is open,
// stored as a parent-key → open-child-key mapping. Toggling an already-open
// key closes it; toggling a sibling replaces the open one. The accordion
// wiring of the dashboard only ever shows one open region per parent, so the
// storage enforces the same rule instead of permitting stray multi-open keys.
//
// TreeState is not safe for concurrent use; the render cycle is single
// threaded and mutations never interleave.
type TreeState struct {
	open map[string]string
}

// NewTreeState creates an empty (fully collapsed) tree state
func NewTreeState() *TreeState {
	return &TreeState{open: make(map[string]string)}
}

// rootKey is the synthetic parent of top-level deal nodes
const rootKey = ""

// parentKey derives the parent node key from a child key path.
func parentKey(key string) (string, error) {
	parts := strings.Split(key, "-")
	switch {
	case len(parts) == 2 && parts[0] == "deal":
		return rootKey, nil
	case len(parts) == 3 && parts[0] == "inst":
		return fmt.Sprintf("deal-%s", parts[1]), nil
	case len(parts) == 4 && parts[0] == "pay":
		return fmt.Sprintf("inst-%s-%s", parts[1], parts[2]), nil
	default:
		return "", fmt.Errorf("malformed tree node key %q", key)
	}
}

// Toggle flips the open state of the node at key. Opening a node closes any
// open sibling under the same parent. Toggling twice in succession restores
// the previous state.
func (s *TreeState) Toggle(key string) error {
	parent, err := parentKey(key)
	if err != nil {
		return err
	}
	if s.open[parent] == key {
		delete(s.open, parent)
		return nil
	}
	s.open[parent] = key
	return nil
}

// IsOpen reports whether the node at key is currently expanded
func (s *TreeState) IsOpen(key string) bool {
	parent, err := parentKey(key)
	if err != nil {
		return false
	}
	return s.open[parent] == key
}

// CollapseAll closes every node at every level
func (s *TreeState) CollapseAll() {
	s.open = make(map[string]string)
}
