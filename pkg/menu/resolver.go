// Package menu turns a loaded configuration into the list of labels shown by
// the selector and maps a selected label back to its entry.
//
// Entries that share a group are alternatives. Only the first entry of a
// group, in declaration order, is displayed; the rest are hidden from the
// list but still resolve when their label is entered exactly.
package menu

import (
	"fmt"

	"github.com/lvim-tech/qmenu/pkg/config"
)

// UnknownSelectionError is returned when a selection matches no menu label.
type UnknownSelectionError struct {
	Label string
}

func (e *UnknownSelectionError) Error() string {
	return fmt.Sprintf("unknown selection %q", e.Label)
}

// Resolver answers display and lookup queries for one model.
type Resolver struct {
	entries []config.MenuEntry
	byLabel map[string]int
	shown   []int
	hidden  []int
}

// New builds a Resolver for m.
func New(m *config.Model) *Resolver {
	entries := m.Entries()
	r := &Resolver{
		entries: entries,
		byLabel: make(map[string]int, len(entries)),
	}

	groups := make(map[int]struct{})
	for i, entry := range entries {
		r.byLabel[entry.Label] = i

		if group, ok := entry.GroupID(); ok {
			if _, taken := groups[group]; taken {
				r.hidden = append(r.hidden, i)
				continue
			}
			groups[group] = struct{}{}
		}
		r.shown = append(r.shown, i)
	}

	return r
}

// DisplayLabels returns the labels to present, in declaration order.
func (r *Resolver) DisplayLabels() []string {
	labels := make([]string, 0, len(r.shown))
	for _, i := range r.shown {
		labels = append(labels, r.entries[i].Label)
	}
	return labels
}

// Hidden returns the grouped entries elided from DisplayLabels.
func (r *Resolver) Hidden() []config.MenuEntry {
	hidden := make([]config.MenuEntry, 0, len(r.hidden))
	for _, i := range r.hidden {
		hidden = append(hidden, r.entries[i])
	}
	return hidden
}

// Resolve returns the entry whose label equals label exactly.
func (r *Resolver) Resolve(label string) (config.MenuEntry, error) {
	i, ok := r.byLabel[label]
	if !ok {
		return config.MenuEntry{}, &UnknownSelectionError{Label: label}
	}
	return r.entries[i], nil
}

// Empty reports whether there is nothing to display.
func (r *Resolver) Empty() bool {
	return len(r.shown) == 0
}
