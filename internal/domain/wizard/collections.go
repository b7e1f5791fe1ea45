package wizard

import (
	"slices"
	"strings"

	"vendor_listing/internal/domain/entities"
)

// Collection editors never modify their input. Every call that changes something returns
// a freshly allocated slice; calls that change nothing return the input as is.

func AddItem[T any](c []T, item T) []T {
	out := make([]T, len(c), len(c)+1)
	copy(out, c)
	return append(out, item)
}

// UpdateItem replaces the element at i with fn(element). An index outside the collection
// is absorbed: c is returned unchanged.
func UpdateItem[T any](c []T, i int, fn func(T) T) []T {
	if i < 0 || i >= len(c) {
		return c
	}
	out := slices.Clone(c)
	out[i] = fn(out[i])
	return out
}

// RemoveItem filters out index i; later elements shift down by one.
func RemoveItem[T any](c []T, i int) []T {
	if i < 0 || i >= len(c) {
		return c
	}
	out := make([]T, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...)
}

// ToggleMember adds v when absent and removes it when present. v is trimmed first; a blank v
// leaves the set unchanged.
func ToggleMember(set entities.SpecialtySet, v string) entities.SpecialtySet {
	out := set.Canonical()
	if v = strings.TrimSpace(v); v == "" {
		return out
	}
	i, found := slices.BinarySearch(out, v)
	if found {
		return slices.Delete(out, i, i+1)
	}
	return slices.Insert(out, i, v)
}

// AppendImages appends a batch of image references in input order. Blank references are
// skipped.
func AppendImages(c []string, refs ...string) []string {
	out := make([]string, len(c), len(c)+len(refs))
	copy(out, c)
	for _, ref := range refs {
		if ref = strings.TrimSpace(ref); ref != "" {
			out = append(out, ref)
		}
	}
	return out
}

// IndexByID resolves an item id to its current position, or -1. Positions are looked up
// on every call and never cached, since any removal shifts them.
func IndexByID[T interface{ ItemID() string }](c []T, id string) int {
	return slices.IndexFunc(c, func(item T) bool { return item.ItemID() == id })
}
