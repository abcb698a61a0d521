// Package label builds short unique display labels for entities sharing a primary name.
//
// Two students called "Leo" become "Leo D." and "Leo De." when their family names
// start with the same letter. Underlying data is never modified.
package label

import (
	"strconv"
)

// Strategy describes how to label one kind of entity
// Primary is the bare label, Secondary supplies prefixes to tell duplicates apart,
// Format joins a primary label with a secondary prefix
type Strategy[T comparable] struct {
	Primary   func(T) string
	Secondary func(T) string
	Format    func(primary, prefix string) string
}

// Disambiguate labels every item
// Items sharing a primary key get successively longer rune prefixes of their
// secondary key until the formatted label is unused within the group.
// When the whole secondary key still collides, an ordinal suffix is appended.
// Output depends only on input order.
func (s Strategy[T]) Disambiguate(items []T) map[T]string {
	result := make(map[T]string, len(items))

	var order []string
	groups := make(map[string][]T)
	for _, item := range items {
		key := s.Primary(item)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], item)
	}

	for _, key := range order {
		members := groups[key]
		if len(members) == 1 {
			result[members[0]] = key
			continue
		}

		used := make(map[string]bool, len(members))
		for _, m := range members {
			label := s.uniqueLabel(key, []rune(s.Secondary(m)), used)
			used[label] = true
			result[m] = label
		}
	}
	return result
}

func (s Strategy[T]) uniqueLabel(primary string, secondary []rune, used map[string]bool) string {
	for n := 1; n <= len(secondary); n++ {
		candidate := s.Format(primary, string(secondary[:n]))
		if !used[candidate] {
			return candidate
		}
	}

	// Secondary key exhausted
	base := s.Format(primary, string(secondary))
	if !used[base] {
		return base
	}
	for ord := 2; ; ord++ {
		candidate := base + " " + strconv.Itoa(ord)
		if !used[candidate] {
			return candidate
		}
	}
}

// Labels is a convenience wrapper returning labels in input order
func (s Strategy[T]) Labels(items []T) []string {
	m := s.Disambiguate(items)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = m[item]
	}
	return out
}

// Abbreviated formats "primary prefix."
func Abbreviated(primary, prefix string) string {
	return primary + " " + prefix + "."
}
