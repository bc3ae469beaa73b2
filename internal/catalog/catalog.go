package catalog

import (
	"strings"
)

// Kind distinguishes the two static catalogs
type Kind string

const (
	KindApparel Kind = "apparel"
	KindPet     Kind = "pet"
	// KindAny matches an entry in either catalog
	KindAny Kind = "any"
)

// Entry is a purchasable item or pet
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
	Rare  bool   `json:"rare,omitempty"`
}

// DisplayLabel returns the label with the rarity badge appended
func (e Entry) DisplayLabel() string {
	if e.Rare {
		return e.Label + RareBadge
	}
	return e.Label
}

var (
	apparelIndex = index(apparel)
	petIndex     = index(pets)
)

func index(entries []Entry) map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return m
}

// NormalizeID lowercases and collapses whitespace so "Top  Hat" matches "top hat"
func NormalizeID(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Entries returns the catalog of the given kind in display order
func Entries(kind Kind) []Entry {
	switch kind {
	case KindApparel:
		return append([]Entry(nil), apparel...)
	case KindPet:
		return append([]Entry(nil), pets...)
	default:
		out := make([]Entry, 0, len(apparel)+len(pets))
		out = append(out, apparel...)
		return append(out, pets...)
	}
}

// Lookup finds an entry by id (case-insensitive) in the given catalog
func Lookup(kind Kind, id string) (Entry, bool) {
	id = NormalizeID(id)
	switch kind {
	case KindApparel:
		e, ok := apparelIndex[id]
		return e, ok
	case KindPet:
		e, ok := petIndex[id]
		return e, ok
	default:
		if e, ok := apparelIndex[id]; ok {
			return e, true
		}
		e, ok := petIndex[id]
		return e, ok
	}
}

// KindOf classifies an owned item id purely by catalog membership. Anything that
// is not a pet is treated as apparel.
func KindOf(id string) Kind {
	if _, ok := petIndex[NormalizeID(id)]; ok {
		return KindPet
	}
	return KindApparel
}

// IDs returns the catalog's identifiers in display order
func IDs(kind Kind) []string {
	entries := Entries(kind)
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
