package model

import (
	"strings"
)

// ParticipationRecord tracks which board messages a league user has
// authored, per category. Every known user gets a record, even with no
// activity at all.
type ParticipationRecord struct {
	Author     string
	ByCategory map[Category][]string // category -> message fingerprints, insertion order
}

func NewParticipationRecord(author string) *ParticipationRecord {
	byCat := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		byCat[c] = nil
	}
	return &ParticipationRecord{Author: author, ByCategory: byCat}
}

// Add records a fingerprint under a category. Adding the same
// fingerprint twice is a no-op so that re-merging old messages never
// inflates the counts.
func (r *ParticipationRecord) Add(c Category, fingerprint string) {
	for _, f := range r.ByCategory[c] {
		if f == fingerprint {
			return
		}
	}
	r.ByCategory[c] = append(r.ByCategory[c], fingerprint)
}

// Joined renders the fingerprint list of a category as the
// semicolon-separated cell used in the participation CSV.
func (r *ParticipationRecord) Joined(c Category) string {
	return strings.Join(r.ByCategory[c], ";")
}

// Count returns the number of messages recorded for a category.
func (r *ParticipationRecord) Count(c Category) int {
	return len(r.ByCategory[c])
}

// Total returns the number of messages recorded across all categories.
func (r *ParticipationRecord) Total() int {
	n := 0
	for _, c := range Categories {
		n += len(r.ByCategory[c])
	}
	return n
}
