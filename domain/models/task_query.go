package models

import "math"

// TaskSortKey is the closed set of orderings the list endpoint understands.
// Each key maps to a fixed column so caller text never reaches SQL.
type TaskSortKey int

const (
	SortNone TaskSortKey = iota
	SortByDueDate
	SortByCreateDate
)

// ParseTaskSortKey maps query text to a sort key. Anything unrecognised is
// SortNone: the filter is silently dropped, not rejected.
func ParseTaskSortKey(s string) TaskSortKey {
	switch s {
	case "due_date":
		return SortByDueDate
	case "create_date":
		return SortByCreateDate
	default:
		return SortNone
	}
}

// Column returns the column for the key, or "" for SortNone.
func (k TaskSortKey) Column() string {
	switch k {
	case SortByDueDate:
		return "due_date"
	case SortByCreateDate:
		return "create_date"
	default:
		return ""
	}
}

// TaskQuery describes a filtered, ordered page of tasks.
type TaskQuery struct {
	Search string
	Sort   TaskSortKey
	Page   int
	Limit  int
}

// Normalize coerces page and limit to at least 1. A page whose offset would
// not fit in an int is pulled back to the last representable one, which is
// still past any real table.
func (q TaskQuery) Normalize() TaskQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		q.Page = math.MaxInt/q.Limit + 1
	}
	return q
}

func (q TaskQuery) Offset() int {
	n := q.Normalize()
	return (n.Page - 1) * n.Limit
}
