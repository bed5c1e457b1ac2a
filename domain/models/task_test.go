package models

import (
	"math"
	"testing"
	"time"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want TaskStatus
	}{
		{"done", true, TaskStatusDone},
		{"not_done", true, TaskStatusNotDone},
		{"Done", false, ""},
		{" done", false, ""},
		{"bogus", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		got, ok := ParseTaskStatus(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseTaskStatus(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseTaskPriority(t *testing.T) {
	for _, in := range []string{"low", "medium", "high"} {
		if _, ok := ParseTaskPriority(in); !ok {
			t.Errorf("ParseTaskPriority(%q) rejected", in)
		}
	}
	for _, in := range []string{"HIGH", "urgent", "", "средний"} {
		if _, ok := ParseTaskPriority(in); ok {
			t.Errorf("ParseTaskPriority(%q) accepted", in)
		}
	}
}

func TestTaskPatchColumns(t *testing.T) {
	title := "New"
	status := TaskStatusDone
	due := time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC)

	p := TaskPatch{Title: &title, Status: &status, DueDate: &due}
	cols := p.Columns()

	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d: %v", len(cols), cols)
	}
	if cols["title"] != "New" || cols["status"] != TaskStatusDone || cols["due_date"] != due {
		t.Errorf("unexpected columns: %v", cols)
	}
	if _, ok := cols["create_date"]; ok {
		t.Error("create_date must never be part of a patch")
	}
	if (TaskPatch{}).IsEmpty() != true {
		t.Error("zero patch should be empty")
	}
}

func TestTaskPatchValid(t *testing.T) {
	bad := TaskStatus("bogus")
	if (TaskPatch{Status: &bad}).Valid() {
		t.Error("patch with out-of-domain status reported valid")
	}
	ok := TaskPriorityHigh
	if !(TaskPatch{Priority: &ok}).Valid() {
		t.Error("patch with valid priority reported invalid")
	}
}

func TestParseTaskSortKey(t *testing.T) {
	tests := []struct {
		in     string
		column string
	}{
		{"due_date", "due_date"},
		{"create_date", "create_date"},
		{"title", ""},
		{"id; DROP TABLE tasks", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ParseTaskSortKey(tt.in).Column(); got != tt.column {
			t.Errorf("ParseTaskSortKey(%q).Column() = %q, want %q", tt.in, got, tt.column)
		}
	}
}

func TestTaskQueryNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"defaults kept", 1, 10, 1, 10, 0},
		{"second page", 2, 1, 2, 1, 1},
		{"page below one", 0, 5, 1, 5, 0},
		{"negative limit", 3, -4, 3, 1, 2},
		{"third page of five", 3, 5, 3, 5, 10},
		{"max page limit one", math.MaxInt, 1, math.MaxInt, 1, math.MaxInt - 1},
		{"max page limit two", math.MaxInt, 2, math.MaxInt/2 + 1, 2, math.MaxInt - 1},
		{"max page max limit", math.MaxInt, math.MaxInt, 2, math.MaxInt, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := TaskQuery{Page: tt.page, Limit: tt.limit}
			n := q.Normalize()
			if n.Page != tt.wantPage || n.Limit != tt.wantLimit {
				t.Errorf("Normalize() = page %d limit %d, want %d %d", n.Page, n.Limit, tt.wantPage, tt.wantLimit)
			}
			if off := q.Offset(); off != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", off, tt.wantOffset)
			}
		})
	}
}
