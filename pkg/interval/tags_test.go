package interval

import (
	"slices"
	"testing"
)

func TestNewTagsCollapsesDuplicates(t *testing.T) {
	tags := NewTags("freedom", "liberty", "freedom")
	if len(tags) != 2 {
		t.Fatalf("expected 2 distinct tags, got %d", len(tags))
	}
	if !tags.Contains("freedom") || !tags.Contains("liberty") {
		t.Fatalf("unexpected members: %v", tags.Sorted())
	}
}

func TestTagsEqual(t *testing.T) {
	tests := []struct {
		name string
		a    Tags
		b    Tags
		want bool
	}{
		{"both empty", NewTags(), NewTags(), true},
		{"nil equals empty", nil, NewTags(), true},
		{"same members", NewTags("freedom", "liberty"), NewTags("liberty", "freedom"), true},
		{"different sizes", NewTags("freedom"), NewTags("freedom", "liberty"), false},
		{"same size different members", NewTags("freedom"), NewTags("liberty"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagsDiff(t *testing.T) {
	got := NewTags("freedom", "liberty", "fairness").Diff(NewTags("liberty", "democracy"))
	if !got.Equal(NewTags("freedom", "fairness")) {
		t.Fatalf("Diff() = %v", got.Sorted())
	}
}

func TestTagsSorted(t *testing.T) {
	got := NewTags("liberty", "democracy", "freedom").Sorted()
	want := []string{"democracy", "freedom", "liberty"}
	if !slices.Equal(got, want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}
}

func TestTagsCloneIsIndependent(t *testing.T) {
	original := NewTags("freedom")
	clone := original.Clone()
	clone["liberty"] = struct{}{}
	if original.Contains("liberty") {
		t.Fatal("mutating a clone leaked into the original")
	}
}
