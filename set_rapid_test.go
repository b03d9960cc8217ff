package bstset

import (
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestSet_Model(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		s := New[int8]()
		members := map[int8]struct{}{}

		t.Repeat(
			map[string]func(*rapid.T){
				"insert a non-member": func(t *rapid.T) {
					m := rapid.Int8().Draw(t, "non-member")
					if _, ok := members[m]; ok {
						t.Skip("already a member")
					}
					if s.Search(m) {
						t.Fatalf("did not expect set to contain %d", m)
					}
					if !s.Insert(m) {
						t.Fatalf("Insert(%d) = false", m)
					}
					members[m] = struct{}{}
				},
				"re-insert an existing member": func(t *rapid.T) {
					if len(members) == 0 {
						t.Skip("set is empty")
					}
					m := rapid.SampledFrom(slices.Collect(maps.Keys(members))).Draw(t, "member")
					before := s.Size()
					if s.Insert(m) {
						t.Fatalf("Insert(%d) of a member = true", m)
					}
					if after := s.Size(); after != before {
						t.Fatalf("size changed from %d to %d", before, after)
					}
				},
				"remove an existing member": func(t *rapid.T) {
					if len(members) == 0 {
						t.Skip("set is empty")
					}
					m := rapid.SampledFrom(slices.Collect(maps.Keys(members))).Draw(t, "member")
					if !s.Remove(m) {
						t.Fatalf("Remove(%d) = false", m)
					}
					if s.Search(m) {
						t.Fatalf("did not expect set to contain %d", m)
					}
					delete(members, m)
				},
				"remove a non-member": func(t *rapid.T) {
					m := rapid.Int8().Draw(t, "non-member")
					if _, ok := members[m]; ok {
						t.Skip("already a member")
					}
					before := s.Values()
					if s.Remove(m) {
						t.Fatalf("Remove(%d) of a non-member = true", m)
					}
					if diff := cmp.Diff(before, s.Values()); diff != "" {
						t.Fatalf("set changed (-before +after):\n%s", diff)
					}
				},
				"clear": func(t *rapid.T) {
					if rapid.IntRange(0, 9).Draw(t, "roll") != 0 {
						t.Skip("clear is rare")
					}
					s.Clear()
					clear(members)
				},
				"": func(t *rapid.T) {
					if got, want := s.Size(), len(members); got != want {
						t.Fatalf("Size() = %d, want %d", got, want)
					}
					if got, want := s.Empty(), len(members) == 0; got != want {
						t.Fatalf("Empty() = %v, want %v", got, want)
					}
					want := slices.Sorted(maps.Keys(members))
					if diff := cmp.Diff(want, s.Values()); diff != "" {
						t.Fatalf("members out of order (-want +got):\n%s", diff)
					}
					if len(want) > 0 {
						if v, _ := s.Min(); v != want[0] {
							t.Fatalf("Min() = %d, want %d", v, want[0])
						}
						if v, _ := s.Max(); v != want[len(want)-1] {
							t.Fatalf("Max() = %d, want %d", v, want[len(want)-1])
						}
					}
					checkOrder(t, s)
				},
			},
		)
	})
}
