package wizard

import (
	"testing"

	"vendor_listing/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAddThenRemoveRestoresCollection(t *testing.T) {
	before := []entities.Service{{ID: "a", Name: "Ceremony"}, {ID: "b", Name: "Reception"}}

	added := AddItem(before, entities.Service{ID: "c"})
	assert.Len(t, added, 3)
	assert.Len(t, before, 2, "input must not grow")

	restored := RemoveItem(added, len(added)-1)
	if diff := cmp.Diff(before, restored); diff != "" {
		t.Fatalf("collection changed (-before +after):\n%s", diff)
	}
}

func TestAddItem_DoesNotAliasInput(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "x"
	a := AddItem(base, "a")
	b := AddItem(base, "b")
	assert.Equal(t, []string{"x", "a"}, a)
	assert.Equal(t, []string{"x", "b"}, b)
}

func TestUpdateItem(t *testing.T) {
	in := []entities.Service{{ID: "a", Name: "Old"}}

	t.Run("replaces only the target", func(t *testing.T) {
		out := UpdateItem(in, 0, func(s entities.Service) entities.Service {
			s.Name = "New"
			return s
		})
		assert.Equal(t, "New", out[0].Name)
		assert.Equal(t, "Old", in[0].Name)
	})

	t.Run("out of range returns input", func(t *testing.T) {
		for _, i := range []int{-1, 1, 99} {
			out := UpdateItem(in, i, func(s entities.Service) entities.Service {
				s.Name = "changed"
				return s
			})
			if diff := cmp.Diff(in, out); diff != "" {
				t.Fatalf("index %d changed the collection:\n%s", i, diff)
			}
			assert.Same(t, &in[0], &out[0])
		}
	})
}

func TestRemoveItem_ShiftsAndIgnoresStaleIndex(t *testing.T) {
	in := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c"}, RemoveItem(in, 1))
	assert.Equal(t, []string{"a", "b", "c"}, in)
	assert.Equal(t, in, RemoveItem(in, 3))
	assert.Equal(t, in, RemoveItem(in, -1))
}

func TestToggleMember_IsItsOwnInverse(t *testing.T) {
	sets := []entities.SpecialtySet{
		{},
		{"Modern"},
		{"Luxury", "Rustic"},
	}
	for _, s := range sets {
		for _, v := range []string{"Modern", "Vintage", "Luxury", " Luxury", "Modern ", "", "   "} {
			got := ToggleMember(ToggleMember(s, v), v)
			if diff := cmp.Diff(s, got); diff != "" {
				t.Fatalf("toggle(toggle(%v, %q)) mismatch:\n%s", s, v, diff)
			}
		}
	}
}

func TestToggleMember_TrimsValue(t *testing.T) {
	s := entities.SpecialtySet{"Luxury", "Rustic"}
	assert.Equal(t, entities.SpecialtySet{"Rustic"}, ToggleMember(s, " Luxury "))
	assert.Equal(t, entities.SpecialtySet{"Luxury", "Modern", "Rustic"}, ToggleMember(s, "Modern\t"))
	assert.Equal(t, s, ToggleMember(s, ""))
	assert.Equal(t, s, ToggleMember(s, "  "))
}

func TestToggleMember_DoesNotMutateInput(t *testing.T) {
	s := entities.SpecialtySet{"Luxury", "Rustic"}
	out := ToggleMember(s, "Luxury")
	assert.Equal(t, entities.SpecialtySet{"Rustic"}, out)
	assert.Equal(t, entities.SpecialtySet{"Luxury", "Rustic"}, s)
}

func TestAppendImages_KeepsInputOrder(t *testing.T) {
	out := AppendImages([]string{"one"}, "two", " ", "blob:three")
	assert.Equal(t, []string{"one", "two", "blob:three"}, out)
}

func TestIndexByID(t *testing.T) {
	pkgs := []entities.PricingPackage{{ID: "p1"}, {ID: "p2"}}
	assert.Equal(t, 1, IndexByID(pkgs, "p2"))
	assert.Equal(t, -1, IndexByID(pkgs, "missing"))
}
