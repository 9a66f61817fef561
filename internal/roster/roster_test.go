package roster

import (
	"errors"
	"testing"
)

func TestTotalPoints(t *testing.T) {
	tests := []struct {
		name  string
		elems []Element
		want  int
	}{
		{name: "empty", elems: nil, want: 0},
		{
			name: "mixed_variants",
			elems: []Element{
				Character{Name: "Voss", Points: 30},
				Unit{Name: "Grots", Points: 15, Image: "grots.png"},
				Support{Name: "Runt", Points: 5},
				Other{Label: "Wagon", Points: 12, Image: "wagon.png"},
			},
			want: 62,
		},
		{
			name:  "zero_point_element",
			elems: []Element{Other{Label: "Banner", Points: 0, Image: "banner.png"}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.elems...)
			if got := r.TotalPoints(); got != tt.want {
				t.Errorf("TotalPoints() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	newRoster := func() *Roster {
		return New(
			Character{Name: "A", Points: 10},
			Unit{Name: "B", Points: 20, Image: "b.png"},
			Support{Name: "C", Points: 30},
		)
	}

	t.Run("middle_preserves_order", func(t *testing.T) {
		r := newRoster()
		if !r.Remove(1) {
			t.Fatal("Remove(1) = false, want true")
		}
		if r.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", r.Len())
		}
		if _, ok := r.Elements[0].(Character); !ok {
			t.Errorf("element 0 = %T, want Character", r.Elements[0])
		}
		if _, ok := r.Elements[1].(Support); !ok {
			t.Errorf("element 1 = %T, want Support", r.Elements[1])
		}
	})

	t.Run("out_of_bounds", func(t *testing.T) {
		r := newRoster()
		for _, idx := range []int{-1, 3, 100} {
			if r.Remove(idx) {
				t.Errorf("Remove(%d) = true, want false", idx)
			}
		}
		if r.Len() != 3 {
			t.Errorf("Len() = %d, want 3", r.Len())
		}
	})
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name string
		elem Element
		want int
	}{
		{name: "character", elem: Character{Name: "A", Points: 30}, want: 30},
		{name: "unit", elem: Unit{Name: "B", Points: 15, Image: "b.png"}, want: 15},
		{name: "support", elem: Support{Name: "C", Points: 5}, want: 5},
		{name: "other", elem: Other{Label: "D", Points: 12, Image: "d.png"}, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.elem); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		elem Element
		want Kind
	}{
		{elem: Character{Name: "A"}, want: KindCharacter},
		{elem: Unit{Name: "B", Image: "b.png"}, want: KindUnit},
		{elem: Support{Name: "C"}, want: KindSupport},
		{elem: Other{Label: "D", Image: "d.png"}, want: KindOther},
	}

	for _, tt := range tests {
		if got := KindOf(tt.elem); got != tt.want {
			t.Errorf("KindOf(%T) = %q, want %q", tt.elem, got, tt.want)
		}
		if !tt.want.Valid() {
			t.Errorf("Kind %q should be valid", tt.want)
		}
	}

	if Kind("banner").Valid() {
		t.Error("Kind(banner) should not be valid")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		elem    Element
		wantErr error
	}{
		{name: "valid_character", elem: Character{Name: "A", Points: 30}},
		{name: "valid_unit", elem: Unit{Name: "B", Points: 0, Image: "b.png"}},
		{name: "empty_name", elem: Character{Points: 30}, wantErr: ErrEmptyName},
		{name: "empty_label", elem: Other{Points: 1, Image: "x.png"}, wantErr: ErrEmptyName},
		{name: "negative_points", elem: Support{Name: "C", Points: -1}, wantErr: ErrNegativePoints},
		{name: "unit_missing_image", elem: Unit{Name: "B", Points: 10}, wantErr: ErrEmptyImage},
		{name: "other_missing_image", elem: Other{Label: "D", Points: 10}, wantErr: ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.elem)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
