// Package roster defines the core domain types for muster.
package roster

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNegativePoints = errors.New("points cannot be negative")
	ErrEmptyImage     = errors.New("image reference cannot be empty")
	ErrUnknownKind    = errors.New("unknown element kind")
)

// Domain errors.
var ErrElementNotFound = errors.New("element not found")

// Kind identifies an element variant in storage and CLI output.
type Kind string

const (
	KindCharacter Kind = "character"
	KindUnit      Kind = "unit"
	KindSupport   Kind = "support"
	KindOther     Kind = "other"
)

// Valid returns true if the kind is a valid value.
func (k Kind) Valid() bool {
	switch k {
	case KindCharacter, KindUnit, KindSupport, KindOther:
		return true
	default:
		return false
	}
}

// Element is one entry in a roster. The variant set is closed: exactly
// Character, Unit, Support, and Other implement it, and consumers dispatch
// with exhaustive type switches.
type Element interface {
	element()
}

// Character is a named hero with a fixed built-in image.
type Character struct {
	Name   string
	Points int
}

// Unit is a fighting group carrying its own image reference.
type Unit struct {
	Name   string
	Points int
	Image  string
}

// Support is an auxiliary entry with a fixed built-in image.
type Support struct {
	Name   string
	Points int
}

// Other is a freeform entry: raw label plus its own image reference.
type Other struct {
	Label  string
	Points int
	Image  string
}

func (Character) element() {}
func (Unit) element()      {}
func (Support) element()   {}
func (Other) element()     {}

// Points returns the point value of any element variant.
func Points(e Element) int {
	switch v := e.(type) {
	case Character:
		return v.Points
	case Unit:
		return v.Points
	case Support:
		return v.Points
	case Other:
		return v.Points
	default:
		panic(fmt.Sprintf("roster: unknown element %T", e))
	}
}

// KindOf returns the storage kind of any element variant.
func KindOf(e Element) Kind {
	switch e.(type) {
	case Character:
		return KindCharacter
	case Unit:
		return KindUnit
	case Support:
		return KindSupport
	case Other:
		return KindOther
	default:
		panic(fmt.Sprintf("roster: unknown element %T", e))
	}
}

// Validate checks the element invariants: a non-empty name or label,
// a non-negative point value, and a resolvable image reference for the
// variants that carry one.
func Validate(e Element) error {
	switch v := e.(type) {
	case Character:
		if v.Name == "" {
			return ErrEmptyName
		}
		if v.Points < 0 {
			return ErrNegativePoints
		}
	case Unit:
		if v.Name == "" {
			return ErrEmptyName
		}
		if v.Points < 0 {
			return ErrNegativePoints
		}
		if v.Image == "" {
			return ErrEmptyImage
		}
	case Support:
		if v.Name == "" {
			return ErrEmptyName
		}
		if v.Points < 0 {
			return ErrNegativePoints
		}
	case Other:
		if v.Label == "" {
			return ErrEmptyName
		}
		if v.Points < 0 {
			return ErrNegativePoints
		}
		if v.Image == "" {
			return ErrEmptyImage
		}
	default:
		return ErrUnknownKind
	}
	return nil
}

// Roster is the ordered collection of elements. Insertion order is the
// display order, and an element's index is its identity for deletion
// and tooltip purposes.
type Roster struct {
	Elements []Element
}

// New creates a roster from the given elements.
func New(elems ...Element) *Roster {
	return &Roster{Elements: elems}
}

// Len returns the number of elements.
func (r *Roster) Len() int {
	return len(r.Elements)
}

// TotalPoints sums the point values of all elements. An empty roster
// yields 0.
func (r *Roster) TotalPoints() int {
	total := 0
	for _, e := range r.Elements {
		total += Points(e)
	}
	return total
}

// Remove deletes the element at index, shifting subsequent elements down
// by one. It returns false when the index is out of bounds; the collection
// may shrink between event dispatch and handling, so callers treat that
// as a no-op rather than an error.
func (r *Roster) Remove(index int) bool {
	if index < 0 || index >= len(r.Elements) {
		return false
	}
	r.Elements = append(r.Elements[:index], r.Elements[index+1:]...)
	return true
}

// Add appends an element, preserving insertion order.
func (r *Roster) Add(e Element) {
	r.Elements = append(r.Elements, e)
}
