package roster

import "context"

// Repository defines the storage interface for the roster.
type Repository interface {
	// LoadRoster returns all elements in display order.
	LoadRoster(ctx context.Context) ([]Element, error)

	// SaveRoster replaces the stored roster with the given sequence,
	// preserving its order.
	SaveRoster(ctx context.Context, elems []Element) error

	// AddElement appends one element at the end of the stored roster.
	AddElement(ctx context.Context, e Element) error

	// DeleteElementAt removes the element at the given display position,
	// shifting later positions down by one.
	// Returns ErrElementNotFound when the position does not exist.
	DeleteElementAt(ctx context.Context, position int) error

	// Close releases any resources held by the repository.
	Close() error
}
