package xwgen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tamberg/xwgen/internal/search"
	"github.com/tamberg/xwgen/pkg/dictionary"
	"github.com/tamberg/xwgen/pkg/layout"
)

// Kind classifies why Generate failed, mirroring spec.md §7's
// enumerated failure modes.
type Kind int

const (
	KindMalformedWord Kind = iota
	KindInsufficientDictionary
	KindLayoutUnreachable
	KindUnsolvable
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindMalformedWord:
		return "MalformedWord"
	case KindInsufficientDictionary:
		return "InsufficientDictionary"
	case KindLayoutUnreachable:
		return "LayoutUnreachable"
	case KindUnsolvable:
		return "Unsolvable"
	case KindInvariant:
		return "Invariant"
	default:
		return "Unknown"
	}
}

// GenerationError is the error type every Generate failure is wrapped
// in. Generate does not fill in AttemptID, so it stays uuid.Nil and
// Error omits it.
type GenerationError struct {
	Kind      Kind
	AttemptID uuid.UUID
	cause     error
}

func (e *GenerationError) Error() string {
	if e.AttemptID == uuid.Nil {
		return fmt.Sprintf("xwgen: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("xwgen: %s (attempt %s): %v", e.Kind, e.AttemptID, e.cause)
}

func (e *GenerationError) Unwrap() error { return e.cause }

func newGenerationError(kind Kind, cause error) *GenerationError {
	return &GenerationError{Kind: kind, cause: cause}
}

// Exported sentinels so callers can errors.Is against a stable Kind
// without reaching into the error's cause chain.
var (
	ErrMalformedWord          = dictionary.ErrMalformedWord
	ErrInsufficientDictionary = errors.New("xwgen: dictionary has too few admissible words for this grid size")
	ErrLayoutUnreachable      = layout.ErrLayoutUnreachable
	ErrUnsolvable             = search.ErrUnsolvable
	ErrInvariant              = search.ErrInvariant
)

func kindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrMalformedWord):
		return KindMalformedWord
	case errors.Is(err, ErrInsufficientDictionary):
		return KindInsufficientDictionary
	case errors.Is(err, ErrLayoutUnreachable):
		return KindLayoutUnreachable
	case errors.Is(err, ErrUnsolvable):
		return KindUnsolvable
	default:
		return KindInvariant
	}
}
