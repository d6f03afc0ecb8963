package payload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default parameter values for the single-payload subcommands.
const (
	DefaultDepth       = 500
	DefaultCount       = 50000
	DefaultKeyLength   = 5000
	DefaultArrayLength = 1000000
	DefaultPrefix      = "k"
	DefaultDupKey      = "dup"
	DefaultDupRepeat   = 5
	DefaultMixedCount  = 50000
	DefaultMixedLong   = 2000
)

// NestedParams configures the deep-nesting payload.
type NestedParams struct {
	// Depth counts wrapper levels. Zero produces the bare leaf scalar.
	Depth int `validate:"min=0"`
	// Arrays nests single-element arrays instead of single-key objects.
	Arrays bool
}

// ManyKeysParams configures the wide-object payload.
type ManyKeysParams struct {
	Count  int `validate:"min=0"`
	Prefix string
}

// LongKeyParams configures the oversized-key payload.
type LongKeyParams struct {
	Length int `validate:"min=0"`
}

// HugeArrayParams configures the long-array payload.
type HugeArrayParams struct {
	Length int `validate:"min=0"`
}

// DunderParams selects entries from the magic-name catalog.
type DunderParams struct {
	// Target is a catalog name, or "all" for the whole catalog.
	Target string `validate:"required"`
}

// MalformedParams selects one syntax-violation mode.
type MalformedParams struct {
	Mode string `validate:"required"`
}

// DuplicateParams configures the repeated-key payload. The point of the
// payload is the key collision, so the key must appear at least twice.
type DuplicateParams struct {
	Key    string `validate:"required"`
	Repeat int    `validate:"min=2"`
}

// MixedParams configures the combined payload.
type MixedParams struct {
	Count int `validate:"min=0"`
	Long  int `validate:"min=0"`
}

// Request names a kind and carries parameters for it. Only the parameter
// struct matching Kind is consulted.
type Request struct {
	Kind      Kind
	Nested    NestedParams
	ManyKeys  ManyKeysParams
	LongKey   LongKeyParams
	HugeArray HugeArrayParams
	Dunder    DunderParams
	Malformed MalformedParams
	Duplicate DuplicateParams
	Mixed     MixedParams
}

// NewRequest returns a request for kind with every parameter at its
// default, ready for callers to override.
func NewRequest(kind Kind) Request {
	return Request{
		Kind:      kind,
		Nested:    NestedParams{Depth: DefaultDepth},
		ManyKeys:  ManyKeysParams{Count: DefaultCount, Prefix: DefaultPrefix},
		LongKey:   LongKeyParams{Length: DefaultKeyLength},
		HugeArray: HugeArrayParams{Length: DefaultArrayLength},
		Dunder:    DunderParams{Target: TargetAll},
		Malformed: MalformedParams{Mode: string(DefaultMode)},
		Duplicate: DuplicateParams{Key: DefaultDupKey, Repeat: DefaultDupRepeat},
		Mixed:     MixedParams{Count: DefaultMixedCount, Long: DefaultMixedLong},
	}
}

// validate caches struct metadata, so a single shared instance is enough.
var validate = validator.New()

// checkParams runs struct-tag validation and converts the first violation
// into an ErrInvalidParameter naming the field and its constraint.
func checkParams(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	fe := fieldErrs[0]
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "min":
		return fmt.Errorf("%w: %s must be at least %s (got %v)", ErrInvalidParameter, name, fe.Param(), fe.Value())
	case "required":
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidParameter, name)
	default:
		return fmt.Errorf("%w: %s fails constraint %q", ErrInvalidParameter, name, fe.Tag())
	}
}
