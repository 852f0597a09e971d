package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Params identifies one grading scenario.
type Params struct {
	// N is the number of values in the dataset.
	N int32 `json:"n" validate:"gte=0"`
	// B is the number of histogram bins.
	B int32 `json:"b" validate:"gte=1"`
	// Seed fixes the random source. Nil means a seed is drawn from system entropy.
	Seed *uint64 `json:"seed,omitempty"`
}

// WithSeed returns a copy of p using the given seed.
func (p Params) WithSeed(seed uint64) Params {
	p.Seed = &seed
	return p
}

// String renders the pair as N:B.
func (p Params) String() string {
	return fmt.Sprintf("%d:%d", p.N, p.B)
}

// ParseParams parses positional arguments N, B and an optional seed.
func ParseParams(args []string) (Params, error) {
	if len(args) < 2 || len(args) > 3 {
		return Params{}, ErrInvalidArguments
	}

	n, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return Params{}, Wrap(ErrInvalidArguments, err)
	}
	b, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return Params{}, Wrap(ErrInvalidArguments, err)
	}

	p := Params{N: int32(n), B: int32(b)}
	if len(args) == 3 {
		seed, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return Params{}, Wrap(ErrInvalidArguments, err)
		}
		p = p.WithSeed(seed)
	}
	return p, nil
}

// ParsePair parses a warm target of the form N:B.
func ParsePair(s string) (Params, error) {
	nStr, bStr, ok := strings.Cut(s, ":")
	if !ok {
		return Params{}, zerr.With(Wrap(ErrInvalidPair, nil), "pair", s)
	}
	n, err := strconv.ParseInt(nStr, 10, 32)
	if err != nil {
		return Params{}, zerr.With(Wrap(ErrInvalidPair, err), "pair", s)
	}
	b, err := strconv.ParseInt(bStr, 10, 32)
	if err != nil {
		return Params{}, zerr.With(Wrap(ErrInvalidPair, err), "pair", s)
	}
	return Params{N: int32(n), B: int32(b)}, nil
}
