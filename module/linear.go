// Package module - matrix-backed linear maps between free modules with a
// capability tag that is verified once, at construction.
//
// Tag → exposed operations:
//   - General    (*Linear):           Image, Rank, Matrix, Compose.
//   - Injective  (*InjectiveLinear):  + TryPreimage.
//   - Surjective (*SurjectiveLinear): Linear operations only.
//   - Bijective  (*BijectiveLinear):  + TryPreimage, Preimage.
//
// A tag that contradicts the matrix is a caller defect: the constructor panics
// with an error wrapping ErrContractViolation. Invalid basis images are
// ordinary input errors and are returned.

package module

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

const (
	opNewLinear   = "NewLinear"
	opImage       = "Image"
	opTryPreimage = "TryPreimage"
	opCompose     = "Compose"
)

// Capability is the verified property of a linear map.
type Capability int

const (
	// General makes no claim.
	General Capability = iota
	// Injective claims rank == domain rank.
	Injective
	// Surjective claims the columns generate the whole range.
	Surjective
	// Bijective claims both.
	Bijective
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case General:
		return "General"
	case Injective:
		return "Injective"
	case Surjective:
		return "Surjective"
	case Bijective:
		return "Bijective"
	default:
		return fmt.Sprintf("Capability(%d)", int(c))
	}
}

func (c Capability) injective() bool  { return c == Injective || c == Bijective }
func (c Capability) surjective() bool { return c == Surjective || c == Bijective }

// Linear is a linear map domain → range given by a range.rank × domain.rank
// matrix whose i-th column is the image of the i-th basis element.
type Linear[E any] struct {
	domain, rng FreeModule[E]
	ed          ring.EuclideanDomain[E]
	mat         *matrix.Dense[E]
	rank        int
	capability  Capability
}

// InjectiveLinear is a Linear map verified to be injective.
type InjectiveLinear[E any] struct{ *Linear[E] }

// SurjectiveLinear is a Linear map verified to be surjective.
type SurjectiveLinear[E any] struct{ *Linear[E] }

// BijectiveLinear is a Linear map verified to be bijective.
type BijectiveLinear[E any] struct{ *Linear[E] }

// NewLinear builds the map sending e_i to basisImage(i), without a claim.
// Errors: ErrNoCanonicalReduction; IsElement errors of the first invalid image.
// Panics: domain and range rings differ.
func NewLinear[E any](domain, rng FreeModule[E], basisImage func(i int) []E) (*Linear[E], error) {
	return newLinear(domain, rng, basisImage, General)
}

// NewInjective is NewLinear plus a verified injectivity claim.
// Panics (ErrContractViolation) when the rank is below the domain rank.
func NewInjective[E any](domain, rng FreeModule[E], basisImage func(i int) []E) (*InjectiveLinear[E], error) {
	l, err := newLinear(domain, rng, basisImage, Injective)
	if err != nil {
		return nil, err
	}

	return &InjectiveLinear[E]{l}, nil
}

// NewSurjective is NewLinear plus a verified surjectivity claim.
// Panics (ErrContractViolation) when the columns do not generate the range.
func NewSurjective[E any](domain, rng FreeModule[E], basisImage func(i int) []E) (*SurjectiveLinear[E], error) {
	l, err := newLinear(domain, rng, basisImage, Surjective)
	if err != nil {
		return nil, err
	}

	return &SurjectiveLinear[E]{l}, nil
}

// NewBijective is NewLinear plus verified injectivity and surjectivity claims.
func NewBijective[E any](domain, rng FreeModule[E], basisImage func(i int) []E) (*BijectiveLinear[E], error) {
	l, err := newLinear(domain, rng, basisImage, Bijective)
	if err != nil {
		return nil, err
	}

	return &BijectiveLinear[E]{l}, nil
}

// newLinear is the shared construction algorithm.
// Implementation:
//   - Stage 1: same ring on both sides (panic otherwise); canonical reduction available.
//   - Stage 2: validate every basis image against the range and stack them as columns.
//   - Stage 3: compute the rank once.
//   - Stage 4: check the claim; a contradiction panics.
//
// Complexity: one Hermite reduction (two for surjective claims).
func newLinear[E any](domain, rng FreeModule[E], basisImage func(i int) []E, claim Capability) (*Linear[E], error) {
	if !ring.Same(domain.ring, rng.ring) {
		panic(fmt.Errorf("module.%s: domain ring %v and range ring %v differ: %w",
			opNewLinear, domain.ring, rng.ring, ErrContractViolation))
	}
	ed, err := domain.euclidean()
	if err != nil {
		return nil, moduleErrorf(opNewLinear, err)
	}

	cols := make([][]E, domain.rank)
	for i := range cols {
		img := basisImage(i)
		if err = rng.IsElement(img); err != nil {
			return nil, moduleErrorf(opNewLinear, fmt.Errorf("basis image %d: %w", i, err))
		}
		cols[i] = append([]E(nil), img...)
	}
	mat, err := matrix.FromCols(rng.rank, cols)
	if err != nil {
		return nil, moduleErrorf(opNewLinear, err)
	}
	rank, err := matrix.Rank(ed, mat)
	if err != nil {
		return nil, moduleErrorf(opNewLinear, err)
	}

	if claim.injective() && rank != domain.rank {
		panic(fmt.Errorf("module.%s: %v claim with rank %d < domain rank %d: %w",
			opNewLinear, claim, rank, domain.rank, ErrContractViolation))
	}
	if claim.surjective() && !generatesAll(ed, mat, rank, rng.rank) {
		panic(fmt.Errorf("module.%s: %v claim but columns (rank %d) do not generate %v: %w",
			opNewLinear, claim, rank, rng, ErrContractViolation))
	}

	return &Linear[E]{domain: domain, rng: rng, ed: ed, mat: mat, rank: rank, capability: claim}, nil
}

// generatesAll reports whether the columns of mat generate the whole range:
// full rank and every pivot of the canonical column basis is a unit.
// Over a field the rank test alone decides.
func generatesAll[E any](ed ring.EuclideanDomain[E], mat *matrix.Dense[E], rank, rangeRank int) bool {
	if rank != rangeRank {
		return false
	}
	t, err := matrix.Transpose(mat)
	if err != nil {
		return false
	}
	h, pivots, err := matrix.Hermite(ed, t)
	if err != nil {
		return false
	}
	for k, p := range pivots {
		pivot, _ := h.At(k, p)
		if _, ok := ed.Div(ed.One(), pivot); !ok {
			return false
		}
	}

	return true
}

// Domain returns the domain module.
func (l *Linear[E]) Domain() FreeModule[E] { return l.domain }

// Range returns the range module.
func (l *Linear[E]) Range() FreeModule[E] { return l.rng }

// Rank returns the rank computed at construction.
func (l *Linear[E]) Rank() int { return l.rank }

// Capability returns the verified tag.
func (l *Linear[E]) Capability() Capability { return l.capability }

// Matrix returns a copy of the range.rank × domain.rank matrix.
func (l *Linear[E]) Matrix() *matrix.Dense[E] { return l.mat.Clone() }

// Image returns matrix·x.
// Errors: those of domain IsElement.
func (l *Linear[E]) Image(x []E) ([]E, error) {
	if err := l.domain.IsElement(x); err != nil {
		return nil, moduleErrorf(opImage, err)
	}
	y, err := matrix.MatVec(l.domain.ring, l.mat, x)
	if err != nil {
		return nil, moduleErrorf(opImage, err)
	}

	return y, nil
}

// Compose returns g∘f (apply f first). The composite carries the General tag.
// Errors: ErrModuleMismatch when f's range is not g's domain.
func Compose[E any](g, f *Linear[E]) (*Linear[E], error) {
	if !f.rng.SameAs(g.domain) {
		return nil, moduleErrorf(opCompose, fmt.Errorf("%v then %v: %w", f.rng, g.domain, ErrModuleMismatch))
	}
	prod, err := matrix.Mul(f.domain.ring, g.mat, f.mat)
	if err != nil {
		return nil, moduleErrorf(opCompose, err)
	}

	return NewLinear(f.domain, g.rng, func(i int) []E {
		c, _ := prod.Col(i) // i < f.domain.rank == prod.Cols()
		return c
	})
}

// String renders the map as "<domain> -> <range> [<tag>]" followed by its matrix.
func (l *Linear[E]) String() string {
	return fmt.Sprintf("%v -> %v [%v]\n%v", l.domain, l.rng, l.capability, l.mat)
}

// tryPreimage solves matrix·x = y exactly.
func (l *Linear[E]) tryPreimage(y []E) ([]E, bool, error) {
	if err := l.rng.IsElement(y); err != nil {
		return nil, false, moduleErrorf(opTryPreimage, err)
	}
	x, ok, err := matrix.ColSolve(l.ed, l.mat, y)
	if err != nil {
		return nil, false, moduleErrorf(opTryPreimage, err)
	}

	return x, ok, nil
}

// TryPreimage returns the unique x with Image(x) == y, or (nil, false, nil)
// when y is not in the image (e.g. not an integer combination of the columns).
// Errors: those of range IsElement.
func (l *InjectiveLinear[E]) TryPreimage(y []E) ([]E, bool, error) {
	return l.tryPreimage(y)
}

// TryPreimage returns the unique x with Image(x) == y.
// For a valid range element the result is always found.
func (l *BijectiveLinear[E]) TryPreimage(y []E) ([]E, bool, error) {
	return l.tryPreimage(y)
}

// Preimage returns the unique x with Image(x) == y.
// It panics when y is not a range element; that is a caller defect.
func (l *BijectiveLinear[E]) Preimage(y []E) []E {
	x, ok, err := l.tryPreimage(y)
	if err != nil {
		panic(fmt.Errorf("module.Preimage: %w", err))
	}
	if !ok {
		panic(fmt.Errorf("module.Preimage: %v has no preimage: %w", y, ErrContractViolation))
	}

	return x
}
