// Package vectors generates and verifies the canonical reference test
// vectors that pin the ratchet tree index arithmetic bit for bit across
// independent implementations.
//
// A vector exercises one treemath operation over an ascending domain of
// input indices against a fixed tree size, and serializes every result
// into a single byte sequence. Two implementations agree exactly when
// their sequences are byte identical; the published sequences live in
// this package as uppercase hex text.
//
// The byte format is the historical one and is kept unchanged so the
// published vectors remain verifiable. Every value is truncated to a
// single byte, so the format is only faithful for trees of at most 128
// leaves and domains of at most 255 samples, and the leading byte
// records the closed interval size end-start+1 even though generation
// covers the half open [start, end). New formats would orphan the
// published vectors, which are the only interoperability anchor.
package vectors

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tribe-health/melissa/codec"
	"github.com/tribe-health/melissa/treemath"
)

// Kind selects the call shape of a vectored operation.
type Kind int

const (
	// KindIndex is a unary index to index operation, independent of tree size.
	KindIndex Kind = iota
	// KindIndexSize is an index and tree size to index operation.
	KindIndexSize
	// KindPathSize is an index and tree size to index sequence operation.
	KindPathSize
)

// Op names one treemath operation and carries the callable matching its
// Kind; the other two func fields are nil. Dispatch happens once per
// sample during generation.
type Op struct {
	Name      string
	Kind      Kind
	Index     func(x uint64) uint64
	IndexSize func(x, n uint64) (uint64, error)
	PathSize  func(x, n uint64) ([]uint64, error)
}

// The ten vectored operations, covering every structural query.
var (
	OpRoot       = Op{Name: "root", Kind: KindIndex, Index: treemath.Root}
	OpLevel      = Op{Name: "level", Kind: KindIndex, Index: treemath.Level}
	OpNodeWidth  = Op{Name: "node_width", Kind: KindIndex, Index: treemath.NodeWidth}
	OpLeft       = Op{Name: "left", Kind: KindIndex, Index: treemath.Left}
	OpParentStep = Op{Name: "parent_step", Kind: KindIndex, Index: treemath.ParentStep}
	OpRight      = Op{Name: "right", Kind: KindIndexSize, IndexSize: treemath.Right}
	OpParent     = Op{Name: "parent", Kind: KindIndexSize, IndexSize: treemath.Parent}
	OpSibling    = Op{Name: "sibling", Kind: KindIndexSize, IndexSize: treemath.Sibling}
	OpDirPath    = Op{Name: "dirpath", Kind: KindPathSize, PathSize: treemath.DirPath}
	OpCoPath     = Op{Name: "copath", Kind: KindPathSize, PathSize: treemath.CoPath}
)

// Ops returns all vectored operations in canonical publication order.
func Ops() []Op {
	return []Op{
		OpRoot, OpLevel, OpNodeWidth, OpLeft, OpParentStep,
		OpRight, OpParent, OpSibling, OpDirPath, OpCoPath,
	}
}

var (
	ErrDomainTooLarge = errors.New("domain does not fit a single byte count")
	ErrVectorMismatch = errors.New("reference vector mismatch")
)

// Generate serializes op's results over the ascending domain
// start <= x < end, against a tree of size leaves for the size dependent
// kinds. The leading byte records end-start+1, so the domain span is
// capped at 254 samples.
//
// Scalar kinds produce one length prefixed string holding every sample
// byte; KindPathSize produces, per sample, a length byte followed by a
// length prefixed string of the path's indices.
func Generate(op Op, start, end, size uint64) ([]byte, error) {
	if end < start || end-start+1 > 0xFF {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrDomainTooLarge, start, end)
	}
	buf := []byte{byte(end - start + 1)}

	switch op.Kind {
	case KindIndex, KindIndexSize:
		samples := make([]byte, 0, end-start)
		for x := start; x < end; x++ {
			v, err := sampleScalar(op, x, size)
			if err != nil {
				return nil, fmt.Errorf("%s(%d): %w", op.Name, x, err)
			}
			samples = append(samples, byte(v))
		}
		return codec.AppendBytes(buf, samples)

	case KindPathSize:
		for x := start; x < end; x++ {
			path, err := op.PathSize(x, size)
			if err != nil {
				return nil, fmt.Errorf("%s(%d): %w", op.Name, x, err)
			}
			sample := make([]byte, 0, len(path))
			for _, p := range path {
				sample = append(sample, byte(p))
			}
			buf = append(buf, byte(len(sample)))
			if buf, err = codec.AppendBytes(buf, sample); err != nil {
				return nil, fmt.Errorf("%s(%d): %w", op.Name, x, err)
			}
		}
		return buf, nil

	default:
		return nil, fmt.Errorf("unknown op kind %d", op.Kind)
	}
}

func sampleScalar(op Op, x, size uint64) (uint64, error) {
	if op.Kind == KindIndex {
		return op.Index(x), nil
	}
	return op.IndexSize(x, size)
}

// Vector is the decoded form of a serialized test vector. Declared is
// the leading count byte exactly as recorded; the historical generator
// recorded one more than the sample count, so it must not be used to
// drive decoding. Values holds the samples of the scalar kinds, Paths
// those of KindPathSize.
type Vector struct {
	Declared uint8
	Values   []uint64
	Paths    [][]uint64
}

// ReadVector decodes a serialized vector of the given kind, consuming
// samples until the buffer is exhausted.
func ReadVector(kind Kind, buf []byte) (Vector, error) {
	var v Vector
	c := codec.NewCursor(buf)
	hdr, err := c.Take(1)
	if err != nil {
		return v, err
	}
	v.Declared = hdr[0]

	switch kind {
	case KindIndex, KindIndexSize:
		samples, err := c.ReadBytes()
		if err != nil {
			return v, err
		}
		v.Values = make([]uint64, len(samples))
		for i, b := range samples {
			v.Values[i] = uint64(b)
		}
	case KindPathSize:
		for c.Remaining() > 0 {
			if _, err := c.Take(1); err != nil {
				return v, err
			}
			sample, err := c.ReadBytes()
			if err != nil {
				return v, err
			}
			path := make([]uint64, len(sample))
			for i, b := range sample {
				path[i] = uint64(b)
			}
			v.Paths = append(v.Paths, path)
		}
	default:
		return v, fmt.Errorf("unknown op kind %d", kind)
	}
	return v, nil
}

// Verify regenerates op's vector over the same domain and asserts byte
// for byte equality with reference. On divergence the error identifies
// the operation and the first mismatching domain value, the signature of
// a structural arithmetic regression.
func Verify(op Op, start, end, size uint64, reference []byte) error {
	generated, err := Generate(op, start, end, size)
	if err != nil {
		return err
	}
	if bytes.Equal(generated, reference) {
		return nil
	}

	// Locate the divergence for the report. The reference may not even
	// decode, in which case only the raw comparison is meaningful.
	want, werr := ReadVector(op.Kind, reference)
	got, gerr := ReadVector(op.Kind, generated)
	if werr == nil && gerr == nil {
		if x, ok := firstMismatch(op.Kind, got, want, start); ok {
			return fmt.Errorf("%w: %s(%d) diverges from the reference", ErrVectorMismatch, op.Name, x)
		}
	}
	return fmt.Errorf("%w: %s over [%d, %d) differs in framing from the reference", ErrVectorMismatch, op.Name, start, end)
}

func firstMismatch(kind Kind, got, want Vector, start uint64) (uint64, bool) {
	if kind == KindPathSize {
		for i := 0; i < len(got.Paths) && i < len(want.Paths); i++ {
			if !equalPath(got.Paths[i], want.Paths[i]) {
				return start + uint64(i), true
			}
		}
		if len(got.Paths) != len(want.Paths) {
			return start + uint64(min(len(got.Paths), len(want.Paths))), true
		}
		return 0, false
	}
	for i := 0; i < len(got.Values) && i < len(want.Values); i++ {
		if got.Values[i] != want.Values[i] {
			return start + uint64(i), true
		}
	}
	if len(got.Values) != len(want.Values) {
		return start + uint64(min(len(got.Values), len(want.Values))), true
	}
	return 0, false
}

func equalPath(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
