// Package solrq builds Solr query strings from structured field/value
// criteria. Queries are immutable expression trees: combinators always
// allocate new nodes, so sub-queries can be shared and reused freely. The
// rendered string is handed to whatever Solr client the caller uses; this
// package performs no I/O.
package solrq

import (
	"math"
	"strconv"
	"strings"

	"github.com/kyle-williams-1/solrq/config"
)

// Kind identifies the variant of a query node.
type Kind int

const (
	// KindTerm is a single field:value pair.
	KindTerm Kind = iota
	// KindAnd joins child queries with the AND operator.
	KindAnd
	// KindOr joins child queries with the OR operator.
	KindOr
	// KindNot negates its single child.
	KindNot
	// KindBoost raises the relevance weight of its single child.
	KindBoost
	// KindConstantScore pins the score of its single child.
	KindConstantScore
)

// Term is one field/value criterion. The field name is used verbatim,
// wildcards included, and is never escaped.
type Term struct {
	Field string
	Value any
}

// Q is an immutable query expression node.
type Q struct {
	kind     Kind
	field    string
	value    any
	children []*Q
	factor   float64
	err      error
}

// Query builds a query from ordered terms, implicitly joined with AND. Zero
// terms compile to the empty string.
func Query(terms ...Term) *Q {
	return joined(KindAnd, terms)
}

// Field builds a single-term query.
func Field(field string, value any) *Q {
	return &Q{kind: KindTerm, field: field, value: value}
}

func joined(kind Kind, terms []Term) *Q {
	if len(terms) == 1 {
		return Field(terms[0].Field, terms[0].Value)
	}
	children := make([]*Q, len(terms))
	for i, t := range terms {
		children[i] = Field(t.Field, t.Value)
	}
	return &Q{kind: kind, children: children}
}

// And joins q with other using the AND operator. Nested structure is
// preserved exactly as composed; no flattening.
func (q *Q) And(other *Q) *Q {
	return combine(KindAnd, q, other)
}

// Or joins q with other using the OR operator.
func (q *Q) Or(other *Q) *Q {
	return combine(KindOr, q, other)
}

// Not negates q with the ! operator. Composite operands are parenthesized so
// the negation binds to the whole sub-expression.
func (q *Q) Not() *Q {
	if q == nil {
		return &Q{kind: KindNot, err: ErrNilOperand}
	}
	return &Q{kind: KindNot, children: []*Q{q}}
}

// Boost attaches a relevance boost (^factor) to q. The factor must be
// non-negative and finite; violations surface from Compile.
func (q *Q) Boost(factor float64) *Q {
	return scored(KindBoost, q, factor)
}

// ConstantScore pins the score of q (^=factor) instead of scaling it.
func (q *Q) ConstantScore(factor float64) *Q {
	return scored(KindConstantScore, q, factor)
}

func combine(kind Kind, left, right *Q) *Q {
	if left == nil || right == nil {
		return &Q{kind: kind, err: ErrNilOperand}
	}
	return &Q{kind: kind, children: []*Q{left, right}}
}

func scored(kind Kind, q *Q, factor float64) *Q {
	node := &Q{kind: kind, factor: factor}
	switch {
	case q == nil:
		node.err = ErrNilOperand
	case factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0):
		node.err = ErrBoostFactor
	default:
		node.children = []*Q{q}
	}
	return node
}

// And joins two queries with the AND operator.
func And(left, right *Q) *Q { return combine(KindAnd, left, right) }

// Or joins two queries with the OR operator.
func Or(left, right *Q) *Q { return combine(KindOr, left, right) }

// Not negates a query.
func Not(q *Q) *Q { return q.Not() }

// Boost attaches a relevance boost to a query.
func Boost(q *Q, factor float64) *Q { return q.Boost(factor) }

// ConstantScore pins the score of a query.
func ConstantScore(q *Q, factor float64) *Q { return q.ConstantScore(factor) }

// Kind returns the variant of the node.
func (q *Q) Kind() Kind { return q.kind }

// Children returns the child nodes of a combinator. Callers must not modify
// the returned slice.
func (q *Q) Children() []*Q { return q.children }

// TermOf returns the field and value of a KindTerm node.
func (q *Q) TermOf() (field string, value any) { return q.field, q.value }

// Factor returns the factor of a boost or constant score node.
func (q *Q) Factor() float64 { return q.factor }

// Err returns the construction error recorded on the node, if any.
func (q *Q) Err() error { return q.err }

// Compile renders the query as a Solr query string. It is deterministic, has
// no side effects, and either fully succeeds or fails without partial output.
func (q *Q) Compile() (string, error) {
	if q == nil {
		return "", ErrNilOperand
	}
	return q.compile(false)
}

// String renders the query, returning the empty string if it cannot be
// compiled. Use Compile when the error matters.
func (q *Q) String() string {
	s, err := q.Compile()
	if err != nil {
		return ""
	}
	return s
}

// compile renders the node. When wrap is set, composite nodes parenthesize
// themselves; bare terms never need wrapping.
func (q *Q) compile(wrap bool) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	switch q.kind {
	case KindTerm:
		literal, err := FormatValue(q.value)
		if err != nil {
			return "", err
		}
		return q.field + ":" + literal, nil
	case KindAnd, KindOr:
		sep := " AND "
		if q.kind == KindOr {
			sep = " OR "
		}
		parts := make([]string, 0, len(q.children))
		for _, child := range q.children {
			s, err := child.compile(true)
			if err != nil {
				return "", err
			}
			if s == "" {
				continue
			}
			parts = append(parts, s)
		}
		s := strings.Join(parts, sep)
		if wrap && s != "" {
			s = "(" + s + ")"
		}
		return s, nil
	case KindNot:
		s, err := q.children[0].compile(true)
		if err != nil {
			return "", err
		}
		s = "!" + s
		if wrap {
			s = "(" + s + ")"
		}
		return s, nil
	case KindBoost, KindConstantScore:
		s, err := q.children[0].compile(true)
		if err != nil {
			return "", err
		}
		op := "^"
		if q.kind == KindConstantScore {
			op = "^="
		}
		s += op + strconv.FormatFloat(q.factor, 'f', -1, 64)
		if wrap {
			s = "(" + s + ")"
		}
		return s, nil
	default:
		return "", &FormatError{Value: q}
	}
}

// Builder constructs queries under a configuration, mirroring the pluggable
// formatter pipeline: the configured formatter type is consumed by the
// factory and registry packages, while the builder itself controls how
// multi-term input is joined.
type Builder struct {
	Config *config.Config
}

// New creates a builder with the default configuration.
func New() *Builder {
	return &Builder{Config: config.Default()}
}

// NewWithConfig creates a builder with the given configuration.
func NewWithConfig(cfg *config.Config) *Builder {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Builder{Config: cfg}
}

// Query builds a query from ordered terms joined with the configured default
// operator.
func (b *Builder) Query(terms ...Term) *Q {
	if b.Config != nil && b.Config.DefaultOperator == config.OperatorOr {
		return joined(KindOr, terms)
	}
	return joined(KindAnd, terms)
}

// Render compiles a query to the canonical Solr string form.
func (b *Builder) Render(q *Q) (string, error) {
	if q == nil {
		return "", ErrNilOperand
	}
	return q.Compile()
}
