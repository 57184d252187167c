// Package mongo provides MongoDB BSON formatting for query trees.
package mongo

import (
	"fmt"
	"strings"
	"time"

	"github.com/kyle-williams-1/solrq"
	"github.com/kyle-williams-1/solrq/config"
	"github.com/kyle-williams-1/solrq/formatter"
	"github.com/kyle-williams-1/solrq/registry"
	"go.mongodb.org/mongo-driver/bson"
)

// Formatter renders a query tree as a MongoDB filter document.
type Formatter struct {
	// now resolves relative time deltas; replaced in tests.
	now func() time.Time
}

// New creates a new MongoDB BSON formatter instance.
func New() *Formatter {
	return &Formatter{now: time.Now}
}

// Format converts a query tree into a BSON filter document.
// Boost and constant score nodes pass their operand through unchanged since
// MongoDB filters carry no relevance weighting.
func (f *Formatter) Format(q *solrq.Q) (bson.M, error) {
	if q == nil {
		return bson.M{}, nil
	}
	return f.nodeToBSON(q)
}

func (f *Formatter) nodeToBSON(q *solrq.Q) (bson.M, error) {
	if err := q.Err(); err != nil {
		return nil, err
	}

	switch q.Kind() {
	case solrq.KindTerm:
		return f.termToBSON(q)
	case solrq.KindAnd:
		docs, err := f.childrenToBSON(q)
		if err != nil {
			return nil, err
		}
		return f.mergeAndConditions(docs), nil
	case solrq.KindOr:
		docs, err := f.childrenToBSON(q)
		if err != nil {
			return nil, err
		}
		return bson.M{"$or": docs}, nil
	case solrq.KindNot:
		child, err := f.nodeToBSON(q.Children()[0])
		if err != nil {
			return nil, err
		}
		return f.negate(child), nil
	case solrq.KindBoost, solrq.KindConstantScore:
		return f.nodeToBSON(q.Children()[0])
	default:
		return nil, fmt.Errorf("unsupported query node kind: %d", q.Kind())
	}
}

func (f *Formatter) childrenToBSON(q *solrq.Q) ([]bson.M, error) {
	children := q.Children()
	docs := make([]bson.M, 0, len(children))
	for _, child := range children {
		doc, err := f.nodeToBSON(child)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (f *Formatter) termToBSON(q *solrq.Q) (bson.M, error) {
	field, value := q.TermOf()

	// Proximity has no per-field analog in MongoDB; it maps to a text index
	// search over the whole document.
	if p, ok := value.(solrq.ProximityValue); ok {
		phrase, err := phraseText(p.Phrase())
		if err != nil {
			return nil, err
		}
		return bson.M{"$text": bson.M{"$search": phrase}}, nil
	}

	converted, err := f.convertValue(value)
	if err != nil {
		return nil, err
	}
	return bson.M{field: converted}, nil
}

// convertValue maps a term value onto its BSON representation. Untrusted
// strings match literally; Safe strings are the trusted wildcard surface, the
// same split the Solr renderer makes between escaped and verbatim text.
func (f *Formatter) convertValue(v any) (any, error) {
	switch val := v.(type) {
	case solrq.SafeString:
		s := string(val)
		if s == "*" {
			return bson.M{"$exists": true}, nil
		}
		if strings.Contains(s, "*") {
			return wildcardRegex(s), nil
		}
		return s, nil
	case solrq.RangeValue:
		return f.rangeToBSON(val)
	case solrq.ProximityValue:
		return nil, fmt.Errorf("proximity values are only supported as direct term values")
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time:
		return val, nil
	case time.Duration:
		return f.now().Add(val), nil
	case []string:
		elems := make([]any, len(val))
		for i, s := range val {
			elems[i] = s
		}
		return bson.M{"$in": elems}, nil
	case []any:
		elems := make([]any, 0, len(val))
		for _, e := range val {
			converted, err := f.convertValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, converted)
		}
		return bson.M{"$in": elems}, nil
	case *solrq.Q:
		return nil, fmt.Errorf("nested query values are not supported by the mongo formatter")
	default:
		return nil, &solrq.FormatError{Value: v}
	}
}

func (f *Formatter) rangeToBSON(r solrq.RangeValue) (bson.M, error) {
	from, to := r.From(), r.To()
	if from == nil && to == nil {
		return nil, solrq.ErrEmptyRange
	}
	if isWildcardBound(from) && isWildcardBound(to) {
		return bson.M{"$exists": true}, nil
	}

	doc := bson.M{}
	if !isWildcardBound(from) {
		bound, err := f.convertValue(from)
		if err != nil {
			return nil, err
		}
		op := "$gte"
		if r.Boundaries().LowerExclusive() {
			op = "$gt"
		}
		doc[op] = bound
	}
	if !isWildcardBound(to) {
		bound, err := f.convertValue(to)
		if err != nil {
			return nil, err
		}
		op := "$lte"
		if r.Boundaries().UpperExclusive() {
			op = "$lt"
		}
		doc[op] = bound
	}
	return doc, nil
}

func isWildcardBound(bound any) bool {
	if bound == nil {
		return true
	}
	s, ok := bound.(solrq.SafeString)
	return ok && string(s) == "*"
}

// mergeAndConditions folds sibling AND conditions into a single document,
// keeping simple field:value pairs flat and falling back to $and for complex
// sub-documents and duplicated fields.
func (f *Formatter) mergeAndConditions(docs []bson.M) bson.M {
	merged := bson.M{}
	var conditions []bson.M

	for _, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		if isSimpleFieldValue(doc) && !conflicts(merged, doc) {
			for k, v := range doc {
				merged[k] = v
			}
			continue
		}
		conditions = append(conditions, doc)
	}

	switch {
	case len(conditions) == 0:
		return merged
	case len(merged) > 0:
		conditions = append(conditions, merged)
		return bson.M{"$and": conditions}
	case len(conditions) == 1:
		return conditions[0]
	default:
		return bson.M{"$and": conditions}
	}
}

// isSimpleFieldValue reports whether a document is a single mergeable
// field:value pair rather than an operator document.
func isSimpleFieldValue(doc bson.M) bool {
	if len(doc) != 1 {
		return false
	}
	for k := range doc {
		if strings.HasPrefix(k, "$") {
			return false
		}
	}
	return true
}

func conflicts(merged, doc bson.M) bool {
	for k := range doc {
		if _, exists := merged[k]; exists {
			return true
		}
	}
	return false
}

// negate inverts a filter document. Boolean combinators invert by De Morgan's
// law; field conditions invert field-wise with $ne.
func (f *Formatter) negate(doc bson.M) bson.M {
	if or, ok := doc["$or"].([]bson.M); ok {
		return bson.M{"$and": f.negateEach(or)}
	}
	if and, ok := doc["$and"].([]bson.M); ok {
		return bson.M{"$or": f.negateEach(and)}
	}

	negated := bson.M{}
	for k, v := range doc {
		negated[k] = bson.M{"$ne": v}
	}
	return negated
}

func (f *Formatter) negateEach(docs []bson.M) []bson.M {
	negated := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		negated = append(negated, f.negate(doc))
	}
	return negated
}

func phraseText(phrase any) (string, error) {
	switch p := phrase.(type) {
	case string:
		return p, nil
	case solrq.SafeString:
		return string(p), nil
	default:
		return "", &solrq.FormatError{Value: phrase}
	}
}

func wildcardRegex(pattern string) bson.M {
	regex := strings.ReplaceAll(regexQuoteMeta(pattern), "*", ".*")

	starts := strings.HasPrefix(pattern, "*")
	ends := strings.HasSuffix(pattern, "*")
	switch {
	case starts && ends:
		// contains pattern, unanchored
	case starts:
		regex = regex + "$"
	case ends:
		regex = "^" + regex
	default:
		regex = "^" + regex + "$"
	}

	return bson.M{"$regex": regex, "$options": "i"}
}

// regexQuoteMeta escapes regex metacharacters while leaving the * wildcard
// for translation above.
func regexQuoteMeta(s string) string {
	const meta = `\.+()[]{}^$|?`
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(meta, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func init() {
	registry.RegisterBSONFormatter(config.FormatterMongo, func() formatter.BSONFormatter {
		return New()
	})
}
