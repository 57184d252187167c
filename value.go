package solrq

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// reserved is the set of characters with grammatical meaning in Solr query
// syntax. Any whitespace rune is reserved as well; since spaces are escaped
// there is no need to escape the AND/OR/NOT keywords themselves.
const reserved = `+-&|!(){}[]^"~*?:\`

// Escape backslash-prefixes every reserved character in s. It is not
// idempotent: escaping already-escaped text doubles the backslashes.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for _, r := range s {
		if strings.ContainsRune(reserved, r) || unicode.IsSpace(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Value marks the wrapper types that carry formatting semantics beyond the
// plain scalar rules. The set is closed; FormatValue matches it exhaustively.
type Value interface {
	isValue()
}

// SafeString is caller-vouched text that is emitted verbatim, never escaped.
type SafeString string

func (SafeString) isValue() {}

// Safe marks text as pre-sanitized so it bypasses escaping.
func Safe(s string) Value {
	return SafeString(s)
}

// ANY matches any value of a field.
var ANY = Safe("*")

// SET matches documents that have the field set at all.
var SET = Range(ANY, ANY)

// Boundaries selects the bracket style of a range, i.e. whether each bound is
// inclusive or exclusive.
type Boundaries int

const (
	// Inclusive renders [from TO to].
	Inclusive Boundaries = iota
	// Exclusive renders {from TO to}.
	Exclusive
	// ExclusiveInclusive renders {from TO to].
	ExclusiveInclusive
	// InclusiveExclusive renders [from TO to}.
	InclusiveExclusive
)

// LowerExclusive reports whether the lower bound is excluded.
func (b Boundaries) LowerExclusive() bool {
	return b == Exclusive || b == ExclusiveInclusive
}

// UpperExclusive reports whether the upper bound is excluded.
func (b Boundaries) UpperExclusive() bool {
	return b == Exclusive || b == InclusiveExclusive
}

func (b Boundaries) brackets() (open, closing byte, err error) {
	switch b {
	case Inclusive:
		return '[', ']', nil
	case Exclusive:
		return '{', '}', nil
	case ExclusiveInclusive:
		return '{', ']', nil
	case InclusiveExclusive:
		return '[', '}', nil
	default:
		return 0, 0, ErrBoundaries
	}
}

// RangeValue is an interval constraint on a field. A nil bound renders as the
// unbounded marker *.
type RangeValue struct {
	from, to   any
	boundaries Boundaries
}

func (RangeValue) isValue() {}

// From returns the lower bound, nil when unbounded.
func (r RangeValue) From() any { return r.from }

// To returns the upper bound, nil when unbounded.
func (r RangeValue) To() any { return r.to }

// Boundaries returns the bracket style of the range.
func (r RangeValue) Boundaries() Boundaries { return r.boundaries }

// Range builds an inclusive interval value. Bounds may be any formattable
// value; bound ordering is opaque to the library and never validated. Note
// that a plain "*" string is escaped like any other text; use ANY or a nil
// bound for the unbounded marker.
func Range(from, to any) Value {
	return RangeValue{from: from, to: to, boundaries: Inclusive}
}

// RangeBounds builds an interval value with explicit bracket style.
func RangeBounds(from, to any, boundaries Boundaries) Value {
	return RangeValue{from: from, to: to, boundaries: boundaries}
}

// ProximityValue is a quoted phrase match constrained to a word distance.
type ProximityValue struct {
	phrase   any
	distance int
}

func (ProximityValue) isValue() {}

// Phrase returns the raw phrase. Wrap it in Safe to skip escaping.
func (p ProximityValue) Phrase() any { return p.phrase }

// Distance returns the word distance of the match.
func (p ProximityValue) Distance() int { return p.distance }

// Proximity builds a phrase value matched within the given word distance.
func Proximity(phrase any, distance int) Value {
	return ProximityValue{phrase: phrase, distance: distance}
}

// timeLayout renders second precision; fractional seconds are kept only when
// present, matching Solr's ISO instant parsing.
const timeLayout = "2006-01-02T15:04:05.999999"

// deltaString renders a duration in Solr date math relative to NOW. Components
// are floor-normalized the same way date math expects: the day count carries
// the sign while seconds and milliseconds stay non-negative, so -50h renders
// as NOW-3DAYS+79200SECONDS+0MILLISECONDS.
func deltaString(d time.Duration) string {
	if d == 0 {
		return "NOW"
	}
	const day = 24 * time.Hour
	days := d / day
	rem := d % day
	if rem < 0 {
		days--
		rem += day
	}
	secs := rem / time.Second
	millis := (rem % time.Second) / time.Millisecond

	var b strings.Builder
	b.WriteString("NOW")
	writeSigned(&b, int64(days), "DAYS")
	writeSigned(&b, int64(secs), "SECONDS")
	writeSigned(&b, int64(millis), "MILLISECONDS")
	return b.String()
}

func writeSigned(b *strings.Builder, n int64, unit string) {
	if n >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatInt(n, 10))
	b.WriteString(unit)
}

// FormatValue converts a value into its Solr literal form. Untrusted text is
// escaped; wrapper types carry their own rules; unrecognized types fail with
// *FormatError.
func FormatValue(v any) (string, error) {
	switch val := v.(type) {
	case SafeString:
		return string(val), nil
	case RangeValue:
		return formatRange(val)
	case ProximityValue:
		return formatProximity(val)
	case string:
		return Escape(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int8:
		return strconv.FormatInt(int64(val), 10), nil
	case int16:
		return strconv.FormatInt(int64(val), 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case time.Duration:
		return deltaString(val), nil
	case time.Time:
		return `"` + val.Format(timeLayout) + `Z"`, nil
	case *Q:
		return formatSubQuery(val)
	case []string:
		parts := make([]any, len(val))
		for i, s := range val {
			parts[i] = s
		}
		return formatGroup(parts)
	case []any:
		return formatGroup(val)
	default:
		return "", &FormatError{Value: v}
	}
}

func formatRange(r RangeValue) (string, error) {
	if r.from == nil && r.to == nil {
		return "", ErrEmptyRange
	}
	open, closing, err := r.boundaries.brackets()
	if err != nil {
		return "", err
	}
	from, err := formatBound(r.from)
	if err != nil {
		return "", err
	}
	to, err := formatBound(r.to)
	if err != nil {
		return "", err
	}
	return string(open) + from + " TO " + to + string(closing), nil
}

func formatBound(bound any) (string, error) {
	if bound == nil {
		return "*", nil
	}
	return FormatValue(bound)
}

func formatProximity(p ProximityValue) (string, error) {
	phrase, err := FormatValue(p.phrase)
	if err != nil {
		return "", err
	}
	return `"` + phrase + `"~` + strconv.Itoa(p.distance), nil
}

// formatSubQuery renders a query used as a field value, grouped so the
// sub-expression binds to the field as a whole.
func formatSubQuery(q *Q) (string, error) {
	if q == nil {
		return "", ErrNilOperand
	}
	s, err := q.compile(false)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}
	return "(" + s + ")", nil
}

// formatGroup renders a sequence as the grammar's grouped term list (a b c).
func formatGroup(values []any) (string, error) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s, err := FormatValue(v)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}
