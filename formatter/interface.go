// Package formatter provides interfaces for query output formatters.
package formatter

import (
	"github.com/kyle-williams-1/solrq"
	"go.mongodb.org/mongo-driver/bson"
)

// Formatter renders a query expression tree into a specific output type.
type Formatter[T any] interface {
	Format(q *solrq.Q) (T, error)
}

// Type aliases for formatter types
type StringFormatter = Formatter[string]
type BSONFormatter = Formatter[bson.M]
