// Package solr provides Solr query string formatting for query trees.
package solr

import (
	"github.com/kyle-williams-1/solrq"
	"github.com/kyle-williams-1/solrq/config"
	"github.com/kyle-williams-1/solrq/formatter"
	"github.com/kyle-williams-1/solrq/registry"
)

// Formatter renders a query tree as a Solr query string.
type Formatter struct{}

// New creates a new Solr string formatter instance.
func New() *Formatter {
	return &Formatter{}
}

// Format compiles the query to its Solr string form. A nil query renders as
// the empty string, matching the zero-term query.
func (f *Formatter) Format(q *solrq.Q) (string, error) {
	if q == nil {
		return "", nil
	}
	return q.Compile()
}

func init() {
	registry.RegisterStringFormatter(config.FormatterSolr, func() formatter.StringFormatter {
		return New()
	})
}
