// Package factory provides factory functions for creating formatters.
package factory

import (
	"fmt"

	"github.com/kyle-williams-1/solrq/config"
	"github.com/kyle-williams-1/solrq/formatter"
	mongoformatter "github.com/kyle-williams-1/solrq/formatter/mongo"
	solrformatter "github.com/kyle-williams-1/solrq/formatter/solr"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateStringFormatter creates a string formatter based on the formatter type.
func CreateStringFormatter(formatterType config.FormatterType) (formatter.StringFormatter, error) {
	switch formatterType {
	case config.FormatterSolr:
		return solrformatter.New(), nil
	default:
		return nil, fmt.Errorf("unsupported formatter type: %s", formatterType)
	}
}

// CreateBSONFormatter creates a BSON formatter based on the formatter type.
func CreateBSONFormatter(formatterType config.FormatterType) (formatter.Formatter[bson.M], error) {
	switch formatterType {
	case config.FormatterMongo:
		return mongoformatter.New(), nil
	default:
		return nil, fmt.Errorf("unsupported formatter type: %s", formatterType)
	}
}

// CreateSolrFormatter creates the canonical Solr string formatter.
func CreateSolrFormatter() formatter.StringFormatter {
	return solrformatter.New()
}
