// Package config provides configuration for formatter and operator selection.
package config

// FormatterType represents the type of output formatter to use.
type FormatterType string

const (
	// FormatterSolr represents Solr query string output format
	FormatterSolr FormatterType = "solr"
	// FormatterMongo represents MongoDB BSON output format
	FormatterMongo FormatterType = "mongo"
)

// OperatorType represents the operator used to join multi-term queries.
type OperatorType string

const (
	// OperatorAnd joins terms with the AND operator
	OperatorAnd OperatorType = "AND"
	// OperatorOr joins terms with the OR operator
	OperatorOr OperatorType = "OR"
)

// Config represents the configuration for a query builder.
type Config struct {
	Formatter       FormatterType
	DefaultOperator OperatorType
}

// Default returns the default configuration with Solr output and AND joining.
func Default() *Config {
	return &Config{
		Formatter:       FormatterSolr,
		DefaultOperator: OperatorAnd,
	}
}

// WithFormatter sets the formatter type and returns the config.
func (c *Config) WithFormatter(formatter FormatterType) *Config {
	c.Formatter = formatter
	return c
}

// WithDefaultOperator sets the default join operator and returns the config.
func (c *Config) WithDefaultOperator(op OperatorType) *Config {
	c.DefaultOperator = op
	return c
}
