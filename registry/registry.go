// Package registry provides dynamic discovery and registration of formatters.
package registry

import (
	"fmt"

	"github.com/kyle-williams-1/solrq/config"
	"github.com/kyle-williams-1/solrq/formatter"
)

// StringFormatterFactory creates a new string formatter instance.
type StringFormatterFactory func() formatter.StringFormatter

// BSONFormatterFactory creates a new BSON formatter instance.
type BSONFormatterFactory func() formatter.BSONFormatter

// StringFormatterRegistry manages available string output formatters.
type StringFormatterRegistry struct {
	formatters map[config.FormatterType]StringFormatterFactory
}

// BSONFormatterRegistry manages available BSON output formatters.
type BSONFormatterRegistry struct {
	formatters map[config.FormatterType]BSONFormatterFactory
}

// Registry combines the per-output formatter registries.
type Registry struct {
	Strings *StringFormatterRegistry
	BSON    *BSONFormatterRegistry
}

// New creates a new empty registry. Formatter packages register themselves
// with DefaultRegistry from their init functions.
func New() *Registry {
	return &Registry{
		Strings: &StringFormatterRegistry{
			formatters: make(map[config.FormatterType]StringFormatterFactory),
		},
		BSON: &BSONFormatterRegistry{
			formatters: make(map[config.FormatterType]BSONFormatterFactory),
		},
	}
}

// Register registers a string formatter factory.
func (r *StringFormatterRegistry) Register(formatterType config.FormatterType, factory StringFormatterFactory) {
	r.formatters[formatterType] = factory
}

// Register registers a BSON formatter factory.
func (r *BSONFormatterRegistry) Register(formatterType config.FormatterType, factory BSONFormatterFactory) {
	r.formatters[formatterType] = factory
}

// Get creates a string formatter instance.
func (r *StringFormatterRegistry) Get(formatterType config.FormatterType) (formatter.StringFormatter, error) {
	factory, exists := r.formatters[formatterType]
	if !exists {
		return nil, fmt.Errorf("unsupported formatter type: %s", formatterType)
	}
	return factory(), nil
}

// Get creates a BSON formatter instance.
func (r *BSONFormatterRegistry) Get(formatterType config.FormatterType) (formatter.BSONFormatter, error) {
	factory, exists := r.formatters[formatterType]
	if !exists {
		return nil, fmt.Errorf("unsupported formatter type: %s", formatterType)
	}
	return factory(), nil
}

// List returns all registered string formatter types.
func (r *StringFormatterRegistry) List() []config.FormatterType {
	var types []config.FormatterType
	for formatterType := range r.formatters {
		types = append(types, formatterType)
	}
	return types
}

// List returns all registered BSON formatter types.
func (r *BSONFormatterRegistry) List() []config.FormatterType {
	var types []config.FormatterType
	for formatterType := range r.formatters {
		types = append(types, formatterType)
	}
	return types
}

// ValidateConfig validates that the configured formatter is registered for at
// least one output type.
func (r *Registry) ValidateConfig(cfg *config.Config) error {
	if _, err := r.Strings.Get(cfg.Formatter); err == nil {
		return nil
	}
	if _, err := r.BSON.Get(cfg.Formatter); err == nil {
		return nil
	}
	return fmt.Errorf("invalid formatter: unsupported formatter type: %s", cfg.Formatter)
}

// Global registry instance
var DefaultRegistry = New()

// RegisterStringFormatter registers a string formatter with the global registry.
func RegisterStringFormatter(formatterType config.FormatterType, factory StringFormatterFactory) {
	DefaultRegistry.Strings.Register(formatterType, factory)
}

// RegisterBSONFormatter registers a BSON formatter with the global registry.
func RegisterBSONFormatter(formatterType config.FormatterType, factory BSONFormatterFactory) {
	DefaultRegistry.BSON.Register(formatterType, factory)
}
