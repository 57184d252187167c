package config

import (
	"testing"
)

// TestFormatterTypeConstants tests that the FormatterType constants are defined correctly
func TestFormatterTypeConstants(t *testing.T) {
	if FormatterSolr != "solr" {
		t.Errorf("Expected FormatterSolr to be 'solr', got %q", FormatterSolr)
	}
	if FormatterMongo != "mongo" {
		t.Errorf("Expected FormatterMongo to be 'mongo', got %q", FormatterMongo)
	}
}

// TestOperatorTypeConstants tests that the OperatorType constants are defined correctly
func TestOperatorTypeConstants(t *testing.T) {
	if OperatorAnd != "AND" {
		t.Errorf("Expected OperatorAnd to be 'AND', got %q", OperatorAnd)
	}
	if OperatorOr != "OR" {
		t.Errorf("Expected OperatorOr to be 'OR', got %q", OperatorOr)
	}
}

// TestDefault tests that the Default function returns the expected configuration
func TestDefault(t *testing.T) {
	config := Default()

	if config == nil {
		t.Fatal("Expected Default() to return a non-nil config")
	}

	if config.Formatter != FormatterSolr {
		t.Errorf("Expected default formatter to be %q, got %q", FormatterSolr, config.Formatter)
	}

	if config.DefaultOperator != OperatorAnd {
		t.Errorf("Expected default operator to be %q, got %q", OperatorAnd, config.DefaultOperator)
	}
}

// TestConfigWithFormatter tests the WithFormatter fluent method
func TestConfigWithFormatter(t *testing.T) {
	config := Default()

	// Test that WithFormatter returns the same config instance
	result := config.WithFormatter(FormatterMongo)
	if result != config {
		t.Error("Expected WithFormatter to return the same config instance")
	}

	if config.Formatter != FormatterMongo {
		t.Errorf("Expected formatter to be %q, got %q", FormatterMongo, config.Formatter)
	}
}

// TestConfigWithDefaultOperator tests the WithDefaultOperator fluent method
func TestConfigWithDefaultOperator(t *testing.T) {
	config := Default()

	result := config.WithDefaultOperator(OperatorOr)
	if result != config {
		t.Error("Expected WithDefaultOperator to return the same config instance")
	}

	if config.DefaultOperator != OperatorOr {
		t.Errorf("Expected default operator to be %q, got %q", OperatorOr, config.DefaultOperator)
	}
}

// TestConfigFluentChaining tests that fluent methods can be chained
func TestConfigFluentChaining(t *testing.T) {
	config := &Config{}

	result := config.WithFormatter(FormatterMongo).WithDefaultOperator(OperatorOr)

	if result != config {
		t.Error("Expected chained methods to return the same config instance")
	}

	if config.Formatter != FormatterMongo {
		t.Errorf("Expected chained formatter to be %q, got %q", FormatterMongo, config.Formatter)
	}

	if config.DefaultOperator != OperatorOr {
		t.Errorf("Expected chained operator to be %q, got %q", OperatorOr, config.DefaultOperator)
	}
}

// TestConfigZeroValue tests the zero value of Config struct
func TestConfigZeroValue(t *testing.T) {
	var config Config

	if config.Formatter != "" {
		t.Errorf("Expected zero value Formatter to be empty string, got %q", config.Formatter)
	}

	if config.DefaultOperator != "" {
		t.Errorf("Expected zero value DefaultOperator to be empty string, got %q", config.DefaultOperator)
	}
}
