package factory

import (
	"testing"

	"github.com/kyle-williams-1/solrq"
	"github.com/kyle-williams-1/solrq/config"
)

// TestCreateStringFormatter tests string formatter creation
func TestCreateStringFormatter(t *testing.T) {
	f, err := CreateStringFormatter(config.FormatterSolr)
	if err != nil {
		t.Fatalf("CreateStringFormatter should not return error, got: %v", err)
	}

	s, err := f.Format(solrq.Field("name", "john"))
	if err != nil {
		t.Fatalf("Format should not return error, got: %v", err)
	}
	if s != "name:john" {
		t.Errorf("Format = %q, want %q", s, "name:john")
	}

	if _, err := CreateStringFormatter(config.FormatterMongo); err == nil {
		t.Error("expected error for non-string formatter type")
	}
}

// TestCreateBSONFormatter tests BSON formatter creation
func TestCreateBSONFormatter(t *testing.T) {
	f, err := CreateBSONFormatter(config.FormatterMongo)
	if err != nil {
		t.Fatalf("CreateBSONFormatter should not return error, got: %v", err)
	}

	doc, err := f.Format(solrq.Field("name", "john"))
	if err != nil {
		t.Fatalf("Format should not return error, got: %v", err)
	}
	if doc["name"] != "john" {
		t.Errorf("Format = %+v, want name:john", doc)
	}

	if _, err := CreateBSONFormatter(config.FormatterSolr); err == nil {
		t.Error("expected error for non-BSON formatter type")
	}
}

// TestCreateSolrFormatter tests the canonical formatter helper
func TestCreateSolrFormatter(t *testing.T) {
	if CreateSolrFormatter() == nil {
		t.Fatal("CreateSolrFormatter should return a non-nil formatter")
	}
}
