package models

import (
	"encoding/json"
	"testing"
)

func TestMetricMapValue(t *testing.T) {
	var nilMap MetricMap
	v, err := nilMap.Value()
	if err != nil {
		t.Fatalf("Value on nil map failed: %v", err)
	}
	if string(v.([]byte)) != "{}" {
		t.Errorf("Expected nil map to serialize as {}, got %s", v)
	}

	m := MetricMap{"posts": 3, "comments": 5}
	v, err = m.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	round := MetricMap{}
	if err := json.Unmarshal(v.([]byte), &round); err != nil {
		t.Fatalf("Value did not produce valid JSON: %v", err)
	}
	if round["posts"] != 3 || round["comments"] != 5 {
		t.Errorf("Round trip lost values: %v", round)
	}
}

func TestMetricMapScan(t *testing.T) {
	var m MetricMap
	if err := m.Scan([]byte(`{"posts": 2}`)); err != nil {
		t.Fatalf("Scan bytes failed: %v", err)
	}
	if m["posts"] != 2 {
		t.Errorf("Expected posts=2, got %v", m["posts"])
	}

	if err := m.Scan(`{"likes": 7.5}`); err != nil {
		t.Fatalf("Scan string failed: %v", err)
	}
	if m["likes"] != 7.5 {
		t.Errorf("Expected likes=7.5, got %v", m["likes"])
	}

	if err := m.Scan(nil); err != nil {
		t.Fatalf("Scan nil failed: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("Expected empty map from NULL column, got %v", m)
	}

	// Nested objects and non-numeric values are not flat metric maps
	if err := m.Scan([]byte(`{"nested": {"a": 1}}`)); err == nil {
		t.Error("Expected rejection of nested object")
	}
	if err := m.Scan([]byte(`{"name": "three"}`)); err == nil {
		t.Error("Expected rejection of string value")
	}
	if err := m.Scan(42); err == nil {
		t.Error("Expected rejection of unsupported column type")
	}
}

func TestMetricMapClone(t *testing.T) {
	original := MetricMap{"posts": 1}
	copied := original.Clone()
	copied["posts"] = 9
	copied["new"] = 4

	if original["posts"] != 1 {
		t.Errorf("Clone aliased the original: posts=%v", original["posts"])
	}
	if _, ok := original["new"]; ok {
		t.Error("Clone aliased the original: unexpected key")
	}
}
