package models

import "testing"

func TestIDListValueNil(t *testing.T) {
	var l IDList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("Expected empty jsonb array, got %s", v)
	}
}

func TestIDListScan(t *testing.T) {
	var l IDList
	if err := l.Scan([]byte("[1,2,3]")); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(l) != 3 || !l.Contains(2) {
		t.Errorf("Unexpected scan result: %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan nil failed: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("Expected empty list from nil, got %v", l)
	}
}

func TestIDListWithout(t *testing.T) {
	l := IDList{1, 2, 3}
	out := l.Without(2)
	if out.Contains(2) || len(out) != 2 {
		t.Errorf("Without(2) = %v", out)
	}
	if len(l) != 3 {
		t.Error("Without mutated the receiver")
	}
}

func TestStringListWithIsIdempotent(t *testing.T) {
	l := StringList{"a"}
	out := l.With("b").With("b").With("a")
	if len(out) != 2 || !out.Contains("a") || !out.Contains("b") {
		t.Errorf("Expected [a b] with no duplicates, got %v", out)
	}
	if len(l) != 1 {
		t.Error("With mutated the receiver")
	}
}

func TestStringListContains(t *testing.T) {
	l := StringList{"a", "b"}
	if !l.Contains("a") || l.Contains("c") {
		t.Errorf("Contains misbehaved for %v", l)
	}
}
