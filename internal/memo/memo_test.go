package memo

import "testing"

type scope struct {
	Month string
	Year  int
}

func TestKeyIsStable(t *testing.T) {
	a := Key("drilling", 3, scope{Month: "March", Year: 2024})
	b := Key("drilling", 3, scope{Month: "March", Year: 2024})
	if a != b {
		t.Fatalf("identical inputs should key identically: %q vs %q", a, b)
	}

	if Key("drilling", 3, scope{Month: "April", Year: 2024}) == a {
		t.Error("different scopes should key differently")
	}
	if Key("drilling", 4, scope{Month: "March", Year: 2024}) == a {
		t.Error("different dataset versions should key differently")
	}
	if Key("production", 3, scope{Month: "March", Year: 2024}) == a {
		t.Error("different aggregator names should key differently")
	}
}

func TestGetSet(t *testing.T) {
	c := New(8)

	key := Key("drilling", 1, scope{Year: 2024})
	if _, ok := c.Get(key); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set(key, 1, 42.0)
	got, ok := c.Get(key)
	if !ok || got.(float64) != 42.0 {
		t.Fatalf("expected cached 42.0, got %v (%t)", got, ok)
	}
}

func TestNewVersionEvictsOldEntries(t *testing.T) {
	c := New(8)

	old := Key("drilling", 1, scope{Year: 2024})
	c.Set(old, 1, "v1")
	c.Set(Key("drilling", 2, scope{Year: 2024}), 2, "v2")

	if _, ok := c.Get(old); ok {
		t.Error("entries from superseded dataset versions should be evicted")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 live entry, got %d", c.Len())
	}
}

func TestOverflowResetsCache(t *testing.T) {
	c := New(2)

	c.Set(Key("a", 1, scope{Year: 2020}), 1, 1)
	c.Set(Key("b", 1, scope{Year: 2021}), 1, 2)
	c.Set(Key("c", 1, scope{Year: 2022}), 1, 3)

	if c.Len() != 1 {
		t.Fatalf("overflow should reset before inserting, got %d entries", c.Len())
	}
}
