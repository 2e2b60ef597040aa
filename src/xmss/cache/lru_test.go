package cache

import "testing"

func TestGetPutRoundTrip(t *testing.T) {
	c := New(2)
	c.Put("a", []byte{1, 2, 3})
	v, ok := c.Get("a")
	if !ok {
		t.Fatal("expected key \"a\" to be present")
	}
	if string(v) != string([]byte{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", v)
	}
}

func TestMissingKey(t *testing.T) {
	c := New(2)
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss on an empty cache")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put("a", []byte{1})
	c.Put("b", []byte{2})
	// touch "a" so "b" becomes least recently used
	c.Get("a")
	c.Put("c", []byte{3})

	if _, ok := c.Get("b"); ok {
		t.Error("\"b\" should have been evicted as least recently used")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("\"a\" should still be present")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("\"c\" should be present")
	}
}
