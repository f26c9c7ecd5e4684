package assets

import (
	"reflect"
	"testing"
)

func TestCatalogRegisterLookup(t *testing.T) {
	c := NewCatalog[rune]()
	c.Register("ship", '▲')
	c.Register("asteroid_1_1", 'o')

	if got := c.Lookup("ship"); got != '▲' {
		t.Errorf("Lookup(ship) = %q, expected '▲'", got)
	}
	if !c.Has("asteroid_1_1") || c.Has("asteroid_9_9") {
		t.Error("Has() reports wrong membership")
	}
	if !reflect.DeepEqual(c.Keys(), []string{"asteroid_1_1", "ship"}) {
		t.Errorf("Keys() = %v, expected sorted keys", c.Keys())
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}
}

func TestCatalogPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *Catalog[int])
	}{
		{"unknown key", func(c *Catalog[int]) { c.Lookup("missing") }},
		{"duplicate key", func(c *Catalog[int]) { c.Register("a", 1); c.Register("a", 2) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn(NewCatalog[int]())
		})
	}
}
