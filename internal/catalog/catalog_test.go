package catalog

import (
	"errors"
	"testing"
)

func TestNormalize_PotatoVariants(t *testing.T) {
	c := Default()
	for _, in := range []string{"potato", "Potatoes", "POTATO", "fresh potatoes 10kg", "आलू", "मुझे आलू चाहिए", "Aloo आलू"} {
		if got := c.Normalize(in); got != "potato" {
			t.Fatalf("Normalize(%q) = %q, want potato", in, got)
		}
	}
}

func TestNormalize_OtherProducts(t *testing.T) {
	c := Default()
	cases := []struct{ in, want string }{
		{"Tomato", "tomato"},
		{"टमाटर", "tomato"},
		{"red onions", "onion"},
		{"प्याज", "onion"},
		{"Apple (Shimla)", "apple"},
		{"सेब", "apple"},
	}
	for _, tc := range cases {
		if got := c.Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_NoMatchReturnsDefault(t *testing.T) {
	c := Default()
	for _, in := range []string{"", "rice", "wheat flour", "गेहूं", "   "} {
		if got := c.Normalize(in); got != DefaultKey {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, DefaultKey)
		}
	}
}

func TestNormalize_TableOrderWins(t *testing.T) {
	c := Default()
	// potato precedes onion in the table
	if got := c.Normalize("onion and potato mix"); got != "potato" {
		t.Fatalf("expected potato, got %q", got)
	}
	// "pineapple" contains "apple"
	if got := c.Normalize("pineapple"); got != "apple" {
		t.Fatalf("expected apple, got %q", got)
	}
}

func TestBasePrice(t *testing.T) {
	c := Default()
	cases := map[string]int{"potato": 18, "tomato": 22, "onion": 25, "apple": 95, DefaultKey: 20, "unknown": 20}
	for key, want := range cases {
		if got := c.BasePrice(key); got != want {
			t.Fatalf("BasePrice(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestEveryNormalizedKeyHasPrice(t *testing.T) {
	c := Default()
	for _, p := range c.Entries() {
		for _, a := range p.Aliases {
			key := c.Normalize(a)
			if c.BasePrice(key) <= 0 {
				t.Fatalf("alias %q -> %q has no price", a, key)
			}
		}
	}
}

func TestIsMetro(t *testing.T) {
	c := Default()
	for _, loc := range []string{"Delhi", "New Delhi", "MUMBAI", "navi mumbai", "Bangalore Urban", "Chennai", "kolkata"} {
		if !c.IsMetro(loc) {
			t.Fatalf("IsMetro(%q) = false, want true", loc)
		}
	}
	for _, loc := range []string{"", "Pune", "Nashik", "Bengaluru"} {
		if c.IsMetro(loc) {
			t.Fatalf("IsMetro(%q) = true, want false", loc)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		products []Product
		def      int
		want     error
	}{
		{"empty key", []Product{{Key: " ", Aliases: []string{"x"}, BasePrice: 1}}, 20, ErrEmptyKey},
		{"reserved key", []Product{{Key: DefaultKey, Aliases: []string{"x"}, BasePrice: 1}}, 20, ErrReservedKey},
		{"duplicate", []Product{{Key: "a", Aliases: []string{"a"}, BasePrice: 1}, {Key: "a", Aliases: []string{"b"}, BasePrice: 2}}, 20, ErrDuplicateKey},
		{"no aliases", []Product{{Key: "a", Aliases: []string{" "}, BasePrice: 1}}, 20, ErrNoAliases},
		{"bad price", []Product{{Key: "a", Aliases: []string{"a"}, BasePrice: 0}}, 20, ErrBadPrice},
		{"bad default", nil, 0, ErrBadPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.products, tc.def, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNew_LowercasesAliases(t *testing.T) {
	c, err := New([]Product{{Key: "garlic", Aliases: []string{"Garlic", "लहसुन"}, BasePrice: 120}}, 20, []string{"Pune"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Normalize("GARLIC bulbs"); got != "garlic" {
		t.Fatalf("expected garlic, got %q", got)
	}
	if !c.IsMetro("pune camp") {
		t.Fatalf("expected pune to match")
	}
}

func TestWithBasePrices(t *testing.T) {
	c := Default()
	next, skipped, err := c.WithBasePrices(map[string]int{"potato": 30, DefaultKey: 40, "mango": 60, "banana": 10})
	if err != nil {
		t.Fatalf("WithBasePrices: %v", err)
	}
	if next.BasePrice("potato") != 30 || next.BasePrice("rice") != 40 || next.BasePrice("apple") != 95 {
		t.Fatalf("unexpected prices: potato=%d default=%d apple=%d", next.BasePrice("potato"), next.BasePrice("rice"), next.BasePrice("apple"))
	}
	if len(skipped) != 2 || skipped[0] != "banana" || skipped[1] != "mango" {
		t.Fatalf("unexpected skipped: %v", skipped)
	}
	// original untouched
	if c.BasePrice("potato") != 18 {
		t.Fatalf("original catalog mutated")
	}
	if !next.IsMetro("Delhi") {
		t.Fatalf("metro list lost")
	}
}

func TestWithBasePrices_RejectsNonPositive(t *testing.T) {
	if _, _, err := Default().WithBasePrices(map[string]int{"onion": -1}); !errors.Is(err, ErrBadPrice) {
		t.Fatalf("expected ErrBadPrice, got %v", err)
	}
}
