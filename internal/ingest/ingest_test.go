package ingest

import (
	"strings"
	"testing"
)

const sampleMenu = `
<html><body>
<div class="menu-item">
  <h3 class="item-name">Taco Tuesday Deal</h3>
  <p class="item-desc">Two tacos with rice and beans</p>
  <span class="price">$5.00</span>
  <span class="tag">Mexican</span>
  <span class="tag">Discount</span>
</div>
<div class="menu-item">
  <h3>Grain Bowl</h3>
  <span class="price">9.99</span>
  <span class="tag">healthy</span>
</div>
<div class="menu-item">
  <h3 class="item-name">No Price Item</h3>
</div>
<div class="menu-item">
  <span class="price">$4.00</span>
</div>
</body></html>`

func TestParseMenu(t *testing.T) {
	items, err := parseMenu(strings.NewReader(sampleMenu))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (missing price or title skipped)", len(items))
	}

	first := items[0]
	if first.title != "Taco Tuesday Deal" {
		t.Fatalf("title = %q", first.title)
	}
	if first.description != "Two tacos with rice and beans" {
		t.Fatalf("description = %q", first.description)
	}
	if first.price != 5.00 {
		t.Fatalf("price = %v", first.price)
	}
	if len(first.tags) != 2 || first.tags[0] != "mexican" || first.tags[1] != "discount" {
		t.Fatalf("tags = %v, want lowercased", first.tags)
	}

	second := items[1]
	if second.title != "Grain Bowl" {
		t.Fatalf("fallback h3 title = %q", second.title)
	}
	if second.price != 9.99 {
		t.Fatalf("price without dollar sign = %v", second.price)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$5.00", 5, true},
		{" $12.99 ", 12.99, true},
		{"7", 7, true},
		{"", 0, false},
		{"free", 0, false},
		{"$-3", 0, false},
	}
	for _, tc := range cases {
		got, ok := parsePrice(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parsePrice(%q) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSlug(t *testing.T) {
	if got := slug("Taco Tuesday - $5 Deal!"); got != "taco-tuesday---5-deal" {
		t.Fatalf("slug = %q", got)
	}
}
