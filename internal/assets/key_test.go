package assets

import "testing"

func TestDeriveKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chicken Burger", "menuimg_chicken_burger"},
		{"  Chicken   Burger!! ", "menuimg_chicken_burger"},
		{"Crème Brûlée", "menuimg_creme_brulee"},
		{"fish & chips", "menuimg_fish_chips"},
		{"SKU-1234", "menuimg_sku_1234"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := DeriveKey(c.in); got != c.want {
			t.Errorf("DeriveKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("burger", "burger"); got != 1 {
		t.Errorf("identical = %v", got)
	}
	if got := Similarity("burger", ""); got != 0 {
		t.Errorf("empty = %v", got)
	}
	hi := Similarity("menuimg_chicken_burger", "menuimg_chiken_burger")
	if hi < 0.9 {
		t.Errorf("near match = %v, want >= 0.9", hi)
	}
	lo := Similarity("menuimg_chicken_burger", "menuimg_greek_salad")
	if lo >= 0.75 {
		t.Errorf("distant match = %v, want < 0.75", lo)
	}
}
