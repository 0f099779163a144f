package static

import (
	"context"
	"testing"

	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

func TestTranslateLookup(t *testing.T) {
	o := New(map[string]string{"Chicken Burger": "برجر الدجاج"}, nil)
	res, err := o.Translate(context.Background(), ports.ToArabic, []ports.TranslationRequest{
		{ID: "1", Fields: map[string]string{"Name": "Chicken Burger", "Description": ""}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := res[0].Fields["Name"]; got != "برجر الدجاج" {
		t.Errorf("Name = %q", got)
	}
	if got := res[0].Fields["Description"]; got != "" {
		t.Errorf("empty submitted field must return empty, got %q", got)
	}
}

func TestTranslateUnknownPhraseReturnsEmpty(t *testing.T) {
	o := New(nil, nil)
	res, err := o.Translate(context.Background(), ports.ToArabic, []ports.TranslationRequest{
		{ID: "1", Fields: map[string]string{"Name": "Totally Unknown"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := res[0].Fields["Name"]; got != "" {
		t.Errorf("unknown phrase fabricated a translation: %q", got)
	}
}

func TestSubstitute(t *testing.T) {
	cases := map[string]string{
		"Pork Belly":         "beef Belly",
		"bacon cheeseburger": "beef bacon cheeseburger",
		"red wine sauce":     "red grape juice sauce",
		"plain fries":        "plain fries",
	}
	for in, want := range cases {
		if got := Substitute(in); got != want {
			t.Errorf("Substitute(%q) = %q, want %q", in, got, want)
		}
	}
}
