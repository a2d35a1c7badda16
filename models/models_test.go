package models

import (
	"reflect"
	"testing"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
	}{
		{"female", Female},
		{"Female", Female},
		{"  FEMALE ", Female},
		{"male", Male},
		{"", Male},
		{"f", Male},
		{"other", Male},
	}
	for _, tt := range tests {
		if got := ParseGender(tt.in); got != tt.want {
			t.Errorf("ParseGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	got := Person{ID: 7}.WithDefaults("Others")
	want := Person{
		ID:         7,
		Name:       UnknownName,
		Union:      "Others",
		Department: NotApplicable,
		Session:    NotApplicable,
		Gender:     Male,
	}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}

	kept := Person{Name: "Karim", Union: "Rampur", Department: "CSE", Session: "2019-20", Gender: Female}
	if got := kept.WithDefaults("Others"); got != kept {
		t.Errorf("WithDefaults() changed populated record: %+v", got)
	}
}

func TestMobileRedaction(t *testing.T) {
	male := Person{Mobile: "01711000001", Gender: Male}
	female := Person{Mobile: "01711000002", Gender: Female}

	if !CanShowMobile(male) {
		t.Error("expected male mobile to be visible")
	}
	if CanShowMobile(female) {
		t.Error("expected female mobile to be hidden")
	}
	if got := DisplayMobile(male); got != "01711000001" {
		t.Errorf("DisplayMobile(male) = %q", got)
	}
	if got := DisplayMobile(female); got != RedactedMobile {
		t.Errorf("DisplayMobile(female) = %q, want %q", got, RedactedMobile)
	}
}

func TestCatalog(t *testing.T) {
	t.Run("configured fallback", func(t *testing.T) {
		c := NewCatalog([]string{"Rampur", " Musapur ", "", "Rampur", "Others"}, "Others")
		if want := []string{"Rampur", "Musapur", "Others"}; !reflect.DeepEqual(c.Names(), want) {
			t.Errorf("Names() = %v, want %v", c.Names(), want)
		}
		if c.Default() != "Others" {
			t.Errorf("Default() = %q, want Others", c.Default())
		}
	})

	t.Run("fallback not in catalog uses first", func(t *testing.T) {
		c := NewCatalog([]string{"Rampur", "Musapur"}, "Nowhere")
		if c.Default() != "Rampur" {
			t.Errorf("Default() = %q, want Rampur", c.Default())
		}
	})

	t.Run("contains is case-sensitive", func(t *testing.T) {
		c := NewCatalog([]string{"Rampur"}, "")
		if !c.Contains("Rampur") || c.Contains("rampur") {
			t.Error("unexpected Contains result")
		}
	})

	t.Run("names are a copy", func(t *testing.T) {
		c := NewCatalog([]string{"Rampur"}, "")
		c.Names()[0] = "changed"
		if c.Names()[0] != "Rampur" {
			t.Error("catalog was mutated through Names()")
		}
	})
}

func TestPersonSet(t *testing.T) {
	var p Person
	for _, f := range Fields {
		p.Set(f, string(f)+"-value")
	}
	p.Set(FieldGender, "FEMALE")

	if p.Name != "name-value" || p.VillageWard != "villageWard-value" || p.Facebook != "facebook-value" {
		t.Errorf("unexpected person after Set: %+v", p)
	}
	if p.Gender != Female {
		t.Errorf("Gender = %q, want female", p.Gender)
	}
	if !IsField("highSchool") || IsField("HighSchool") || IsField("id") {
		t.Error("unexpected IsField result")
	}
}
