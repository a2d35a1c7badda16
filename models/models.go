package models

import "strings"

// Gender is the binary gender recorded for a person
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Placeholders used when a text field has no value.
const (
	UnknownName    = "Unknown"
	NotApplicable  = "N/A"
	RedactedMobile = "017XXXXXXXX (Privacy)"
)

// Person represents a member listed in the directory
type Person struct {
	ID          int64  `json:"id"`          // Unique, stable for the record's lifetime
	Name        string `json:"name"`        // Full name
	Union       string `json:"union"`       // Union (group) the person belongs to
	Department  string `json:"department"`  // University department
	Session     string `json:"session"`     // Session / cohort label, e.g. 2019-20
	Mobile      string `json:"mobile"`      // Mobile number
	Email       string `json:"email"`       // Email address
	HighSchool  string `json:"highSchool"`  // High-school name
	College     string `json:"college"`     // College name
	VillageWard string `json:"villageWard"` // Village or ward label
	Facebook    string `json:"facebook"`    // Facebook handle or URL
	Gender      Gender `json:"gender"`      // male or female
}

// ParseGender maps a free-form cell to a Gender. Only "female" (any case,
// surrounding whitespace ignored) yields Female.
func ParseGender(s string) Gender {
	if strings.EqualFold(strings.TrimSpace(s), string(Female)) {
		return Female
	}
	return Male
}

// WithDefaults returns a copy of p where every empty field carries its
// placeholder. fallbackUnion is used when Union is empty.
func (p Person) WithDefaults(fallbackUnion string) Person {
	if p.Name == "" {
		p.Name = UnknownName
	}
	if p.Union == "" {
		p.Union = fallbackUnion
	}
	if p.Department == "" {
		p.Department = NotApplicable
	}
	if p.Session == "" {
		p.Session = NotApplicable
	}
	if p.Gender != Female {
		p.Gender = Male
	}
	return p
}

// CanShowMobile reports whether a renderer may display the person's mobile
// number. Numbers of female members are never shown.
func CanShowMobile(p Person) bool {
	return p.Gender != Female
}

// DisplayMobile returns the mobile number as it should be rendered.
func DisplayMobile(p Person) string {
	if !CanShowMobile(p) {
		return RedactedMobile
	}
	return p.Mobile
}
