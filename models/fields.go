package models

// Field names a Person attribute that an import column can be mapped to.
type Field string

const (
	FieldName        Field = "name"
	FieldUnion       Field = "union"
	FieldDepartment  Field = "department"
	FieldSession     Field = "session"
	FieldMobile      Field = "mobile"
	FieldEmail       Field = "email"
	FieldHighSchool  Field = "highSchool"
	FieldCollege     Field = "college"
	FieldVillageWard Field = "villageWard"
	FieldFacebook    Field = "facebook"
	FieldGender      Field = "gender"
)

// Fields is the canonical, ordered list of mappable fields.
var Fields = []Field{
	FieldName,
	FieldUnion,
	FieldDepartment,
	FieldSession,
	FieldMobile,
	FieldEmail,
	FieldHighSchool,
	FieldCollege,
	FieldVillageWard,
	FieldFacebook,
	FieldGender,
}

// IsField reports whether s names one of Fields.
func IsField(s string) bool {
	for _, f := range Fields {
		if string(f) == s {
			return true
		}
	}
	return false
}

// Set stores value into the attribute named by f. Gender values are parsed
// with ParseGender. Unknown fields are ignored.
func (p *Person) Set(f Field, value string) {
	switch f {
	case FieldName:
		p.Name = value
	case FieldUnion:
		p.Union = value
	case FieldDepartment:
		p.Department = value
	case FieldSession:
		p.Session = value
	case FieldMobile:
		p.Mobile = value
	case FieldEmail:
		p.Email = value
	case FieldHighSchool:
		p.HighSchool = value
	case FieldCollege:
		p.College = value
	case FieldVillageWard:
		p.VillageWard = value
	case FieldFacebook:
		p.Facebook = value
	case FieldGender:
		p.Gender = ParseGender(value)
	}
}
