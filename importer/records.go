package importer

import "forum-directory/models"

// IDSource supplies fresh, never reused person identifiers.
type IDSource interface {
	Next() int64
}

// PerFieldDefault is the value a field takes when its column is unset or the
// row has no value for it.
func PerFieldDefault(f models.Field, fallbackUnion string) string {
	switch f {
	case models.FieldName:
		return models.UnknownName
	case models.FieldUnion:
		return fallbackUnion
	case models.FieldDepartment, models.FieldSession:
		return models.NotApplicable
	case models.FieldGender:
		return string(models.Male)
	default:
		return ""
	}
}

// cell returns the mapped, non-empty value of f in row.
func cell(row []string, m Mapping, f models.Field) (string, bool) {
	col, ok := m.Column(f)
	if !ok || col < 0 || col >= len(row) || row[col] == "" {
		return "", false
	}
	return row[col], true
}

// BuildRecords converts data rows into people. Missing or unmapped values
// fall back to PerFieldDefault; a short row never fails the batch.
func BuildRecords(rows [][]string, m Mapping, fallbackUnion string, ids IDSource) []models.Person {
	out := make([]models.Person, 0, len(rows))
	for _, row := range rows {
		p := models.Person{ID: ids.Next()}
		for _, f := range models.Fields {
			v, ok := cell(row, m, f)
			if !ok {
				v = PerFieldDefault(f, fallbackUnion)
			}
			p.Set(f, v)
		}
		out = append(out, p)
	}
	return out
}
