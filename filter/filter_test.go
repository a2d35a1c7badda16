package filter

import (
	"reflect"
	"testing"

	"forum-directory/models"
)

func roster() []models.Person {
	return []models.Person{
		{ID: 1, Name: "Abdur Rahim", Union: "Rampur", Department: "CSE", Session: "2019-20", VillageWard: "Ward 1"},
		{ID: 2, Name: "Karim Uddin", Union: "Musapur", Department: "Physics", Session: "2020-21", VillageWard: "Musapur Bazar"},
		{ID: 3, Name: "Nusrat Jahan", Union: "Rampur", Department: "English", Session: "2018-19", VillageWard: "Char Mojid"},
		{ID: 4, Name: "Tanvir Hasan", Union: "Sirajpur", Department: "Economics", Session: "2019-20", VillageWard: "Ward 7"},
		{ID: 5, Name: "Rahima Akter", Union: "Rampur", Department: "Marketing", Session: "2021-22", VillageWard: "Ward 3"},
	}
}

func ids(people []models.Person) []int64 {
	out := make([]int64, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}

func TestVisible(t *testing.T) {
	records := roster()

	tests := []struct {
		name  string
		scope string
		query string
		want  []int64
	}{
		{"scoped without query lists the union", "Rampur", "", []int64{1, 3, 5}},
		{"scoped whitespace query lists the union", "Rampur", "   \t", []int64{1, 3, 5}},
		{"unscoped without query is empty", "", "", []int64{}},
		{"unscoped whitespace query is empty", "", "  ", []int64{}},
		{"name substring", "", "rahim", []int64{1, 5}},
		{"upper-case query", "", "RAHIM", []int64{1, 5}},
		{"query is trimmed", "", "  rahim  ", []int64{1, 5}},
		{"department", "", "cse", []int64{1}},
		{"session", "", "2019-20", []int64{1, 4}},
		{"village ward", "", "ward", []int64{1, 4, 5}},
		{"union name", "", "musapur", []int64{2}},
		{"scoped query", "Rampur", "ward", []int64{1, 5}},
		{"scope is case-sensitive", "rampur", "", []int64{}},
		{"unknown scope", "Nowhere", "", []int64{}},
		{"no match", "", "zzz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Visible(records, tt.scope, tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Visible(%q, %q) = %v, want %v", tt.scope, tt.query, got, tt.want)
			}
		})
	}
}

func TestVisibleIsOrderedSubsequence(t *testing.T) {
	records := roster()
	for _, scope := range []string{"", "Rampur", "Musapur"} {
		for _, query := range []string{"a", "r", "20", "ward", "e"} {
			got := Visible(records, scope, query)
			base := records
			if scope != "" {
				base = Visible(records, scope, "")
			}
			if !isSubsequence(got, base) {
				t.Errorf("Visible(%q, %q) is not a subsequence of its base", scope, query)
			}
		}
	}
}

func TestVisibleIsDeterministic(t *testing.T) {
	records := roster()
	first := Visible(records, "", "a")
	for i := 0; i < 10; i++ {
		if again := Visible(records, "", "a"); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, ids(first), ids(again))
		}
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	records := roster()
	before := roster()
	_ = Visible(records, "Rampur", "ward")
	if !reflect.DeepEqual(records, before) {
		t.Error("input records were modified")
	}
}

func TestLimit(t *testing.T) {
	records := roster()
	if got := len(Limit(records, 2)); got != 2 {
		t.Errorf("Limit(2) returned %d records", got)
	}
	if got := len(Limit(records, 0)); got != len(records) {
		t.Errorf("Limit(0) returned %d records", got)
	}
	if got := len(Limit(records, 100)); got != len(records) {
		t.Errorf("Limit(100) returned %d records", got)
	}
}

func isSubsequence(sub, seq []models.Person) bool {
	j := 0
	for _, p := range seq {
		if j < len(sub) && sub[j].ID == p.ID {
			j++
		}
	}
	return j == len(sub)
}
