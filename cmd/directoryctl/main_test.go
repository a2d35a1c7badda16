package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forum-directory/models"
)

func TestParseOverride(t *testing.T) {
	field, col, err := parseOverride(" department = 2")
	if err != nil || field != models.FieldDepartment || col != 2 {
		t.Errorf("parseOverride = %q, %d, %v", field, col, err)
	}
	for _, bad := range []string{"department", "department=two"} {
		if _, _, err := parseOverride(bad); err == nil {
			t.Errorf("parseOverride(%q) accepted bad input", bad)
		}
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFieldsCommand(t *testing.T) {
	out, err := runCmd(t, "fields")
	if err != nil {
		t.Fatalf("fields failed: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != len(models.Fields) {
		t.Errorf("got %d lines, want %d:\n%s", len(lines), len(models.Fields), out)
	}
	if !strings.Contains(out, `default="Others"`) {
		t.Errorf("union default missing:\n%s", out)
	}
}

func TestPreviewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	csv := "Name,Union,Dept,Gender\nKarim,Rampur,CSE,male\nSalma,,EEE,female\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	out, err := runCmd(t, "preview", path, "--map", "department=2")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	var res struct {
		Mapping  map[string]int  `json:"mapping"`
		Imported int             `json:"imported"`
		NoOp     bool            `json:"noOp"`
		Records  []models.Person `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.Imported != 2 || res.NoOp || len(res.Records) != 2 {
		t.Fatalf("unexpected preview: %+v", res)
	}
	if res.Mapping["department"] != 2 {
		t.Errorf("override not applied: %v", res.Mapping)
	}
	if res.Records[1].Union != models.DefaultFallbackUnion || res.Records[1].Department != "EEE" {
		t.Errorf("unexpected second record: %+v", res.Records[1])
	}

	if _, err := runCmd(t, "preview", path, "--map", "nickname=1"); err == nil {
		t.Error("preview accepted an unknown field")
	}
	if _, err := runCmd(t, "preview", filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("preview accepted a missing file")
	}
}
