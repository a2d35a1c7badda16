package importer

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "header and rows",
			text: "Name,Union,Department\nKarim,Begumganj,CSE\n",
			want: [][]string{{"Name", "Union", "Department"}, {"Karim", "Begumganj", "CSE"}},
		},
		{
			name: "crlf and padding are trimmed",
			text: " Name , Union \r\n Karim ,Rampur\r\n",
			want: [][]string{{"Name", "Union"}, {"Karim", "Rampur"}},
		},
		{
			name: "short rows are dropped",
			text: "Name,Union\n\nlonely\nKarim,Rampur\n\n",
			want: [][]string{{"Name", "Union"}, {"Karim", "Rampur"}},
		},
		{
			name: "quotes are not interpreted",
			text: "Name,Address\n\"Karim\",\"Ward 1, Rampur\"",
			want: [][]string{{"Name", "Address"}, {"\"Karim\"", "\"Ward 1", "Rampur\""}},
		},
		{
			name: "empty input",
			text: "",
			want: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("utf-8 bom is stripped", func(t *testing.T) {
		got, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, "Name,Union"...))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "Name,Union" {
			t.Errorf("Decode() = %q", got)
		}
	})

	t.Run("utf-16le with bom", func(t *testing.T) {
		data := []byte{0xFF, 0xFE}
		for _, r := range "Name,Union" {
			data = append(data, byte(r), 0x00)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "Name,Union" {
			t.Errorf("Decode() = %q", got)
		}
	})

	t.Run("plain utf-8 passes through", func(t *testing.T) {
		got, err := Decode([]byte("নাম,ইউনিয়ন"))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "নাম,ইউনিয়ন" {
			t.Errorf("Decode() = %q", got)
		}
	})

	t.Run("invalid utf-8 is read as latin-1", func(t *testing.T) {
		got, err := Decode([]byte{'J', 'o', 's', 0xE9})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "José" {
			t.Errorf("Decode() = %q, want José", got)
		}
	})
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Name", "Union", "Gender"},
		{" Rahima ", "Rampur", "Female"},
		{"solo"},
		{"Karim", "Musapur", "male"},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cellRef, &r); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	got, err := ReadFile("roster.XLSX", buf.Bytes())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := [][]string{
		{"Name", "Union", "Gender"},
		{"Rahima", "Rampur", "Female"},
		{"Karim", "Musapur", "male"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFile() = %q, want %q", got, want)
	}
}

func TestReadFileRejectsBrokenWorkbook(t *testing.T) {
	if _, err := ReadFile("broken.xlsx", []byte("not a zip")); err == nil {
		t.Error("expected error for invalid workbook")
	}
}

func TestReadFileCSV(t *testing.T) {
	got, err := ReadFile("roster.csv", []byte("Name,Union\nKarim,Rampur\n"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(got) != 2 || got[1][0] != "Karim" {
		t.Errorf("ReadFile() = %q", got)
	}
}
