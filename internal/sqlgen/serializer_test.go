package sqlgen

import (
	"strings"
	"testing"

	"github.com/audiogrambase/ingest/internal/model"
)

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "NA becomes NULL", input: "NA", want: "NULL"},
		{name: "lowercase na becomes NULL", input: "na", want: "NULL"},
		{name: "digits stay bare", input: "42", want: "42"},
		{name: "int64 stays bare", input: int64(7), want: "7"},
		{name: "decimal is quoted", input: "3.5", want: "'3.5'"},
		{name: "negative is quoted", input: "-4", want: "'-4'"},
		{name: "text is quoted", input: "indoor pool", want: "'indoor pool'"},
		{name: "embedded quote doubled", input: "O'Brien", want: "'O''Brien'"},
		{name: "empty string quoted", input: "", want: "''"},
		{name: "pgtype text NA becomes NULL", input: model.Text("NA"), want: "NULL"},
		{name: "pgtype int bare", input: model.Int(26), want: "26"},
		{name: "float64 quoted", input: 5.5, want: "'5.5'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderValue(tt.input); got != tt.want {
				t.Errorf("renderValue(%v) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestInsert(t *testing.T) {
	got := Insert("facility", []model.Field{
		{Column: "id", Value: int64(1)},
		{Column: "name", Value: "Kolmården's pool"},
	})
	want := "INSERT INTO facility (id,name) VALUES (1,'Kolmården''s pool');"
	if got != want {
		t.Errorf("Insert = %s, want %s", got, want)
	}
}

func TestStatementsTableOrder(t *testing.T) {
	reg := model.NewRegistry()
	reg.AddFacility("SeaWorld")
	reg.Experiments = append(reg.Experiments, &model.AudiogramExperiment{ID: 1})
	reg.AddTaxon(&model.Taxon{UniqueName: "Orcinus orca", Rank: "species", OttID: 124215})
	reg.AddPublication(&model.Publication{CitationLong: "Hall & Johnson (1972)", CitationShort: "Hall & Johnson, 1972"})

	stmts := Statements(reg)

	order := []string{
		"INSERT INTO facility ",
		"INSERT INTO method ",
		"INSERT INTO audiogram_experiment ",
		"INSERT INTO taxon ",
		"INSERT INTO publication ",
		"INSERT INTO sound_pressure_level_reference ",
	}
	pos := -1
	for _, prefix := range order {
		found := -1
		for i, s := range stmts {
			if strings.HasPrefix(s, prefix) {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("no statement for %q", prefix)
		}
		if found < pos {
			t.Errorf("%q out of order at %d", prefix, found)
		}
		pos = found
	}
}

func TestStatementsOmitAbsentColumns(t *testing.T) {
	reg := model.NewRegistry()
	reg.Experiments = append(reg.Experiments, &model.AudiogramExperiment{
		ID:     7,
		Medium: model.Text("water"),
	})

	stmts := Statements(reg)
	var exp string
	for _, s := range stmts {
		if strings.HasPrefix(s, "INSERT INTO audiogram_experiment ") {
			exp = s
			break
		}
	}
	if exp == "" {
		t.Fatal("experiment statement not found")
	}
	if !strings.Contains(exp, "medium") || !strings.Contains(exp, "'water'") {
		t.Errorf("set column missing: %s", exp)
	}
	if strings.Contains(exp, "latitude") || strings.Contains(exp, "facility_id") {
		t.Errorf("unset columns must be omitted: %s", exp)
	}
}

func TestStatementsRenderStaticNAAsNull(t *testing.T) {
	stmts := Statements(model.NewRegistry())
	found := false
	for _, s := range stmts {
		if strings.HasPrefix(s, "INSERT INTO sound_pressure_level_reference ") &&
			strings.Contains(s, "'re ") {
			t.Fatalf("display label leaked into SQL: %s", s)
		}
		if strings.HasPrefix(s, "INSERT INTO sound_pressure_level_reference ") &&
			strings.Contains(s, "NULL") {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one NA conversion factor rendered as NULL")
	}
}

func TestScript(t *testing.T) {
	if got := Script(nil); got != "" {
		t.Errorf("empty script = %q", got)
	}
	got := Script([]string{"INSERT INTO a (id) VALUES (1);", "INSERT INTO b (id) VALUES (2);"})
	want := "INSERT INTO a (id) VALUES (1);\nINSERT INTO b (id) VALUES (2);\n"
	if got != want {
		t.Errorf("Script = %q, want %q", got, want)
	}
}
