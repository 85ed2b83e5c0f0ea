// Package sqlgen renders a populated registry as SQL insert statements, one
// independent statement per record, tables in a fixed order so foreign keys
// are always inserted after the rows they reference.
package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/audiogrambase/ingest/internal/model"
)

// Statements renders every non-empty entity collection of the registry.
// Table order is fixed: facility, method, audiogram_experiment,
// audiogram_data_point, taxon, individual_animal, test_animal, publication,
// audiogram_publication, sound_pressure_level_reference. The SPL reference
// display label is a matching aid only and never serialized.
func Statements(reg *model.Registry) []string {
	var stmts []string

	for _, f := range reg.Facilities {
		stmts = append(stmts, Insert("facility", f.Fields()))
	}
	for _, m := range reg.Methods {
		stmts = append(stmts, Insert("method", m.Fields()))
	}
	for _, e := range reg.Experiments {
		stmts = append(stmts, Insert("audiogram_experiment", e.Fields()))
	}
	for _, dp := range reg.DataPoints {
		stmts = append(stmts, Insert("audiogram_data_point", dp.Fields()))
	}
	for _, t := range reg.Taxa {
		stmts = append(stmts, Insert("taxon", t.Fields()))
	}
	for _, a := range reg.IndividualAnimals {
		stmts = append(stmts, Insert("individual_animal", a.Fields()))
	}
	for _, ta := range reg.TestAnimals {
		stmts = append(stmts, Insert("test_animal", ta.Fields()))
	}
	for _, p := range reg.Publications {
		stmts = append(stmts, Insert("publication", p.Fields()))
	}
	for _, ap := range reg.AudiogramPublications {
		stmts = append(stmts, Insert("audiogram_publication", ap.Fields()))
	}
	for _, r := range reg.SPLReferences {
		stmts = append(stmts, Insert("sound_pressure_level_reference", r.Fields()))
	}

	return stmts
}

// Insert renders one insert statement for the given columns.
func Insert(table string, fields []model.Field) string {
	cols := make([]string, len(fields))
	vals := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
		vals[i] = renderValue(f.Value)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(cols, ","), strings.Join(vals, ","))
}

// renderValue turns a field value into a SQL literal. The literal "NA" (in
// either case) means no value and becomes NULL; all-digit strings are
// numeric literals; everything else is a quoted string with embedded quotes
// doubled.
func renderValue(v any) string {
	s := stringify(v)
	if s == "NA" || s == "na" {
		return "NULL"
	}
	if isDigits(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// stringify reduces supported value types to their text form.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "NA"
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case pgtype.Text:
		return x.String
	case pgtype.Int8:
		return strconv.FormatInt(x.Int64, 10)
	case pgtype.Float8:
		return strconv.FormatFloat(x.Float64, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// isDigits reports whether s is a non-empty run of ASCII digits. Signed and
// decimal numbers are quoted like any other string; the target columns
// accept them either way.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Script joins statements into one newline-terminated script.
func Script(stmts []string) string {
	if len(stmts) == 0 {
		return ""
	}
	return strings.Join(stmts, "\n") + "\n"
}
