// Package model defines the normalized entities produced by an import run and
// the Registry that owns them while the run is in flight.
//
// Optional columns use pgtype values (the null convention used across our
// import tooling): an invalid value means the column is absent and is left
// out of the generated insert statement entirely.
package model

import "github.com/jackc/pgx/v5/pgtype"

// Field is one (column, value) pair of a serialized entity. Values may be
// Go strings and numbers or valid pgtype wrappers.
type Field struct {
	Column string
	Value  any
}

// Facility is a research facility, created once per distinct non-empty
// facility name in first-seen order.
type Facility struct {
	ID   int64
	Name string
}

// Fields returns the facility's columns in serialization order.
func (f *Facility) Fields() []Field {
	return []Field{
		{"id", f.ID},
		{"name", f.Name},
	}
}

// Method is a measurement or test-tone method from the static reference list.
// CategoryLevel 1 is a parent category, 2 a leaf under ParentMethodID.
type Method struct {
	ID             int64
	CategoryLevel  int64
	Denomination   string
	ParentMethodID pgtype.Int8
}

func (m *Method) Fields() []Field {
	fields := []Field{
		{"id", m.ID},
		{"category_level", m.CategoryLevel},
		{"denomination", m.Denomination},
	}
	if m.ParentMethodID.Valid {
		fields = append(fields, Field{"parent_method_id", m.ParentMethodID})
	}
	return fields
}

// SPLReference is a sound-pressure-level reference from the static reference
// list. DisplayLabel ("re <value> <unit>") exists only to match the sheet's
// SPL reference column and is stripped before serialization.
//
// Value and the conversion factors are kept as source strings: some entries
// carry the literal "NA", which must serialize as NULL, not as a quoted
// string.
type SPLReference struct {
	ID           int64
	Value        string
	Unit         string
	Significance string
	ConvAirborne pgtype.Text
	ConvWaterborne pgtype.Text
	DisplayLabel string
}

func (r *SPLReference) Fields() []Field {
	fields := []Field{
		{"id", r.ID},
		{"spl_reference_value", r.Value},
		{"spl_reference_unit", r.Unit},
		{"spl_reference_significance", r.Significance},
	}
	if r.ConvAirborne.Valid {
		fields = append(fields, Field{"conversion_factor_airborne_sound_in_decibel", r.ConvAirborne})
	}
	if r.ConvWaterborne.Valid {
		fields = append(fields, Field{"conversion_factor_waterborne_sound_in_decibel", r.ConvWaterborne})
	}
	return fields
}

// Taxon is one node of the taxonomic hierarchy, keyed by its scientific name.
// Parent holds the ott_id of the nearest senior taxon present in the lineage.
// Lft and Rgt are the nested-set bounds assigned after the tree is complete.
type Taxon struct {
	UniqueName   string
	Rank         string
	OttID        int64
	Parent       pgtype.Int8
	VernacularEN pgtype.Text
	VernacularDE pgtype.Text
	Lft          pgtype.Int8
	Rgt          pgtype.Int8
}

func (t *Taxon) Fields() []Field {
	fields := []Field{
		{"unique_name", t.UniqueName},
		{"rank", t.Rank},
		{"ott_id", t.OttID},
	}
	if t.Parent.Valid {
		fields = append(fields, Field{"parent", t.Parent})
	}
	if t.VernacularEN.Valid {
		fields = append(fields, Field{"vernacular_name_english", t.VernacularEN})
	}
	if t.VernacularDE.Valid {
		fields = append(fields, Field{"vernacular_name_german", t.VernacularDE})
	}
	if t.Lft.Valid {
		fields = append(fields, Field{"lft", t.Lft})
	}
	if t.Rgt.Valid {
		fields = append(fields, Field{"rgt", t.Rgt})
	}
	return fields
}

// IndividualAnimal is one test subject. TaxonID references the taxon's
// ott_id. Rows listing several animals are split into one record each.
type IndividualAnimal struct {
	ID             int64
	IndividualName string
	Sex            pgtype.Text
	TaxonID        int64
}

func (a *IndividualAnimal) Fields() []Field {
	fields := []Field{
		{"id", a.ID},
		{"individual_name", a.IndividualName},
	}
	if a.Sex.Valid {
		fields = append(fields, Field{"sex", a.Sex})
	}
	return append(fields, Field{"taxon_id", a.TaxonID})
}

// TestAnimal links an experiment to one participating animal together with
// the animal's state at test time.
type TestAnimal struct {
	IndividualAnimalID    int64
	AudiogramExperimentID int64
	LifeStage             pgtype.Text
	AgeMinInMonth         pgtype.Float8
	LibertyStatus         pgtype.Text
	CaptivityDuration     pgtype.Float8
}

func (t *TestAnimal) Fields() []Field {
	fields := []Field{
		{"individual_animal_id", t.IndividualAnimalID},
		{"audiogram_experiment_id", t.AudiogramExperimentID},
	}
	if t.LifeStage.Valid {
		fields = append(fields, Field{"life_stage", t.LifeStage})
	}
	if t.AgeMinInMonth.Valid {
		fields = append(fields, Field{"age_min_in_month", t.AgeMinInMonth})
	}
	if t.LibertyStatus.Valid {
		fields = append(fields, Field{"liberty_status", t.LibertyStatus})
	}
	if t.CaptivityDuration.Valid {
		fields = append(fields, Field{"captivity_duration_in_month", t.CaptivityDuration})
	}
	return fields
}

// AudiogramExperiment is one hearing test. The id comes straight from the
// sheet's Audiogram ID column (floor-converted), not from a counter.
type AudiogramExperiment struct {
	ID                      int64
	Latitude                pgtype.Text
	Longitude               pgtype.Text
	PositionOfAnimal        pgtype.Text
	DistanceToSoundSource   pgtype.Text
	TestEnvironment         pgtype.Text
	Medium                  pgtype.Text
	PositionFirstElectrode  pgtype.Text
	PositionSecondElectrode pgtype.Text
	PositionThirdElectrode  pgtype.Text
	YearStart               pgtype.Int8
	YearEnd                 pgtype.Int8
	Calibration             pgtype.Text
	ThresholdDetermination  pgtype.Text
	StaircaseProcedure      pgtype.Text
	MethodOfConstants       pgtype.Text
	SoundForm               pgtype.Text
	Sedated                 pgtype.Text
	SedationDetails         pgtype.Text
	NumberOfMeasurements    pgtype.Text
	NumberOfAnimals         pgtype.Text
	FacilityID              pgtype.Int8
	MeasurementMethodID     pgtype.Int8
	TesttoneFormMethodID    pgtype.Int8
}

func (e *AudiogramExperiment) Fields() []Field {
	fields := []Field{{"id", e.ID}}
	optional := []Field{
		{"latitude_in_decimal_degree", e.Latitude},
		{"longitude_in_decimal_degree", e.Longitude},
		{"position_of_animal", e.PositionOfAnimal},
		{"distance_to_sound_source_in_meter", e.DistanceToSoundSource},
		{"test_environment_description", e.TestEnvironment},
		{"medium", e.Medium},
		{"position_first_electrode", e.PositionFirstElectrode},
		{"position_second_electrode", e.PositionSecondElectrode},
		{"position_third_electrode", e.PositionThirdElectrode},
		{"year_of_experiment_start", e.YearStart},
		{"year_of_experiment_end", e.YearEnd},
		{"calibration", e.Calibration},
		{"threshold_determination_method", e.ThresholdDetermination},
		{"testtone_presentation_staircase", e.StaircaseProcedure},
		{"testtone_presentation_method_constants", e.MethodOfConstants},
		{"testtone_presentation_sound_form", e.SoundForm},
		{"sedated", e.Sedated},
		{"sedation_details", e.SedationDetails},
		{"number_of_measurements", e.NumberOfMeasurements},
		{"number_of_animals", e.NumberOfAnimals},
		{"facility_id", e.FacilityID},
		{"measurement_method_id", e.MeasurementMethodID},
		{"testtone_form_method_id", e.TesttoneFormMethodID},
	}
	for _, f := range optional {
		if fieldSet(f.Value) {
			fields = append(fields, f)
		}
	}
	return fields
}

// AudiogramDataPoint is one stimulus presentation, one per sheet row.
type AudiogramDataPoint struct {
	ID                    int64
	Duration              pgtype.Float8
	Frequency             pgtype.Float8
	SoundPressureLevel    pgtype.Float8
	SPLReferenceMethod    pgtype.Text
	AudiogramExperimentID int64
	SPLReferenceID        pgtype.Int8
}

func (p *AudiogramDataPoint) Fields() []Field {
	fields := []Field{{"id", p.ID}}
	optional := []Field{
		{"testtone_duration_in_millisecond", p.Duration},
		{"testtone_frequency_in_khz", p.Frequency},
		{"sound_pressure_level_in_decibel", p.SoundPressureLevel},
		{"sound_pressure_level_reference_method", p.SPLReferenceMethod},
	}
	for _, f := range optional {
		if fieldSet(f.Value) {
			fields = append(fields, f)
		}
	}
	fields = append(fields, Field{"audiogram_experiment_id", p.AudiogramExperimentID})
	if p.SPLReferenceID.Valid {
		fields = append(fields, Field{"sound_pressure_level_reference_id", p.SPLReferenceID})
	}
	return fields
}

// Publication is a cited source. DOI is the natural key when present,
// otherwise the long citation text.
type Publication struct {
	ID            int64
	DOI           pgtype.Text
	CitationLong  string
	CitationShort string
}

func (p *Publication) Fields() []Field {
	fields := []Field{{"id", p.ID}}
	if p.DOI.Valid {
		fields = append(fields, Field{"doi", p.DOI})
	}
	return append(fields,
		Field{"citation_long", p.CitationLong},
		Field{"citation_short", p.CitationShort},
	)
}

// AudiogramPublication links an experiment to a publication, many to many.
type AudiogramPublication struct {
	AudiogramExperimentID int64
	PublicationID         int64
}

func (l *AudiogramPublication) Fields() []Field {
	return []Field{
		{"audiogram_experiment_id", l.AudiogramExperimentID},
		{"publication_id", l.PublicationID},
	}
}

// fieldSet reports whether an optional pgtype value is present.
func fieldSet(v any) bool {
	switch x := v.(type) {
	case pgtype.Text:
		return x.Valid
	case pgtype.Int8:
		return x.Valid
	case pgtype.Float8:
		return x.Valid
	default:
		return true
	}
}

// Text wraps a raw cell value as a present pgtype.Text.
func Text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// Int wraps an integer as a present pgtype.Int8.
func Int(i int64) pgtype.Int8 {
	return pgtype.Int8{Int64: i, Valid: true}
}

// Float wraps a float as a present pgtype.Float8.
func Float(f float64) pgtype.Float8 {
	return pgtype.Float8{Float64: f, Valid: true}
}
