package build

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/audiogrambase/ingest/internal/model"
	"github.com/audiogrambase/ingest/internal/sheet"
)

// buildExperiments registers one experiment per distinct Audiogram ID, taken
// from the first matching row. The experiment keeps the sheet's id
// (floor-converted); a row whose id cell is not numeric is logged and
// skipped rather than aborting the pass.
func (p *Pipeline) buildExperiments(sh *sheet.Sheet, reg *model.Registry) {
	for _, aid := range sh.DistinctValues("Audiogram ID") {
		first := sh.RowsWhere("Audiogram ID", aid)[0]

		id, err := floorInt(aid)
		if err != nil {
			p.Log.Warn("skipping experiment, bad Audiogram ID", "value", aid, "error", err)
			continue
		}

		e := &model.AudiogramExperiment{
			ID:                      id,
			Latitude:                optText(first["Latitude"]),
			Longitude:               optText(first["Longitude"]),
			PositionOfAnimal:        optText(first["Position of the animal"]),
			DistanceToSoundSource:   optText(first["Distance to sound source (in m)"]),
			TestEnvironment:         optText(first["Test environment"]),
			Medium:                  optText(first["Medium"]),
			PositionFirstElectrode:  optText(first["Position of the 1st electrode"]),
			PositionSecondElectrode: optText(first["Position of the 2nd electrode"]),
			PositionThirdElectrode:  optText(first["Position of the 3rd electrode"]),
			Calibration:             optText(first["Calibration"]),
			ThresholdDetermination:  optText(first["Threshold determination info (%)"]),
			StaircaseProcedure:      optText(first["Staircase procedure"]),
			MethodOfConstants:       optText(first["Method of constants"]),
			SoundForm:               optText(first["Form of the sound"]),
			Sedated:                 optText(first["Sedated"]),
			SedationDetails:         optText(first["Sedation details"]),
			NumberOfMeasurements:    optText(first["Measurements"]),
			NumberOfAnimals:         optText(first["Number of experimental animals"]),
		}

		// Start and end years are stored as floats in the sheet but the
		// schema wants integers.
		for _, y := range []struct {
			column string
			target *pgtype.Int8
		}{
			{"Year of experiment start", &e.YearStart},
			{"Year of experiment end", &e.YearEnd},
		} {
			raw := first[y.column]
			if sheet.IsBlank(raw) {
				continue
			}
			year, err := floorInt(raw)
			if err != nil {
				p.Log.Warn("dropping unparseable year", "audiogram_id", id, "column", y.column, "value", raw)
				continue
			}
			*y.target = model.Int(year)
		}

		if fid, ok := reg.FacilityIDByName(first["Name of the facility"]); ok {
			e.FacilityID = model.Int(fid)
		}
		if mid, ok := reg.MethodIDByName(first["Method"]); ok {
			e.MeasurementMethodID = model.Int(mid)
		}
		if fmid, ok := reg.MethodIDByName(first["Form of the tone"]); ok {
			e.TesttoneFormMethodID = model.Int(fmid)
		}

		reg.Experiments = append(reg.Experiments, e)
	}
	p.Log.Info("experiments built", "count", len(reg.Experiments))
}
