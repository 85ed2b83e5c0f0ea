package build

import (
	"github.com/audiogrambase/ingest/internal/model"
	"github.com/audiogrambase/ingest/internal/sheet"
)

// buildDataPoints registers one data point per sheet row: every row is one
// stimulus presentation. Ids count from 1 in file order. Rows without a
// parseable Audiogram ID are logged and skipped so one bad row cannot take
// down the pass.
func (p *Pipeline) buildDataPoints(sh *sheet.Sheet, reg *model.Registry) {
	for i, row := range sh.Rows {
		expID, err := floorInt(row["Audiogram ID"])
		if err != nil {
			p.Log.Warn("skipping data point, bad Audiogram ID",
				"row", i+1, "value", row["Audiogram ID"], "error", err)
			continue
		}

		point := &model.AudiogramDataPoint{
			ID:                    int64(len(reg.DataPoints) + 1),
			Duration:              optFloat(row["Duration of test tone (ms)"]),
			Frequency:             optFloat(row["Frequency (kHz)"]),
			SoundPressureLevel:    optFloat(row["SPL (with reference level according to next field)"]),
			SPLReferenceMethod:    optText(row["SPL reference value"]),
			AudiogramExperimentID: expID,
		}
		if splrID, ok := reg.SPLReferenceIDByLabel(row["Sound Pressure Level (SPL) reference"]); ok {
			point.SPLReferenceID = model.Int(splrID)
		}
		reg.DataPoints = append(reg.DataPoints, point)
	}
	p.Log.Info("data points built", "count", len(reg.DataPoints))
}
