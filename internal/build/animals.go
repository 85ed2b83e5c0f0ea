package build

import (
	"strings"

	"github.com/audiogrambase/ingest/internal/model"
	"github.com/audiogrambase/ingest/internal/sheet"
)

// buildIndividualAnimals registers the test subjects. Entries in the Name and
// Sex columns may list several animals separated by semicolons; the name list
// determines how many animals a row produces and the sex list is zipped
// against it by position. Animal ids are assigned densely in processing order
// across the whole file, not per experiment.
func (p *Pipeline) buildIndividualAnimals(sh *sheet.Sheet, reg *model.Registry) {
	for _, aid := range sh.DistinctValues("Audiogram ID") {
		first := sh.RowsWhere("Audiogram ID", aid)[0]

		taxon := reg.TaxonByName(first["Binomial name"])
		if taxon == nil {
			p.Log.Warn("skipping animals, unknown taxon",
				"audiogram_id", aid, "binomial_name", first["Binomial name"])
			continue
		}

		names, sexes := splitAnimalLists(first["Name"], first["Sex"])
		if len(sexes) > len(names) {
			p.Log.Warn("more sexes than animal names, extras dropped",
				"audiogram_id", aid, "names", len(names), "sexes", len(sexes))
		}
		for i, name := range names {
			a := &model.IndividualAnimal{
				IndividualName: name,
				TaxonID:        taxon.OttID,
			}
			if i < len(sexes) {
				a.Sex = model.Text(sexes[i])
			} else if len(sexes) > 0 {
				p.Log.Warn("animal without sex entry", "audiogram_id", aid, "name", name)
			}
			reg.AddIndividualAnimal(a)
		}
	}
	p.Log.Info("individual animals built", "count", len(reg.IndividualAnimals))
}

// buildTestAnimals links each experiment to its participating animals with
// the per-animal state columns. Life stages, ages and captivity durations are
// semicolon lists positionally matched to the name list, like the animal
// columns themselves.
func (p *Pipeline) buildTestAnimals(sh *sheet.Sheet, reg *model.Registry) {
	for _, aid := range sh.DistinctValues("Audiogram ID") {
		first := sh.RowsWhere("Audiogram ID", aid)[0]

		expID, err := floorInt(aid)
		if err != nil {
			p.Log.Warn("skipping test animals, bad Audiogram ID", "value", aid, "error", err)
			continue
		}
		taxon := reg.TaxonByName(first["Binomial name"])
		if taxon == nil {
			continue
		}

		names, _ := splitAnimalLists(first["Name"], "")
		lifeStages := splitList(first["Life stage"])
		ages := splitList(first["Age (months)"])
		if strings.TrimSpace(first["Age (months)"]) == "0" {
			ages = nil
		}
		captivity := splitList(first["Duration in captivity (months)"])
		liberty := optText(first["Status of liberty"])

		for i, name := range names {
			animalID, ok := reg.IndividualAnimalID(name, taxon.OttID)
			if !ok {
				p.Log.Warn("test animal not registered", "audiogram_id", aid, "name", name)
				continue
			}
			ta := &model.TestAnimal{
				IndividualAnimalID:    animalID,
				AudiogramExperimentID: expID,
				LibertyStatus:         liberty,
			}
			if i < len(lifeStages) {
				ta.LifeStage = model.Text(strings.ToLower(lifeStages[i]))
			}
			if i < len(ages) {
				ta.AgeMinInMonth = optFloat(ages[i])
			}
			if i < len(captivity) {
				ta.CaptivityDuration = optFloat(captivity[i])
			}
			reg.TestAnimals = append(reg.TestAnimals, ta)
		}
	}
	p.Log.Info("test animals built", "count", len(reg.TestAnimals))
}

// splitAnimalLists splits the Name and Sex cells into per-animal entries.
// A blank name cell still yields one animal, carrying the "NA" placeholder
// name the database uses for unnamed subjects. Sexes are lowercased.
func splitAnimalLists(nameCell, sexCell string) (names, sexes []string) {
	names = []string{"NA"}
	if !sheet.IsBlank(nameCell) {
		names = splitList(nameCell)
	}
	if !sheet.IsBlank(sexCell) {
		sexes = splitList(strings.ToLower(sexCell))
	}
	return names, sexes
}

// splitList splits a semicolon-separated cell into trimmed entries.
func splitList(cell string) []string {
	if sheet.IsBlank(cell) {
		return nil
	}
	parts := strings.Split(cell, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
