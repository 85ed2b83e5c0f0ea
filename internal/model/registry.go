package model

// Registry owns every entity collection for the duration of one import run.
// Builders read it to resolve foreign keys and write it to register new
// entities. A run is stateless: a fresh Registry is created per run and
// nothing survives it.
//
// All lookups return the zero id and false when nothing matches, so callers
// can drop the foreign key under the same rule as any other blank value.
type Registry struct {
	Facilities            []*Facility
	Methods               []*Method
	SPLReferences         []*SPLReference
	Experiments           []*AudiogramExperiment
	DataPoints            []*AudiogramDataPoint
	Taxa                  []*Taxon
	IndividualAnimals     []*IndividualAnimal
	TestAnimals           []*TestAnimal
	Publications          []*Publication
	AudiogramPublications []*AudiogramPublication
}

// NewRegistry returns a Registry pre-seeded with the static method and SPL
// reference lists.
func NewRegistry() *Registry {
	return &Registry{
		Methods:       staticMethods(),
		SPLReferences: staticSPLReferences(),
	}
}

// AddFacility registers a facility under the next id.
func (r *Registry) AddFacility(name string) *Facility {
	f := &Facility{ID: int64(len(r.Facilities) + 1), Name: name}
	r.Facilities = append(r.Facilities, f)
	return f
}

// FacilityIDByName returns the id of the facility with the given name.
func (r *Registry) FacilityIDByName(name string) (int64, bool) {
	for _, f := range r.Facilities {
		if f.Name == name {
			return f.ID, true
		}
	}
	return 0, false
}

// MethodIDByName returns the id of the method with the given denomination.
func (r *Registry) MethodIDByName(denomination string) (int64, bool) {
	for _, m := range r.Methods {
		if m.Denomination == denomination {
			return m.ID, true
		}
	}
	return 0, false
}

// SPLReferenceIDByLabel returns the id of the SPL reference whose display
// label matches the sheet's SPL reference column value.
func (r *Registry) SPLReferenceIDByLabel(label string) (int64, bool) {
	for _, s := range r.SPLReferences {
		if s.DisplayLabel == label {
			return s.ID, true
		}
	}
	return 0, false
}

// AddTaxon registers a taxon. The caller must have checked TaxonByName first;
// unique names are never registered twice.
func (r *Registry) AddTaxon(t *Taxon) *Taxon {
	r.Taxa = append(r.Taxa, t)
	return t
}

// TaxonByName returns the taxon registered under the given scientific name,
// or nil.
func (r *Registry) TaxonByName(uniqueName string) *Taxon {
	for _, t := range r.Taxa {
		if t.UniqueName == uniqueName {
			return t
		}
	}
	return nil
}

// AddIndividualAnimal registers an animal under the next dense id.
func (r *Registry) AddIndividualAnimal(a *IndividualAnimal) *IndividualAnimal {
	a.ID = int64(len(r.IndividualAnimals) + 1)
	r.IndividualAnimals = append(r.IndividualAnimals, a)
	return a
}

// IndividualAnimalID returns the id of the animal with the given name and
// taxon.
func (r *Registry) IndividualAnimalID(name string, taxonID int64) (int64, bool) {
	for _, a := range r.IndividualAnimals {
		if a.IndividualName == name && a.TaxonID == taxonID {
			return a.ID, true
		}
	}
	return 0, false
}

// AddPublication registers a publication under the next id, continuing the
// sequence across both reconciliation passes.
func (r *Registry) AddPublication(p *Publication) *Publication {
	p.ID = int64(len(r.Publications) + 1)
	r.Publications = append(r.Publications, p)
	return p
}

// PublicationIDByDOI returns the id of the publication with the given DOI.
func (r *Registry) PublicationIDByDOI(doi string) (int64, bool) {
	for _, p := range r.Publications {
		if p.DOI.Valid && p.DOI.String == doi {
			return p.ID, true
		}
	}
	return 0, false
}

// PublicationIDByCitation returns the id of the publication with the given
// long citation text.
func (r *Registry) PublicationIDByCitation(citationLong string) (int64, bool) {
	for _, p := range r.Publications {
		if p.CitationLong == citationLong {
			return p.ID, true
		}
	}
	return 0, false
}
