package model

// Static reference data. Methods and SPL references are not derived from the
// sheet; they mirror the curated reference lists of the audiogram database.

// staticMethods returns the measurement and test-tone method list.
func staticMethods() []*Method {
	return []*Method{
		{ID: 1, CategoryLevel: 1, Denomination: "behavioral"},
		{ID: 2, CategoryLevel: 2, Denomination: "go - no go", ParentMethodID: Int(1)},
		{ID: 3, CategoryLevel: 2, Denomination: "pressing a paddle", ParentMethodID: Int(1)},
		{ID: 4, CategoryLevel: 2, Denomination: "pushing something", ParentMethodID: Int(1)},
		{ID: 5, CategoryLevel: 1, Denomination: "electrophysiological"},
		{ID: 6, CategoryLevel: 2, Denomination: "auditory evoked potentials (AEP)", ParentMethodID: Int(5)},
		{ID: 7, CategoryLevel: 2, Denomination: "auditory brain stem responses (ABR)", ParentMethodID: Int(5)},
		{ID: 8, CategoryLevel: 1, Denomination: "cosine-gated tone bursts"},
		{ID: 9, CategoryLevel: 1, Denomination: "sinusoidal amplitude modulated tone (SAM)"},
		{ID: 10, CategoryLevel: 2, Denomination: "modulated narrow band noise", ParentMethodID: Int(9)},
		{ID: 11, CategoryLevel: 2, Denomination: "modulated rectangular click", ParentMethodID: Int(9)},
		{ID: 12, CategoryLevel: 2, Denomination: "pure tone", ParentMethodID: Int(9)},
		{ID: 13, CategoryLevel: 1, Denomination: "sinusoidal frequency modulated tone (FM)"},
		{ID: 14, CategoryLevel: 2, Denomination: "linear upward frequency modulated sweep", ParentMethodID: Int(13)},
		{ID: 15, CategoryLevel: 2, Denomination: "linear downward frequency modulated sweep", ParentMethodID: Int(13)},
		{ID: 16, CategoryLevel: 2, Denomination: "sinusoidal frequency modulation", ParentMethodID: Int(13)},
		{ID: 17, CategoryLevel: 2, Denomination: "avoidance behavior", ParentMethodID: Int(1)},
		{ID: 18, CategoryLevel: 2, Denomination: "cortical evoked response", ParentMethodID: Int(5)},
		{ID: 19, CategoryLevel: 2, Denomination: "go - no go & vocalization", ParentMethodID: Int(1)},
		{ID: 20, CategoryLevel: 2, Denomination: "envelope-following responses (EFR)", ParentMethodID: Int(5)},
		{ID: 21, CategoryLevel: 2, Denomination: "go - no go & touching a target", ParentMethodID: Int(1)},
		{ID: 22, CategoryLevel: 1, Denomination: "linear frequency-modulated (FM)"},
	}
}

// staticSPLReferences returns the SPL reference list with derived display
// labels ("re <value> <unit>"), used to match the sheet's SPL reference
// column. Conversion factors holding the literal "NA" serialize as NULL.
func staticSPLReferences() []*SPLReference {
	refs := []*SPLReference{
		{ID: 1, Value: "1", Unit: "μPa",
			Significance: "current SPL reference in water"},
		{ID: 2, Value: "1", Unit: "μbar",
			Significance:   "deprecated SPL reference in water",
			ConvAirborne:   Text("NA"),
			ConvWaterborne: Text("20")},
		{ID: 3, Value: "1", Unit: "1mPa",
			Significance:   "deprecated SPL reference in water",
			ConvAirborne:   Text("34"),
			ConvWaterborne: Text("60")},
		{ID: 4, Value: "20", Unit: "μPa",
			Significance:   "current SPL reference in air",
			ConvAirborne:   Text("NA"),
			ConvWaterborne: Text("26")},
		{ID: 5, Value: "0.0002", Unit: "dyne cm-2",
			Significance:   "deprecated SPL reference in air",
			ConvAirborne:   Text("74"),
			ConvWaterborne: Text("NA")},
		{ID: 6, Value: "1", Unit: "dyne cm-2",
			Significance:   "deprecated SPL reference in air",
			ConvAirborne:   Text("74"),
			ConvWaterborne: Text("100")},
		{ID: 7, Value: "0.0002", Unit: "μbar",
			Significance:   "",
			ConvAirborne:   Text("NA"),
			ConvWaterborne: Text("NA")},
	}
	for _, r := range refs {
		r.DisplayLabel = "re " + r.Value + " " + r.Unit
	}
	return refs
}
