package taxonomy

import "github.com/audiogrambase/ingest/internal/lookup"

// knownTaxa is the curated vernacular-name cache, checked before any external
// vernacular lookup. The Wikidata labels for several of these species are
// either missing or disagree with the names the database has published, so
// the curated values win.
var knownTaxa = map[string]lookup.Vernacular{
	"Lipotes vexillifer":     {English: "Baiji", German: "Chinesischer Flussdelfin"},
	"Mesoplodon densirostris": {English: "Blainville's beaked whale", German: "Blainville-Schnabelwal"},
	"Zalophus californianus": {English: "California sea lion", German: "Kalifornischer Seelöwe"},
	"Globicephala melas":     {English: "Long-finned pilot whale", German: "Grindwal"},
	"Orcinus orca":           {English: "Orca", German: "Schwertwal"},
	"Stenella coeruleoalba":  {English: "Striped dolphin", German: "Blau-Weißer Delfin"},
	"Tursiops truncatus":     {English: "Common bottlenose dolphin", German: "Großer Tümmler"},
	"Grampus griseus":        {English: "Risso's dolphin", German: "Rundkopfdelfin"},
	"Pusa hispida":           {English: "Ringed seal", German: "Ringelrobbe"},
	"Mirounga angustirostris": {English: "Northern elephant seal", German: "Nördlicher See-Elefant"},
	"Neomonachus schauinslandi": {English: "Hawaiian monk seal", German: "Hawaii-Mönchsrobbe"},
	"Sousa chinensis":        {English: "Chinese white dolphin", German: "Chinesischer Weißer Delfin"},
	"Pseudorca crassidens":   {English: "False killer whale", German: "Kleiner Schwertwal"},
	"Trichechus manatus":     {English: "West Indian manatee", German: "Karibik-Manati"},
	"Trichechus inunguis":    {English: "Amazonian manatee", German: "Amazonas-Manati"},
	"Tursiops aduncus":       {English: "Indo-Pacific bottlenose dolphin", German: "Indopazifischer Großer Tümmler"},
	"Sotalia fluviatilis":    {English: "Tucuxio", German: "Amazonas-Sotalia"},
	"Phoca vitulina vitulina": {English: "Harbour seal (subsp. vitulina)", German: "Seehund (Unterart vitulina)"},
	"Phoca groenlandica":     {English: "Harp seal", German: "Sattelrobbe"},
	"Inia geoffrensis":       {English: "Amazon river dolphin", German: "Amazonasdelfin"},
	"Phoca vitulina":         {English: "Harbour seal", German: "Seehund"},
	"Odobenus rosmarus":      {English: "Walrus", German: "Walross"},
	"Trichechus manatus latirostris": {English: "West Indian manatee, subsp. latirostris", German: "Karibik-Manati, unterart latirostris"},
	"Phocoena phocoena":      {English: "Harbour porpoise", German: "Gewöhnlicher Schweinswal"},
	"Delphinapterus leucas":  {English: "Beluga whale", German: "Weißwal"},
	"Callorhinus ursinus":    {English: "Northern fur seal", German: "Nördlicher Seebär"},
	"Halichoerus grypus":     {English: "Grey seal", German: "Kegelrobbe"},
	"Globicephala macrorhynchus": {English: "Short-finned pilot whale", German: "Kurzflossen-Grindwal"},
	"Phalacrocorax carbo":    {English: "Great cormorant", German: "Kormoran"},
	"Phalacrocorax carbo sinensis": {English: "Great cormorant subsp. sinensis", German: "Kormoran, Unterart sinensis"},
	"Neophocaena asiaeorientalis asiaeorientalis": {English: "Narrow-ridged finless porpoise, subsp. asiaeorientalis", German: "Östlicher Glattschweinswal, Unterart asiaeorientalis"},
	"Eumetopias jubatus":     {English: "Steller's sea lion", German: "Stellerscher Seelöwe"},
	"Sciaena umbra":          {English: "Brown meagre", German: "Meerrabe"},
	"Eretmochelys imbricata": {English: "Hawksbill sea turtle", German: "Echte Karettschildkröte"},
	"Caretta caretta":        {English: "Loggerhead sea turtle", German: "Unechte Karettschildkröte"},
	"Enhydra lutris":         {English: "Sea otter", German: "Seeotter"},
}

// KnownVernacular returns the cached vernacular names for a scientific name,
// if curated.
func KnownVernacular(scientificName string) (lookup.Vernacular, bool) {
	v, ok := knownTaxa[scientificName]
	return v, ok
}
