package entity

// FederalStateCode код федеральной земли
type FederalStateCode string

const (
	BadenWuerttemberg     FederalStateCode = "baden_wuerttemberg"
	Bayern                FederalStateCode = "bayern"
	Berlin                FederalStateCode = "berlin"
	Brandenburg           FederalStateCode = "brandenburg"
	Bremen                FederalStateCode = "bremen"
	Hamburg               FederalStateCode = "hamburg"
	Hessen                FederalStateCode = "hessen"
	MecklenburgVorpommern FederalStateCode = "mecklenburg_vorpommern"
	Niedersachsen         FederalStateCode = "niedersachsen"
	NordrheinWestfalen    FederalStateCode = "nordrhein_westfalen"
	RheinlandPfalz        FederalStateCode = "rheinland_pfalz"
	Saarland              FederalStateCode = "saarland"
	Sachsen               FederalStateCode = "sachsen"
	SachsenAnhalt         FederalStateCode = "sachsen_anhalt"
	SchleswigHolstein     FederalStateCode = "schleswig_holstein"
	Thueringen            FederalStateCode = "thueringen"
)

// FederalState справочная запись о земле
type FederalState struct {
	Code   FederalStateCode
	NameDE string
	NameEN string
	Emoji  string
}

// FederalStates все 16 земель в порядке отображения на клавиатуре
var FederalStates = []FederalState{
	{BadenWuerttemberg, "Baden-Württemberg", "Baden-Württemberg", "🏰"},
	{Bayern, "Bayern", "Bavaria", "🍺"},
	{Berlin, "Berlin", "Berlin", "🐻"},
	{Brandenburg, "Brandenburg", "Brandenburg", "🌲"},
	{Bremen, "Bremen", "Bremen", "⚓"},
	{Hamburg, "Hamburg", "Hamburg", "🚢"},
	{Hessen, "Hessen", "Hesse", "🏛️"},
	{MecklenburgVorpommern, "Mecklenburg-Vorpommern", "Mecklenburg-Vorpommern", "🏖️"},
	{Niedersachsen, "Niedersachsen", "Lower Saxony", "🐎"},
	{NordrheinWestfalen, "Nordrhein-Westfalen", "North Rhine-Westphalia", "⚡"},
	{RheinlandPfalz, "Rheinland-Pfalz", "Rhineland-Palatinate", "🍷"},
	{Saarland, "Saarland", "Saarland", "⚙️"},
	{Sachsen, "Sachsen", "Saxony", "🎭"},
	{SachsenAnhalt, "Sachsen-Anhalt", "Saxony-Anhalt", "🏰"},
	{SchleswigHolstein, "Schleswig-Holstein", "Schleswig-Holstein", "🌊"},
	{Thueringen, "Thüringen", "Thuringia", "🌿"},
}

// LookupFederalState ищет землю по коду
func LookupFederalState(code FederalStateCode) (FederalState, bool) {
	for _, s := range FederalStates {
		if s.Code == code {
			return s, true
		}
	}
	return FederalState{}, false
}

// Valid проверяет, что код входит в список земель
func (c FederalStateCode) Valid() bool {
	_, ok := LookupFederalState(c)
	return ok
}
