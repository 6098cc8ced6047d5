// Package locations exposes the Tamil Nadu service-area reference data used to
// validate user and shop addresses.
package locations

// District holds the taluk hierarchy for a supported district.
type District struct {
	Taluks map[string][]string `json:"taluks"`
}

// Districts maps supported district names to their taluks and villages.
// The data is static reference content, not user editable.
var Districts = map[string]District{
	"Chennai": {
		Taluks: map[string][]string{
			"Chennai North":   {"Washermanpet", "Royapuram", "Tondiarpet", "Madhavaram"},
			"Chennai Central": {"Egmore", "Purasawalkam", "Kilpauk", "Anna Nagar"},
			"Chennai South":   {"Guindy", "Adyar", "Velachery", "Sholinganallur"},
		},
	},
	"Coimbatore": {
		Taluks: map[string][]string{
			"Coimbatore North": {"RS Puram", "Gandhipuram", "Peelamedu", "Saravanampatti"},
			"Coimbatore South": {"Singanallur", "Podanur", "Sulur", "Madukkarai"},
			"Pollachi":         {"Pollachi", "Valparai", "Udumalaipettai", "Kinathukadavu"},
		},
	},
	"Madurai": {
		Taluks: map[string][]string{
			"Madurai East": {"Thiruparankundram", "Koodal Nagar", "Anna Nagar", "Goripalayam"},
			"Madurai West": {"West Masi Street", "Periyar", "Vilangudi", "Tiruppalai"},
			"Melur":        {"Melur", "Vadipatti", "Thirumangalam", "Usilampatti"},
		},
	},
}

// IsValidDistrict reports whether the district is part of the service area.
func IsValidDistrict(district string) bool {
	_, ok := Districts[district]
	return ok
}
