package campus

// SentinelLabel is the "no selection" entry shown first in the selector.
const SentinelLabel = "— Select your campus —"

// Campus is one physical location and its canonical mailing address.
type Campus struct {
	Label   string `json:"label" yaml:"label"`
	Address string `json:"address" yaml:"address"`
}

// Directory is the ordered list of campuses offered by the selector. The
// first entry is always the sentinel with an empty address.
type Directory struct {
	entries []Campus
}

// NewDirectory builds a directory from campuses, prepending the sentinel.
// Entries with an empty label are skipped; a later duplicate label never
// shadows the first one during lookup.
func NewDirectory(campuses []Campus) Directory {
	entries := make([]Campus, 0, len(campuses)+1)
	entries = append(entries, Campus{Label: SentinelLabel})
	for _, c := range campuses {
		if c.Label == "" || c.Label == SentinelLabel {
			continue
		}
		entries = append(entries, c)
	}
	return Directory{entries: entries}
}

// Default returns the built-in campus list.
func Default() Directory {
	return NewDirectory(defaultCampuses)
}

// Entries returns a copy of the directory, sentinel first.
func (d Directory) Entries() []Campus {
	out := make([]Campus, len(d.entries))
	copy(out, d.entries)
	return out
}

// Labels returns the display labels in order.
func (d Directory) Labels() []string {
	labels := make([]string, len(d.entries))
	for i, c := range d.entries {
		labels[i] = c.Label
	}
	return labels
}

// AddressFor returns the canonical address for label. The sentinel and
// unknown labels map to the empty string.
func (d Directory) AddressFor(label string) string {
	for _, c := range d.entries {
		if c.Label == label {
			return c.Address
		}
	}
	return ""
}

// LabelFor returns the label of the first campus whose address equals
// address exactly, or the sentinel label when none does.
func (d Directory) LabelFor(address string) string {
	for _, c := range d.entries {
		if c.Address == address {
			return c.Label
		}
	}
	return SentinelLabel
}

var defaultCampuses = []Campus{
	{Label: "Bridgeview, IL", Address: "7350 West 87th Street, Bridgeview, IL"},
	{Label: "Chicago NW (O'Hare), IL", Address: "5321 North Harlem Avenue, Chicago, IL"},
	{Label: "Chicago NE (Rogers Park), IL", Address: "6458 North Sheridan Road, Chicago, IL"},
	{Label: "Elgin, IL ", Address: "264 South Randall Road, Elgin, IL 60123"},
	{Label: "Glendale Heights, IL", Address: "530 East North Avenue, Glendale Heights, IL"},
	{Label: "Libertyville, IL", Address: "751 East Park Avenue, Libertyville, IL 60048"},
	{Label: "Normal, IL", Address: "1503 E College Ave Suite L, Normal, IL 61761"},
	{Label: "Peoria, IL", Address: "602 West Glen Avenue, Peoria, IL 61614"},
	{Label: "Rockford, IL", Address: "5485 East State Street, Rockford, IL 61108"},
	{Label: "Urbana, IL", Address: "202 East University Avenue, Urbana, IL 61801"},
	{Label: "Bloomington, IN", Address: "1681 N College Avenue, Bloomington, IN 47404"},
	{Label: "Highland, IN", Address: "2549 Highway Avenue, Highland, IN 46322"},
	{Label: "Indianapolis, IN", Address: "9725 Crosspoint Commons, Indianapolis, IN 46256"},
	{Label: "Lafayette, IN", Address: "833 Ferry Street, Lafayette, IN 47901"},
	{Label: "Janesville, WI", Address: "2310 W Court Street, Janesville, WI 53548"},
	{Label: "CRC, IL ", Address: "222 S. Prospect Avenue, 3rd floor, Park Ridge, IL 60068"},
}
