package domain

// States lists the accepted two-letter state codes, including DC.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Genres lists the accepted genre tags in display order.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
	"Jazz", "Musical Theatre", "Pop", "Punk", "R&B",
	"Reggae", "Rock n Roll", "Soul", "Other",
}

var (
	stateSet = toSet(States)
	genreSet = toSet(Genres)
)

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// IsState reports whether s is one of States. Matching is case-sensitive.
func IsState(s string) bool {
	_, ok := stateSet[s]
	return ok
}

// IsGenre reports whether g is one of Genres. Matching is case-sensitive.
func IsGenre(g string) bool {
	_, ok := genreSet[g]
	return ok
}
