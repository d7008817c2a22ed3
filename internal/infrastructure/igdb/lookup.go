package igdb

import "strings"

// Facet tables map display names (lower-cased, with common aliases) to IGDB
// ids. They are data only; query building reads them through the lookup
// helpers below.
var genreIDs = map[string]int{
	"point-and-click":            2,
	"point and click":            2,
	"fighting":                   4,
	"shooter":                    5,
	"music":                      7,
	"platform":                   8,
	"platformer":                 8,
	"puzzle":                     9,
	"racing":                     10,
	"real time strategy (rts)":   11,
	"rts":                        11,
	"role-playing (rpg)":         12,
	"role-playing":               12,
	"rpg":                        12,
	"simulator":                  13,
	"simulation":                 13,
	"sport":                      14,
	"sports":                     14,
	"strategy":                   15,
	"turn-based strategy (tbs)":  16,
	"turn-based strategy":        16,
	"tbs":                        16,
	"tactical":                   24,
	"hack and slash/beat 'em up": 25,
	"hack and slash":             25,
	"beat 'em up":                25,
	"quiz/trivia":                26,
	"pinball":                    30,
	"adventure":                  31,
	"indie":                      32,
	"arcade":                     33,
	"visual novel":               34,
	"card & board game":          35,
	"card game":                  35,
	"board game":                 35,
	"moba":                       36,
}

var themeIDs = map[string]int{
	"action":          1,
	"fantasy":         17,
	"science fiction": 18,
	"sci-fi":          18,
	"horror":          19,
	"thriller":        20,
	"survival":        21,
	"historical":      22,
	"stealth":         23,
	"comedy":          27,
	"business":        28,
	"drama":           31,
	"non-fiction":     32,
	"sandbox":         33,
	"educational":     34,
	"kids":            35,
	"open world":      38,
	"warfare":         39,
	"party":           40,
	"4x":              41,
	"mystery":         43,
	"romance":         44,
}

var platformIDs = map[string]int{
	"pc":                6,
	"pc (windows)":      6,
	"windows":           6,
	"mac":               14,
	"linux":             3,
	"playstation 5":     167,
	"ps5":               167,
	"playstation 4":     48,
	"ps4":               48,
	"playstation 3":     9,
	"ps3":               9,
	"playstation vita":  46,
	"xbox series x|s":   169,
	"xbox series":       169,
	"xbox one":          49,
	"xbox 360":          12,
	"nintendo switch":   130,
	"switch":            130,
	"nintendo switch 2": 508,
	"switch 2":          508,
	"wii u":             41,
	"nintendo 3ds":      37,
	"3ds":               37,
	"ios":               39,
	"android":           34,
	"meta quest 3":      471,
}

func lookup(table map[string]int, name string) (int, bool) {
	id, ok := table[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

func GenreID(name string) (int, bool) { return lookup(genreIDs, name) }

func ThemeID(name string) (int, bool) { return lookup(themeIDs, name) }

func PlatformID(name string) (int, bool) { return lookup(platformIDs, name) }
