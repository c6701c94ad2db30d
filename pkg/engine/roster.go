package engine

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jwebster45206/courtside/pkg/nba"
)

// similarityCutoff is the minimum normalized similarity for a fuzzy
// player match. Below this the resolver reports no match and the caller
// falls back to dialogue state.
const similarityCutoff = 0.5

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases and strips diacritics, so "jokic" matches "Jokić".
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Roster is the read-only player lookup table, loaded once at startup.
// Enumeration order is the backend's order and is significant for
// two-player detection.
type Roster struct {
	players []nba.PlayerRef
	folded  []string
	byName  map[string]nba.PlayerRef // folded full name -> ref
}

func NewRoster(players []nba.PlayerRef) *Roster {
	r := &Roster{
		players: players,
		folded:  make([]string, len(players)),
		byName:  make(map[string]nba.PlayerRef, len(players)),
	}
	for i, p := range players {
		f := fold(p.FullName)
		r.folded[i] = f
		r.byName[f] = p
	}
	return r
}

func (r *Roster) Len() int { return len(r.players) }

// Lookup finds a player by full name, ignoring case and diacritics.
func (r *Roster) Lookup(fullName string) (nba.PlayerRef, bool) {
	p, ok := r.byName[fold(fullName)]
	return p, ok
}

// FindTwoPlayers scans the roster in enumeration order for full names
// appearing verbatim in the text. It succeeds only when exactly two
// roster names are present: one is not a comparison, and three or more
// is too ambiguous to pair up.
func (r *Roster) FindTwoPlayers(text string) (string, string, bool) {
	haystack := fold(text)
	var found []string
	for i, f := range r.folded {
		if !strings.Contains(haystack, f) {
			continue
		}
		found = append(found, r.players[i].FullName)
		if len(found) > 2 {
			return "", "", false
		}
	}
	if len(found) != 2 {
		return "", "", false
	}
	return found[0], found[1], true
}

// FindClosestPlayer returns the roster name most similar to the text,
// tolerating typos. Each name is scored against same-length word windows
// of the utterance so surrounding words ("stats for lebron jaems in
// 2020") do not drown out the name itself.
func (r *Roster) FindClosestPlayer(text string) (string, bool) {
	words := strings.Fields(fold(text))
	if len(words) == 0 {
		return "", false
	}

	params := levenshtein.NewParams()
	best := ""
	bestScore := 0.0
	for i, f := range r.folded {
		score := bestWindowScore(words, f, params)
		if score > bestScore {
			best = r.players[i].FullName
			bestScore = score
		}
	}
	if bestScore < similarityCutoff {
		return "", false
	}
	return best, true
}

func bestWindowScore(words []string, name string, params *levenshtein.Params) float64 {
	n := len(strings.Fields(name))
	if n == 0 {
		return 0
	}
	if n >= len(words) {
		return levenshtein.Similarity(strings.Join(words, " "), name, params)
	}
	best := 0.0
	for i := 0; i+n <= len(words); i++ {
		window := strings.Join(words[i:i+n], " ")
		if s := levenshtein.Similarity(window, name, params); s > best {
			best = s
		}
	}
	return best
}
