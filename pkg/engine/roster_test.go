package engine

import (
	"testing"

	"github.com/jwebster45206/courtside/pkg/nba"
)

func testRoster() *Roster {
	return NewRoster([]nba.PlayerRef{
		{ID: "2544", FullName: "LeBron James", IsActive: true},
		{ID: "201939", FullName: "Stephen Curry", IsActive: true},
		{ID: "201142", FullName: "Kevin Durant", IsActive: true},
		{ID: "203999", FullName: "Nikola Jokić", IsActive: true},
		{ID: "893", FullName: "Michael Jordan", IsActive: false},
	})
}

func TestRoster_Lookup(t *testing.T) {
	r := testRoster()

	p, ok := r.Lookup("lebron james")
	if !ok || p.ID != "2544" {
		t.Errorf("Lookup(lebron james) = (%v, %v); want LeBron James", p, ok)
	}

	p, ok = r.Lookup("NIKOLA JOKIC") // no diacritic
	if !ok || p.ID != "203999" {
		t.Errorf("Lookup(NIKOLA JOKIC) = (%v, %v); want Nikola Jokić", p, ok)
	}

	if _, ok := r.Lookup("Larry Bird"); ok {
		t.Error("Lookup(Larry Bird) should not match")
	}
}

func TestRoster_FindClosestPlayer(t *testing.T) {
	r := testRoster()

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"exact name in longer utterance", "show me LeBron James stats for 2020", "LeBron James", true},
		{"typo resolves to nearest", "Lebron Jaems", "LeBron James", true},
		{"diacritics folded", "nikola jokic rebounds", "Nikola Jokić", true},
		{"unrelated string", "asdkjasd", "", false},
		{"no player words", "what about rebounds", "", false},
		{"bare name", "stephen curry", "Stephen Curry", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := r.FindClosestPlayer(tt.text)
			if found != tt.found || got != tt.want {
				t.Errorf("FindClosestPlayer(%q) = (%q, %v); want (%q, %v)",
					tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestRoster_FindTwoPlayers(t *testing.T) {
	r := testRoster()

	p1, p2, ok := r.FindTwoPlayers("compare LeBron James and Stephen Curry in 2021")
	if !ok || p1 != "LeBron James" || p2 != "Stephen Curry" {
		t.Errorf("expected both names, got (%q, %q, %v)", p1, p2, ok)
	}

	// One name is not a comparison.
	if _, _, ok := r.FindTwoPlayers("LeBron James stats"); ok {
		t.Error("one name should not match")
	}

	// Three names is too ambiguous.
	if _, _, ok := r.FindTwoPlayers("LeBron James vs Stephen Curry vs Kevin Durant"); ok {
		t.Error("three names should not match")
	}

	// Names must appear verbatim; typos don't count here.
	if _, _, ok := r.FindTwoPlayers("compare Lebron Jaems and Stephen Curry"); ok {
		t.Error("misspelled name should not count toward the pair")
	}
}

func TestRoster_FindTwoPlayers_EnumerationOrder(t *testing.T) {
	r := testRoster()

	// Roster order, not utterance order, decides who is player one.
	p1, p2, ok := r.FindTwoPlayers("Michael Jordan against LeBron James")
	if !ok || p1 != "LeBron James" || p2 != "Michael Jordan" {
		t.Errorf("expected roster order (LeBron James, Michael Jordan), got (%q, %q, %v)", p1, p2, ok)
	}
}
