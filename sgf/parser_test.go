package sgf

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

var ignoreOffsets = cmp.Options{
	cmpopts.IgnoreFields(Token{}, "Offset"),
	cmpopts.IgnoreFields(Item{}, "Offset"),
}

func prop(k, v string) Token { return Token{Type: Property, Key: k, Value: v} }

var (
	lp   = Token{Type: StartVariation}
	rp   = Token{Type: EndVariation}
	semi = Token{Type: NewNode}
)

var tokenizeTests = []struct {
	name  string
	input string
	want  []Token
}{
	{"empty tree", "()", []Token{lp, rp}},
	{"basics", "(;B[aa])", []Token{lp, semi, prop("B", "aa"), rp}},
	{"escapes", `(;B[aa]C[\[\] hello there])`, []Token{lp, semi, prop("B", "aa"), prop("C", "[] hello there"), rp}},
	{"escaped backslashes", `(;B[aa]C[\[\] \\ hello there])`, []Token{lp, semi, prop("B", "aa"), prop("C", `[] \ hello there`), rp}},
	{"multiple values", "(;AB[aa][bb] [cc])", []Token{lp, semi, prop("AB", "aa"), prop("AB", "bb"), prop("AB", "cc"), rp}},
	{"whitespace", "  (\n ;\tB[aa]\n)  ", []Token{lp, semi, prop("B", "aa"), rp}},
	{"empty value", "(;W[])", []Token{lp, semi, prop("W", ""), rp}},
}

func TestTokenize(t *testing.T) {
	for _, tt := range tokenizeTests {
		got, err := Tokenize(tt.input)
		if err != nil {
			t.Errorf("%v: %v", tt.name, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, ignoreOffsets); diff != "" {
			t.Errorf("%v: tokens differ (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	got, err := Tokenize("(;B[aa] W[bb])")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 3, 9, 13} // properties are located by their value
	var offsets []int
	for _, tok := range got {
		offsets = append(offsets, tok.Offset)
	}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("offsets differ (-want +got):\n%s", diff)
	}
}

func TestTokenizeBroken(t *testing.T) {
	broken := []string{
		"1",
		"ZOMG BROKEN",
		"(;B[aa)",
		"(;B)",
		`(;C[unterminated\])`,
	}
	for _, s := range broken {
		_, err := Tokenize(s)
		if err == nil {
			t.Errorf("Expected %q to fail", s)
			continue
		}
		if _, ok := errors.Cause(err).(*ParseError); !ok {
			t.Errorf("Expected a ParseError for %q. Got %T", s, err)
		}
	}
}

func item(typ TokenType) Item { return Item{Type: typ} }
func nodeItem(kv ...string) Item {
	n := make(Node)
	for i := 0; i < len(kv); i += 2 {
		n[kv[i]] = append(n[kv[i]], kv[i+1])
	}
	return Item{Type: NewNode, Node: n}
}

func TestCompactMoves(t *testing.T) {
	tests := []struct {
		name  string
		input []Token
		want  []Item
	}{
		{"starts and stops", []Token{lp, rp}, []Item{item(StartVariation), item(EndVariation)}},
		{"simple move",
			[]Token{lp, semi, prop("B", "aa"), prop("W", "bb"), rp},
			[]Item{item(StartVariation), nodeItem("B", "aa", "W", "bb"), item(EndVariation)},
		},
		{"variations",
			[]Token{
				lp,
				semi, prop("B", "aa"), prop("W", "bb"),
				semi, prop("B", "cc"),
				semi, prop("W", "dd"),
				lp, semi, prop("B", "ee"), rp,
				lp, semi, prop("B", "ff"), rp,
				rp,
			},
			[]Item{
				item(StartVariation),
				nodeItem("B", "aa", "W", "bb"),
				nodeItem("B", "cc"),
				nodeItem("W", "dd"),
				item(StartVariation), nodeItem("B", "ee"), item(EndVariation),
				item(StartVariation), nodeItem("B", "ff"), item(EndVariation),
				item(EndVariation),
			},
		},
		{"repeated keys", []Token{semi, prop("AB", "aa"), prop("AB", "bb")}, []Item{nodeItem("AB", "aa", "AB", "bb")}},
		{"empty node", []Token{lp, semi, rp}, []Item{item(StartVariation), {Type: NewNode, Node: Node{}}, item(EndVariation)}},
	}

	for _, tt := range tests {
		got, err := CompactMoves(tt.input)
		if err != nil {
			t.Errorf("%v: %v", tt.name, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, ignoreOffsets); diff != "" {
			t.Errorf("%v: items differ (-want +got):\n%s", tt.name, diff)
		}
	}

	if _, err := CompactMoves([]Token{lp, prop("B", "aa"), rp}); err == nil {
		t.Error("Expected a property outside of a node to fail")
	}
}

const realLooking = `(
    ;FF[4]GM[1]SZ[19];B[aa];W[bb]
        (;B[cc];W[dd];B[ad];W[bd])
        (;B[hh];W[hg]C[what a move!])
        (;B[gg];W[gh];B[hh]
            (;W[hg];B[kk])
            (;W[kl])
        )
)`

type m = map[string]string
type arr = []interface{}

func TestParseNested(t *testing.T) {
	v, err := Parse(realLooking)
	if err != nil {
		t.Fatal(err)
	}

	want := arr{
		m{"FF": "4", "GM": "1", "SZ": "19"}, m{"B": "aa"}, m{"W": "bb"},
		arr{
			arr{m{"B": "cc"}, m{"W": "dd"}, m{"B": "ad"}, m{"W": "bd"}},
			arr{m{"B": "hh"}, m{"W": "hg", "C": "what a move!"}},
			arr{
				m{"B": "gg"}, m{"W": "gh"}, m{"B": "hh"},
				arr{
					arr{m{"W": "hg"}, m{"B": "kk"}},
					arr{m{"W": "kl"}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, v.Nested()); diff != "" {
		t.Errorf("Nested() differs (-want +got):\n%s", diff)
	}
}

func TestMainLine(t *testing.T) {
	v, err := Parse(realLooking)
	if err != nil {
		t.Fatal(err)
	}
	var moves []string
	for _, n := range v.MainLine()[1:] {
		if n.Has("B") {
			moves = append(moves, "B"+n.Get("B"))
		} else {
			moves = append(moves, "W"+n.Get("W"))
		}
	}
	want := []string{"Baa", "Wbb", "Bcc", "Wdd", "Bad", "Wbd"}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("MainLine differs (-want +got):\n%s", diff)
	}
	if v.Root().Get("SZ") != "19" {
		t.Errorf("Expected root to carry SZ[19]. Got %v", v.Root())
	}
}

func TestParseBroken(t *testing.T) {
	unbalanced := `(
    ;FF[4]GM[1]SZ[19];B[aa];W[bb]
        (;B[cc];W[dd];B[ad];W[bd])
        (;B[hh];W[hg]C[what a move!])
        (;B[gg];W[gh];B[hh]
            (;W[hg];B[kk])
            (;W[kl])
)`
	broken := map[string]string{
		"unbalanced":       unbalanced,
		"garbage":          "ZOMG BROKEN",
		"bad token":        "1",
		"extra close":      "(;B[aa]))",
		"empty":            "",
		"node outside":     ";B[aa]",
		"node after forks": "(;B[aa](;W[bb]);B[cc])",
	}
	for name, s := range broken {
		_, err := Parse(s)
		if err == nil {
			t.Errorf("%v: expected an error", name)
			continue
		}
		if _, ok := errors.Cause(err).(*ParseError); !ok {
			t.Errorf("%v: expected a ParseError. Got %T: %v", name, err, err)
		}
	}
}

func TestParseCollection(t *testing.T) {
	trees, err := ParseCollection("(;GM[1];B[aa])\n(;GM[1];W[bb])")
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 2 {
		t.Fatalf("Expected 2 trees. Got %d", len(trees))
	}
	if got := trees[1].Nodes[1].Get("W"); got != "bb" {
		t.Errorf("Expected second tree to play W[bb]. Got %q", got)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	v, err := Parse(realLooking)
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := Write(&buf, v); err != nil {
		t.Fatal(err)
	}
	want := "(;FF[4]GM[1]SZ[19];B[aa];W[bb](;B[cc];W[dd];B[ad];W[bd])(;B[hh];C[what a move!]W[hg])(;B[gg];W[gh];B[hh](;W[hg];B[kk])(;W[kl])))\n"
	if buf.String() != want {
		t.Errorf("Expected\n%s\nGot\n%s", want, buf.String())
	}

	again, err := Parse(buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, again); diff != "" {
		t.Errorf("Round trip differs (-want +got):\n%s", diff)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	v := &Variation{Nodes: []Node{{"C": {`a ] b \ c`}}}}
	again, err := Parse(v.String())
	if err != nil {
		t.Fatal(err)
	}
	if got := again.Root().Get("C"); got != `a ] b \ c` {
		t.Errorf("Expected the comment to survive. Got %q", got)
	}
}
