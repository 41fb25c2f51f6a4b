package command

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Result
	}{
		{"quit", "/quit", Result{Kind: Quit}},
		{"undo", "/undo", Result{Kind: Undo}},
		{"hint", "/hint", Result{Kind: Hint}},
		{"unknown control", "/reset", Result{Kind: Nop}},
		{"bare slash", "/", Result{Kind: Nop}},
		{"move", "a,c", Result{Kind: Move, From: "a", To: "c"}},
		{"move keeps spaces", " a , c", Result{Kind: Move, From: " a ", To: " c"}},
		{"first comma wins", "a,b,c", Result{Kind: Move, From: "a", To: "b,c"}},
		{"empty halves", ",", Result{Kind: Move, From: "", To: ""}},
		{"plain text", "hello", Result{Kind: Nop}},
		{"empty line", "", Result{Kind: Nop}},
		{"control is case sensitive", "/Quit", Result{Kind: Nop}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Parse(tc.line); got != tc.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}
