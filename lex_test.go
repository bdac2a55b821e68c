package scicalc

import (
	"strings"
	"testing"
)

func TestCursorEat(t *testing.T) {
	c, err := scan(strings.NewReader("  +  -x"))
	if err != nil {
		t.Fatal(err)
	}
	steps := []struct {
		r   rune
		ok  bool
		col int
	}{
		{'-', false, 3},
		{'+', true, 4},
		{'+', false, 6},
		{'-', true, 7},
		{'-', false, 7},
		{'x', true, 8},
		{'x', false, 8},
	}
	for i, s := range steps {
		ok, err := c.eat(s.r)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if ok != s.ok {
			t.Errorf("step %d: eat(%q) gave %t, want %t", i, s.r, ok, s.ok)
		}
		if c.col != s.col {
			t.Errorf("step %d: cursor at %d, want %d", i, c.col, s.col)
		}
	}
	if !c.done() {
		t.Errorf("cursor not done at %d with %q", c.col, c.ch)
	}
}

func TestScanNum(t *testing.T) {
	cases := []struct {
		src  string
		text string
		rest rune
	}{
		{"0", "0", eof},
		{"9876543210", "9876543210", eof},
		{"1.0", "1.0", eof},
		{".1", ".1", eof},
		{"1.1.1", "1.1.1", eof},
		{"1 0", "1", ' '},
		{"1e1", "1", 'e'},
		{"1+0", "1", '+'},
		{"12)", "12", ')'},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			cur, err := scan(strings.NewReader(c.src))
			if err != nil {
				t.Fatal(err)
			}
			text, err := cur.scanNum()
			if err != nil {
				t.Fatal(err)
			}
			if text != c.text {
				t.Errorf("wrong number text: want %q, got %q", c.text, text)
			}
			if cur.ch != c.rest {
				t.Errorf("wrong rune after number: want %q, got %q", c.rest, cur.ch)
			}
		})
	}
}

func TestScanIdent(t *testing.T) {
	cases := []struct {
		src  string
		name string
		rest string
	}{
		{"sin", "sin", ""},
		{"sin90", "sin", "90"},
		{"sqrt(4)", "sqrt", "(4)"},
		{"log10(100)", "log10", "(100)"},
		{"log10", "log", "10"},
		{"log100", "log", "100"},
		{"log1", "log", "1"},
		{"log1(", "log", "1("},
		{"log10 (1)", "log", "10 (1)"},
		{"log(10)", "log", "(10)"},
		{"lo10(", "lo", "10("},
		{"foo", "foo", ""},
		{"abcD", "abc", "D"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			cur, err := scan(strings.NewReader(c.src))
			if err != nil {
				t.Fatal(err)
			}
			name, err := cur.scanIdent()
			if err != nil {
				t.Fatal(err)
			}
			if name != c.name {
				t.Errorf("wrong name: want %q, got %q", c.name, name)
			}
			if want := len(c.name) + 1; cur.col != want {
				t.Errorf("cursor at %d after name, want %d", cur.col, want)
			}
			var rest strings.Builder
			for !cur.done() {
				rest.WriteRune(cur.ch)
				if err := cur.next(); err != nil {
					t.Fatal(err)
				}
			}
			if rest.String() != c.rest {
				t.Errorf("wrong remainder: want %q, got %q", c.rest, rest.String())
			}
		})
	}
}
