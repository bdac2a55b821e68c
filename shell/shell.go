// Package shell is the keypad side of the calculator: a display buffer built
// up one key at a time, evaluation on "=", and the history of results.
//
// A Shell knows nothing about windows or buttons. Each key is identified by
// its label, e.g. "7", "+", "√", "nCr", or "=".
package shell

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/scicalc"
)

// ErrorText is what the display shows after any failed evaluation.
const ErrorText = "Error"

var (
	// ErrNonFinite is returned when an expression evaluates to NaN or an
	// infinity.
	ErrNonFinite = errors.New("result is not a finite number")
	// ErrOff is returned from Press for the OFF key.
	ErrOff = errors.New("calculator switched off")
	// ErrOperands is returned when a permutation or combination does not have
	// two integer operands.
	ErrOperands = errors.New("need two integer operands")
)

// wrappers maps function keys to the text placed before and after the
// display.
var wrappers = map[string][2]string{
	"Log":   {"log10(", ")"},
	"Ln":    {"log(", ")"},
	"e^x":   {"exp(", ")"},
	"x²":    {"(", ")^2"},
	"x³":    {"(", ")^3"},
	"√":     {"sqrt(", ")"},
	"∛":     {"cbrt(", ")"},
	"x!":    {"fact(", ")"},
	"sin":   {"sin(", ")"},
	"cos":   {"cos(", ")"},
	"tan":   {"tan(", ")"},
	"sin⁻¹": {"asin(", ")"},
	"cos⁻¹": {"acos(", ")"},
	"tan⁻¹": {"atan(", ")"},
	"| |":   {"abs(", ")"},
}

// appends maps keys to the text they add to the display when it differs from
// the label.
var appends = map[string]string{
	"nPr": "P",
	"nCr": "C",
	"rem": "%",
	"π":   strconv.FormatFloat(math.Pi, 'g', -1, 64),
}

// Shell is a calculator's display and memory. It is not safe to use a Shell
// concurrently.
type Shell struct {
	display string
	// last is the most recent successful "expr=result", or empty.
	last    string
	history []string
	sci     bool
}

// New creates a Shell with an empty display and history.
func New() *Shell {
	return &Shell{}
}

// Display returns the current display text.
func (s *Shell) Display() string {
	return s.display
}

// SetDisplay replaces the display text, as if it had been typed.
func (s *Shell) SetDisplay(text string) {
	s.display = text
}

// Scientific reports whether the scientific keypad is selected.
func (s *Shell) Scientific() bool {
	return s.sci
}

// History returns a copy of the "expr=result" entries of successful
// evaluations, oldest first.
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}

// Press applies one key. If the key is "=" and evaluation fails, the display
// shows ErrorText and Press returns the reason. Press returns ErrOff for the
// OFF key and nil for everything else.
func (s *Shell) Press(key string) error {
	switch key {
	case "OFF":
		return ErrOff
	case "C":
		s.display = ""
		s.last = ""
	case "⌫":
		if s.display != "" {
			_, n := utf8.DecodeLastRuneInString(s.display)
			s.display = s.display[:len(s.display)-n]
		}
	case "=":
		r, err := s.Evaluate(s.display)
		if err != nil {
			s.display = ErrorText
			return err
		}
		s.display = r
	case "I/P":
		s.display = s.last
	case "Ans":
		if len(s.history) > 0 {
			h := s.history[len(s.history)-1]
			s.display = h[strings.LastIndexByte(h, '=')+1:]
		}
	case "SCI", "BSI":
		s.sci = !s.sci
	default:
		if w, ok := wrappers[key]; ok {
			s.display = w[0] + s.display + w[1]
			break
		}
		if t, ok := appends[key]; ok {
			s.display += t
			break
		}
		s.display += key
	}
	return nil
}

// Evaluate computes the result text for an expression. Text containing P or C
// is a permutation or combination of the integers on either side, e.g. "5P2";
// anything else is evaluated as an expression, and on success "text=result" is
// added to the history.
func (s *Shell) Evaluate(text string) (string, error) {
	if strings.Contains(text, "P") {
		return combin(text, "P", scicalc.Permutation)
	}
	if strings.Contains(text, "C") {
		return combin(text, "C", scicalc.Combination)
	}
	r, err := scicalc.EvalString(text)
	if err != nil {
		return "", err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return "", ErrNonFinite
	}
	res := Format(r)
	s.last = text + "=" + res
	s.history = append(s.history, s.last)
	return res, nil
}

func combin(text, sep string, f func(n, r int) (int32, error)) (string, error) {
	parts := strings.Split(text, sep)
	if len(parts) < 2 {
		return "", ErrOperands
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", err
	}
	r, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", err
	}
	v, err := f(n, r)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(v), 10), nil
}

// Format renders a result. Values between 1e-6 and 1e21 in magnitude are
// written without an exponent.
func Format(x float64) string {
	if a := math.Abs(x); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
