package scicalc

import (
	"errors"
	"io"
	"strings"
)

// eof is the value of cursor.ch once the input is exhausted.
const eof = -1

// cursor is the read position of a single parse. It holds one rune of
// lookahead and only ever backs up inside a single identifier.
type cursor struct {
	src io.RuneScanner
	// ch is the rune at col, or eof.
	ch rune
	// col is the 1-based position of ch in runes.
	col int
	// back holds runes returned by unread, last first.
	back []rune
	buf  strings.Builder
}

func scan(src io.RuneScanner) (*cursor, error) {
	c := &cursor{src: src}
	if err := c.next(); err != nil {
		return nil, err
	}
	return c, nil
}

// next advances to the following rune.
func (c *cursor) next() error {
	if c.ch == eof && c.col > 0 {
		return nil
	}
	c.col++
	if k := len(c.back); k > 0 {
		c.ch = c.back[k-1]
		c.back = c.back[:k-1]
		return nil
	}
	r, _, err := c.src.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.ch = eof
			return nil
		}
		return err
	}
	c.ch = r
	return nil
}

// unread undoes a call to next that moved from r to the current rune.
func (c *cursor) unread(r rune) {
	c.back = append(c.back, c.ch)
	c.ch = r
	c.col--
}

// skip advances past spaces. Only U+0020 is skippable.
func (c *cursor) skip() error {
	for c.ch == ' ' {
		if err := c.next(); err != nil {
			return err
		}
	}
	return nil
}

// eat skips spaces, then consumes r if it is the current rune.
func (c *cursor) eat(r rune) (bool, error) {
	if err := c.skip(); err != nil {
		return false, err
	}
	if c.ch != r {
		return false, nil
	}
	return true, c.next()
}

// done reports whether the whole input has been consumed.
func (c *cursor) done() bool {
	return c.ch == eof
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

func isletter(r rune) bool {
	return 'a' <= r && r <= 'z'
}

// scanNum scans a run of digits and dots into the buffer.
func (c *cursor) scanNum() (string, error) {
	defer c.buf.Reset()
	for isdigit(c.ch) {
		c.buf.WriteRune(c.ch)
		if err := c.next(); err != nil {
			return "", err
		}
	}
	return c.buf.String(), nil
}

// scanIdent scans a run of lowercase letters. If the letters followed by
// digits spell a registered function name and an open bracket comes right
// after, the digits are taken as well: "log10(100)" calls log10, but "log100"
// and "log10" call log.
func (c *cursor) scanIdent() (string, error) {
	defer c.buf.Reset()
	for isletter(c.ch) {
		c.buf.WriteRune(c.ch)
		if err := c.next(); err != nil {
			return "", err
		}
	}
	name := c.buf.String()
	for _, long := range digitfuncs {
		if !strings.HasPrefix(long, name) || len(long) == len(name) {
			continue
		}
		rest := long[len(name):]
		var took []rune
		for len(took) < len(rest) && c.ch == rune(rest[len(took)]) {
			took = append(took, c.ch)
			if err := c.next(); err != nil {
				return "", err
			}
		}
		if len(took) == len(rest) && c.ch == '(' {
			return long, nil
		}
		for i := len(took) - 1; i >= 0; i-- {
			c.unread(took[i])
		}
	}
	return name, nil
}
