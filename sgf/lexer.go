package sgf

import (
	"strings"
)

// lexer scans SGF text.
type lexer struct {
	input string
	pos   int
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f' }

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *lexer) eof() bool { return l.pos >= len(l.input) }

// Tokenize scans raw SGF into a flat token stream.
//
// A property written with several value blocks, such as AB[aa][bb], yields one Property token per value.
func Tokenize(raw string) ([]Token, error) {
	l := &lexer{input: raw}
	var tokens []Token
	for {
		l.skipSpace()
		if l.eof() {
			return tokens, nil
		}
		next, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, next...)
	}
}

// next scans the token(s) at the current position. Leading whitespace must already be skipped.
func (l *lexer) next() ([]Token, error) {
	start := l.pos
	switch l.input[l.pos] {
	case '(':
		l.pos++
		return []Token{{Type: StartVariation, Offset: start}}, nil
	case ')':
		l.pos++
		return []Token{{Type: EndVariation, Offset: start}}, nil
	case ';':
		l.pos++
		return []Token{{Type: NewNode, Offset: start}}, nil
	}

	for l.pos < len(l.input) && isLetter(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return nil, parseErrorf(start, "expected a property key, got %q", l.input[start])
	}
	key := l.input[start:l.pos]

	var retVal []Token
	for {
		l.skipSpace()
		if l.eof() || l.input[l.pos] != '[' {
			if len(retVal) == 0 {
				return nil, parseErrorf(l.pos, "expected '[' after property %s", key)
			}
			return retVal, nil
		}
		offset := l.pos
		value, err := l.value()
		if err != nil {
			return nil, err
		}
		retVal = append(retVal, Token{Type: Property, Key: key, Value: value, Offset: offset})
	}
}

// value scans a [value] block, returning the unescaped text.
func (l *lexer) value() (string, error) {
	open := l.pos
	l.pos++ // [
	for i := l.pos; i < len(l.input); i++ {
		switch l.input[i] {
		case '\\':
			i++
		case ']':
			raw := l.input[l.pos:i]
			l.pos = i + 1
			return unescape(raw), nil
		}
	}
	return "", parseErrorf(open, "missing ']'")
}

// unescape turns `\\` into `\` and drops a backslash in front of any other character.
func unescape(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}
	var buf strings.Builder
	buf.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}
		buf.WriteByte(raw[i])
	}
	return buf.String()
}

// escape is the inverse of unescape.
func escape(value string) string {
	if !strings.ContainsAny(value, `\]`) {
		return value
	}
	var buf strings.Builder
	buf.Grow(len(value) + 2)
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' || value[i] == ']' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(value[i])
	}
	return buf.String()
}
