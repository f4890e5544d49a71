package sgf

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Decode reads an SGF file and returns its text as UTF-8.
//
// If the root node declares a charset with CA[...], the bytes are transcoded from it.
// Files without CA are assumed to be UTF-8 (or ASCII, which SGF defaults to).
func Decode(r io.Reader) (string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "Unable to read SGF")
	}

	charset := Charset(data)
	if charset == "" || isUTF8(charset) {
		return string(data), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", errors.Wrapf(err, "Unknown SGF charset %q", charset)
	}
	decoded, err := ioutil.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return "", errors.Wrapf(err, "Unable to decode SGF from %q", charset)
	}
	return string(decoded), nil
}

// Charset returns the value of the root CA property, or "" if there is none.
// Only the first node is searched. Bracketed values are skipped whole, so a ';' or
// an escaped ']' inside a value does not end the root early.
func Charset(data []byte) string {
	var key []byte
	var inKey bool
	nodes := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '[' {
			if isLetter(c) {
				if !inKey {
					key = key[:0]
				}
				key = append(key, c)
				inKey = true
				continue
			}
			inKey = false
		}
		switch c {
		case '[':
			inKey = false
			start := i + 1
			for i = start; i < len(data) && data[i] != ']'; i++ {
				if data[i] == '\\' {
					i++
				}
			}
			if nodes == 1 && string(key) == "CA" {
				end := i
				if end > len(data) {
					end = len(data)
				}
				return strings.TrimSpace(unescape(string(data[start:end])))
			}
		case ';':
			nodes++
			if nodes > 1 {
				return ""
			}
			key = key[:0]
		case '(', ')':
			if nodes > 0 {
				return ""
			}
		}
	}
	return ""
}

func isUTF8(charset string) bool {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// ParseReader decodes and parses the first game tree read from r.
func ParseReader(r io.Reader) (*Variation, error) {
	text, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}
