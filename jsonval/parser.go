// File: jsonval/parser.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package jsonval

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Parse runs a recursive-descent parse of s and returns the root Value.
// Grounded on the teacher's manual line/byte-scanning style for wire
// formats (transport/tcp/listener.go's header scan, protocol/frame_codec.go's
// bit-level frame parse) rather than a table-driven lexer.
func Parse(s string) (*Value, error) {
	p := &parser{src: s}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing data after top-level value")
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("jsonval: at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (*Value, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == 'n':
		return p.parseNull()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) expect(lit string) error {
	if !strings.HasPrefix(p.src[p.pos:], lit) {
		return p.errorf("expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

func (p *parser) parseBool() (*Value, error) {
	if strings.HasPrefix(p.src[p.pos:], "true") {
		p.pos += 4
		return Bool(true), nil
	}
	if err := p.expect("false"); err != nil {
		return nil, err
	}
	return Bool(false), nil
}

func (p *parser) parseNull() (*Value, error) {
	if err := p.expect("null"); err != nil {
		return nil, err
	}
	return Null(), nil
}

func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	if c, ok := p.peek(); ok && c == '-' {
		p.pos++
	}
	for {
		c, ok := p.peek()
		if !ok || !isNumberByte(c) {
			break
		}
		p.pos++
	}
	lit := p.src[start:p.pos]
	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, p.errorf("invalid number %q: %v", lit, err)
	}
	return Number(n), nil
}

func isNumberByte(c byte) bool {
	switch c {
	case '+', '-', '.', 'e', 'E', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}

func (p *parser) parseStringLiteral() (string, error) {
	if err := p.expect(`"`); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		c, ok := p.peek()
		if !ok {
			return "", p.errorf("unterminated string literal")
		}
		if c == '"' {
			p.pos++
			return sb.String(), nil
		}
		if c == '\\' {
			p.pos++
			esc, ok := p.peek()
			if !ok {
				return "", p.errorf("unterminated escape sequence")
			}
			switch esc {
			case '"', '\\', '/':
				sb.WriteByte(esc)
				p.pos++
			case 'n':
				sb.WriteByte('\n')
				p.pos++
			case 't':
				sb.WriteByte('\t')
				p.pos++
			case 'r':
				sb.WriteByte('\r')
				p.pos++
			case 'b':
				sb.WriteByte('\b')
				p.pos++
			case 'f':
				sb.WriteByte('\f')
				p.pos++
			case 'u':
				p.pos++
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				sb.WriteRune(r)
			default:
				return "", p.errorf("invalid escape \\%c", esc)
			}
			continue
		}
		sb.WriteByte(c)
		p.pos++
	}
}

func (p *parser) parseUnicodeEscape() (rune, error) {
	hi, err := p.parseHex4()
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(rune(hi)) {
		if !strings.HasPrefix(p.src[p.pos:], `\u`) {
			return utf8.RuneError, nil
		}
		p.pos += 2
		lo, err := p.parseHex4()
		if err != nil {
			return 0, err
		}
		return utf16.DecodeRune(rune(hi), rune(lo)), nil
	}
	return rune(hi), nil
}

func (p *parser) parseHex4() (uint16, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorf("truncated \\u escape")
	}
	lit := p.src[p.pos : p.pos+4]
	n, err := strconv.ParseUint(lit, 16, 16)
	if err != nil {
		return 0, p.errorf("invalid \\u escape %q: %v", lit, err)
	}
	p.pos += 4
	return uint16(n), nil
}

func (p *parser) parseArray() (*Value, error) {
	if err := p.expect("["); err != nil {
		return nil, err
	}
	arr := Array()
	p.skipSpace()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated array")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == ']' {
			p.pos++
			return arr, nil
		}
		return nil, p.errorf("expected ',' or ']' in array, got %q", c)
	}
}

func (p *parser) parseObject() (*Value, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	obj := Object()
	p.skipSpace()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok || c != '"' {
			return nil, p.errorf("expected string key")
		}
		key, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect(":"); err != nil {
			return nil, err
		}
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
		p.skipSpace()
		c, ok = p.peek()
		if !ok {
			return nil, p.errorf("unterminated object")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == '}' {
			p.pos++
			return obj, nil
		}
		return nil, p.errorf("expected ',' or '}' in object, got %q", c)
	}
}
