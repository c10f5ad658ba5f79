package jsonsyntax

import (
	"io"
	"unicode/utf8"
)

// Options controls the strictness of Parse. The zero Options is the
// default, strict RFC 8259 / ECMA-404 parser: every case spec.md §9 leaves
// open is closed to "reject" when both fields are false.
type Options struct {
	// AcceptTruncatedSurrogatePair allows a high surrogate that is not
	// followed by a matching low surrogate (either because the string ends,
	// or because the following \u escape is not a low surrogate) to decode
	// as U+FFFD instead of failing with MissingLowSurrogateError or
	// InvalidLowSurrogateError.
	AcceptTruncatedSurrogatePair bool
	// AcceptInvalidCodepoints allows a \uXXXX escape (or a combined
	// surrogate pair) that does not form a valid Unicode scalar value to
	// decode as U+FFFD instead of failing with
	// InvalidUnicodeCodePointError.
	AcceptInvalidCodepoints bool
}

// frameKind identifies whether an in-progress container frame is an array
// or an object.
type frameKind uint8

const (
	frameArray frameKind = iota
	frameObject
)

// frame is one entry of the parser's explicit work stack: the state of one
// container (array or object) that has been opened but not yet closed. The
// parser never recurses to descend into a nested container; it pushes a
// frame instead, so nesting depth is bound only by available heap memory,
// never by the Go call stack.
type frame struct {
	kind     frameKind
	mapIndex int

	items   []Value // frameArray
	entries []Entry // frameObject

	entryIdx int // frameObject: code-map index of the in-progress entry group
	key      Key // frameObject: key of the in-progress entry
}

// parser holds the mutable state of one Parse call: the source bytes, the
// read position, the code map under construction, and the strictness
// options in effect.
type parser struct {
	data []byte
	pos  int
	cm   CodeMap
	opts Options
}

// Parse parses data as a single JSON document per opts, returning the
// parsed Value together with the CodeMap recording every fragment's byte
// span. Parse is iterative: the nesting depth of the input is bound only by
// available memory, never by the size of the Go call stack.
func Parse(data []byte, opts Options) (Value, *CodeMap, error) {
	p := &parser{data: data, opts: opts}
	p.skipWS()
	v, err := p.parseValue()
	if err != nil {
		return Value{}, nil, err
	}
	p.skipWS()
	if p.pos != len(p.data) {
		return Value{}, nil, p.unexpectedHere()
	}
	return v, &p.cm, nil
}

// ParseString is a convenience wrapper around Parse for string input.
func ParseString(s string, opts Options) (Value, *CodeMap, error) {
	return Parse([]byte(s), opts)
}

// ParseReader reads r to completion and parses the result. Parse itself
// requires random access to the source for span tracking, so streaming
// input is buffered in full before parsing begins.
func ParseReader(r io.Reader, opts Options) (Value, *CodeMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, nil, &StreamError{Offset: len(data), Err: err}
	}
	return Parse(data, opts)
}

// parseValue runs the iterative descent over one complete value: it reads
// either a scalar or an opening bracket/brace, pushing a frame for every
// container opened and popping it once its closing bracket/brace is found,
// with no Go-level recursion at any point.
func (p *parser) parseValue() (Value, error) {
	var stack []*frame
	var value Value
	readValue := true

	for {
		if readValue {
			p.skipWS()
			if p.pos >= len(p.data) {
				return Value{}, p.unexpectedHere()
			}

			switch p.data[p.pos] {
			case '[':
				idx := p.cm.reserve(p.pos)
				p.pos++
				p.skipWS()
				if p.pos < len(p.data) && p.data[p.pos] == ']' {
					p.pos++
					p.cm.close(idx, p.pos)
					value = NewArrayValue(nil)
					readValue = false
					continue
				}
				stack = append(stack, &frame{kind: frameArray, mapIndex: idx})
				continue

			case '{':
				idx := p.cm.reserve(p.pos)
				p.pos++
				p.skipWS()
				if p.pos < len(p.data) && p.data[p.pos] == '}' {
					p.pos++
					p.cm.close(idx, p.pos)
					value = NewObjectValue(NewObject())
					readValue = false
					continue
				}
				f := &frame{kind: frameObject, mapIndex: idx}
				stack = append(stack, f)
				if err := p.readObjectKey(f); err != nil {
					return Value{}, err
				}
				continue

			default:
				v, err := p.parseScalar()
				if err != nil {
					return Value{}, err
				}
				value = v
				readValue = false
			}
			continue
		}

		if len(stack) == 0 {
			return value, nil
		}

		top := stack[len(stack)-1]
		switch top.kind {
		case frameArray:
			top.items = append(top.items, value)
		case frameObject:
			top.entries = append(top.entries, Entry{Key: top.key, Value: value})
			p.cm.close(top.entryIdx, p.pos)
		}

		p.skipWS()
		if p.pos >= len(p.data) {
			return Value{}, p.unexpectedHere()
		}

		switch top.kind {
		case frameArray:
			switch p.data[p.pos] {
			case ',':
				p.pos++
				readValue = true
			case ']':
				p.pos++
				p.cm.close(top.mapIndex, p.pos)
				stack = stack[:len(stack)-1]
				value = NewArrayValue(top.items)
				readValue = false
			default:
				return Value{}, p.unexpectedHere()
			}
		case frameObject:
			switch p.data[p.pos] {
			case ',':
				p.pos++
				if err := p.readObjectKey(top); err != nil {
					return Value{}, err
				}
				readValue = true
			case '}':
				p.pos++
				p.cm.close(top.mapIndex, p.pos)
				stack = stack[:len(stack)-1]
				value = NewObjectValue(ObjectFromEntries(top.entries))
				readValue = false
			default:
				return Value{}, p.unexpectedHere()
			}
		}
	}
}

// readObjectKey parses one "key": up through (and including) the colon,
// reserving the code-map entries for the entry group and the key fragment,
// and records the decoded key on f ready for the value that follows.
func (p *parser) readObjectKey(f *frame) error {
	p.skipWS()
	entryIdx := p.cm.reserve(p.pos)

	if p.pos >= len(p.data) || p.data[p.pos] != '"' {
		return p.unexpectedHere()
	}
	keyIdx := p.cm.reserve(p.pos)
	s, err := p.decodeQuotedString()
	if err != nil {
		return err
	}
	p.cm.close(keyIdx, p.pos)

	p.skipWS()
	if p.pos >= len(p.data) || p.data[p.pos] != ':' {
		return p.unexpectedHere()
	}
	p.pos++

	f.entryIdx = entryIdx
	f.key = NewKey(s)
	return nil
}

// parseScalar parses a string, number, boolean or null literal starting at
// the current position, recording its code-map fragment.
func (p *parser) parseScalar() (Value, error) {
	start := p.pos
	idx := p.cm.reserve(start)

	switch p.data[p.pos] {
	case '"':
		s, err := p.decodeQuotedString()
		if err != nil {
			return Value{}, err
		}
		p.cm.close(idx, p.pos)
		return NewStringValue(NewString(s)), nil

	case 't':
		if err := p.matchLiteral("true"); err != nil {
			return Value{}, err
		}
		p.cm.close(idx, p.pos)
		return NewBoolean(true), nil

	case 'f':
		if err := p.matchLiteral("false"); err != nil {
			return Value{}, err
		}
		p.cm.close(idx, p.pos)
		return NewBoolean(false), nil

	case 'n':
		if err := p.matchLiteral("null"); err != nil {
			return Value{}, err
		}
		p.cm.close(idx, p.pos)
		return Null, nil

	default:
		n, err := p.parseNumberLiteral()
		if err != nil {
			return Value{}, err
		}
		p.cm.close(idx, p.pos)
		return NewNumberValue(n), nil
	}
}

// parseNumberLiteral drives the nine-state number grammar (number.go) byte
// by byte over the input, consuming the longest valid JSON number literal
// starting at the current position.
func (p *parser) parseNumberLiteral() (NumberBuf, error) {
	start := p.pos
	state := numInit
	for p.pos < len(p.data) {
		next, ok := advanceNumberState(state, p.data[p.pos])
		if !ok {
			break
		}
		state = next
		p.pos++
	}
	if p.pos == start || !state.accepting() {
		p.pos = start
		return NumberBuf{}, p.unexpectedHere()
	}
	return NumberBuf{buf: string(p.data[start:p.pos])}, nil
}

// decodeQuotedString parses a JSON string literal starting at the current
// position (which must hold the opening quote) and returns its decoded
// content. Surrogate pair handling and the strict/flexible mode options
// mirror the behavior documented for Options.
func (p *parser) decodeQuotedString() (string, error) {
	if p.pos >= len(p.data) || p.data[p.pos] != '"' {
		return "", p.unexpectedHere()
	}
	p.pos++

	var out []byte
	var pendingHigh *uint16
	var pendingHighSpan Span

	flushPending := func() error {
		if pendingHigh == nil {
			return nil
		}
		high := *pendingHigh
		span := pendingHighSpan
		pendingHigh = nil
		if p.opts.AcceptTruncatedSurrogatePair {
			out = appendRune(out, replacementChar)
			return nil
		}
		return &MissingLowSurrogateError{Span: span, High: high}
	}

	for {
		if p.pos >= len(p.data) {
			return "", p.unexpectedHere()
		}
		r, width, ok := p.decodeRune(p.pos)
		if !ok {
			return "", &InvalidUTF8Error{Offset: p.pos}
		}

		if r == '"' {
			if err := flushPending(); err != nil {
				return "", err
			}
			p.pos += width
			return string(out), nil
		}

		if r != '\\' {
			if isControl(r) {
				return "", &UnexpectedError{Offset: p.pos, Char: &r}
			}
			if err := flushPending(); err != nil {
				return "", err
			}
			out = appendRune(out, r)
			p.pos += width
			continue
		}

		escOffset := p.pos
		p.pos += width
		if p.pos >= len(p.data) {
			return "", p.unexpectedHere()
		}
		ec, ewidth, ok := p.decodeRune(p.pos)
		if !ok {
			return "", &InvalidUTF8Error{Offset: p.pos}
		}

		switch ec {
		case '"', '\\', '/':
			p.pos += ewidth
			if err := flushPending(); err != nil {
				return "", err
			}
			out = appendRune(out, ec)
		case 'b':
			p.pos += ewidth
			if err := flushPending(); err != nil {
				return "", err
			}
			out = appendRune(out, '\b')
		case 't':
			p.pos += ewidth
			if err := flushPending(); err != nil {
				return "", err
			}
			out = appendRune(out, '\t')
		case 'n':
			p.pos += ewidth
			if err := flushPending(); err != nil {
				return "", err
			}
			out = appendRune(out, '\n')
		case 'f':
			p.pos += ewidth
			if err := flushPending(); err != nil {
				return "", err
			}
			out = appendRune(out, '\f')
		case 'r':
			p.pos += ewidth
			if err := flushPending(); err != nil {
				return "", err
			}
			out = appendRune(out, '\r')
		case 'u':
			p.pos += ewidth
			cpStart := p.pos
			cp, err := p.parseHex4()
			if err != nil {
				return "", err
			}
			cpSpan := Span{Start: cpStart, End: p.pos}

			switch {
			case pendingHigh != nil:
				high := *pendingHigh
				highSpan := pendingHighSpan
				pendingHigh = nil

				switch {
				case cp >= 0xdc00 && cp <= 0xdfff:
					combined := ((uint32(high)-0xd800)<<10 | (cp - 0xdc00)) + 0x10000
					if !validScalar(combined) {
						if p.opts.AcceptInvalidCodepoints {
							out = appendRune(out, replacementChar)
						} else {
							return "", &InvalidUnicodeCodePointError{Span: unionSpan(highSpan, cpSpan), CodePoint: combined}
						}
					} else {
						out = appendRune(out, rune(combined))
					}
				case p.opts.AcceptTruncatedSurrogatePair:
					out = appendRune(out, replacementChar)
					if !validScalar(cp) {
						if p.opts.AcceptInvalidCodepoints {
							out = appendRune(out, replacementChar)
						} else {
							return "", &InvalidUnicodeCodePointError{Span: cpSpan, CodePoint: cp}
						}
					} else {
						out = appendRune(out, rune(cp))
					}
				default:
					return "", &InvalidLowSurrogateError{Span: highSpan, High: high, Decoded: cp}
				}

			case cp >= 0xd800 && cp <= 0xdbff:
				h := uint16(cp)
				pendingHigh = &h
				pendingHighSpan = cpSpan

			case !validScalar(cp):
				if p.opts.AcceptInvalidCodepoints {
					out = appendRune(out, replacementChar)
				} else {
					return "", &InvalidUnicodeCodePointError{Span: cpSpan, CodePoint: cp}
				}

			default:
				out = appendRune(out, rune(cp))
			}

		default:
			return "", &UnexpectedError{Offset: escOffset, Char: &ec}
		}
	}
}

func appendRune(buf []byte, r rune) []byte {
	return utf8.AppendRune(buf, r)
}
