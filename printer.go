package jsonsyntax

import (
	"io"
	"strconv"
	"strings"
)

// Indent describes the unit of indentation used for one nesting level.
type Indent struct {
	Tabs  bool
	Count int
}

// Spaces builds an Indent of n spaces.
func Spaces(n int) Indent { return Indent{Count: n} }

// Tabs builds an Indent of n tab characters.
func Tabs(n int) Indent { return Indent{Tabs: true, Count: n} }

func (in Indent) writeTo(sb *strings.Builder, levels int) {
	unit := " "
	if in.Tabs {
		unit = "\t"
	}
	for i := 0; i < levels*in.Count; i++ {
		sb.WriteString(unit)
	}
}

// Limit controls when an array or object is expanded onto multiple lines
// instead of printed inline.
type Limit struct {
	kind  limitKind
	items int
	width int
}

type limitKind uint8

const (
	limitNone limitKind = iota
	limitAlways
	limitItem
	limitWidth
	limitItemOrWidth
)

// LimitAlways always expands, even an empty array/object.
func LimitAlways() Limit { return Limit{kind: limitAlways} }

// LimitItem expands once the array/object has more than n items.
func LimitItem(n int) Limit { return Limit{kind: limitItem, items: n} }

// LimitWidth expands once the inline representation would exceed w
// characters.
func LimitWidth(w int) Limit { return Limit{kind: limitWidth, width: w} }

// LimitItemOrWidth expands on whichever of the two limits triggers first.
func LimitItemOrWidth(n, w int) Limit { return Limit{kind: limitItemOrWidth, items: n, width: w} }

func (l Limit) expands(items, width int) bool {
	switch l.kind {
	case limitNone:
		return false
	case limitAlways:
		return true
	case limitItem:
		return items > l.items
	case limitWidth:
		return width > l.width
	case limitItemOrWidth:
		return items > l.items || width > l.width
	default:
		return false
	}
}

// PrintOptions controls how Print lays out a Value: indentation, inter-token
// spacing, and the limits past which an array or object is expanded onto
// multiple lines rather than printed on one.
type PrintOptions struct {
	Indent Indent

	ArrayBegin       int
	ArrayEnd         int
	ArrayEmpty       int
	ArrayBeforeComma int
	ArrayAfterComma  int
	ArrayLimit       *Limit

	ObjectBegin       int
	ObjectEnd         int
	ObjectEmpty       int
	ObjectBeforeComma int
	ObjectAfterComma  int
	ObjectBeforeColon int
	ObjectAfterColon  int
	ObjectLimit       *Limit
}

func limitPtr(l Limit) *Limit { return &l }

// Pretty returns the default human-readable layout: two-space indentation,
// one line per item once an array/object holds more than one item or would
// be wider than 16 characters inline.
func Pretty() PrintOptions {
	l := limitPtr(LimitItemOrWidth(1, 16))
	return PrintOptions{
		Indent: Spaces(2),

		ArrayBegin: 1, ArrayEnd: 1, ArrayAfterComma: 1, ArrayLimit: l,
		ObjectBegin: 1, ObjectEnd: 1, ObjectAfterComma: 1, ObjectAfterColon: 1,
		ObjectLimit: l,
	}
}

// Compact returns the minimal layout: no extraneous whitespace anywhere,
// never expanded.
func Compact() PrintOptions {
	return PrintOptions{Indent: Spaces(0)}
}

// Inline returns a single-line layout with spacing inside brackets/braces
// and after commas/colons, but never expanded onto multiple lines.
func Inline() PrintOptions {
	return PrintOptions{
		Indent: Spaces(0),

		ArrayBegin: 1, ArrayEnd: 1, ArrayAfterComma: 1,
		ObjectBegin: 1, ObjectEnd: 1, ObjectAfterComma: 1, ObjectAfterColon: 1,
	}
}

// size is the precomputed layout decision for one array or object
// fragment: either Expanded (multi-line) or a fixed inline Width in
// characters. A scalar's size is always a Width.
type size struct {
	expanded bool
	width    int
}

func widthSize(w int) size { return size{width: w} }
func expandedSize() size   { return size{expanded: true} }

func (s size) add(other size) size {
	if s.expanded || other.expanded {
		return expandedSize()
	}
	return widthSize(s.width + other.width)
}

// Print renders v to w per opts. It is a two-pass algorithm: precomputeSize
// walks the whole tree once to decide, for every array/object, whether it
// will be expanded or printed inline at a fixed width, and then a single
// emission pass uses those decisions instead of re-measuring as it goes.
func Print(w io.Writer, v *Value, opts PrintOptions) error {
	var sizes []size
	precomputeSize(v, &opts, &sizes)
	var sb strings.Builder
	idx := 0
	writeValue(&sb, v, &opts, 0, sizes, &idx)
	_, err := io.WriteString(w, sb.String())
	return err
}

// Sprint renders v to a string per opts.
func Sprint(v *Value, opts PrintOptions) string {
	var sb strings.Builder
	Print(&sb, v, opts)
	return sb.String()
}

// precomputeSize and the writeValue/writeArray/writeObject emission pass
// below it both recurse over the value tree with the Go call stack, the
// same as Value.Traverse/Walk/Canonicalize; only the parser bounds depth by
// the heap alone.
func precomputeSize(v *Value, opts *PrintOptions, sizes *[]size) size {
	switch v.kind {
	case KindNull:
		return widthSize(4)
	case KindBoolean:
		if v.boolean {
			return widthSize(4)
		}
		return widthSize(5)
	case KindNumber:
		return widthSize(len(v.number.String()))
	case KindString:
		return widthSize(printedStringSize(v.str.String()))
	case KindArray:
		return precomputeArraySize(v.array, opts, sizes)
	case KindObject:
		return precomputeObjectSize(v.object, opts, sizes)
	}
	return widthSize(0)
}

func precomputeArraySize(items []Value, opts *PrintOptions, sizes *[]size) size {
	idx := len(*sizes)
	*sizes = append(*sizes, widthSize(0))

	total := widthSize(2 + opts.ArrayBegin + opts.ArrayEnd)
	if len(items) == 0 {
		total = widthSize(2 + opts.ArrayEmpty)
	}
	for i, item := range items {
		if i > 0 {
			total = total.add(widthSize(1 + opts.ArrayBeforeComma + opts.ArrayAfterComma))
		}
		total = total.add(precomputeSize(&item, opts, sizes))
	}

	result := applyLimit(opts.ArrayLimit, len(items), total)
	(*sizes)[idx] = result
	return result
}

func precomputeObjectSize(o *Object, opts *PrintOptions, sizes *[]size) size {
	idx := len(*sizes)
	*sizes = append(*sizes, widthSize(0))

	total := widthSize(2 + opts.ObjectBegin + opts.ObjectEnd)
	if len(o.entries) == 0 {
		total = widthSize(2 + opts.ObjectEmpty)
	}
	for i := range o.entries {
		if i > 0 {
			total = total.add(widthSize(1 + opts.ObjectBeforeComma + opts.ObjectAfterComma))
		}
		key := o.entries[i].Key.String()
		total = total.add(widthSize(printedStringSize(key) + 1 + opts.ObjectBeforeColon + opts.ObjectAfterColon))
		total = total.add(precomputeSize(&o.entries[i].Value, opts, sizes))
	}

	result := applyLimit(opts.ObjectLimit, len(o.entries), total)
	(*sizes)[idx] = result
	return result
}

func applyLimit(limit *Limit, items int, total size) size {
	if total.expanded {
		return expandedSize()
	}
	if limit == nil {
		return total
	}
	if limit.expands(items, total.width) {
		return expandedSize()
	}
	return total
}

func writeValue(sb *strings.Builder, v *Value, opts *PrintOptions, indent int, sizes []size, idx *int) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBoolean:
		if v.boolean {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.number.String())
	case KindString:
		writeStringLiteral(sb, v.str.String())
	case KindArray:
		writeArray(sb, v.array, opts, indent, sizes, idx)
	case KindObject:
		writeObject(sb, v.object, opts, indent, sizes, idx)
	}
}

func writeArray(sb *strings.Builder, items []Value, opts *PrintOptions, indent int, sizes []size, idx *int) {
	sz := sizes[*idx]
	*idx++

	sb.WriteByte('[')
	if len(items) == 0 {
		if sz.expanded {
			sb.WriteByte('\n')
			opts.Indent.writeTo(sb, indent)
		} else {
			writeSpaces(sb, opts.ArrayEmpty)
		}
	} else if sz.expanded {
		sb.WriteByte('\n')
		for i := range items {
			if i > 0 {
				writeSpaces(sb, opts.ArrayBeforeComma)
				sb.WriteString(",\n")
			}
			opts.Indent.writeTo(sb, indent+1)
			writeValue(sb, &items[i], opts, indent+1, sizes, idx)
		}
		sb.WriteByte('\n')
		opts.Indent.writeTo(sb, indent)
	} else {
		writeSpaces(sb, opts.ArrayBegin)
		for i := range items {
			if i > 0 {
				writeSpaces(sb, opts.ArrayBeforeComma)
				sb.WriteByte(',')
				writeSpaces(sb, opts.ArrayAfterComma)
			}
			writeValue(sb, &items[i], opts, indent+1, sizes, idx)
		}
		writeSpaces(sb, opts.ArrayEnd)
	}
	sb.WriteByte(']')
}

func writeObject(sb *strings.Builder, o *Object, opts *PrintOptions, indent int, sizes []size, idx *int) {
	sz := sizes[*idx]
	*idx++

	sb.WriteByte('{')
	if len(o.entries) == 0 {
		if sz.expanded {
			sb.WriteByte('\n')
			opts.Indent.writeTo(sb, indent)
		} else {
			writeSpaces(sb, opts.ObjectEmpty)
		}
	} else if sz.expanded {
		sb.WriteByte('\n')
		for i := range o.entries {
			if i > 0 {
				writeSpaces(sb, opts.ObjectBeforeComma)
				sb.WriteString(",\n")
			}
			opts.Indent.writeTo(sb, indent+1)
			writeStringLiteral(sb, o.entries[i].Key.String())
			writeSpaces(sb, opts.ObjectBeforeColon)
			sb.WriteByte(':')
			writeSpaces(sb, opts.ObjectAfterColon)
			writeValue(sb, &o.entries[i].Value, opts, indent+1, sizes, idx)
		}
		sb.WriteByte('\n')
		opts.Indent.writeTo(sb, indent)
	} else {
		writeSpaces(sb, opts.ObjectBegin)
		for i := range o.entries {
			if i > 0 {
				writeSpaces(sb, opts.ObjectBeforeComma)
				sb.WriteByte(',')
				writeSpaces(sb, opts.ObjectAfterComma)
			}
			writeStringLiteral(sb, o.entries[i].Key.String())
			writeSpaces(sb, opts.ObjectBeforeColon)
			sb.WriteByte(':')
			writeSpaces(sb, opts.ObjectAfterColon)
			writeValue(sb, &o.entries[i].Value, opts, indent+1, sizes, idx)
		}
		writeSpaces(sb, opts.ObjectEnd)
	}
	sb.WriteByte('}')
}

func writeSpaces(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}

// writeStringLiteral renders s as an RFC 8785 string literal: the seven
// named two-character escapes, \u00XX (lowercase hex) for every other C0
// control character, and every other codepoint written through unescaped.
func writeStringLiteral(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, c := range s {
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\b':
			sb.WriteString(`\b`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\f':
			sb.WriteString(`\f`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if c >= 0x0000 && c <= 0x001f {
				sb.WriteString(`\u00`)
				sb.WriteString(hexDigit(uint32(c) >> 4))
				sb.WriteString(hexDigit(uint32(c) & 0xf))
			} else {
				sb.WriteRune(c)
			}
		}
	}
	sb.WriteByte('"')
}

func hexDigit(d uint32) string {
	return strconv.FormatUint(uint64(d), 16)
}

// printedStringSize returns the number of characters (runes)
// writeStringLiteral would produce for s, without building it, for use
// during size precomputation.
func printedStringSize(s string) int {
	width := 2
	for _, c := range s {
		switch c {
		case '\\', '"', '\b', '\t', '\n', '\f', '\r':
			width += 2
		default:
			if c >= 0x0000 && c <= 0x001f {
				width += 6
			} else {
				width++
			}
		}
	}
	return width
}
