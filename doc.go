// Package jsonsyntax is a strict JSON parser and value model conforming to
// RFC 8259 / ECMA-404.
//
// It differs from a stock JSON decoder in three ways: every value, object
// key and object entry recognised by the parser is associated with its byte
// span in the source (the "code map"); numbers are kept in their exact
// lexical form instead of being collapsed into a machine type; and object
// entries preserve insertion order and duplicate keys while still
// supporting average-O(1) keyed lookup.
//
// The parser is a hand-written, iterative descent: it never recurses, so
// parsing depth is bounded only by available memory.
package jsonsyntax
