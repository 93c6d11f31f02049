// Package record holds the bin values stored under a key and their msgp encoding.
package record

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindNil Kind = iota
	KindInt
	KindString
	KindBytes
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is one of Nil, Int, String, Bytes, List or Map. The set is closed: only
// types in this package implement it.
type Value interface {
	Kind() Kind
	format(b *strings.Builder)
}

type (
	Nil    struct{}
	Int    int64
	String string
	Bytes  []byte
	List   []Value
	Map    map[string]Value
)

func (Nil) Kind() Kind    { return KindNil }
func (Int) Kind() Kind    { return KindInt }
func (String) Kind() Kind { return KindString }
func (Bytes) Kind() Kind  { return KindBytes }
func (List) Kind() Kind   { return KindList }
func (Map) Kind() Kind    { return KindMap }

func (Nil) format(b *strings.Builder) {
	b.WriteString("nil")
}

func (v Int) format(b *strings.Builder) {
	b.WriteString(strconv.FormatInt(int64(v), 10))
}

func (v String) format(b *strings.Builder) {
	b.WriteString(strconv.Quote(string(v)))
}

func (v Bytes) format(b *strings.Builder) {
	b.WriteByte('b')
	b.WriteString(strconv.Quote(string(v)))
}

func (v List) format(b *strings.Builder) {
	b.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		formatValue(b, e)
	}
	b.WriteByte(']')
}

func (v Map) format(b *strings.Builder) {
	formatMap(b, v)
}

func formatValue(b *strings.Builder, v Value) {
	if v == nil {
		Nil{}.format(b)
		return
	}
	v.format(b)
}

func formatMap(b *strings.Builder, m map[string]Value) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		formatValue(b, m[k])
	}
	b.WriteByte('}')
}

// Format renders v the same way regardless of map iteration order.
func Format(v Value) string {
	var b strings.Builder
	formatValue(&b, v)
	return b.String()
}

func (v Nil) String() string    { return Format(v) }
func (v Int) String() string    { return Format(v) }
func (v String) String() string { return Format(v) }
func (v Bytes) String() string  { return Format(v) }
func (v List) String() string   { return Format(v) }
func (v Map) String() string    { return Format(v) }

// Strings builds a List of String values.
func Strings(ss ...string) List {
	l := make(List, len(ss))
	for i, s := range ss {
		l[i] = String(s)
	}
	return l
}
