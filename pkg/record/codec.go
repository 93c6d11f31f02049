package record

import (
	"fmt"
	"math"
	"sort"

	"github.com/Allen1211/msgp/msgp"

	"github.com/allen1211/kvput/pkg/common/utils"
)

// maxDepth bounds List/Map nesting on decode.
const maxDepth = 32

// maxPrealloc caps the capacity reserved from an untrusted array or map header;
// larger containers grow as their elements are actually read.
const maxPrealloc = 64

func prealloc(sz uint32) int {
	if sz > maxPrealloc {
		return maxPrealloc
	}
	return int(sz)
}

func encodeValue(en *msgp.Writer, v Value) error {
	switch v := v.(type) {
	case nil, Nil:
		return en.WriteNil()
	case Int:
		return en.WriteInt64(int64(v))
	case String:
		return en.WriteString(string(v))
	case Bytes:
		return en.WriteBytes(v)
	case List:
		if err := en.WriteArrayHeader(uint32(len(v))); err != nil {
			return err
		}
		for i, e := range v {
			if err := encodeValue(en, e); err != nil {
				return msgp.WrapError(err, i)
			}
		}
		return nil
	case Map:
		return encodeMap(en, v)
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
}

func encodeMap(en *msgp.Writer, m map[string]Value) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := en.WriteMapHeader(uint32(len(keys))); err != nil {
		return err
	}
	for _, k := range keys {
		if err := en.WriteString(k); err != nil {
			return err
		}
		if err := encodeValue(en, m[k]); err != nil {
			return msgp.WrapError(err, k)
		}
	}
	return nil
}

func decodeValue(dc *msgp.Reader, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("value nested deeper than %d levels", maxDepth)
	}
	t, err := dc.NextType()
	if err != nil {
		return nil, err
	}
	switch t {
	case msgp.NilType:
		return Nil{}, dc.ReadNil()
	case msgp.IntType:
		i, err := dc.ReadInt64()
		return Int(i), err
	case msgp.UintType:
		u, err := dc.ReadUint64()
		if err != nil {
			return nil, err
		}
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", u)
		}
		return Int(u), nil
	case msgp.StrType:
		s, err := dc.ReadString()
		return String(s), err
	case msgp.BinType:
		b, err := dc.ReadBytes(nil)
		return Bytes(b), err
	case msgp.ArrayType:
		sz, err := dc.ReadArrayHeader()
		if err != nil {
			return nil, err
		}
		l := make(List, 0, prealloc(sz))
		for i := uint32(0); i < sz; i++ {
			v, err := decodeValue(dc, depth+1)
			if err != nil {
				return nil, msgp.WrapError(err, i)
			}
			l = append(l, v)
		}
		return l, nil
	case msgp.MapType:
		m, err := decodeMap(dc, depth+1)
		return Map(m), err
	default:
		return nil, fmt.Errorf("unsupported msgp type %s", t)
	}
}

func decodeMap(dc *msgp.Reader, depth int) (map[string]Value, error) {
	sz, err := dc.ReadMapHeader()
	if err != nil {
		return nil, err
	}
	m := make(map[string]Value, prealloc(sz))
	for ; sz > 0; sz-- {
		k, err := dc.ReadString()
		if err != nil {
			return nil, err
		}
		if m[k], err = decodeValue(dc, depth); err != nil {
			return nil, msgp.WrapError(err, k)
		}
	}
	return m, nil
}

// EncodeMsg implements msgp.Encodable
func (r Record) EncodeMsg(en *msgp.Writer) error {
	return encodeMap(en, r)
}

// DecodeMsg implements msgp.Decodable
func (r *Record) DecodeMsg(dc *msgp.Reader) error {
	m, err := decodeMap(dc, 0)
	if err != nil {
		return err
	}
	*r = m
	return nil
}

func Encode(r Record) ([]byte, error) {
	return utils.MsgpEncode(r)
}

func Decode(data []byte) (Record, error) {
	var r Record
	if err := utils.MsgpDecode(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}
