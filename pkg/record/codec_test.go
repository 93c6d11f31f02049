package record

import (
	"bytes"
	"testing"

	"github.com/Allen1211/msgp/msgp"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeDemo(t *testing.T) {
	data, err := Encode(Demo())
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(Demo(), got); diff != "" {
		t.Fatalf("decoded record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, String(Greeting), got["u"])
	assert.Equal(t, []byte(Greeting), []byte(got["u"].(String)))
}

func TestEncodeDecodeBulkKeepsNil(t *testing.T) {
	data, err := Encode(Bulk(999))
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, Int(999), got["i"])

	l, ok := got["l"].(List)
	require.True(t, ok, "bin l decoded as %T", got["l"])
	require.Len(t, l, 8)
	assert.Equal(t, KindNil, l[5].Kind())
}

func TestEncodeIsDeterministic(t *testing.T) {
	first, err := Encode(Demo())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Encode(Demo())
		require.NoError(t, err)
		require.True(t, bytes.Equal(first, again), "encoding changed between runs")
	}
}

func TestDecodeRejectsUnsupportedTypes(t *testing.T) {
	var buf bytes.Buffer
	w := msgp.NewWriter(&buf)
	require.NoError(t, w.WriteMapHeader(1))
	require.NoError(t, w.WriteString("f"))
	require.NoError(t, w.WriteFloat64(1.5))
	require.NoError(t, w.Flush())

	_, err := Decode(buf.Bytes())
	assert.Error(t, err)
}

func TestDecodeAcceptsUnsignedIntegers(t *testing.T) {
	var buf bytes.Buffer
	w := msgp.NewWriter(&buf)
	require.NoError(t, w.WriteMapHeader(1))
	require.NoError(t, w.WriteString("n"))
	require.NoError(t, w.WriteUint64(1<<40))
	require.NoError(t, w.Flush())

	got, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Int(1<<40), got["n"])
}

func TestDecodeRejectsDeepNesting(t *testing.T) {
	var v Value = Int(1)
	for i := 0; i < maxDepth+2; i++ {
		v = List{v}
	}
	data, err := Encode(Record{"deep": v})
	require.NoError(t, err)

	_, err = Decode(data)
	assert.Error(t, err)
}

func TestDecodeRejectsOversizedHeaders(t *testing.T) {
	cases := map[string][]byte{
		"array": {0x81, 0xa1, 'l', 0xdd, 0xff, 0xff, 0xff, 0xff},
		"map":   {0x81, 0xa1, 'm', 0xdf, 0xff, 0xff, 0xff, 0xff},
		"root":  {0xdf, 0xff, 0xff, 0xff, 0xff},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(data)
			assert.Error(t, err)
		})
	}
}

func TestDecodeRejectsOversizedStrings(t *testing.T) {
	cases := map[string][]byte{
		"str32": {0x81, 0xa1, 's', 0xdb, 0xff, 0xff, 0xff, 0xff, 'x'},
		"bin32": {0x81, 0xa1, 'b', 0xc6, 0xff, 0xff, 0xff, 0xff, 'x'},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(data)
			assert.Error(t, err)
		})
	}
}
