package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"nil", Nil{}, "nil"},
		{"int", Int(-7), "-7"},
		{"string", String("abc"), `"abc"`},
		{"multibyte", String(Greeting), `"안녕하세요"`},
		{"bytes", Bytes("def"), `b"def"`},
		{"list", List{Int(1), String("a"), Nil{}}, `[1, "a", nil]`},
		{"map sorted", Map{"z": Int(3), "x": Int(1), "y": Int(2)}, `{"x": 1, "y": 2, "z": 3}`},
		{"nested", Map{"l": Strings("x"), "d": Map{"a": Int(1)}}, `{"d": {"a": 1}, "l": ["x"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestRecordString(t *testing.T) {
	s := Bulk(3).String()
	assert.Equal(t, `{"i": 3, "l": [2, 4, 8, 16, 32, nil, 128, 256], "m": {"a": 2, "b": 4, "c": 8, "d": 16}, "s": "xyz"}`, s)
	assert.True(t, strings.Contains(Demo().String(), Greeting))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Demo().Validate())
	assert.NoError(t, Bulk(0).Validate())

	assert.Error(t, Record{}.Validate())
	assert.Error(t, Record{"": Int(1)}.Validate())
	assert.Error(t, Record{"sixteen-chars-xx": Int(1)}.Validate())
	assert.NoError(t, Record{"fifteen-chars-x": Int(1)}.Validate())
}

func TestBinNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"b", "i", "l", "m", "s", "u"}, Demo().BinNames())
}
