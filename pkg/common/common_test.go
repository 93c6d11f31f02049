package common

import (
	"errors"
	"io"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allen1211/kvput/pkg/common/utils"
)

func TestErrAsError(t *testing.T) {
	assert.NoError(t, OK.AsError())
	assert.NoError(t, Err("").AsError())

	err := ErrGeneration.AsError()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.Equal(t, "generation mismatch (ErrGeneration)", err.Error())
	assert.Equal(t, "ErrSomethingNew", Err("ErrSomethingNew").Error())
}

func TestInitLogger(t *testing.T) {
	_, err := InitLogger("loud", "test")
	assert.Error(t, err)

	logger, err := InitLogger("Debug", "kvd")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestLogFormatter(t *testing.T) {
	f := &LogFormatter{AppName: "kvd"}
	entry := &log.Entry{
		Time:    time.Date(2024, 3, 5, 7, 8, 9, 0, time.Local),
		Level:   log.WarnLevel,
		Message: "disk almost full",
		Data:    log.Fields{"used": 91, "dir": "/data"},
	}
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024/03/05 07:08:09 WARNING [kvd] disk almost full dir=/data used=91\n", string(out))
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	assert.Equal(t, io.Discard, logger.Out)
}

func TestNewKeyDropsEmptySet(t *testing.T) {
	empty, demo := "", "demo"
	assert.Nil(t, NewKey("test", &empty, "k").Set)
	assert.Equal(t, "test::k", NewKey("test", nil, "k").String())
	assert.Equal(t, "test:demo:k", NewKey("test", &demo, "k").String())
}

func TestPutArgsOptionalFields(t *testing.T) {
	set := "demo"
	ttl, gen := int32(-1), uint32(3)
	tests := []struct {
		name string
		in   PutArgs
	}{
		{"all set", PutArgs{Token: "t", Key: NewKey("test", &set, "k"), Bins: []byte{1, 2}, Meta: WriteMeta{TTL: &ttl, Gen: &gen}}},
		{"all absent", PutArgs{Token: "t", Key: NewKey("test", nil, "k"), Bins: []byte{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := utils.MsgpEncode(&tt.in)
			require.NoError(t, err)
			var out PutArgs
			require.NoError(t, utils.MsgpDecode(data, &out))
			assert.Equal(t, tt.in, out)
		})
	}
}
