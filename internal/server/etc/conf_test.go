package etc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeConf(t, "kvd.json", `{
		"port": 3100,
		"db_dir": "/tmp/kvd",
		"namespaces": [{"name": "test"}, {"name": "cache", "default_ttl": 300}],
		"users": {"admin": "secret"},
		"log_level": "debug"
	}`)

	conf, err := ParseServerConf(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", conf.Host)
	assert.Equal(t, 3100, conf.Port)
	assert.Equal(t, "/tmp/kvd", conf.DBPath)
	assert.Equal(t, []NamespaceConf{{Name: "test"}, {Name: "cache", DefaultTTL: 300}}, conf.Namespaces)
	assert.Equal(t, map[string]string{"admin": "secret"}, conf.Users)
	assert.Equal(t, "127.0.0.1:3100", conf.Addr())
}

func TestParseYAML(t *testing.T) {
	path := writeConf(t, "kvd.yaml", `
host: 0.0.0.0
port: 3000
namespaces:
  - name: test
    default_ttl: 60
metric_addr: 127.0.0.1:9200
`)

	conf, err := ParseServerConf(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", conf.Host)
	assert.Equal(t, int32(60), conf.Namespaces[0].DefaultTTL)
	assert.Equal(t, "127.0.0.1:9200", conf.MetricAddr)
	assert.Equal(t, "info", conf.LogLevel)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := ParseServerConf(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = ParseServerConf(writeConf(t, "bad.json", `{"port": `))
	assert.Error(t, err)

	_, err = ParseServerConf(writeConf(t, "empty-ns.json", `{"namespaces": []}`))
	assert.Error(t, err)

	_, err = ParseServerConf(writeConf(t, "dup.json", `{"namespaces": [{"name": "a"}, {"name": "a"}]}`))
	assert.Error(t, err)
}
