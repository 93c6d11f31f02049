package etc

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type ServerConf struct {
	Host         string            `json:"host" yaml:"host"`
	Port         int               `json:"port" yaml:"port"`
	DBPath       string            `json:"db_dir" yaml:"db_dir"`
	Namespaces   []NamespaceConf   `json:"namespaces" yaml:"namespaces"`
	Users        map[string]string `json:"users" yaml:"users"`
	LogLevel     string            `json:"log_level" yaml:"log_level"`
	MetricAddr   string            `json:"metric_addr" yaml:"metric_addr"`
	GraphiteAddr string            `json:"graphite_addr" yaml:"graphite_addr"`
}

type NamespaceConf struct {
	Name       string `json:"name" yaml:"name"`
	DefaultTTL int32  `json:"default_ttl" yaml:"default_ttl"`
}

func MakeDefaultConfig() ServerConf {
	return ServerConf{
		Host: "127.0.0.1",
		Port: 3000,
		Namespaces: []NamespaceConf{
			{Name: "test"},
		},
		LogLevel: "info",
	}
}

func (c *ServerConf) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConf) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if len(c.Namespaces) == 0 {
		return fmt.Errorf("no namespace configured")
	}
	seen := map[string]bool{}
	for _, ns := range c.Namespaces {
		if ns.Name == "" {
			return fmt.Errorf("namespace with empty name")
		}
		if seen[ns.Name] {
			return fmt.Errorf("namespace %s configured twice", ns.Name)
		}
		if ns.DefaultTTL < 0 {
			return fmt.Errorf("namespace %s: negative default_ttl %d", ns.Name, ns.DefaultTTL)
		}
		seen[ns.Name] = true
	}
	return nil
}

// ParseServerConf reads a JSON config, or YAML when the file ends in .yaml or .yml.
// Fields missing from the file keep their MakeDefaultConfig values.
func ParseServerConf(confPath string) (ServerConf, error) {
	confBytes, err := os.ReadFile(confPath)
	if err != nil {
		return ServerConf{}, fmt.Errorf("failed to open config file: %w", err)
	}
	conf := MakeDefaultConfig()
	switch strings.ToLower(filepath.Ext(confPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(confBytes, &conf)
	default:
		err = json.Unmarshal(confBytes, &conf)
	}
	if err != nil {
		return ServerConf{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return ServerConf{}, fmt.Errorf("invalid config file %s: %w", confPath, err)
	}
	return conf, nil
}
