// Package config resolves exporter settings from command-line flags, the
// exporter YAML file, environment and the node's bitcoin.conf.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"gopkg.in/yaml.v3"

	"github.com/goodnatureofminers/bitcoin-exporter/internal/bitcoin"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/exporter"
)

const (
	// FileName is the exporter config file inside the application directory.
	FileName = "exporter.yaml"
	// NodeConfigFileName is the Bitcoin Core config file inside its data directory.
	NodeConfigFileName = "bitcoin.conf"

	// DefaultPort is the HTTP port of the metrics endpoint.
	DefaultPort = 8000
	// MinInterval is the shortest accepted poll interval.
	MinInterval = time.Second
)

// ErrCredentialsNotFound is returned when neither the environment nor bitcoin.conf provide credentials.
var ErrCredentialsNotFound = errors.New("bitcoin rpc credentials not found")

// File is the content of exporter.yaml. Zero fields are treated as unset.
type File struct {
	Port     int      `yaml:"port"`
	HostIP   string   `yaml:"host_ip"`
	RPCPort  int      `yaml:"rpc_port"`
	Interval Duration `yaml:"interval"`
}

// Duration accepts either integer seconds (60) or a Go duration string (1m30s).
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var seconds int64
	if err := value.Decode(&seconds); err == nil {
		*d = Duration(time.Duration(seconds) * time.Second)
		return nil
	}

	var text string
	if err := value.Decode(&text); err == nil {
		if parsed, err := time.ParseDuration(text); err == nil {
			*d = Duration(parsed)
			return nil
		}
	}
	return &yaml.TypeError{Errors: []string{
		fmt.Sprintf("line %d: cannot parse %q as interval", value.Line, value.Value),
	}}
}

// Overrides carries values given on the command line. Zero fields are treated as unset.
type Overrides struct {
	Port     int
	HostIP   string
	RPCPort  int
	Interval time.Duration
}

// Settings are the effective exporter settings.
type Settings struct {
	Port     int
	HostIP   string
	RPCPort  int
	Interval time.Duration
}

// Credentials authenticate against the node RPC interface.
type Credentials struct {
	User     string
	Password string
	Source   string
}

// AppDir returns the default exporter state directory (~/.bitcoinexporter on Linux).
func AppDir() string {
	return btcutil.AppDataDir("bitcoinexporter", false)
}

// NodeDir returns the default Bitcoin Core data directory for the platform.
func NodeDir() string {
	return btcutil.AppDataDir("bitcoin", false)
}

// LoadFile reads exporter.yaml from dir. A missing file yields an error wrapping
// os.ErrNotExist. When only some keys have invalid values the valid ones are
// still returned along with the error.
func LoadFile(dir string) (File, error) {
	var f File
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return f, fmt.Errorf("read exporter config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return f, fmt.Errorf("parse exporter config: %w", err)
		}
		return File{}, fmt.Errorf("parse exporter config: %w", err)
	}
	return f, nil
}

// Resolve applies flag > file > default precedence to every setting.
func Resolve(o Overrides, f File) Settings {
	return Settings{
		Port:     first(o.Port, f.Port, DefaultPort),
		HostIP:   first(o.HostIP, f.HostIP, bitcoin.DefaultHost),
		RPCPort:  first(o.RPCPort, f.RPCPort, bitcoin.DefaultPort),
		Interval: first(o.Interval, time.Duration(f.Interval), exporter.DefaultInterval),
	}
}

// Validate rejects settings the exporter cannot run with.
func (s Settings) Validate() error {
	if s.Interval < MinInterval {
		return fmt.Errorf("poll interval %s is below the minimum of %s", s.Interval, MinInterval)
	}
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("invalid port %d", s.Port)
	}
	if s.RPCPort < 0 || s.RPCPort > 65535 {
		return fmt.Errorf("invalid rpc port %d", s.RPCPort)
	}
	return nil
}

func first[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// LoadNodeConfig parses bitcoin.conf in dir into key/value pairs. Lines
// starting with '#' are skipped and each remaining line is split at its first '='.
func LoadNodeConfig(dir string) (map[string]string, error) {
	file, err := os.Open(filepath.Join(dir, NodeConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("open node config: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read node config: %w", err)
	}
	return values, nil
}

// ResolveCredentials prefers an explicit user/password pair (flags or
// environment) and falls back to rpcuser/rpcpassword from bitcoin.conf in nodeDir.
func ResolveCredentials(user, password, nodeDir string) (Credentials, error) {
	if user != "" && password != "" {
		return Credentials{User: user, Password: password, Source: "environment"}, nil
	}

	values, err := LoadNodeConfig(nodeDir)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrCredentialsNotFound, err)
	}
	if values["rpcuser"] == "" || values["rpcpassword"] == "" {
		return Credentials{}, fmt.Errorf("%w: rpcuser/rpcpassword missing in %s", ErrCredentialsNotFound,
			filepath.Join(nodeDir, NodeConfigFileName))
	}
	return Credentials{
		User:     values["rpcuser"],
		Password: values["rpcpassword"],
		Source:   NodeConfigFileName,
	}, nil
}
