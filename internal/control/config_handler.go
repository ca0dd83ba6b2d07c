package control

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Kodylow/botimint/internal/config"
	"github.com/Kodylow/botimint/internal/logging"
)

// Config keys served by config.get. The Discord token is never exposed.
const (
	ConfigKeyRPCPath            = "rpc-path"
	ConfigKeyGuildID            = "guild-id"
	ConfigKeyStateDir           = "state-dir"
	ConfigKeyLogPath            = "log-path"
	ConfigKeyReportPath         = "report-path"
	ConfigKeyLogLevel           = "log-level"
	ConfigKeyMetricsAddr        = "metrics-addr"
	ConfigKeyPublishConcurrency = "publish-concurrency"
	ConfigKeyPID                = "pid"
)

// configEntry defines a config key with its getter and optional setter.
// A deferred key's empty value means "not set" rather than a valid value.
type configEntry struct {
	getter   func() string
	setter   func(string) error
	deferred bool
}

// ConfigRouter provides synchronized access to config values via the control protocol.
// The cfg pointer is captured by reference; handlers see values set after creation.
type ConfigRouter struct {
	mu      sync.RWMutex
	entries map[string]configEntry
	router  *Router
}

// NewConfigRouter creates a ConfigRouter for config.get / config.set / config.keys.
func NewConfigRouter(cfg *config.Config) *ConfigRouter {
	cr := &ConfigRouter{router: NewRouter()}
	cr.entries = map[string]configEntry{
		ConfigKeyRPCPath:     {getter: func() string { return cfg.RPCPath }},
		ConfigKeyGuildID:     {getter: func() string { return cfg.GuildID }, deferred: true},
		ConfigKeyStateDir:    {getter: func() string { return cfg.StateDir }},
		ConfigKeyLogPath:     {getter: func() string { return cfg.LogPath }},
		ConfigKeyReportPath:  {getter: func() string { return cfg.ReportPath }},
		ConfigKeyMetricsAddr: {getter: func() string { return cfg.MetricsAddr }, deferred: true},
		ConfigKeyPublishConcurrency: {
			getter: func() string { return strconv.Itoa(cfg.PublishConcurrency) },
		},
		ConfigKeyPID: {getter: func() string { return strconv.Itoa(os.Getpid()) }},
		ConfigKeyLogLevel: {
			getter: func() string { return cfg.LogLevel },
			setter: func(v string) error {
				v = strings.ToLower(v)
				if err := logging.SetLevelName(v); err != nil {
					return err
				}
				cfg.LogLevel = v
				return nil
			},
		},
	}

	cr.router.HandleFunc("get", cr.handleGet)
	cr.router.HandleFunc("set", cr.handleSet)
	cr.router.HandleFunc("keys", cr.handleKeys)

	return cr
}

// Router returns the underlying Router for mounting.
func (cr *ConfigRouter) Router() *Router { return cr.router }

func (cr *ConfigRouter) handleGet(_ context.Context, req *Request) *Message {
	key := req.Arg(0)
	if key == "" {
		return &Message{Error: "usage: config.get <key>"}
	}

	entry, ok := cr.entries[key]
	if !ok {
		return &Message{Error: fmt.Sprintf("unknown config key: %s", key)}
	}

	cr.mu.RLock()
	val := entry.getter()
	cr.mu.RUnlock()

	if val == "" && entry.deferred {
		return &Message{Error: fmt.Sprintf("%s is not set", key)}
	}
	return &Message{Response: val}
}

func (cr *ConfigRouter) handleSet(_ context.Context, req *Request) *Message {
	key, value := req.Arg(0), req.Arg(1)
	if key == "" || value == "" {
		return &Message{Error: "usage: config.set <key> <value>"}
	}

	entry, ok := cr.entries[key]
	if !ok {
		return &Message{Error: fmt.Sprintf("unknown config key: %s", key)}
	}
	if entry.setter == nil {
		return &Message{Error: fmt.Sprintf("%s is read-only at runtime", key)}
	}

	cr.mu.Lock()
	err := entry.setter(value)
	cr.mu.Unlock()
	if err != nil {
		return &Message{Error: err.Error()}
	}
	return &Message{Response: RespOK}
}

func (cr *ConfigRouter) handleKeys(_ context.Context, _ *Request) *Message {
	keys := make([]string, 0, len(cr.entries))
	for k := range cr.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Message{Response: strings.Join(keys, " ")}
}
