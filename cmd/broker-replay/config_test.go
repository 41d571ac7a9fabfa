package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[channels.orders]
kind = "topic"

[[channels.orders.subscribers]]
name = "billing"
topics = ["created", "paid"]

[[channels.orders.subscribers]]
name = "shipping"
topics = ["paid"]

[channels.audit]

[[channels.audit.subscribers]]
name = "log"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(testConfig)
	require.NoError(t, err)

	assert.Equal(t, []string{"audit", "orders"}, cfg.ChannelNames())

	orders := cfg.Channels["orders"]
	assert.Equal(t, kindTopic, orders.Kind)
	assert.Equal(t, defaultTopicPath, orders.TopicPath)
	require.Len(t, orders.Subscribers, 2)
	assert.Equal(t, "billing", orders.Subscribers[0].Name)
	assert.Equal(t, []string{"created", "paid"}, orders.Subscribers[0].Topics)

	audit := cfg.Channels["audit"]
	assert.Equal(t, kindRelay, audit.Kind)
	require.Len(t, audit.Subscribers, 1)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{
			name:   "no channels",
			config: ``,
		},
		{
			name:   "invalid toml",
			config: `[channels.orders`,
		},
		{
			name: "unknown kind",
			config: `[channels.orders]
kind = "fanout"`,
		},
		{
			name: "relay subscriber with topics",
			config: `[channels.audit]
[[channels.audit.subscribers]]
name = "log"
topics = ["x"]`,
		},
		{
			name: "topic subscriber without topics",
			config: `[channels.orders]
kind = "topic"
[[channels.orders.subscribers]]
name = "billing"`,
		},
		{
			name: "empty topic",
			config: `[channels.orders]
kind = "topic"
[[channels.orders.subscribers]]
name = "billing"
topics = [""]`,
		},
		{
			name: "subscriber without name",
			config: `[channels.audit]
[[channels.audit.subscribers]]
name = ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.config)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broker.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Channels, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("BROKER_TEST_VALUE", "set")
	assert.Equal(t, "set", envOr("BROKER_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", envOr("BROKER_TEST_UNSET_VALUE", "fallback"))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slogLevel("DEBUG"), logLevel("debug"))
	assert.Equal(t, slogLevel("WARN"), logLevel(" warn "))
	assert.Equal(t, slogLevel("INFO"), logLevel(""))
	assert.Equal(t, slogLevel("INFO"), logLevel("chatty"))
}
