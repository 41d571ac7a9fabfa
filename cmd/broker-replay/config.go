package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
)

const (
	kindRelay = "relay"
	kindTopic = "topic"

	defaultTopicPath = "type"
)

// Config is the routing file: the channels to create and who listens on them.
//
//	[channels.orders]
//	kind = "topic"
//	topic_path = "type"
//
//	[[channels.orders.subscribers]]
//	name = "billing"
//	topics = ["created", "paid"]
type Config struct {
	Channels map[string]ChannelConfig `toml:"channels"`
}

type ChannelConfig struct {
	Kind        string             `toml:"kind"`
	TopicPath   string             `toml:"topic_path"`
	Subscribers []SubscriberConfig `toml:"subscribers"`
}

type SubscriberConfig struct {
	Name   string   `toml:"name"`
	Topics []string `toml:"topics"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg.normalize()
}

func ParseConfig(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalize()
}

// ChannelNames returns the configured channel names, sorted.
func (c *Config) ChannelNames() []string {
	return slices.Sorted(maps.Keys(c.Channels))
}

func (c *Config) normalize() (*Config, error) {
	if len(c.Channels) == 0 {
		return nil, errors.New("config: no channels defined")
	}

	for name, ch := range c.Channels {
		if ch.Kind == "" {
			ch.Kind = kindRelay
		}
		switch ch.Kind {
		case kindRelay:
			for _, sub := range ch.Subscribers {
				if len(sub.Topics) > 0 {
					return nil, fmt.Errorf("config: channel %q: relay subscriber %q cannot have topics", name, sub.Name)
				}
			}
		case kindTopic:
			if ch.TopicPath == "" {
				ch.TopicPath = defaultTopicPath
			}
			for _, sub := range ch.Subscribers {
				if len(sub.Topics) == 0 {
					return nil, fmt.Errorf("config: channel %q: topic subscriber %q needs at least one topic", name, sub.Name)
				}
				if slices.Contains(sub.Topics, "") {
					return nil, fmt.Errorf("config: channel %q: subscriber %q has an empty topic", name, sub.Name)
				}
			}
		default:
			return nil, fmt.Errorf("config: channel %q: unknown kind %q", name, ch.Kind)
		}

		for _, sub := range ch.Subscribers {
			if sub.Name == "" {
				return nil, fmt.Errorf("config: channel %q: subscriber without a name", name)
			}
		}
		c.Channels[name] = ch
	}
	return c, nil
}
