package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/casualjim/broker"
	"github.com/casualjim/broker/channels"
	"github.com/casualjim/broker/extract"
	"github.com/casualjim/broker/pkg/slogx"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	errInvalidJSON = errors.New("invalid json")
	errNoMessage   = errors.New("no message")
)

// Stats summarizes a replay run.
type Stats struct {
	Lines      int
	Dispatched int
	Skipped    int
	Delivered  int
}

// Replayer feeds JSON lines of the form {"channel": "...", "message": {...}}
// into the configured channels and prints every delivery.
type Replayer struct {
	relays *channels.Relays[json.RawMessage]
	topics *channels.Topics[json.RawMessage]
	kinds  map[string]string
	out    io.Writer
	stats  Stats
}

func NewReplayer(cfg *Config, out io.Writer) (*Replayer, error) {
	rp := &Replayer{
		relays: channels.NewRelays[json.RawMessage](),
		topics: channels.NewTopics[json.RawMessage](),
		kinds:  make(map[string]string, len(cfg.Channels)),
		out:    out,
	}

	for _, name := range cfg.ChannelNames() {
		ch := cfg.Channels[name]
		rp.kinds[name] = ch.Kind

		switch ch.Kind {
		case kindRelay:
			relay, err := rp.relays.Get(name)
			if err != nil {
				return nil, err
			}
			for _, sc := range ch.Subscribers {
				var sub *broker.Subscription[json.RawMessage]
				sub, err = relay.Subscribe(func(msg json.RawMessage) {
					rp.print(name, sc.Name, sub.ID(), msg)
				})
				if err != nil {
					return nil, err
				}
			}
		case kindTopic:
			topic, err := rp.topics.Get(name, extract.Path[json.RawMessage](ch.TopicPath))
			if err != nil {
				return nil, err
			}
			for _, sc := range ch.Subscribers {
				for _, key := range sc.Topics {
					var sub *broker.Subscription[json.RawMessage]
					sub, err = topic.Subscribe(key, func(msg json.RawMessage) {
						rp.print(name, sc.Name, sub.ID(), msg)
					})
					if err != nil {
						return nil, err
					}
				}
			}
		}
		slog.Debug("channel ready", slogx.Channel(name), slog.String("kind", ch.Kind), slog.Int("subscribers", len(ch.Subscribers)))
	}
	return rp, nil
}

// Run replays every line of in until EOF or until ctx is done.
func (rp *Replayer) Run(ctx context.Context, in io.Reader) (Stats, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return rp.stats, err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rp.stats.Lines++

		if err := rp.replay(line); err != nil {
			rp.stats.Skipped++
			slog.Warn("skipping line", slog.Int("line", rp.stats.Lines), slogx.ByteString("input", line), slogx.Error(err))
			continue
		}
		rp.stats.Dispatched++
	}
	if err := scanner.Err(); err != nil {
		return rp.stats, fmt.Errorf("read input: %w", err)
	}
	return rp.stats, nil
}

func (rp *Replayer) replay(line []byte) error {
	if !gjson.ValidBytes(line) {
		return errInvalidJSON
	}

	name := gjson.GetBytes(line, "channel").String()
	msg := gjson.GetBytes(line, "message")
	if !msg.Exists() || msg.Type == gjson.Null {
		return errNoMessage
	}
	payload := json.RawMessage(msg.Raw)

	switch rp.kinds[name] {
	case kindRelay:
		relay, err := rp.relays.Get(name)
		if err != nil {
			return err
		}
		return relay.Dispatch(payload)
	case kindTopic:
		topic, err := rp.topics.Get(name, nil)
		if err != nil {
			return err
		}
		return topic.Dispatch(payload)
	default:
		return fmt.Errorf("unknown channel %q", name)
	}
}

func (rp *Replayer) print(channel, subscriber, subscription string, msg json.RawMessage) {
	annotated := []byte(msg)
	var err error
	for _, field := range [][2]string{
		{"_delivery.channel", channel},
		{"_delivery.subscriber", subscriber},
		{"_delivery.subscription", subscription},
	} {
		annotated, err = sjson.SetBytes(annotated, field[0], field[1])
		if err != nil {
			slog.Error("failed to annotate delivery", slogx.Channel(channel), slogx.Subscription(subscription), slogx.Error(err))
			annotated = msg
			break
		}
	}

	rp.stats.Delivered++
	fmt.Fprintf(rp.out, "%s %s %s\n", color.CyanString(channel), color.YellowString(subscriber), annotated)
}
