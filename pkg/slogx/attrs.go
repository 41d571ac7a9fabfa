package slogx

import (
	"log/slog"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
//
// Parameters:
//   - err: The error to be converted into a slog.Attr.
//
// Returns:
//   - slog.Attr: An attribute with the key "error" and the error's message as the value.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// ByteString creates a slog.Attr with the given key and a string representation of the byte slice value.
// It converts the byte slice to a string and uses slog.String to create the attribute.
//
// Parameters:
//   - key: The key for the attribute.
//   - value: The byte slice to be converted to a string.
//
// Returns:
//
//	A slog.Attr containing the key and the string representation of the byte slice value.
func ByteString(key string, value []byte) slog.Attr {
	return slog.String(key, string(value))
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"
	// KeyChannel is the key for the channel name attribute.
	KeyChannel = "channel"
	// KeyDispatcher is the key for the dispatcher instance id attribute.
	KeyDispatcher = "dispatcher"
	// KeySubscription is the key for the subscription id attribute.
	KeySubscription = "subscription"
	// KeyTopic is the key for the topic attribute.
	KeyTopic = "topic"
)

// LoggerName creates a slog.Attr with the provided logger name.
// The attribute key is defined by KeyLoggerName.
//
// Parameters:
//   - name: The name of the logger.
//
// Returns:
//
//	A slog.Attr containing the logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// Channel creates a slog.Attr carrying a channel name under KeyChannel.
// Dispatchers that were not created through a channel registry log an empty name.
func Channel(name string) slog.Attr {
	return slog.String(KeyChannel, name)
}

// Dispatcher creates a slog.Attr carrying a dispatcher instance id under KeyDispatcher.
func Dispatcher(id string) slog.Attr {
	return slog.String(KeyDispatcher, id)
}

// Subscription creates a slog.Attr carrying a subscription id under KeySubscription.
func Subscription(id string) slog.Attr {
	return slog.String(KeySubscription, id)
}

// Topic creates a slog.Attr carrying a topic key under KeyTopic.
func Topic(topic string) slog.Attr {
	return slog.String(KeyTopic, topic)
}
