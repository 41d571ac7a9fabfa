package broker

import "errors"

// Contract violations reported synchronously by the call that received the bad input.
var (
	ErrInvalidHandler     = errors.New("broker: handler must be a non-nil function")
	ErrInvalidTopic       = errors.New("broker: topic must be a non-empty string")
	ErrMissingExtractor   = errors.New("broker: topic dispatcher requires a topic extractor")
	ErrInvalidChannelName = errors.New("broker: channel name must be a non-empty string")
	ErrUncopyable         = errors.New("broker: message could not be copied")
)
