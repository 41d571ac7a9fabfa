package broker

import (
	"log/slog"

	"github.com/casualjim/broker/pkg/copyx"
	"github.com/fogfish/opts"
)

type settings struct {
	logger  *slog.Logger
	copier  copyx.Func
	channel string
}

// Option configures a dispatcher created by NewRelay or NewTopic.
type Option = opts.Option[settings]

var (
	// WithLogger sets the logger a dispatcher reports lifecycle events to.
	// The default is slog.Default().
	WithLogger = opts.ForName[settings, *slog.Logger]("logger")

	// WithCopier replaces the function used to isolate every delivered message.
	// Messages implementing copyx.Cloner always copy themselves. The default is
	// copyx.Deep.
	WithCopier = opts.ForName[settings, copyx.Func]("copier")

	// WithChannel tags a dispatcher with the name of the channel it serves.
	// Channel registries set it, a directly constructed dispatcher has no name.
	WithChannel = opts.ForName[settings, string]("channel")
)

func newSettings(options []Option) settings {
	s := settings{
		logger: slog.Default(),
		copier: copyx.Deep,
	}
	if err := opts.Apply(&s, options); err != nil {
		panic(err)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.copier == nil {
		s.copier = copyx.Deep
	}
	return s
}
