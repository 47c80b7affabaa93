package woql

import (
	"io"
	"log/slog"

	"github.com/rlch/woql/internal"
	"github.com/rlch/woql/query"
)

// Config holds the options shared by [New] and [Parse].
type Config struct {
	// Logger receives debug events when a builder latches an error or a
	// source fails to parse. Defaults to discarding everything.
	Logger *slog.Logger
	// Graph is the graph that triple-family leaves appended by a [Builder]
	// read or write when no graph is given explicitly.
	Graph query.GraphType
	// MaxDepth bounds how deeply [Parse] lets calls, lists and path patterns
	// nest.
	MaxDepth int
}

// Configurer is a function that configures a woql Config.
type Configurer func(*Config)

func defaultConfig() *Config {
	return &Config{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Graph:    query.GraphInstance,
		MaxDepth: internal.DefaultMaxDepth,
	}
}

func newConfig(configurers []Configurer) *Config {
	cfg := defaultConfig()
	for _, c := range configurers {
		c(cfg)
	}
	return cfg
}

// WithLogger routes debug events to logger.
func WithLogger(logger *slog.Logger) Configurer {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithGraph sets the default graph for Triple, AddTriple, DeleteTriple and
// the other triple-family builder calls.
func WithGraph(graph query.GraphType) Configurer {
	return func(c *Config) {
		c.Graph = graph
	}
}

// WithMaxDepth bounds the nesting depth accepted by [Parse]. Non-positive
// values restore the default of 256.
func WithMaxDepth(depth int) Configurer {
	return func(c *Config) {
		if depth <= 0 {
			depth = internal.DefaultMaxDepth
		}
		c.MaxDepth = depth
	}
}
