package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"downcard/internal/config"
)

var activeWriter io.Writer = os.Stdout

// Writer returns the destination Init configured. Request logging shares it
// so HTTP access logs land next to the application log.
func Writer() io.Writer {
	return activeWriter
}

// Init configures the global zerolog logger. With LOG_FILE set, output goes
// through a size-limited writer that truncates the file when it would exceed
// its cap. The returned closer is nil when logging to stdout.
func Init(cfg config.LogConfig) (io.Closer, error) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var output io.Writer = os.Stdout
	var closer io.Closer
	if cfg.File != "" {
		w, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return nil, err
		}
		output = w
		closer = w
	} else if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	activeWriter = output
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
	return closer, nil
}
