package digivoice

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/srsampson/DigiVoice/internal/codebook"
)

// Option configures a new Encoder or Decoder. Options only take effect at
// construction: codebooks and FFT plans cannot change once a handle is
// built.
type Option func(*config)

type config struct {
	tables *codebook.Tables
	logger *log.Logger
}

// WithCodebooks overrides the default placeholder VQ codebooks with tables
// a caller loaded itself, e.g. via codebook.LoadYAML.
func WithCodebooks(t *codebook.Tables) Option {
	return func(c *config) { c.tables = t }
}

// WithLogger overrides the default stderr/Warn-level logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{
		tables: codebook.Default(),
		logger: log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
