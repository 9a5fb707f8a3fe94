package migrations

import (
	"strings"

	"github.com/MKhiriev/mesto-api/internal/logger"
)

// gooseLogger sends goose output to the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msgf(strings.TrimSpace(format), v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "goose").Msgf(strings.TrimSpace(format), v...)
}
