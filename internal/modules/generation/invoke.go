package generation

import (
	"context"
	"time"

	"github.com/setforge/setforge-backend/internal/platform/logger"
)

// phaseTimer starts a named phase and returns a closure that stops it,
// logs the duration and hands it back.
func phaseTimer(log *logger.Logger, phase string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		log.Debug("pipeline phase complete", "phase", phase, "duration_ms", elapsed.Milliseconds())
		return elapsed
	}
}

// Invoke sends a compiled document to the provider and times the call.
func Invoke(ctx context.Context, provider TextGenerationProvider, log *logger.Logger, doc PromptDocument) (string, time.Duration, error) {
	done := phaseTimer(log, "generation")
	raw, err := provider.Invoke(ctx, doc.Messages())
	elapsed := done()
	if err != nil {
		return "", elapsed, err
	}
	return raw, elapsed, nil
}
