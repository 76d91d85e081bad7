package tools

import (
	"context"

	"go.uber.org/zap"

	"github.com/HendryAvila/personamatch/internal/matching"
)

// recordOutcome logs a resolution and, when a recorder is wired, appends it
// to the history. Recording is best-effort: a failure is logged and the
// resolution is still returned to the caller.
func recordOutcome(ctx context.Context, rec Recorder, logger *zap.Logger, mode string, answers []matching.Answer, res matching.Result) string {
	logger.Debug("persona resolved",
		zap.String("mode", mode),
		zap.String("status", string(res.Status)),
		zap.String("key", res.Key),
		zap.String("requested", res.RequestedSlug),
		zap.String("resolved", res.ResolvedSlug),
		zap.Bool("fallback", res.UsedFallback),
		zap.Bool("energy_fallback", res.UsedEnergyFallback),
	)
	if rec == nil {
		return ""
	}
	r, err := rec.RecordResolution(ctx, mode, answers, res)
	if err != nil {
		logger.Warn("recording resolution failed", zap.String("mode", mode), zap.Error(err))
		return ""
	}
	return r.ID
}
