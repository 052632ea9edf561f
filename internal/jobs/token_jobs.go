package jobs

import (
	"context"
	"time"

	"influencer-platform-backend/internal/logger"
)

// PurgeExpiredTokens removes signup tokens that expired without being
// redeemed. Used tokens are kept for audit; the only other physical token
// delete is the approval compensation path.
func (jr *JobRunner) PurgeExpiredTokens() {
	jr.runWithRecovery("PurgeExpiredTokens", func() {
		ctx := context.Background()

		purged, err := jr.store.SignupTokenRepository.DeleteExpiredUnused(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to purge expired signup tokens", "error", err)
			return
		}
		logger.Info("Purged expired signup tokens", "count", purged)
	})
}
