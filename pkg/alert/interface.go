package alert

import (
	"context"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
)

// Alerter notifies the site owner about events worth an email. Sending is
// best-effort: callers log a failure and move on, a broken mail server must
// never fail the originating request.
type Alerter interface {
	ContactReceived(ctx context.Context, submission *model.ContactSubmission) error
}
