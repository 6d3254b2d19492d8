// Package revalidate pings the frontend's ISR revalidation endpoint after a
// content mutation so statically rendered pages pick up the change.
package revalidate

import (
	"time"

	imrocreq "github.com/imroc/req/v3"

	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
)

type Notifier struct {
	client *imrocreq.Client
	url    string
	secret string
}

// New returns nil when no revalidation URL is configured.
func New(url, secret string) *Notifier {
	if url == "" {
		return nil
	}
	return &Notifier{
		client: imrocreq.C().SetTimeout(5 * time.Second),
		url:    url,
		secret: secret,
	}
}

// ContentChanged fires the webhook. Best-effort: failures are logged, the
// mutation that triggered the call has already committed.
func (n *Notifier) ContentChanged(entity string) {
	resp, err := n.client.R().
		SetBodyJsonMarshal(map[string]string{
			"secret": n.secret,
			"entity": entity,
		}).
		Post(n.url)
	if err != nil {
		logutils.Log.Errorf("revalidation request failed: %v", err)
		return
	}
	if resp.IsErrorState() {
		logutils.Log.Errorf("revalidation failed with status %d", resp.StatusCode)
	}
}
