package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// beeepNotifier is the portable backend. beeep has no notion of timeouts or
// named sounds; a configured sound turns the notification into an alert.
type beeepNotifier struct{}

func (beeepNotifier) Notify(_ context.Context, n Notification) error {
	if n.Sound != "" {
		return beeep.Alert(n.Title, n.Body, n.Icon)
	}
	return beeep.Notify(n.Title, n.Body, n.Icon)
}
