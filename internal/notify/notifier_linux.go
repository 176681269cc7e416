//go:build linux

package notify

import (
	"context"
	"fmt"
	"log"

	dbusnotify "github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"
)

// dbusNotifier talks to the freedesktop notification service directly so the
// sound name hint and expire timeout reach the server.
type dbusNotifier struct {
	appName  string
	fallback Notifier
}

func newPlatformNotifier(s Settings) Notifier {
	return &dbusNotifier{
		appName:  s.AppName,
		fallback: beeepNotifier{},
	}
}

func (d *dbusNotifier) Notify(ctx context.Context, n Notification) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		log.Printf("notify: no session bus, using beeep: %v", err)
		return d.fallback.Notify(ctx, n)
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{
		"sound-name": dbus.MakeVariant(soundOrDefault(n.Sound)),
	}

	msg := dbusnotify.Notification{
		AppName:       d.appName,
		AppIcon:       n.Icon,
		Summary:       n.Title,
		Body:          n.Body,
		Hints:         hints,
		ExpireTimeout: n.Timeout,
	}
	if _, err := dbusnotify.SendNotification(conn, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
