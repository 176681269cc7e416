//go:build darwin

package notify

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// darwinNotifier posts through Notification Center. macOS decides how long a
// notification stays up, so Timeout is ignored. Attributing a notification
// to another application bundle needs terminal-notifier.
type darwinNotifier struct {
	bundleID string
	fallback Notifier
}

func newPlatformNotifier(s Settings) Notifier {
	return &darwinNotifier{
		bundleID: s.BundleID,
		fallback: beeepNotifier{},
	}
}

func (d *darwinNotifier) Notify(ctx context.Context, n Notification) error {
	if d.bundleID != "" {
		if path, err := exec.LookPath("terminal-notifier"); err == nil {
			return run(exec.CommandContext(ctx, path, terminalNotifierArgs(n, d.bundleID)...))
		}
		log.Printf("notify: terminal-notifier not installed, ignoring bundle id %q", d.bundleID)
	}

	osascript, err := exec.LookPath("osascript")
	if err != nil {
		return d.fallback.Notify(ctx, n)
	}
	return run(exec.CommandContext(ctx, osascript, "-e", displayScript(n)))
}

func terminalNotifierArgs(n Notification, bundleID string) []string {
	args := []string{"-title", n.Title, "-message", n.Body, "-sender", bundleID, "-sound", soundOrDefault(n.Sound)}
	if n.Icon != "" {
		args = append(args, "-appIcon", n.Icon)
	}
	return args
}

func displayScript(n Notification) string {
	return fmt.Sprintf("display notification %s with title %s sound name %s",
		appleScriptString(n.Body), appleScriptString(n.Title), appleScriptString(soundOrDefault(n.Sound)))
}

func appleScriptString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func run(cmd *exec.Cmd) error {
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}
