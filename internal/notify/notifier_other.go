//go:build !linux && !darwin

package notify

func newPlatformNotifier(Settings) Notifier {
	return beeepNotifier{}
}
