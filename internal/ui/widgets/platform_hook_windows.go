//go:build windows

package widgets

// DefaultPlatformHook keeps one-hot buttons out of the keyboard tab order,
// matching native Windows toggle groups.
func DefaultPlatformHook() PlatformHook {
	return PlatformHookFunc(func(b *OneHotButton) {
		b.SetTabStop(false)
	})
}
