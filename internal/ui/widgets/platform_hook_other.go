//go:build !windows

package widgets

// DefaultPlatformHook does nothing outside Windows.
func DefaultPlatformHook() PlatformHook {
	return PlatformHookFunc(func(*OneHotButton) {})
}
