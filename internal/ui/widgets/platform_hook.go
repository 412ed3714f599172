package widgets

// PlatformHook adjusts a button once the host has placed it in a window.
type PlatformHook interface {
	Attached(b *OneHotButton)
}

// PlatformHookFunc adapts a function to PlatformHook.
type PlatformHookFunc func(b *OneHotButton)

// Attached calls f(b).
func (f PlatformHookFunc) Attached(b *OneHotButton) {
	f(b)
}

// Attach runs hook on b. A nil hook does nothing.
func Attach(b *OneHotButton, hook PlatformHook) {
	if hook == nil || b == nil {
		return
	}
	hook.Attached(b)
}
