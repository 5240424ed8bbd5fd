//go:build !linux && !windows && !disable_anti_debug_probe

package probe

type genericProbe struct{}

func newProbe() Interface { return genericProbe{} }

// BeingDebugged always reports false on platforms with no wired-up check.
func (genericProbe) BeingDebugged() bool { return false }
