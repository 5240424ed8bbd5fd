//go:build windows && !disable_anti_debug_probe

package probe

import "golang.org/x/sys/windows"

type windowsProbe struct{}

func newProbe() Interface { return windowsProbe{} }

// BeingDebugged calls IsDebuggerPresent, which reads the BeingDebugged byte
// in the process environment block.
func (windowsProbe) BeingDebugged() bool {
	return windows.IsDebuggerPresent()
}
