//go:build linux && !disable_anti_debug_probe

package probe

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

type linuxProbe struct{}

func newProbe() Interface { return linuxProbe{} }

// BeingDebugged reads /proc/self/status and checks TracerPid, the same
// signal `gdb`/`strace`/`ptrace(2)`-based tools all leave behind.
func (linuxProbe) BeingDebugged() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return false
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			return false
		}
		return pid != 0
	}
	return false
}
