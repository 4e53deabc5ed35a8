// Package cpuinfo reports the host platform for benchmark and diagnostic
// output.
//
// Hashing never branches on these flags; every platform runs the same
// portable code. Feature detection is platform-specific and set at init.
package cpuinfo

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// features is filled by the platform-specific init.
var features []string

// Info describes the host.
type Info struct {
	OS        string   `json:"os"`
	Arch      string   `json:"arch"`
	GoVersion string   `json:"go_version"`
	NumCPU    int      `json:"num_cpu"`
	Model     string   `json:"model,omitempty"`
	BigEndian bool     `json:"big_endian"`
	Features  []string `json:"features"`
}

// Detect collects Info for the running process.
func Detect() Info {
	return Info{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Model:     modelName(),
		BigEndian: cpu.IsBigEndian,
		Features:  Features(),
	}
}

// Features returns the detected CPU features relevant to hashing
// throughput (wide loads, fast multiply, CRC).
func Features() []string {
	return append([]string(nil), features...)
}

// Endianness returns "big" or "little".
func (i Info) Endianness() string {
	if i.BigEndian {
		return "big"
	}
	return "little"
}

func modelName() string {
	switch runtime.GOOS {
	case "linux":
		data, err := os.ReadFile("/proc/cpuinfo")
		if err != nil {
			return ""
		}
		return parseModelName(data)
	case "darwin":
		out, err := exec.Command("sysctl", "-n", "machdep.cpu.brand_string").Output()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(out))
	default:
		return ""
	}
}

// parseModelName extracts the first "model name" entry of /proc/cpuinfo.
func parseModelName(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if ok && strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
