//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func init() {
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasCRC32, "crc32")
	add(cpu.ARM64.HasPMULL, "pmull")
	add(cpu.ARM64.HasSVE2, "sve2")
}
