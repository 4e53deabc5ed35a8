package cpuinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	info := Detect()

	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Positive(t, info.NumCPU)
	assert.Contains(t, []string{"big", "little"}, info.Endianness())
}

func TestFeaturesIsCopy(t *testing.T) {
	f := Features()
	if len(f) == 0 {
		t.Skip("no features detected on this platform")
	}
	f[0] = "mutated"
	assert.NotEqual(t, "mutated", Features()[0])
}

func TestParseModelName(t *testing.T) {
	data := []byte("processor\t: 0\nvendor_id\t: GenuineIntel\nmodel name\t: Intel(R) Xeon(R) CPU @ 2.20GHz\nflags\t: fpu\n")

	assert.Equal(t, "Intel(R) Xeon(R) CPU @ 2.20GHz", parseModelName(data))
	assert.Equal(t, "", parseModelName([]byte("processor\t: 0\n")))
}
