package layout

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Target describes the ABI target triple and the representation of the
// primitive types on it.
type Target struct {
	Triple   string `toml:"triple"`
	PtrSize  int    `toml:"ptr_size"`  // bytes
	PtrAlign int    `toml:"ptr_align"` // bytes
	IntSize  int    `toml:"int_size"`  // bytes
	IntAlign int    `toml:"int_align"` // bytes
}

// X86_64LinuxGNU is the default target.
func X86_64LinuxGNU() Target {
	return Target{
		Triple:   "x86_64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
		IntSize:  8,
		IntAlign: 8,
	}
}

// FromTOML decodes a target description. Unset fields keep the default
// target's values, so a description may override only the triple or only
// the pointer properties.
func FromTOML(data string) (Target, error) {
	t := X86_64LinuxGNU()
	if _, err := toml.Decode(data, &t); err != nil {
		return Target{}, fmt.Errorf("layout: decoding target: %w", err)
	}
	if t.PtrSize <= 0 || t.PtrAlign <= 0 || t.IntSize <= 0 || t.IntAlign <= 0 {
		return Target{}, fmt.Errorf("layout: target %q has non-positive size or alignment", t.Triple)
	}
	return t, nil
}
