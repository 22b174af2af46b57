package structs

import (
	"fmt"
	"strings"
)

const (
	ArchitectureArm64  = "arm64"
	ArchitectureX86_64 = "x86_64"
)

const (
	PlatformLinuxArm64 = "linux-arm64"
	PlatformLinuxAmd64 = "linux-amd64"
)

// memory the host keeps for itself; containers asking for more than
// what remains get stuck in the RUNNABLE state
const (
	reservedMemoryMinMiB  = 512
	reservedMemoryPercent = 15
)

type InstanceType struct {
	ID           string
	Vcpus        int
	MemoryMiB    int
	Architecture string
}

type InstanceTypes []InstanceType

// ResourceName converts the EC2 SKU to a name usable for Batch
// resources, e.g. "c5n.18xlarge" becomes "c5n-18xlarge"
func (t InstanceType) ResourceName() string {
	return strings.Replace(t.ID, ".", "-", -1)
}

// ContainerMemory returns the memory a benchmark container may request
// on this instance type. The reserve is a guess based on observed
// overhead of a few types (c5n.18xlarge needs ~3.8%, c6g.medium ~7.7%).
func (t InstanceType) ContainerMemory() (int, error) {
	reserved := t.MemoryMiB * reservedMemoryPercent / 100

	if reserved < reservedMemoryMinMiB {
		reserved = reservedMemoryMinMiB
	}

	if reserved >= t.MemoryMiB {
		return 0, ConfigurationError(fmt.Sprintf("instance type %s too small: %d MiB reserved of %d MiB total", t.ID, reserved, t.MemoryMiB))
	}

	return t.MemoryMiB - reserved, nil
}

// Platform returns the container image platform tag for this instance
// type, defaulting to amd64 for anything that is not arm64
func (t InstanceType) Platform() string {
	if t.Architecture == ArchitectureArm64 {
		return PlatformLinuxArm64
	}

	return PlatformLinuxAmd64
}

func (t InstanceType) Validate() error {
	if t.ID == "" {
		return ConfigurationError("instance type id required")
	}

	if t.Vcpus < 1 {
		return ConfigurationError(fmt.Sprintf("instance type %s: vcpus must be 1 or greater", t.ID))
	}

	if t.MemoryMiB < 1 {
		return ConfigurationError(fmt.Sprintf("instance type %s: memory must be 1 MiB or greater", t.ID))
	}

	switch t.Architecture {
	case ArchitectureArm64, ArchitectureX86_64:
	default:
		return ConfigurationError(fmt.Sprintf("instance type %s: unknown architecture: %s", t.ID, t.Architecture))
	}

	return nil
}

func (ts InstanceTypes) Len() int           { return len(ts) }
func (ts InstanceTypes) Less(i, j int) bool { return ts[i].ID < ts[j].ID }
func (ts InstanceTypes) Swap(i, j int)      { ts[i], ts[j] = ts[j], ts[i] }
