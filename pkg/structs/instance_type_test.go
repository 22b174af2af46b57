package structs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

func TestContainerMemory(t *testing.T) {
	it := structs.InstanceType{ID: "c5n.18xlarge", Vcpus: 72, MemoryMiB: 196608, Architecture: structs.ArchitectureX86_64}

	m, err := it.ContainerMemory()
	require.NoError(t, err)
	assert.Equal(t, 167117, m)
}

func TestContainerMemoryFloor(t *testing.T) {
	it := structs.InstanceType{ID: "t3.small", Vcpus: 2, MemoryMiB: 2048, Architecture: structs.ArchitectureX86_64}

	m, err := it.ContainerMemory()
	require.NoError(t, err)
	assert.Equal(t, 1536, m)
}

func TestContainerMemoryPure(t *testing.T) {
	it := structs.InstanceType{ID: "c6gn.16xlarge", Vcpus: 64, MemoryMiB: 131072, Architecture: structs.ArchitectureArm64}

	m1, err := it.ContainerMemory()
	require.NoError(t, err)

	m2, err := it.ContainerMemory()
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
	assert.Equal(t, 131072, it.MemoryMiB)
}

func TestContainerMemoryTooSmall(t *testing.T) {
	it := structs.InstanceType{ID: "t4g.nano", Vcpus: 2, MemoryMiB: 512, Architecture: structs.ArchitectureArm64}

	_, err := it.ContainerMemory()
	require.Error(t, err)
	assert.True(t, structs.ErrorConfiguration(err))
	assert.Contains(t, err.Error(), "t4g.nano")
}

func TestResourceName(t *testing.T) {
	assert.Equal(t, "c5n-18xlarge", structs.InstanceType{ID: "c5n.18xlarge"}.ResourceName())
	assert.Equal(t, "c6g-medium", structs.InstanceType{ID: "c6g.medium"}.ResourceName())
	assert.Equal(t, "mac2", structs.InstanceType{ID: "mac2"}.ResourceName())
}

func TestPlatform(t *testing.T) {
	assert.Equal(t, structs.PlatformLinuxArm64, structs.InstanceType{Architecture: structs.ArchitectureArm64}.Platform())
	assert.Equal(t, structs.PlatformLinuxAmd64, structs.InstanceType{Architecture: structs.ArchitectureX86_64}.Platform())
	assert.Equal(t, structs.PlatformLinuxAmd64, structs.InstanceType{}.Platform())
}

func TestValidate(t *testing.T) {
	it := structs.InstanceType{ID: "c5n.18xlarge", Vcpus: 72, MemoryMiB: 196608, Architecture: structs.ArchitectureX86_64}
	assert.NoError(t, it.Validate())

	bad := it
	bad.ID = ""
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, structs.ErrorConfiguration(err))

	bad = it
	bad.Vcpus = 0
	assert.Error(t, bad.Validate())

	bad = it
	bad.MemoryMiB = 0
	assert.Error(t, bad.Validate())

	bad = it
	bad.Architecture = "sparc"
	assert.Error(t, bad.Validate())
}
