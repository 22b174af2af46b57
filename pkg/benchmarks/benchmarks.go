// Package benchmarks holds the static configuration of the S3
// benchmark fleet: which EC2 instance types get a Batch job, how long
// jobs may run, and what the containers execute.
package benchmarks

import (
	"fmt"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

const (
	PerInstanceJobTimeoutHours  = 12
	OrchestratorJobTimeoutHours = 48
)

// InstanceTypes returns the default benchmark fleet
func InstanceTypes() structs.InstanceTypes {
	return structs.InstanceTypes{
		{ID: "c5n.18xlarge", Vcpus: 72, MemoryMiB: 196608, Architecture: structs.ArchitectureX86_64},
		{ID: "c6gn.16xlarge", Vcpus: 64, MemoryMiB: 131072, Architecture: structs.ArchitectureArm64},
		{ID: "c6in.32xlarge", Vcpus: 128, MemoryMiB: 262144, Architecture: structs.ArchitectureX86_64},
		{ID: "c7gn.16xlarge", Vcpus: 64, MemoryMiB: 131072, Architecture: structs.ArchitectureArm64},
	}
}

// OrchestratorInstanceType returns the type the orchestrator job runs
// on. c6g.medium is the 2nd cheapest type Batch supports; a1.medium is
// cheaper but Amazon Linux 2023 dropped 1st gen Gravitons.
func OrchestratorInstanceType() structs.InstanceType {
	return structs.InstanceType{
		ID:           "c6g.medium",
		Vcpus:        1,
		MemoryMiB:    2048,
		Architecture: structs.ArchitectureArm64,
	}
}

// Validate checks a fleet for per-type problems and for resource name
// collisions across the list
func Validate(ts structs.InstanceTypes) error {
	names := map[string]bool{}

	for _, t := range ts {
		if err := t.Validate(); err != nil {
			return err
		}

		name := t.ResourceName()

		if names[name] {
			return structs.ConfigurationError(fmt.Sprintf("instance type %s: resource name %s already taken", t.ID, name))
		}

		names[name] = true
	}

	return nil
}
