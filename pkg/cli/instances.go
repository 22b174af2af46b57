package cli

import (
	"fmt"

	"github.com/convox/stdcli"
	"github.com/dustin/go-humanize"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

func init() {
	registerWithoutProvider("instances", "list benchmark instance types", Instances, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagFile, flagInstances},
		Validate: stdcli.Args(0),
	})
}

func Instances(_ structs.Provider, c *stdcli.Context) error {
	ts, err := currentInstanceTypes(c)
	if err != nil {
		return err
	}

	t := c.Table("ID", "ARCH", "VCPUS", "MEMORY", "CONTAINER")

	for _, it := range ts {
		cm, err := it.ContainerMemory()
		if err != nil {
			return err
		}

		t.AddRow(it.ID, it.Architecture, fmt.Sprintf("%d", it.Vcpus), mib(it.MemoryMiB), mib(cm))
	}

	return t.Print()
}

func mib(m int) string {
	return humanize.IBytes(uint64(m) * 1024 * 1024)
}
