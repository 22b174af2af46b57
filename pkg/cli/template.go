package cli

import (
	"github.com/convox/stdcli"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

func init() {
	register("template", "render the cloudformation template", Template, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagFile, flagInstances, flagName},
		Validate: stdcli.Args(0),
	})
}

func Template(p structs.Provider, c *stdcli.Context) error {
	ts, err := currentInstanceTypes(c)
	if err != nil {
		return err
	}

	data, err := p.SystemTemplate(ts)
	if err != nil {
		return err
	}

	if _, err := c.Write(append(data, '\n')); err != nil {
		return err
	}

	return nil
}
