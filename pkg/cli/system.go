package cli

import (
	"github.com/convox/stdcli"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

func init() {
	register("install", "install the benchmark stack", Install, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.SystemInstallOptions{}), flagFile, flagInstances, flagName),
		Validate: stdcli.Args(0),
	})

	register("status", "get information about the stack", Status, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagName},
		Validate: stdcli.Args(0),
	})

	register("uninstall", "uninstall the benchmark stack", Uninstall, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagName},
		Validate: stdcli.Args(0),
	})

	register("update", "update the benchmark stack", Update, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.SystemUpdateOptions{}), flagFile, flagInstances, flagName),
		Validate: stdcli.Args(0),
	})
}

func Install(p structs.Provider, c *stdcli.Context) error {
	var opts structs.SystemInstallOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	ts, err := currentInstanceTypes(c)
	if err != nil {
		return err
	}

	c.Startf("Installing stack")

	id, err := p.SystemInstall(ts, opts)
	if err != nil {
		return err
	}

	return c.OK(id)
}

func Status(p structs.Provider, c *stdcli.Context) error {
	s, err := p.SystemGet()
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Name", s.Name)
	i.Add("Region", s.Region)
	i.Add("Status", s.Status)

	if commit := s.Outputs["GitCommit"]; commit != "" {
		i.Add("Commit", commit)
	}

	return i.Print()
}

func Uninstall(p structs.Provider, c *stdcli.Context) error {
	c.Startf("Uninstalling stack")

	if err := p.SystemUninstall(); err != nil {
		return err
	}

	return c.OK()
}

func Update(p structs.Provider, c *stdcli.Context) error {
	var opts structs.SystemUpdateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	ts, err := currentInstanceTypes(c)
	if err != nil {
		return err
	}

	c.Startf("Updating stack")

	if err := p.SystemUpdate(ts, opts); err != nil {
		return err
	}

	return c.OK()
}
