package cli

import (
	"github.com/convox/stdcli"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/benchmarks"
	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

type HandlerFunc func(structs.Provider, *stdcli.Context) error

var (
	flagFile      = stdcli.StringFlag("file", "f", "benchmark config file")
	flagInstances = stdcli.StringFlag("instances", "i", "only instance types matching glob")
	flagName      = stdcli.StringFlag("name", "n", "stack name")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}

func currentConfig(c *stdcli.Context) (*benchmarks.Config, error) {
	if f := c.String("file"); f != "" {
		return benchmarks.LoadConfig(f)
	}

	return benchmarks.DefaultConfig(), nil
}

func currentInstanceTypes(c *stdcli.Context) (structs.InstanceTypes, error) {
	cfg, err := currentConfig(c)
	if err != nil {
		return nil, err
	}

	return benchmarks.Filter(cfg.InstanceTypes, c.String("instances"))
}
