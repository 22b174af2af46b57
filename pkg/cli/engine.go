package cli

import (
	"github.com/convox/stdcli"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/benchmarks"
	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
	"github.com/sullis/aws-crt-s3-benchmarks/provider/aws"
)

type Engine struct {
	*stdcli.Engine
	Provider structs.Provider
}

func (e *Engine) Command(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(e.currentProvider(c), c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) CommandWithoutProvider(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(nil, c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		if c.Provider {
			e.Command(c.Command, c.Description, c.Handler, c.Opts)
		} else {
			e.CommandWithoutProvider(c.Command, c.Description, c.Handler, c.Opts)
		}
	}
}

func (e *Engine) currentProvider(c *stdcli.Context) structs.Provider {
	if e.Provider != nil {
		return e.Provider
	}

	p := aws.FromEnv()

	if name := c.String("name"); name != "" {
		p.Name = name
	}

	if file := c.String("file"); file != "" {
		cfg, err := benchmarks.LoadConfig(file)
		if err != nil {
			c.Fail(err)
		}

		p.Config = cfg
	}

	return p
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     HandlerFunc
	Opts        stdcli.CommandOptions
	Provider    bool
}

func register(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Provider:    true,
	})
}

func registerWithoutProvider(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Provider:    false,
	})
}
