package benchmarks

import (
	"fmt"
	"io/ioutil"

	units "github.com/docker/go-units"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

type Config struct {
	InstanceTypes structs.InstanceTypes

	PerInstanceTimeoutHours  int
	OrchestratorTimeoutHours int

	PerInstanceCommand  []string
	OrchestratorCommand []string
}

type configFile struct {
	Instances []struct {
		ID     string `yaml:"id"`
		Vcpus  int    `yaml:"vcpus"`
		Memory string `yaml:"memory"`
		Arch   string `yaml:"arch"`
	} `yaml:"instances"`
	Timeouts struct {
		PerInstanceHours  int `yaml:"per_instance_hours"`
		OrchestratorHours int `yaml:"orchestrator_hours"`
	} `yaml:"timeouts"`
	Commands struct {
		PerInstance  string `yaml:"per_instance"`
		Orchestrator string `yaml:"orchestrator"`
	} `yaml:"commands"`
}

// DefaultConfig returns the built-in fleet and job settings
func DefaultConfig() *Config {
	return &Config{
		InstanceTypes:            InstanceTypes(),
		PerInstanceTimeoutHours:  PerInstanceJobTimeoutHours,
		OrchestratorTimeoutHours: OrchestratorJobTimeoutHours,
		PerInstanceCommand:       []string{"python3", "/per_instance_job.py"},
		OrchestratorCommand:      []string{"python3", "/orchestrator_job.py"},
	}
}

// LoadConfig reads a fleet definition from a yaml file, filling
// anything unset from the defaults. Memory accepts human sizes
// ("192GiB"); commands are shell-style strings.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var cf configFile

	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, structs.ConfigurationError(fmt.Sprintf("could not parse config %s: %s", path, err))
	}

	c := DefaultConfig()

	if len(cf.Instances) > 0 {
		ts := structs.InstanceTypes{}

		for _, i := range cf.Instances {
			mem, err := units.RAMInBytes(i.Memory)
			if err != nil {
				return nil, structs.ConfigurationError(fmt.Sprintf("instance type %s: invalid memory %q: %s", i.ID, i.Memory, err))
			}

			ts = append(ts, structs.InstanceType{
				ID:           i.ID,
				Vcpus:        i.Vcpus,
				MemoryMiB:    int(mem / units.MiB),
				Architecture: i.Arch,
			})
		}

		c.InstanceTypes = ts
	}

	if h := cf.Timeouts.PerInstanceHours; h > 0 {
		c.PerInstanceTimeoutHours = h
	}

	if h := cf.Timeouts.OrchestratorHours; h > 0 {
		c.OrchestratorTimeoutHours = h
	}

	if cmd := cf.Commands.PerInstance; cmd != "" {
		parts, err := shellquote.Split(cmd)
		if err != nil {
			return nil, structs.ConfigurationError(fmt.Sprintf("invalid per-instance command %q: %s", cmd, err))
		}
		c.PerInstanceCommand = parts
	}

	if cmd := cf.Commands.Orchestrator; cmd != "" {
		parts, err := shellquote.Split(cmd)
		if err != nil {
			return nil, structs.ConfigurationError(fmt.Sprintf("invalid orchestrator command %q: %s", cmd, err))
		}
		c.OrchestratorCommand = parts
	}

	if err := Validate(c.InstanceTypes); err != nil {
		return nil, err
	}

	return c, nil
}
