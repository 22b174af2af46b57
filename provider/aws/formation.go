package aws

import (
	"fmt"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/benchmarks"
	"github.com/sullis/aws-crt-s3-benchmarks/pkg/helpers"
	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

type formationJob struct {
	Name           string
	Logical        string
	InstanceType   string
	Vcpus          int
	MemoryMiB      int
	Platform       string
	Command        []string
	TimeoutSeconds int
}

type formationParams struct {
	Jobs         []formationJob
	Orchestrator formationJob
	GitCommit    string
}

// SystemTemplate renders the CloudFormation template declaring one
// compute environment, job queue and job definition per instance type,
// plus the orchestrator resources that coordinate runs across them.
func (p *Provider) SystemTemplate(ts structs.InstanceTypes) ([]byte, error) {
	log := Logger.At("SystemTemplate").Start()

	if err := benchmarks.Validate(ts); err != nil {
		log.Error(err)
		return nil, err
	}

	cfg := p.benchConfig()

	jobs := make([]formationJob, 0, len(ts))

	// the orchestrator resources hold their own logical names
	logicals := map[string]bool{"Orchestrator": true}

	for _, t := range ts {
		mem, err := t.ContainerMemory()
		if err != nil {
			log.Error(err)
			return nil, err
		}

		logical := upperName(t.ResourceName())

		if logicals[logical] {
			err := structs.ConfigurationError(fmt.Sprintf("instance type %s: logical id %s already taken", t.ID, logical))
			log.Error(err)
			return nil, err
		}

		logicals[logical] = true

		jobs = append(jobs, formationJob{
			Name:         t.ResourceName(),
			Logical:      logical,
			InstanceType: t.ID,
			// compute environment capacity and job cpu both render from
			// this one field so they can not drift apart
			Vcpus:          t.Vcpus,
			MemoryMiB:      mem,
			Platform:       t.Platform(),
			Command:        cfg.PerInstanceCommand,
			TimeoutSeconds: cfg.PerInstanceTimeoutHours * 3600,
		})
	}

	commit, err := p.gitCommit()
	if err != nil {
		log.Error(err)
		return nil, err
	}

	ot := benchmarks.OrchestratorInstanceType()

	params := formationParams{
		Jobs: jobs,
		Orchestrator: formationJob{
			Name:           ot.ResourceName(),
			Logical:        "Orchestrator",
			InstanceType:   ot.ID,
			Vcpus:          ot.Vcpus,
			MemoryMiB:      256, // cheap and puny
			Platform:       ot.Platform(),
			Command:        cfg.OrchestratorCommand,
			TimeoutSeconds: cfg.OrchestratorTimeoutHours * 3600,
		},
		GitCommit: commit,
	}

	data, err := formationTemplate("benchmarks", params)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	log.Success()

	return data, nil
}

func (p *Provider) gitCommit() (string, error) {
	if p.Commit != "" {
		return p.Commit, nil
	}

	return helpers.GitCommit(".")
}
