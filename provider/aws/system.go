package aws

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/sts"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/cache"
	"github.com/sullis/aws-crt-s3-benchmarks/pkg/helpers"
	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

var stackParameterKeys = []string{"Repository", "Subnets", "Vpc"}

// SystemGet returns the current state of the benchmark stack
func (p *Provider) SystemGet() (*structs.System, error) {
	log := Logger.At("SystemGet").Start()

	stack, err := p.describeStack(p.Name)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	s := &structs.System{
		Name:       p.Name,
		Region:     p.Region,
		Status:     strings.ToLower(cs(stack.StackStatus, "")),
		Outputs:    stackOutputs(stack),
		Parameters: stackParameters(stack),
	}

	log.Success()

	return s, nil
}

// SystemInstall creates the benchmark stack and returns its id. The
// provisioning service does the rest; failures there are surfaced
// unchanged and never retried.
func (p *Provider) SystemInstall(ts structs.InstanceTypes, opts structs.SystemInstallOptions) (string, error) {
	log := Logger.At("SystemInstall").Start()

	body, err := p.SystemTemplate(ts)
	if err != nil {
		log.Error(err)
		return "", err
	}

	params, err := p.installParameters(opts)
	if err != nil {
		log.Error(err)
		return "", err
	}

	req := &cloudformation.CreateStackInput{
		Capabilities: []*string{aws.String("CAPABILITY_IAM")},
		StackName:    aws.String(p.Name),
		TemplateBody: aws.String(string(body)),
	}

	for _, key := range stackParameterKeys {
		req.Parameters = append(req.Parameters, &cloudformation.Parameter{
			ParameterKey:   aws.String(key),
			ParameterValue: aws.String(params[key]),
		})
	}

	res, err := p.cloudformation().CreateStack(req)
	if awsError(err) == "AlreadyExistsException" {
		return "", fmt.Errorf("stack already exists: %s, run update instead", p.Name)
	}
	if err != nil {
		log.Error(err)
		return "", err
	}

	log.Success()

	return cs(res.StackId, ""), nil
}

// SystemUpdate updates the benchmark stack in place, reusing any
// parameter not explicitly changed
func (p *Provider) SystemUpdate(ts structs.InstanceTypes, opts structs.SystemUpdateOptions) error {
	log := Logger.At("SystemUpdate").Start()

	body, err := p.SystemTemplate(ts)
	if err != nil {
		log.Error(err)
		return err
	}

	changes := map[string]string{}

	if opts.Repository != nil {
		changes["Repository"] = *opts.Repository
	}
	if opts.Subnets != nil {
		changes["Subnets"] = *opts.Subnets
	}
	if opts.Vpc != nil {
		changes["Vpc"] = *opts.Vpc
	}

	req := &cloudformation.UpdateStackInput{
		Capabilities: []*string{aws.String("CAPABILITY_IAM")},
		StackName:    aws.String(p.Name),
		TemplateBody: aws.String(string(body)),
	}

	for _, key := range stackParameterKeys {
		if value, ok := changes[key]; ok {
			req.Parameters = append(req.Parameters, &cloudformation.Parameter{
				ParameterKey:   aws.String(key),
				ParameterValue: aws.String(value),
			})
		} else {
			req.Parameters = append(req.Parameters, &cloudformation.Parameter{
				ParameterKey:     aws.String(key),
				UsePreviousValue: aws.Bool(true),
			})
		}
	}

	_, err = p.cloudformation().UpdateStack(req)

	cache.Clear("describeStacks", p.Name)

	if awsError(err) == "ValidationError" && strings.Contains(err.Error(), "No updates are to be performed") {
		return fmt.Errorf("no updates are to be performed: %s", p.Name)
	}
	if err != nil {
		log.Error(err)
		return err
	}

	log.Success()

	return nil
}

// SystemUninstall deletes the benchmark stack
func (p *Provider) SystemUninstall() error {
	log := Logger.At("SystemUninstall").Start()

	_, err := p.cloudformation().DeleteStack(&cloudformation.DeleteStackInput{
		StackName: aws.String(p.Name),
	})

	cache.Clear("describeStacks", p.Name)

	if err != nil {
		log.Error(err)
		return err
	}

	log.Success()

	return nil
}

func (p *Provider) installParameters(opts structs.SystemInstallOptions) (map[string]string, error) {
	vpc := helpers.DefaultString(opts.Vpc, "")
	if vpc == "" {
		return nil, structs.ConfigurationError("vpc required")
	}

	subnets := helpers.DefaultString(opts.Subnets, "")
	if subnets == "" {
		ss, err := p.privateSubnets(vpc)
		if err != nil {
			return nil, err
		}
		subnets = ss
	}

	repository := helpers.DefaultString(opts.Repository, "")
	if repository == "" {
		r, err := p.defaultRepository()
		if err != nil {
			return nil, err
		}
		repository = r
	}

	return map[string]string{
		"Repository": repository,
		"Subnets":    subnets,
		"Vpc":        vpc,
	}, nil
}

// privateSubnets discovers subnets in the vpc that do not hand out
// public ips, the placement the compute environments expect
func (p *Provider) privateSubnets(vpc string) (string, error) {
	res, err := p.ec2().DescribeSubnets(&ec2.DescribeSubnetsInput{
		Filters: []*ec2.Filter{
			{Name: aws.String("vpc-id"), Values: []*string{aws.String(vpc)}},
		},
	})
	if err != nil {
		return "", err
	}

	subnets := []string{}

	for _, s := range res.Subnets {
		if s.MapPublicIpOnLaunch != nil && !*s.MapPublicIpOnLaunch {
			subnets = append(subnets, cs(s.SubnetId, ""))
		}
	}

	if len(subnets) == 0 {
		return "", structs.ConfigurationError(fmt.Sprintf("no private subnets found in vpc: %s", vpc))
	}

	return strings.Join(subnets, ","), nil
}

func (p *Provider) defaultRepository() (string, error) {
	res, err := p.sts().GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com/s3-benchmarks", cs(res.Account, ""), p.Region), nil
}
