package aws

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/cache"
)

func awsError(err error) string {
	if ae, ok := err.(awserr.Error); ok {
		return ae.Code()
	}

	return ""
}

func cs(s *string, def string) string {
	if s != nil {
		return *s
	}

	return def
}

// upperName turns "c5n-18xlarge" into "C5n18xlarge" for use in
// CloudFormation logical ids
func upperName(name string) string {
	parts := strings.Split(name, "-")

	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[0:1]) + part[1:]
	}

	return strings.Join(parts, "")
}

func stackOutputs(stack *cloudformation.Stack) map[string]string {
	outputs := map[string]string{}

	for _, o := range stack.Outputs {
		outputs[cs(o.OutputKey, "")] = cs(o.OutputValue, "")
	}

	return outputs
}

func stackParameters(stack *cloudformation.Stack) map[string]string {
	parameters := map[string]string{}

	for _, p := range stack.Parameters {
		parameters[cs(p.ParameterKey, "")] = cs(p.ParameterValue, "")
	}

	return parameters
}

func (p *Provider) describeStacks(input *cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error) {
	res, ok := cache.Get("describeStacks", input.StackName).(*cloudformation.DescribeStacksOutput)
	if ok {
		return res, nil
	}

	res, err := p.cloudformation().DescribeStacks(input)
	if err != nil {
		return nil, err
	}

	if !p.SkipCache {
		if err := cache.Set("describeStacks", input.StackName, res, 5*time.Second); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (p *Provider) describeStack(name string) (*cloudformation.Stack, error) {
	res, err := p.describeStacks(&cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if ae, ok := err.(awserr.Error); ok && ae.Code() == "ValidationError" {
		return nil, errorNotFound(fmt.Sprintf("no such stack: %s", name))
	}
	if err != nil {
		return nil, err
	}
	if len(res.Stacks) != 1 {
		return nil, fmt.Errorf("could not load stack: %s", name)
	}

	return res.Stacks[0], nil
}
