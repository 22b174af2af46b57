package aws

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/convox/logger"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/benchmarks"
	"github.com/sullis/aws-crt-s3-benchmarks/pkg/helpers"
)

var Logger = logger.New("ns=provider.aws")

type Provider struct {
	Region   string
	Endpoint string
	Access   string
	Secret   string
	Token    string

	// Name is the CloudFormation stack name
	Name string

	// Commit pins the git commit recorded in the stack outputs; when
	// empty it is read from the working directory's checkout
	Commit string

	Config *benchmarks.Config

	SkipCache bool
}

// FromEnv returns a new Provider from env
func FromEnv() *Provider {
	return &Provider{
		Region:   helpers.CoalesceString(os.Getenv("AWS_REGION"), "us-west-2"),
		Endpoint: os.Getenv("AWS_ENDPOINT"),
		Access:   os.Getenv("AWS_ACCESS_KEY_ID"),
		Secret:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Token:    os.Getenv("AWS_SESSION_TOKEN"),
		Name:     helpers.CoalesceString(os.Getenv("STACK_NAME"), "s3-benchmarks"),
		Commit:   os.Getenv("GIT_COMMIT"),
	}
}

/** services ****************************************************************************************/

func (p *Provider) config() *aws.Config {
	config := &aws.Config{}

	if p.Access != "" {
		config.Credentials = credentials.NewStaticCredentials(p.Access, p.Secret, p.Token)
	}

	if p.Region != "" {
		config.Region = aws.String(p.Region)
	}

	if p.Endpoint != "" {
		config.Endpoint = aws.String(p.Endpoint)
	}

	if os.Getenv("DEBUG") != "" {
		config.WithLogLevel(aws.LogDebugWithHTTPBody)
	}

	return config
}

func (p *Provider) cloudformation() *cloudformation.CloudFormation {
	return cloudformation.New(session.New(), p.config())
}

func (p *Provider) ec2() *ec2.EC2 {
	return ec2.New(session.New(), p.config())
}

func (p *Provider) sts() *sts.STS {
	return sts.New(session.New(), p.config())
}

func (p *Provider) benchConfig() *benchmarks.Config {
	if p.Config != nil {
		return p.Config
	}

	return benchmarks.DefaultConfig()
}
