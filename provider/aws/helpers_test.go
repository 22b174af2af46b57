package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/stretchr/testify/assert"
)

func TestUpperName(t *testing.T) {
	assert.Equal(t, "C5n18xlarge", upperName("c5n-18xlarge"))
	assert.Equal(t, "C6gMedium", upperName("c6g-medium"))
	assert.Equal(t, "Mac2", upperName("mac2"))
	assert.Equal(t, "", upperName(""))
}

func TestCs(t *testing.T) {
	assert.Equal(t, "value", cs(aws.String("value"), "default"))
	assert.Equal(t, "default", cs(nil, "default"))
}

func TestAwsError(t *testing.T) {
	assert.Equal(t, "ValidationError", awsError(awserr.New("ValidationError", "nope", nil)))
	assert.Equal(t, "", awsError(assert.AnError))
	assert.Equal(t, "", awsError(nil))
}

func TestStackOutputs(t *testing.T) {
	stack := &cloudformation.Stack{
		Outputs: []*cloudformation.Output{
			{OutputKey: aws.String("GitCommit"), OutputValue: aws.String("abc123")},
		},
	}

	assert.Equal(t, map[string]string{"GitCommit": "abc123"}, stackOutputs(stack))
}

func TestStackParameters(t *testing.T) {
	stack := &cloudformation.Stack{
		Parameters: []*cloudformation.Parameter{
			{ParameterKey: aws.String("Vpc"), ParameterValue: aws.String("vpc-12345678")},
			{ParameterKey: aws.String("Subnets"), ParameterValue: aws.String("subnet-1,subnet-2")},
		},
	}

	assert.Equal(t, map[string]string{
		"Subnets": "subnet-1,subnet-2",
		"Vpc":     "vpc-12345678",
	}, stackParameters(stack))
}
