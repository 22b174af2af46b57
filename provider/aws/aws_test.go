package aws_test

import (
	"bytes"
	"net/http/httptest"

	"github.com/convox/logger"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/test/awsutil"
	"github.com/sullis/aws-crt-s3-benchmarks/provider/aws"
)

func init() {
	logger.Output = &bytes.Buffer{}
}

const testCommit = "8f2e6f1c8a0f4a3e9b7d5c1a2e3f4a5b6c7d8e9f"

type AwsStub struct {
	*aws.Provider
	server *httptest.Server
}

func (a *AwsStub) Close() {
	a.server.Close()
}

// StubAwsProvider creates an httptest server with canned Request /
// Response cycles and a provider pointed at it
func StubAwsProvider(cycles ...awsutil.Cycle) *AwsStub {
	handler := awsutil.NewHandler(cycles)
	s := httptest.NewServer(handler)

	p := &aws.Provider{
		Region:    "us-test-1",
		Endpoint:  s.URL,
		Access:    "test-access",
		Secret:    "test-secret",
		Name:      "s3-benchmarks",
		Commit:    testCommit,
		SkipCache: true,
	}

	return &AwsStub{p, s}
}
