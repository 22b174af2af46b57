package cli_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/cli"
	mockprovider "github.com/sullis/aws-crt-s3-benchmarks/pkg/mock/provider"
)

type result struct {
	Code   int
	Stdout string
	Stderr string
}

func (r *result) StdoutLines() int {
	return len(strings.Split(strings.TrimSuffix(r.Stdout, "\n"), "\n"))
}

func (r *result) StdoutLine(line int) string {
	return strings.Split(r.Stdout, "\n")[line]
}

func (r *result) RequireStdout(t *testing.T, lines []string) {
	t.Helper()
	require.Equal(t, strings.Join(lines, "\n"), strings.TrimSuffix(r.Stdout, "\n"))
}

func (r *result) RequireStderr(t *testing.T, lines []string) {
	t.Helper()
	require.Equal(t, strings.Join(lines, "\n"), strings.TrimSuffix(r.Stderr, "\n"))
}

func testClient(t *testing.T, fn func(*cli.Engine, *mockprovider.Provider)) {
	p := &mockprovider.Provider{}

	c := cli.New("s3bench", "test")
	c.Provider = p

	fn(c, p)

	p.AssertExpectations(t)
}

func testExecute(e *cli.Engine, cmd string, stdin io.Reader) (*result, error) {
	if stdin == nil {
		stdin = &bytes.Buffer{}
	}

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	e.Reader.Reader = stdin

	e.Writer.Color = false
	e.Writer.Stdout = &stdout
	e.Writer.Stderr = &stderr

	cp, err := shellquote.Split(cmd)
	if err != nil {
		return nil, err
	}

	code := e.Execute(cp)

	res := &result{
		Code:   code,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	return res, nil
}
