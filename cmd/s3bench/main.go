package main

import (
	"os"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.New("s3bench", version).Execute(os.Args[1:]))
}
