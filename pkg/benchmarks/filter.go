package benchmarks

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/structs"
)

// Filter returns the instance types whose id matches pattern, e.g.
// "c5n.*" or "c6*". An empty pattern matches everything.
func Filter(ts structs.InstanceTypes, pattern string) (structs.InstanceTypes, error) {
	if pattern == "" {
		return ts, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, structs.ConfigurationError(fmt.Sprintf("invalid instance pattern %q: %s", pattern, err))
	}

	matched := structs.InstanceTypes{}

	for _, t := range ts {
		if g.Match(t.ID) {
			matched = append(matched, t)
		}
	}

	return matched, nil
}
