package benchmarks

import (
	"fmt"
	"sort"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

var registry = map[string]func() framework.Problem{
	// ZDT problems with 30 variables (standard)
	"ZDT1": func() framework.Problem { return NewZDT1(30) },
	"ZDT2": func() framework.Problem { return NewZDT2(30) },
	"ZDT3": func() framework.Problem { return NewZDT3(30) },
	// 2 objectives, M + k - 1 variables
	"DTLZ1":      func() framework.Problem { return NewDTLZ1(7, 2) },
	"DTLZ2":      func() framework.Problem { return NewDTLZ2(12, 2) },
	"Projectile": func() framework.Problem { return NewProjectile(20) },
	"Tour":       func() framework.Problem { return NewTour(10) },
}

// NewProblem builds the standard instance of a named benchmark.
func NewProblem(name string) (framework.Problem, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown problem %q, expected one of %v", framework.ErrConfiguration, name, ProblemNames())
	}
	return build(), nil
}

// ProblemNames lists the registered benchmarks in sorted order.
func ProblemNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
