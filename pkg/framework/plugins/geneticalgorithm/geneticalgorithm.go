/*
Copyright 2024 The RAVEN Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package geneticalgorithm

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/algorithms"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

const PluginName = "GeneticAlgorithm"

// GeneticAlgorithm runs the genetic algorithm configured by GeneticAlgorithmArgs
// against a single problem
type GeneticAlgorithm struct {
	logger  klog.Logger
	args    *GeneticAlgorithmArgs
	problem framework.Problem
	opts    []algorithms.Option
}

// New builds the optimizer from its arguments. args are defaulted and
// validated here, so callers may pass a partially filled object.
func New(ctx context.Context, args runtime.Object, problem framework.Problem, opts ...algorithms.Option) (*GeneticAlgorithm, error) {
	gaArgs, ok := args.(*GeneticAlgorithmArgs)
	if !ok {
		return nil, fmt.Errorf("want args to be of type GeneticAlgorithmArgs, got %T", args)
	}
	gaArgs = gaArgs.DeepCopy()
	Scheme.Default(gaArgs)
	if err := ValidateGeneticAlgorithmArgs(gaArgs); err != nil {
		return nil, fmt.Errorf("%w: %w", framework.ErrConfiguration, err)
	}
	if gaArgs.Seed == nil {
		gaArgs.Seed = ptr.To(time.Now().UnixNano())
	}
	logger := klog.FromContext(ctx).WithValues("plugin", PluginName)

	return &GeneticAlgorithm{
		logger:  logger,
		args:    gaArgs,
		problem: problem,
		opts:    opts,
	}, nil
}

// Name retrieves the plugin name
func (g *GeneticAlgorithm) Name() string {
	return PluginName
}

// Args returns the defaulted arguments, including the seed actually used
func (g *GeneticAlgorithm) Args() *GeneticAlgorithmArgs {
	return g.args.DeepCopy()
}

// Optimize evolves the problem and returns the final generation
func (g *GeneticAlgorithm) Optimize(ctx context.Context) (*algorithms.Result, error) {
	logger := klog.FromContext(klog.NewContext(ctx, g.logger))
	logger.V(2).Info("Optimizing", "problem", g.problem.Name(), "seed", *g.args.Seed)

	ga, err := algorithms.NewGeneticAlgorithm(ToConfig(g.args), g.problem, g.opts...)
	if err != nil {
		return nil, err
	}
	return ga.Run(klog.NewContext(ctx, logger))
}

// ToConfig flattens defaulted args into the optimizer configuration
func ToConfig(args *GeneticAlgorithmArgs) algorithms.Config {
	return algorithms.Config{
		PopulationSize:       args.PopulationSize,
		Generations:          args.Generations,
		CrossoverType:        args.Crossover.Type,
		CrossoverProbability: args.Crossover.Probability,
		CrossoverPoints:      args.Crossover.Points,
		MutationType:         args.Mutation.Type,
		MutationProbability:  args.Mutation.Probability,
		TournamentSize:       args.ParentSelection.TournamentSize,
		SurvivorSelection:    args.SurvivorSelection.Strategy,
		Repair:               args.Repair.Strategy,
		Initialization:       args.Initialization.Method,
		GridPoints:           args.Initialization.GridPoints,
		Parallelism:          args.Parallelism,
		Seed:                 uint64(ptr.Deref(args.Seed, 0)),
	}
}
