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
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/algorithms"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/repair"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/sampling"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/survivors"
)

var (
	supportedCrossovers = []string{
		algorithms.OnePointCrossoverName,
		algorithms.TwoPointsCrossoverName,
		algorithms.UniformCrossoverName,
		algorithms.KPointCrossoverName,
	}
	supportedMutators = []string{
		algorithms.SwapMutatorName,
		algorithms.ScrambleMutatorName,
		algorithms.InversionMutatorName,
		algorithms.RandomMutatorName,
	}
	supportedInitializations = []string{"", sampling.MonteCarloName, sampling.GridName, sampling.PermutationName}
	supportedRepairs         = []string{"", repair.ReplacementRepairName}
)

// ValidateGeneticAlgorithmArgs validates the GeneticAlgorithm arguments
func ValidateGeneticAlgorithmArgs(obj runtime.Object) error {
	args := obj.(*GeneticAlgorithmArgs)
	var allErrs field.ErrorList

	if args.PopulationSize < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("populationSize"), args.PopulationSize, "must be at least 2"))
	}
	if args.Generations < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("generations"), args.Generations, "must not be negative"))
	}
	if args.Parallelism < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("parallelism"), args.Parallelism, "must not be negative"))
	}

	initPath := field.NewPath("initialization")
	if !contains(supportedInitializations, args.Initialization.Method) {
		allErrs = append(allErrs, field.NotSupported(initPath.Child("method"), args.Initialization.Method, supportedInitializations[1:]))
	}
	if args.Initialization.GridPoints < 0 {
		allErrs = append(allErrs, field.Invalid(initPath.Child("gridPoints"), args.Initialization.GridPoints, "must not be negative"))
	}

	if args.ParentSelection.TournamentSize < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("parentSelection", "tournamentSize"), args.ParentSelection.TournamentSize, "must be at least 2"))
	}

	crossoverPath := field.NewPath("crossover")
	if !contains(supportedCrossovers, args.Crossover.Type) {
		allErrs = append(allErrs, field.NotSupported(crossoverPath.Child("type"), args.Crossover.Type, supportedCrossovers))
	}
	allErrs = append(allErrs, validateProbability(crossoverPath.Child("probability"), args.Crossover.Probability)...)
	if args.Crossover.Type == algorithms.KPointCrossoverName && args.Crossover.Points < 1 {
		allErrs = append(allErrs, field.Invalid(crossoverPath.Child("points"), args.Crossover.Points, "kPointCrossover needs at least one cut point"))
	}

	mutationPath := field.NewPath("mutation")
	if !contains(supportedMutators, args.Mutation.Type) {
		allErrs = append(allErrs, field.NotSupported(mutationPath.Child("type"), args.Mutation.Type, supportedMutators))
	}
	allErrs = append(allErrs, validateProbability(mutationPath.Child("probability"), args.Mutation.Probability)...)

	if !contains(supportedRepairs, args.Repair.Strategy) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("repair", "strategy"), args.Repair.Strategy, supportedRepairs[1:]))
	}
	if !contains(survivors.Names(), args.SurvivorSelection.Strategy) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("survivorSelection", "strategy"), args.SurvivorSelection.Strategy, survivors.Names()))
	}

	return allErrs.ToAggregate()
}

func validateProbability(path *field.Path, p float64) field.ErrorList {
	if p < 0 || p > 1 {
		return field.ErrorList{field.Invalid(path, p, "must be between 0 and 1")}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
