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
	"k8s.io/klog/v2"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/algorithms"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/survivors"
)

func addDefaultingFuncs(scheme *runtime.Scheme) error {
	return RegisterDefaults(scheme)
}

func RegisterDefaults(scheme *runtime.Scheme) error {
	klog.V(5).InfoS("Registering defaults", "pluginName", PluginName)
	scheme.AddTypeDefaultingFunc(&GeneticAlgorithmArgs{}, func(obj interface{}) {
		SetDefaults_GeneticAlgorithmArgs(obj.(*GeneticAlgorithmArgs))
	})
	return nil
}

func SetDefaults_GeneticAlgorithmArgs(obj runtime.Object) {
	args := obj.(*GeneticAlgorithmArgs)

	if args.PopulationSize == 0 {
		args.PopulationSize = 50
	}
	if args.Generations == 0 {
		args.Generations = 100
	}
	if args.ParentSelection.TournamentSize == 0 {
		args.ParentSelection.TournamentSize = 2
	}
	if args.Crossover.Type == "" {
		args.Crossover.Type = algorithms.OnePointCrossoverName
	}
	if args.Crossover.Probability == 0 {
		args.Crossover.Probability = 0.9
	}
	if args.Crossover.Type == algorithms.KPointCrossoverName && args.Crossover.Points == 0 {
		args.Crossover.Points = 2
	}
	if args.Mutation.Type == "" {
		args.Mutation.Type = algorithms.RandomMutatorName
	}
	if args.Mutation.Probability == 0 {
		args.Mutation.Probability = 0.1
	}
	if args.SurvivorSelection.Strategy == "" {
		args.SurvivorSelection.Strategy = survivors.FitnessBasedName
	}
}
