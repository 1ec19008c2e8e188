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
	"fmt"
	"math"
	"os"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/idaholab/raven/pkg/api/v1alpha1"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/algorithms"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/analysis"
)

// Export converts a run into its persisted form. Non-finite values, which
// JSON cannot carry, are left out.
func Export(name, problem string, args *GeneticAlgorithmArgs, result *algorithms.Result) *v1alpha1.SolutionExport {
	final := result.Final
	ages := final.AgesOrZero()

	individuals := make([]v1alpha1.Individual, final.Size())
	for i := range individuals {
		ind := v1alpha1.Individual{
			Genes:   final.Population.Row(i).Clone(),
			Fitness: finite(final.Fitness[i]),
			Age:     ages[i],
		}
		ind.Feasible = ind.Fitness != nil
		if ind.Feasible && len(final.Objectives) == final.Size() {
			ind.Objectives = append([]float64(nil), final.Objectives[i]...)
		}
		if len(final.Ranks) == final.Size() {
			ind.Rank = final.Ranks[i]
		}
		if len(final.CrowdingDistances) == final.Size() {
			ind.CrowdingDistance = finite(final.CrowdingDistances[i])
		}
		individuals[i] = ind
	}

	var front []v1alpha1.ObjectiveVector
	for _, p := range result.ParetoFront {
		if !allFinite(p) {
			continue
		}
		front = append(front, v1alpha1.ObjectiveVector{Values: append([]float64(nil), p...)})
	}

	history := make([]v1alpha1.GenerationSummary, len(result.History))
	for i, h := range result.History {
		history[i] = summary(h)
	}

	export := &v1alpha1.SolutionExport{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: v1alpha1.SolutionExportSpec{
			Problem:     problem,
			Variables:   append([]string(nil), final.Population.Variables...),
			Seed:        ptr.Deref(args.Seed, 0),
			Individuals: individuals,
			ParetoFront: front,
		},
		Status: v1alpha1.SolutionExportStatus{
			Generations: len(result.History) - 1,
			Elapsed:     metav1.Duration{Duration: result.Elapsed},
			History:     history,
		},
	}
	export.SetGroupVersionKind(v1alpha1.SchemeGroupVersion.WithKind("SolutionExport"))
	return export
}

// WriteExport stores export as YAML at path.
func WriteExport(path string, export *v1alpha1.SolutionExport) error {
	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("encoding solution: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing solution: %w", err)
	}
	return nil
}

func summary(h analysis.GenerationStats) v1alpha1.GenerationSummary {
	return v1alpha1.GenerationSummary{
		Generation:  h.Generation,
		BestFitness: finite(h.BestFitness),
		MeanFitness: finite(h.MeanFitness),
		StdFitness:  finite(h.StdFitness),
		Feasible:    h.Feasible,
		Unique:      h.Unique,
		FrontSize:   h.FrontSize,
		MaxAge:      h.MaxAge,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return ptr.To(v)
}

func allFinite(p []float64) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
