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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// SolutionExport is the persisted outcome of a genetic algorithm run: the
// surviving individuals of the last generation and the run history
type SolutionExport struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SolutionExportSpec   `json:"spec,omitempty"`
	Status SolutionExportStatus `json:"status,omitempty"`
}

// SolutionExportSpec describes the final population
type SolutionExportSpec struct {
	// Problem is the name of the optimized problem
	Problem string `json:"problem"`

	// Variables names the genes of every individual, in order
	Variables []string `json:"variables"`

	// Seed reproduces the run
	Seed int64 `json:"seed"`

	// Individuals is the final population in survivor order
	Individuals []Individual `json:"individuals"`

	// ParetoFront holds the distinct non-dominated objective vectors
	ParetoFront []ObjectiveVector `json:"paretoFront,omitempty"`
}

// Individual is one member of the final population. Infeasible individuals
// carry no fitness or objectives.
type Individual struct {
	Genes      []float64 `json:"genes"`
	Feasible   bool      `json:"feasible"`
	Fitness    *float64  `json:"fitness,omitempty"`
	Objectives []float64 `json:"objectives,omitempty"`
	Age        int       `json:"age"`

	// Rank is the Pareto front the individual belongs to, starting at 1
	Rank int `json:"rank,omitempty"`

	// CrowdingDistance is omitted for boundary individuals, whose distance is infinite
	CrowdingDistance *float64 `json:"crowdingDistance,omitempty"`
}

// ObjectiveVector is a point in objective space
type ObjectiveVector struct {
	Values []float64 `json:"values"`
}

// SolutionExportStatus defines the observed progress of the run
type SolutionExportStatus struct {
	// Generations is the number of completed breeding rounds
	Generations int `json:"generations"`

	// Elapsed is the wall time of the run
	Elapsed metav1.Duration `json:"elapsed"`

	// History has one entry per generation, the initial population first
	History []GenerationSummary `json:"history,omitempty"`
}

// GenerationSummary describes one generation. Fitness statistics are
// omitted when no individual was feasible.
type GenerationSummary struct {
	Generation  int      `json:"generation"`
	BestFitness *float64 `json:"bestFitness,omitempty"`
	MeanFitness *float64 `json:"meanFitness,omitempty"`
	StdFitness  *float64 `json:"stdFitness,omitempty"`
	Feasible    int      `json:"feasible"`
	Unique      int      `json:"unique"`
	FrontSize   int      `json:"frontSize,omitempty"`
	MaxAge      int      `json:"maxAge"`
}
