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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// GeneticAlgorithmArgs holds arguments used to configure the GeneticAlgorithm optimizer.
type GeneticAlgorithmArgs struct {
	metav1.TypeMeta `json:",inline"`

	// PopulationSize is the number of chromosomes kept between generations
	PopulationSize int `json:"populationSize,omitempty"`
	// Generations is the number of breeding rounds after the initial population
	Generations int `json:"generations,omitempty"`
	// Seed makes a run reproducible, a nil seed is drawn from the clock
	Seed *int64 `json:"seed,omitempty"`
	// Parallelism bounds concurrent evaluations, zero means one per CPU
	Parallelism int `json:"parallelism,omitempty"`

	Initialization    InitializationConfig    `json:"initialization,omitempty"`
	ParentSelection   ParentSelectionConfig   `json:"parentSelection,omitempty"`
	Crossover         CrossoverConfig         `json:"crossover,omitempty"`
	Mutation          MutationConfig          `json:"mutation,omitempty"`
	Repair            RepairConfig            `json:"repair,omitempty"`
	SurvivorSelection SurvivorSelectionConfig `json:"survivorSelection,omitempty"`
}

// InitializationConfig selects how the first population is sampled
type InitializationConfig struct {
	// Method is MonteCarlo, Grid or Permutation. Empty lets the problem decide.
	Method string `json:"method,omitempty"`
	// GridPoints is the number of points per variable of the Grid method
	GridPoints int `json:"gridPoints,omitempty"`
}

// ParentSelectionConfig configures tournament parent selection
type ParentSelectionConfig struct {
	TournamentSize int `json:"tournamentSize,omitempty"`
}

// CrossoverConfig configures recombination
type CrossoverConfig struct {
	Type        string  `json:"type,omitempty"`
	Probability float64 `json:"probability,omitempty"`
	// Points is the cut count of kPointCrossover
	Points int `json:"points,omitempty"`
}

// MutationConfig configures mutation
type MutationConfig struct {
	Type        string  `json:"type,omitempty"`
	Probability float64 `json:"probability,omitempty"`
}

// RepairConfig configures offspring repair, an empty strategy disables it
type RepairConfig struct {
	Strategy string `json:"strategy,omitempty"`
}

// SurvivorSelectionConfig picks the survivor selection strategy
type SurvivorSelectionConfig struct {
	Strategy string `json:"strategy,omitempty"`
}
