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

// Package app implements the raven-ga command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"k8s.io/component-base/logs"
	"k8s.io/klog/v2"

	"github.com/idaholab/raven/cmd/raven-ga/app/options"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/algorithms"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/benchmarks"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/survivors"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/util"
	"github.com/idaholab/raven/pkg/metrics"
	"github.com/idaholab/raven/pkg/tracing"
)

const (
	solutionFile    = "solution.yaml"
	frontFile       = "front.html"
	convergenceFile = "convergence.html"
)

// NewRavenCommand creates a *cobra.Command object with default parameters
func NewRavenCommand(out io.Writer) *cobra.Command {
	o := options.NewOptions()
	cmd := &cobra.Command{
		Use:   "raven-ga",
		Short: "raven-ga optimizes benchmark problems with a genetic algorithm",
		Long: `raven-ga evolves a population for one benchmark problem and writes the final
population, its Pareto front and per generation statistics to the output directory.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return Run(cmd.Context(), o)
		},
	}
	cmd.SetOut(out)

	flags := cmd.Flags()
	o.AddFlags(flags)
	logs.AddFlags(flags)

	cmd.AddCommand(NewSuiteCommand(out))
	cmd.AddCommand(NewProblemsCommand(out))
	return cmd
}

// NewSuiteCommand runs every registered benchmark with one set of args
func NewSuiteCommand(out io.Writer) *cobra.Command {
	o := options.NewOptions()
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run the benchmark suite and report IGD per problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return RunSuite(cmd.Context(), o, cmd.OutOrStdout())
		},
	}
	cmd.SetOut(out)
	o.AddFlags(cmd.Flags())
	return cmd
}

// NewProblemsCommand lists the available problems
func NewProblemsCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "List the benchmark problems",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range benchmarks.ProblemNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
	cmd.SetOut(out)
	return cmd
}

// Run optimizes one problem and writes its artifacts.
func Run(ctx context.Context, o *options.Options) error {
	logger := klog.FromContext(ctx)

	shutdown, err := tracing.Init(ctx, tracing.Config{
		Endpoint:   o.OTLPEndpoint,
		Insecure:   o.OTLPInsecure,
		SampleRate: o.SampleRate,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error(err, "Failed to flush traces")
		}
	}()

	problem, err := benchmarks.NewProblem(o.Problem)
	if err != nil {
		return err
	}
	args, err := loadArgs(o.ConfigFile, len(problem.ObjectiveFuncs()) > 1)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	ga, err := geneticalgorithm.New(ctx, args, problem,
		algorithms.WithMetrics(m),
		algorithms.WithTracer(tracing.Tracer()),
	)
	if err != nil {
		return err
	}
	result, err := ga.Optimize(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	export := geneticalgorithm.Export(strings.ToLower(problem.Name()), problem.Name(), ga.Args(), result)
	if err := geneticalgorithm.WriteExport(filepath.Join(o.OutputDir, solutionFile), export); err != nil {
		return err
	}
	if len(problem.ObjectiveFuncs()) == 2 {
		if err := util.PlotResults(result.ParetoFront, problem, algorithms.Name, filepath.Join(o.OutputDir, frontFile)); err != nil {
			return err
		}
	}
	if err := util.PlotConvergence(result.History, problem.Name(), filepath.Join(o.OutputDir, convergenceFile)); err != nil {
		return err
	}
	if o.MetricsFile != "" {
		if err := writeMetrics(o.MetricsFile, reg); err != nil {
			return err
		}
	}

	_, best := result.Best()
	logger.Info("Optimization finished",
		"problem", problem.Name(),
		"bestFitness", best,
		"paretoFrontSize", len(result.ParetoFront),
		"outputDir", o.OutputDir,
	)
	return nil
}

// RunSuite runs all benchmarks and prints one IGD line per problem.
func RunSuite(ctx context.Context, o *options.Options, out io.Writer) error {
	args, err := loadArgs(o.ConfigFile, true)
	if err != nil {
		return err
	}
	// most suite problems are multi-objective
	args.SurvivorSelection.Strategy = survivors.RankCrowdingName

	reg := prometheus.NewRegistry()
	suite := benchmarks.NewTestSuite(geneticalgorithm.ToConfig(args), algorithms.WithMetrics(metrics.New(reg)))
	suite.AddStandardProblems()
	reports, err := suite.Run(ctx, o.OutputDir)
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Fprintf(out, "%-12s front=%-4d best=%-12.6g igd=%.6g\n", r.Problem, r.ParetoFrontSize, r.BestFitness, r.IGD)
	}
	if o.MetricsFile != "" {
		return writeMetrics(o.MetricsFile, reg)
	}
	return nil
}

// loadArgs reads path, or builds defaulted args when path is empty. Built
// args pick rank and crowding survival for multi-objective problems.
func loadArgs(path string, multiObjective bool) (*geneticalgorithm.GeneticAlgorithmArgs, error) {
	if path != "" {
		return geneticalgorithm.LoadArgs(path)
	}
	args := &geneticalgorithm.GeneticAlgorithmArgs{}
	if multiObjective {
		args.SurvivorSelection.Strategy = survivors.RankCrowdingName
	}
	geneticalgorithm.Scheme.Default(args)
	return args, nil
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	defer f.Close()
	return metrics.WriteText(f, g)
}
