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

// Package options holds the command line options of raven-ga.
package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options has all the params needed to run raven-ga
type Options struct {
	ConfigFile   string
	Problem      string
	OutputDir    string
	OTLPEndpoint string
	OTLPInsecure bool
	SampleRate   float64
	MetricsFile  string
}

// NewOptions returns the options with their defaults
func NewOptions() *Options {
	return &Options{
		Problem:      "ZDT1",
		OutputDir:    "raven-ga-output",
		OTLPInsecure: true,
		SampleRate:   1,
	}
}

// AddFlags adds flags for a specific command to the specified FlagSet
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "File with GeneticAlgorithmArgs, defaults are used when empty.")
	fs.StringVar(&o.Problem, "problem", o.Problem, "Benchmark problem to optimize.")
	fs.StringVar(&o.OutputDir, "output-dir", o.OutputDir, "Directory receiving solution.yaml and the HTML plots.")
	fs.StringVar(&o.OTLPEndpoint, "otlp-endpoint", o.OTLPEndpoint, "OTLP gRPC collector address, tracing is off when empty.")
	fs.BoolVar(&o.OTLPInsecure, "otlp-insecure", o.OTLPInsecure, "Disable TLS towards the OTLP collector.")
	fs.Float64Var(&o.SampleRate, "trace-sample-rate", o.SampleRate, "Fraction of runs to trace.")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "Write the Prometheus text dump of the run metrics to this file.")
}

// Validate checks the options that do not need the args file
func (o *Options) Validate() error {
	if o.OutputDir == "" {
		return fmt.Errorf("--output-dir must not be empty")
	}
	if o.SampleRate < 0 || o.SampleRate > 1 {
		return fmt.Errorf("--trace-sample-rate %v outside [0, 1]", o.SampleRate)
	}
	return nil
}
