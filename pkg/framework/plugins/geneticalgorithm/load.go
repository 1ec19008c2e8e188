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
	"os"

	"sigs.k8s.io/yaml"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// LoadArgs reads GeneticAlgorithmArgs from a YAML or JSON file, then
// applies defaults and validates the result.
func LoadArgs(path string) (*GeneticAlgorithmArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading args: %w", err)
	}
	args, err := DecodeArgs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return args, nil
}

// DecodeArgs strictly decodes data, so unknown fields are rejected. Every
// failure wraps framework.ErrConfiguration.
func DecodeArgs(data []byte) (*GeneticAlgorithmArgs, error) {
	args := &GeneticAlgorithmArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("%w: decoding args: %w", framework.ErrConfiguration, err)
	}

	gvk := SchemeGroupVersion.WithKind("GeneticAlgorithmArgs")
	if args.APIVersion != "" && args.APIVersion != gvk.GroupVersion().String() {
		return nil, fmt.Errorf("%w: unsupported apiVersion %q, want %q", framework.ErrConfiguration, args.APIVersion, gvk.GroupVersion().String())
	}
	if args.Kind != "" && args.Kind != gvk.Kind {
		return nil, fmt.Errorf("%w: unsupported kind %q, want %q", framework.ErrConfiguration, args.Kind, gvk.Kind)
	}
	args.SetGroupVersionKind(gvk)

	Scheme.Default(args)
	if err := ValidateGeneticAlgorithmArgs(args); err != nil {
		return nil, fmt.Errorf("%w: %w", framework.ErrConfiguration, err)
	}
	return args, nil
}
