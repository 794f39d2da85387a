// Package schema provides JSON schema validation for benchmark and candidate records.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/h2verify/schema"
)

var (
	benchmarkSchema *jsonschema.Schema
	candidateSchema *jsonschema.Schema
	compileOnce     sync.Once
	compileErr      error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{"benchmark.schema.json", "candidate.schema.json"} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		benchmarkSchema, err = compiler.Compile("benchmark.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile benchmark schema: %w", err)
			return
		}

		candidateSchema, err = compiler.Compile("candidate.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile candidate schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateBenchmark validates JSON data against the benchmark schema.
// Every section and tolerance the checks read must be present.
func ValidateBenchmark(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(benchmarkSchema, data, "benchmark")
}

// ValidateCandidate validates JSON data against the candidate schema.
// Only the types of present fields are checked.
func ValidateCandidate(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(candidateSchema, data, "candidate")
}

func validate(s *jsonschema.Schema, data []byte, what string) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%s validation failed: %w", what, err)
	}

	return nil
}
