package questionbank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

//go:embed data/default.json
var defaultBankJSON []byte

//go:embed data/bank.schema.json
var bankSchemaJSON []byte

// SupportedMajor is the bank file major version this build understands.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for bank files with an unknown or
// incompatible version.
var ErrUnsupportedVersion = errors.New("unsupported question bank version")

// ErrInvalidBank is returned when a bank file does not match the bank schema.
var ErrInvalidBank = errors.New("invalid question bank file")

// bankFile is the on-disk JSON layout of a question bank.
type bankFile struct {
	Version   string     `json:"version"`
	Questions []Question `json:"questions"`
}

// defaultBank is the compiled-in bank, set by init().
var defaultBank *Bank

func init() {
	b, err := Parse(defaultBankJSON)
	if err != nil {
		panic(fmt.Sprintf("built-in question bank: %v", err))
	}
	defaultBank = b
}

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank
}

// Load reads and parses a bank file from disk.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// MarshalJSON encodes the bank in the bank file layout, so the output of
// `bank list --json` can be edited and loaded back.
func (b *Bank) MarshalJSON() ([]byte, error) {
	version := b.version
	if version == "" {
		version = SupportedMajor + ".0.0"
	}
	return json.Marshal(bankFile{Version: version, Questions: b.questions})
}

// Parse decodes a bank file, checks it against the bank schema and version,
// then validates every question.
func Parse(data []byte) (*Bank, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrInvalidBank, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBank, err)
	}

	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidBank, err)
	}

	if !semver.IsValid(f.Version) || semver.Major(f.Version) != SupportedMajor {
		return nil, fmt.Errorf("%w: %q (want %s.x.y)", ErrUnsupportedVersion, f.Version, SupportedMajor)
	}

	if err := Validate(f.Questions); err != nil {
		return nil, err
	}
	return newBank(f.Questions, semver.Canonical(f.Version)), nil
}

var (
	schemaOnce sync.Once
	schemaVal  *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded bank schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(bankSchemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaVal, schemaErr = c.Compile(schemaURL)
	})
	return schemaVal, schemaErr
}
