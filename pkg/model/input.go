package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// InstanceFromJson reads a generated instance document back into its typed
// form. The document is decoded through an intermediate map so that field
// names follow the wire format rather than Go naming.
func InstanceFromJson(file string) (ProblemInstance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInstance{}, err
	}
	return InstanceFromBytes(bytes)
}

func InstanceFromBytes(bytes []byte) (ProblemInstance, error) {
	var instanceJson map[string]any
	if err := json.Unmarshal(bytes, &instanceJson); err != nil {
		return ProblemInstance{}, err
	}

	var instance ProblemInstance
	if err := mapstructure.Decode(instanceJson, &instance); err != nil {
		return ProblemInstance{}, fmt.Errorf("cannot decode instance document: %w", err)
	}

	return instance, nil
}

// ToJson marshals the instance in the indented form the downstream solver
// consumes.
func (instance ProblemInstance) ToJson() ([]byte, error) {
	return json.MarshalIndent(instance, "", "  ")
}
