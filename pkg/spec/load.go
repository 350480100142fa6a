package spec

import (
	"fmt"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

// Load reads a specification from a file. Environment variables
// referenced with ${VAR} are expanded before the document is decoded.
func Load(fs vfs.FileSystem, path string) (*Specification, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("loaded model {{name}} from {{path}}", "name", s.Name, "path", path, "digest", s.Digest())
	return s, nil
}

// Parse decodes and validates a specification document.
func Parse(data []byte) (*Specification, error) {
	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, err
	}

	var s Specification
	err = yaml.UnmarshalStrict([]byte(expanded), &s)
	if err != nil {
		return nil, err
	}
	err = s.Validate()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes a specification as yaml document.
func Save(fs vfs.FileSystem, path string, s *Specification) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return vfs.WriteFile(fs, path, data, 0o644)
}
