package configstore

import (
	"fmt"
	"os"

	"github.com/admybrand/dashboard-backend/pkg/debug"
	"gopkg.in/yaml.v3"
)

// ReadSeedFile parses a YAML (or JSON) overlay into a Partial. Only the
// sections named in the file are returned.
func ReadSeedFile(path string) (Partial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Partial{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Partial{}, fmt.Errorf("%w: %v", ErrInvalidPartial, err)
	}

	p, unused, err := DecodePartial(raw)
	if err != nil {
		return Partial{}, err
	}
	if len(unused) > 0 {
		debug.Warning("Seed file %s has unknown keys: %v", path, unused)
	}
	return p, nil
}

// ApplySeedFile merges the overlay at path into the store. An empty path is a
// no-op.
func (s *Store) ApplySeedFile(path string) error {
	if path == "" {
		return nil
	}
	p, err := ReadSeedFile(path)
	if err != nil {
		return err
	}
	s.Update(p)
	debug.Info("Applied seed file %s (sections: %v)", path, p.Sections())
	return nil
}
