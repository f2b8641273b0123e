package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// profilesFile is the YAML document shape: a default key plus a map of
// profiles, mirroring the configuration the pipeline historically shipped.
type profilesFile struct {
	Default  string             `yaml:"default_profile"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// Load reads profiles from YAML. The default profile named by the file is
// returned first; remaining profiles follow in unspecified order. Profiles
// missing a key inherit their map key.
func Load(r io.Reader) ([]Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	if len(file.Profiles) == 0 {
		return nil, fmt.Errorf("parse profiles: no profiles defined")
	}

	var profiles []Profile
	if def, ok := file.Profiles[file.Default]; ok {
		if def.Key == "" {
			def.Key = file.Default
		}
		profiles = append(profiles, def)
	}
	for key, p := range file.Profiles {
		if key == file.Default {
			continue
		}
		if p.Key == "" {
			p.Key = key
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// LoadFile reads profiles from a YAML file
func LoadFile(path string) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profiles: %w", err)
	}
	defer f.Close()
	return Load(f)
}
