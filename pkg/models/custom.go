package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// customFile is the YAML shape for user-supplied profile rules.
type customFile struct {
	Profiles []customProfile `yaml:"profiles"`
}

type customProfile struct {
	Match     string `yaml:"match"`
	Name      string `yaml:"name"`
	RGB       bool   `yaml:"rgb"`
	MinKelvin int    `yaml:"min_kelvin"`
	MaxKelvin int    `yaml:"max_kelvin"`
	CCTOnly   bool   `yaml:"cct_only"`
	Protocol  string `yaml:"protocol"` // "standard", "infinity" or "infinity-hybrid"
}

// LoadFile reads custom profile rules from a YAML file and registers
// them ahead of the builtin catalog. File order is preserved, so the
// first matching entry in the file wins.
//
// Example file:
//
//	profiles:
//	  - match: "RGB1200"
//	    name: "RGB1200"
//	    rgb: true
//	    min_kelvin: 2500
//	    max_kelvin: 8500
//	    protocol: infinity
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("models: load profiles: %w", err)
	}

	var f customFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("models: parse profiles: %w", err)
	}

	for i, cp := range f.Profiles {
		if cp.Match == "" {
			return fmt.Errorf("models: profile %d has no match string", i)
		}
		if cp.MinKelvin <= 0 || cp.MaxKelvin <= cp.MinKelvin {
			return fmt.Errorf("models: profile %q has invalid kelvin range %d-%d", cp.Match, cp.MinKelvin, cp.MaxKelvin)
		}

		var proto Protocol
		switch cp.Protocol {
		case "", "standard":
			proto = ProtocolStandard
		case "infinity":
			proto = ProtocolInfinity
		case "infinity-hybrid":
			proto = ProtocolInfinityHybrid
		default:
			return fmt.Errorf("models: profile %q has unknown protocol %q", cp.Match, cp.Protocol)
		}

		name := cp.Name
		if name == "" {
			name = cp.Match
		}

		RegisterProfile(cp.Match, Profile{
			Name:      name,
			RGB:       cp.RGB,
			MinKelvin: cp.MinKelvin,
			MaxKelvin: cp.MaxKelvin,
			CCTOnly:   cp.CCTOnly,
			Protocol:  proto,
		})
	}
	return nil
}
