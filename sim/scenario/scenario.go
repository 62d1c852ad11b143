// Package scenario loads simulation inputs from YAML or TOML files.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/os-sim/os-sim/sim/fcfs"
	"github.com/os-sim/os-sim/sim/lru"
)

// Scenario bundles the inputs of both simulators. Either section may be absent.
type Scenario struct {
	Name string        `yaml:"name" toml:"name" json:"name"`
	FCFS *FCFSScenario `yaml:"fcfs,omitempty" toml:"fcfs,omitempty" json:"fcfs,omitempty"`
	LRU  *LRUScenario  `yaml:"lru,omitempty" toml:"lru,omitempty" json:"lru,omitempty"`
}

// FCFSScenario is the process list for a scheduling run.
type FCFSScenario struct {
	Processes []fcfs.Process `yaml:"processes" toml:"processes" json:"processes"`
}

// LRUScenario is the raw input of a paging run. ReferenceString is kept as text
// so that it goes through the same parser as interactive input.
type LRUScenario struct {
	ReferenceString string `yaml:"reference_string" toml:"reference_string" json:"reference_string"`
	FrameCount      int    `yaml:"frame_count" toml:"frame_count" json:"frame_count"`
}

// Default returns the scenario preloaded in the interactive views.
func Default() *Scenario {
	return &Scenario{
		Name: "default",
		FCFS: &FCFSScenario{Processes: fcfs.DefaultRoster().Processes()},
		LRU: &LRUScenario{
			ReferenceString: "7,0,1,2,0,3,0,4,2,3,0,3,2",
			FrameCount:      lru.DefaultFrameCount,
		},
	}
}

// Load reads a scenario file, picking the decoder from the file extension.
// Both decoders are strict: unknown keys are rejected.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var sc *Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		sc, err = ParseYAML(data)
	case ".toml":
		sc, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported scenario format %q; valid: .yaml, .yml, .toml", ext)
	}
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	logrus.Debugf("loaded scenario %q from %s", sc.Name, path)
	return sc, nil
}

// ParseYAML decodes a YAML scenario with strict field checking.
func ParseYAML(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario yaml: %w", err)
	}
	return &sc, nil
}

// ParseTOML decodes a TOML scenario, rejecting keys that map to no field.
func ParseTOML(data []byte) (*Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("parsing scenario toml: unknown keys %s", strings.Join(keys, ", "))
	}
	return &sc, nil
}

// Validate checks every present section with the simulators' boundary validators.
func (s *Scenario) Validate() error {
	if s.FCFS == nil && s.LRU == nil {
		return fmt.Errorf("scenario %q: at least one of fcfs or lru is required", s.Name)
	}
	if s.FCFS != nil {
		if err := fcfs.Validate(s.FCFS.Processes); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	if s.LRU != nil {
		if err := lru.ValidateReferenceString(s.LRU.References()); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if err := lru.ValidateFrameCount(s.LRU.Frames(), lru.MinFrameCount, lru.MaxFrameCount); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// References returns the parsed reference string.
func (l *LRUScenario) References() []int {
	return lru.ParseReferenceString(l.ReferenceString)
}

// Frames returns the frame count, falling back to lru.DefaultFrameCount when unset.
func (l *LRUScenario) Frames() int {
	if l.FrameCount == 0 {
		return lru.DefaultFrameCount
	}
	return l.FrameCount
}
