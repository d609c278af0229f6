package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	errProfileNoWorkloads      = errors.New("profile defines no workloads")
	errWorkloadNameRequired    = errors.New("workload name is required")
	errWorkloadCommandRequired = errors.New("workload command is required")
	errWorkloadNotFound        = errors.New("workload not found in profile")
)

// Profile is a yaml file describing named commands to time, with shared
// defaults. Per-workload values override the defaults.
type Profile struct {
	Defaults  Defaults    `yaml:"defaults"`
	Workloads []*Workload `yaml:"workloads"`
}

// Defaults are applied to workloads that do not set their own values.
type Defaults struct {
	Runs     int `yaml:"runs"`
	Warmup   int `yaml:"warmup"`
	Parallel int `yaml:"parallel"`
}

// Workload is a single named command to time.
type Workload struct {
	Name     string `yaml:"name"`
	Command  string `yaml:"command"`
	Runs     int    `yaml:"runs"`
	Warmup   int    `yaml:"warmup"`
	Parallel int    `yaml:"parallel"`
}

// ProfileLoader loads run profiles
type ProfileLoader interface {
	Load(path string) (*Profile, error)
}

type profileLoader struct {
	log logrus.FieldLogger
}

// NewProfileLoader creates a new profile loader
func NewProfileLoader(log logrus.FieldLogger) ProfileLoader {
	return &profileLoader{
		log: log.WithField("component", "config.profile_loader"),
	}
}

func (l *profileLoader) Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	if err := profile.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	l.log.WithField("path", path).WithField("workloads", len(profile.Workloads)).Debug("profile loaded")

	return &profile, nil
}

func (p *Profile) validate() error {
	if len(p.Workloads) == 0 {
		return errProfileNoWorkloads
	}
	for i, w := range p.Workloads {
		if w.Name == "" {
			return fmt.Errorf("workload %d: %w", i, errWorkloadNameRequired)
		}
		if w.Command == "" {
			return fmt.Errorf("workload %q: %w", w.Name, errWorkloadCommandRequired)
		}
	}
	return nil
}

// Workload returns the named workload with profile defaults applied.
func (p *Profile) Workload(name string) (*Workload, error) {
	for _, w := range p.Workloads {
		if w.Name != name {
			continue
		}
		resolved := *w
		if resolved.Runs == 0 {
			resolved.Runs = p.Defaults.Runs
		}
		if resolved.Warmup == 0 {
			resolved.Warmup = p.Defaults.Warmup
		}
		if resolved.Parallel == 0 {
			resolved.Parallel = p.Defaults.Parallel
		}
		if resolved.Runs == 0 {
			resolved.Runs = 1
		}
		if resolved.Parallel == 0 {
			resolved.Parallel = 1
		}
		return &resolved, nil
	}
	return nil, fmt.Errorf("%q: %w", name, errWorkloadNotFound)
}

// Compile-time interface compliance check
var _ ProfileLoader = (*profileLoader)(nil)
