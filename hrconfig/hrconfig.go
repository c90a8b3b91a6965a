// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hrconfig loads a run configuration for a single Hindmarsh-Rose neuron
from a TOML file, validates it, and applies it to an hr.Neuron through the
neuron's keyed configuration and input names.

Example file:

	name = "burst"
	period_seconds = 1e-4
	ticks = 50000
	stepper = "RK4Step"

	[params]
	mu = 0.0021
	e = 3.28
	"Burst duration (s)" = -1

	[inputs]
	"Isyn (nA)" = 0.0
	"Burst duration (s)" = 2.5
*/
package hrconfig

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/emer/rthybrid/hr"
	"github.com/emer/rthybrid/integ"
)

// Config is the configuration of one simulation run
type Config struct {
	Name       string             `toml:"name" desc:"name of the run, used as the trace table name and store record name"`
	PeriodSecs float64            `toml:"period_seconds" def:"0.001" desc:"real-time tick period, in seconds"`
	Ticks      int                `toml:"ticks" def:"10000" desc:"number of ticks to run"`
	Stepper    string             `toml:"stepper" def:"RK4Step" desc:"integration method: RK4Step or EulerStep"`
	Params     map[string]float64 `toml:"params" desc:"configuration values keyed by any configuration name or alias"`
	Inputs     map[string]float64 `toml:"inputs" desc:"per-tick input values keyed by input name, held for the whole run"`
	LogFile    string             `toml:"log_file" desc:"if set, trace is streamed to this CSV file"`
	PlotFile   string             `toml:"plot_file" desc:"if set, a PNG plot of Vm is saved to this file"`
	Store      string             `toml:"store" def:"memory" desc:"run record store backend: memory or sqlite"`
	DBPath     string             `toml:"db_path" desc:"sqlite database file for the sqlite store"`
}

// Defaults sets default values
func (cf *Config) Defaults() {
	cf.Name = "hrsim"
	cf.PeriodSecs = 0.001
	cf.Ticks = 10000
	cf.Stepper = integ.RK4Step.String()
	cf.Params = map[string]float64{}
	cf.Inputs = map[string]float64{}
	cf.Store = "memory"
}

// New returns a Config with defaults
func New() *Config {
	cf := &Config{}
	cf.Defaults()
	return cf
}

// Load returns the config in given TOML file, on top of defaults
func Load(path string) (*Config, error) {
	cf := New()
	md, err := toml.DecodeFile(path, cf)
	if err != nil {
		return nil, fmt.Errorf("hrconfig: load %s: %w", path, err)
	}
	if err := undecoded(md); err != nil {
		return nil, fmt.Errorf("hrconfig: load %s: %w", path, err)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

// Decode returns the config in given TOML text, on top of defaults
func Decode(data string) (*Config, error) {
	cf := New()
	md, err := toml.Decode(data, cf)
	if err != nil {
		return nil, fmt.Errorf("hrconfig: decode: %w", err)
	}
	if err := undecoded(md); err != nil {
		return nil, fmt.Errorf("hrconfig: decode: %w", err)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

func undecoded(md toml.MetaData) error {
	und := md.Undecoded()
	if len(und) == 0 {
		return nil
	}
	keys := make([]string, len(und))
	for i, k := range und {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// StepperType returns the integration method, parsed from Stepper
func (cf *Config) StepperType() (integ.Steppers, error) {
	var st integ.Steppers
	if cf.Stepper == "" {
		return integ.RK4Step, nil
	}
	if err := st.FromString(cf.Stepper); err != nil {
		return integ.RK4Step, err
	}
	if st >= integ.SteppersN {
		return integ.RK4Step, fmt.Errorf("invalid stepper: %s", cf.Stepper)
	}
	return st, nil
}

// Validate returns an error describing every problem with the config
func (cf *Config) Validate() error {
	var errs []error
	if !(cf.PeriodSecs > 0) || math.IsInf(cf.PeriodSecs, 1) {
		errs = append(errs, fmt.Errorf("period_seconds must be positive and finite: %v", cf.PeriodSecs))
	}
	if cf.Ticks <= 0 {
		errs = append(errs, fmt.Errorf("ticks must be positive: %v", cf.Ticks))
	}
	if _, err := cf.StepperType(); err != nil {
		errs = append(errs, fmt.Errorf("stepper: %w", err))
	}
	seen := map[hr.ConfigKeys]string{}
	for _, nm := range sortedNames(cf.Params) {
		key, ok := hr.ConfigKeyByName(nm)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown parameter: %q", nm))
			continue
		}
		if prv, has := seen[key]; has {
			errs = append(errs, fmt.Errorf("parameters %q and %q set the same value", prv, nm))
			continue
		}
		seen[key] = nm
		if v := cf.Params[nm]; math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("parameter %q must be finite: %v", nm, v))
		}
	}
	for _, nm := range sortedNames(cf.Inputs) {
		if _, ok := hr.InputKeyByName(nm); !ok {
			errs = append(errs, fmt.Errorf("unknown input: %q", nm))
			continue
		}
		if v := cf.Inputs[nm]; math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("input %q must be finite: %v", nm, v))
		}
	}
	switch cf.Store {
	case "", "memory":
	case "sqlite":
		if cf.DBPath == "" {
			errs = append(errs, errors.New("db_path is required for the sqlite store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store: %q", cf.Store))
	}
	if len(errs) > 0 {
		return fmt.Errorf("hrconfig: %w", errors.Join(errs...))
	}
	return nil
}

// Apply sets the stepper, parameters and inputs on the neuron.
// Parameters are applied in sorted name order. The config must be valid.
func (cf *Config) Apply(nrn *hr.Neuron) {
	if st, err := cf.StepperType(); err == nil {
		nrn.SetStepper(st)
	}
	for _, nm := range sortedNames(cf.Params) {
		nrn.SetConfigByName(nm, cf.Params[nm])
	}
	for _, nm := range sortedNames(cf.Inputs) {
		nrn.SetInputByName(nm, cf.Inputs[nm])
	}
}

func sortedNames(vals map[string]float64) []string {
	nms := make([]string, 0, len(vals))
	for nm := range vals {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}
