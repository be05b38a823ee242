// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from material (.mat) and pass files
package inp

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/mflow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gopkg.in/yaml.v3"
)

// Freiberg is the name of the flow stress model of all materials
const Freiberg = "freiberg"

// Prm holds one named parameter
type Prm struct {
	N string  `json:"n" yaml:"n"`                     // name; e.g. "a", "m1", "baseStrain"
	V float64 `json:"v" yaml:"v"`                     // value
	U string  `json:"u,omitempty" yaml:"u,omitempty"` // unit; stress units are converted to Pa
}

// Material holds material data
type Material struct {

	// input
	Name  string `json:"name" yaml:"name"`   // name of material. ex: "ni-cold"
	Desc  string `json:"desc" yaml:"desc"`   // description of material
	Model string `json:"model" yaml:"model"` // flow stress model; empty means "freiberg"
	Prms  []*Prm `json:"prms" yaml:"prms"`   // parameters

	// derived
	Coeffs mflow.Coeffs `json:"-" yaml:"-"` // flow stress coefficients
}

// MatDb implements a database of materials
type MatDb struct {
	Desc      string      `json:"desc" yaml:"desc"`           // description of database
	Materials []*Material `json:"materials" yaml:"materials"` // all materials

	// derived
	name2idx map[string]int // maps material name to index in Materials
}

// ReadMatDb reads a materials database from a JSON (.mat, .json) or YAML (.yaml, .yml) file
func ReadMatDb(path string) (o *MatDb, err error) {
	path = os.ExpandEnv(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("ReadMatDb: cannot read materials file %q: %w", path, err)
	}
	o, err = ParseMatDb(b, filepath.Ext(path))
	if err != nil {
		return nil, chk.Err("ReadMatDb: file %q: %w", path, err)
	}
	return
}

// ParseMatDb decodes a materials database
//  ext -- file extension selecting the format; ".yaml" and ".yml" mean YAML, anything else JSON
func ParseMatDb(b []byte, ext string) (o *MatDb, err error) {
	o = new(MatDb)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(o)
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials database: %w", err)
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// PostProcess checks the materials and computes their coefficients
func (o *MatDb) PostProcess() (err error) {
	o.name2idx = make(map[string]int)
	for i, m := range o.Materials {
		if m == nil || m.Name == "" {
			return chk.Err("material # %d has no name", i)
		}
		if _, dup := o.name2idx[m.Name]; dup {
			return chk.Err("material %q is defined more than once", m.Name)
		}
		if m.Model == "" {
			m.Model = Freiberg
		}
		if m.Model != Freiberg {
			return chk.Err("material %q: model %q is not available", m.Name, m.Model)
		}
		prms, err := m.GetPrms()
		if err != nil {
			return chk.Err("material %q: %w", m.Name, err)
		}
		m.Coeffs, err = mflow.NewCoeffs(prms)
		if err != nil {
			return chk.Err("material %q: %w", m.Name, err)
		}
		o.name2idx[m.Name] = i
	}
	return
}

// Get returns a material
func (o *MatDb) Get(name string) (*Material, error) {
	if idx, ok := o.name2idx[name]; ok {
		return o.Materials[idx], nil
	}
	return nil, chk.Err("cannot find material named %q. available: %v", name, o.Names())
}

// Coeffs returns the flow stress coefficients of a material
func (o *MatDb) Coeffs(name string) (c mflow.Coeffs, err error) {
	m, err := o.Get(name)
	if err != nil {
		return
	}
	return m.Coeffs, nil
}

// Names returns the sorted names of all materials
func (o *MatDb) Names() (names []string) {
	names = make([]string, 0, len(o.Materials))
	for _, m := range o.Materials {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return
}

// Write writes the database to a JSON (.mat, .json) or YAML (.yaml, .yml) file
func (o *MatDb) Write(path string) (err error) {
	var b []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(o)
	default:
		b, err = json.MarshalIndent(o, "", "  ")
	}
	if err != nil {
		return chk.Err("cannot marshal materials database: %w", err)
	}
	if err = os.WriteFile(os.ExpandEnv(path), b, 0644); err != nil {
		return chk.Err("cannot write materials file %q: %w", path, err)
	}
	return
}

// stress2pa maps stress units to their factor to Pa
var stress2pa = map[string]float64{
	"":    1,
	"Pa":  1,
	"kPa": 1e3,
	"MPa": 1e6,
	"GPa": 1e9,
}

// GetPrms returns the parameters in the format taken by the flow stress models.
// The scale factor "a" is converted to Pa; the other parameters are dimensionless
func (o *Material) GetPrms() (prms utl.Params, err error) {
	for _, p := range o.Prms {
		v, u := p.V, p.U
		if p.N == "a" {
			f, ok := stress2pa[u]
			if !ok {
				return nil, chk.Err("unit %q of parameter %q is not a stress unit", u, p.N)
			}
			v, u = v*f, "Pa"
		} else if u != "" {
			return nil, chk.Err("parameter %q is dimensionless; unit %q is not allowed", p.N, u)
		}
		prms = append(prms, &utl.P{N: p.N, V: v, U: u})
	}
	return
}

// default database /////////////////////////////////////////////////////////////////////////////////

//go:embed data/materials.mat
var defaultMatDb []byte

var (
	defaultDb     *MatDb
	defaultDbErr  error
	defaultDbOnce sync.Once
)

// DefaultMatDb returns the built-in materials database. It is decoded once and shared;
// callers must not modify it
func DefaultMatDb() (*MatDb, error) {
	defaultDbOnce.Do(func() {
		defaultDb, defaultDbErr = ParseMatDb(defaultMatDb, ".mat")
	})
	return defaultDb, defaultDbErr
}
