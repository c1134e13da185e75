// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	_ "embed"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixtures returns a small named set of test materials (UCN-relevant
// Fermi potentials for common beamline surfaces), loaded from an
// embedded YAML blob. This is test/example tooling only; no
// config-file reader is implemented for production use (spec.md §1
// Non-goals).
func Fixtures() (map[string]*Material, error) {
	var raw map[string]*Material
	if err := yaml.Unmarshal(fixturesYAML, &raw); err != nil {
		return nil, chk.Err("material: cannot parse fixtures: %v", err)
	}
	for name, m := range raw {
		m.Name = name
	}
	return raw, nil
}
