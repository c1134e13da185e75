// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material holds the opaque physics bundle the core passes
// to particle-specific hit handlers, per spec.md §3. The core never
// interprets these fields itself.
package material

// Material is the Fermi pseudo-potential and surface-physics bundle
// for one solid's bulk material, per spec.md §3. Field layout mirrors
// the teacher's inp.Material input-struct-with-json-tags shape (see
// DESIGN.md); no config-file parser is implemented (out of scope).
type Material struct {
	Name string `json:"name" yaml:"name"`

	FermiReal float64 `json:"fermi_real" yaml:"fermi_real"` // real part of the Fermi pseudo-potential (neV)
	FermiImag float64 `json:"fermi_imag" yaml:"fermi_imag"` // imaginary part (neV), governs absorption

	DiffuseProb   float64 `json:"diffuse_prob" yaml:"diffuse_prob"`     // probability of diffuse (Lambertian) reflection per bounce
	SpinFlipProb  float64 `json:"spin_flip_prob" yaml:"spin_flip_prob"` // probability of spin flip per bounce
	RMSRoughness  float64 `json:"rms_roughness" yaml:"rms_roughness"`   // RMS surface roughness (m)
	CorrLength    float64 `json:"corr_length" yaml:"corr_length"`       // roughness correlation length (m)
	LossPerBounce float64 `json:"loss_per_bounce" yaml:"loss_per_bounce"`
	MeanFreePath  float64 `json:"mean_free_path" yaml:"mean_free_path"` // elastic mean free path (m)
}

// Vacuum is the material of the default solid: perfectly transparent,
// never reflects or absorbs.
var Vacuum = &Material{Name: "vacuum"}
