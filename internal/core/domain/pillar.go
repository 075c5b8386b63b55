package domain

// Pillar is the per-minion data describing the vendored formulas.
type Pillar struct {
	ProjectDir   string
	VendorDir    string
	Formulas     []string
	FormulaPaths []string
}

// NewPillar describes the formulas of idx.
func NewPillar(idx *VendorIndex) Pillar {
	project := idx.Project()
	return Pillar{
		ProjectDir:   project.ProjectDir(),
		VendorDir:    project.VendorDirName(),
		Formulas:     idx.Names(),
		FormulaPaths: idx.Roots(),
	}
}

// Map renders the pillar under PillarKey.
func (p Pillar) Map() map[string]any {
	return map[string]any{
		PillarKey: map[string]any{
			"project_dir":   p.ProjectDir,
			"vendor_dir":    p.VendorDir,
			"formulas":      stringsToAny(p.Formulas),
			"formula_paths": stringsToAny(p.FormulaPaths),
		},
	}
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
