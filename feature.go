// File: feature.go
// Role: Feature lineage descriptors. A Feature names one embedding column;
// later layers wrap earlier features, forming a parent chain back to a base
// feature. Equality and set membership are structural (name + parent chain).
package deepgl

import "strings"

// Feature is an immutable, named node in a feature lineage tree.
// Layer-0 features have no Parent; every later feature wraps the feature it
// was derived from. Two Features are equal iff their names and parent chains
// are structurally equal.
type Feature struct {
	// Name is the feature label, e.g. "in_degree" or "sum_out_neighbourhood".
	Name string

	// Parent is the feature this one was derived from; nil for base features.
	Parent *Feature
}

// NewFeature constructs a base (layer-0) feature.
func NewFeature(name string) *Feature {
	return &Feature{Name: name}
}

// Derive constructs a feature named name whose lineage points at f.
func (f *Feature) Derive(name string) *Feature {
	return &Feature{Name: name, Parent: f}
}

// Equal reports structural equality: same name and same parent chain.
func (f *Feature) Equal(other *Feature) bool {
	a, b := f, other
	for a != nil && b != nil {
		if a.Name != b.Name {
			return false
		}
		a, b = a.Parent, b.Parent
	}

	return a == nil && b == nil
}

// Key serializes the lineage into a stable string usable as a set/map key.
// The separator cannot occur in operator or degree names, so distinct
// lineages never collide.
func (f *Feature) Key() string {
	var sb strings.Builder
	for cur := f; cur != nil; cur = cur.Parent {
		if cur != f {
			sb.WriteByte('|')
		}
		sb.WriteString(cur.Name)
	}

	return sb.String()
}

// String renders the lineage outermost-first, e.g.
// "diffuse(sum_out_neighbourhood(in_degree))".
func (f *Feature) String() string {
	if f.Parent == nil {
		return f.Name
	}

	return f.Name + "(" + f.Parent.String() + ")"
}
