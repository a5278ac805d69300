package deepgl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepgl/core"
	"github.com/katalvlaran/deepgl/matrix"
)

// TestBaseFeatures_Names: degrees first, then properties in provider order.
func TestBaseFeatures_Names(t *testing.T) {
	features := baseFeatures([]string{"pagerank", "weight"})
	require.Len(t, features, 5)

	want := []string{"in_degree", "out_degree", "both_degree", "pagerank", "weight"}
	for i, f := range features {
		assert.Equal(t, want[i], f.Name)
		assert.Nil(t, f.Parent, "layer-0 features carry no lineage")
	}
}

// TestBuildBaseFeatures_DegreesAndProperties fills rows on the 4-cycle with
// one scalar property; unset nodes read as zero.
func TestBuildBaseFeatures_DegreesAndProperties(t *testing.T) {
	g := cycleGraph(t)
	require.NoError(t, g.SetProperty("0", "weight", 2.5))
	require.NoError(t, g.SetProperty("2", "weight", -1))

	e := newTestEngine(t, g)
	props := g.PropertyNames()
	require.Equal(t, []string{"weight"}, props)

	m, err := matrix.NewDense(4, baseFeatureCount+len(props))
	require.NoError(t, err)
	require.NoError(t, e.buildBaseFeatures(props, m))

	weights := []float64{2.5, 0, -1, 0}
	for i := 0; i < 4; i++ {
		row := m.RowView(i)
		assert.Equal(t, []float64{1, 1, 2}, row[0:3], "node %d cycle degrees", i)
		assert.Equal(t, weights[i], row[3], "node %d weight", i)
	}
}

// failingProperties wraps a graph and fails every property read.
type failingProperties struct {
	*core.Graph
	err error
}

func (f *failingProperties) Property(string, int) (float64, error) { return 0, f.err }

// TestBuildBaseFeatures_ProviderErrorAborts: a provider failure propagates
// out of the claiming worker and aborts the phase.
func TestBuildBaseFeatures_ProviderErrorAborts(t *testing.T) {
	g := cycleGraph(t)
	require.NoError(t, g.SetProperty("0", "weight", 1))

	boom := errors.New("store offline")
	e := newTestEngine(t, &failingProperties{Graph: g, err: boom})

	m, err := matrix.NewDense(4, baseFeatureCount+1)
	require.NoError(t, err)
	require.ErrorIs(t, e.buildBaseFeatures([]string{"weight"}, m), boom)
}
