package stats_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-microplate/plate"
	"github.com/hasbyte1/go-microplate/stats"
)

func samplePlate(tb testing.TB, label string) *plate.Plate[int] {
	tb.Helper()
	p, err := plate.NewPlate[int](plate.Plate96, label)
	require.NoError(tb, err)
	for l, v := range map[string][]int{"A1": {1, 2, 3}, "B2": {10, 20}, "C3": {}} {
		w, err := plate.ParseWell(l, v...)
		require.NoError(tb, err)
		require.True(tb, p.AddWells(w).OK())
	}
	return p
}

func flatten(rs []stats.Result) map[string]float64 {
	out := make(map[string]float64, len(rs))
	for _, r := range rs {
		out[r.Label()] = r.Value
	}
	return out
}

var nanEqual = cmpopts.EquateNaNs()

func TestWell(t *testing.T) {
	w, err := plate.ParseWell("A1", 1.0, 2.0, 3.0, 10.0)
	require.NoError(t, err)

	got, err := stats.Well(w, stats.Mean)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = stats.Well(w, stats.Mean, stats.Range(0, 3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = stats.Well(w, stats.Sum, stats.Range(9, 3))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "empty window")

	_, err = stats.Well(w, stats.Mean, stats.Range(-1, 3))
	assert.ErrorIs(t, err, stats.ErrInvalidRange)
}

func TestWell_Decimal(t *testing.T) {
	w, err := plate.ParseWell("A1", decimal.RequireFromString("1.5"), decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	got, err := stats.Well(w, stats.Mean)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestPlate(t *testing.T) {
	p := samplePlate(t, "P")
	got, err := stats.Plate(p, stats.Mean)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2", "C3"}, []string{got[0].Label(), got[1].Label(), got[2].Label()})
	want := map[string]float64{"A1": 2, "B2": 15, "C3": math.NaN()}
	if diff := cmp.Diff(want, flatten(got), nanEqual); diff != "" {
		t.Fatalf("means (-want +got):\n%s", diff)
	}

	got, err = stats.WellSet(p.Wells(), stats.Max, stats.Range(0, 1))
	require.NoError(t, err)
	want = map[string]float64{"A1": 1, "B2": 10, "C3": math.NaN()}
	if diff := cmp.Diff(want, flatten(got), nanEqual); diff != "" {
		t.Fatalf("ranged max (-want +got):\n%s", diff)
	}
}

func TestAggregate(t *testing.T) {
	p := samplePlate(t, "P")
	got, err := stats.PlateAggregate(p, stats.Sum)
	require.NoError(t, err)
	assert.Equal(t, 36.0, got)

	got, err = stats.WellSetAggregate(p.Wells(), stats.Sum, stats.Range(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 22.0, got)

	_, err = stats.PlateAggregate(p, stats.Sum, stats.Range(0, -1))
	assert.ErrorIs(t, err, stats.ErrInvalidRange)
}

func TestStack(t *testing.T) {
	s, err := plate.NewStack[int](plate.Plate96, "S")
	require.NoError(t, err)
	require.True(t, s.Add(samplePlate(t, "P1"), samplePlate(t, "P2")).OK())

	per, err := stats.Stack(s, stats.Min)
	require.NoError(t, err)
	require.Len(t, per, 2)
	assert.Equal(t, 10.0, flatten(per["P2"])["B2"])

	agg, err := stats.StackAggregate(s, stats.Max)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"P1": 20, "P2": 20}, agg)
}

func TestGroup(t *testing.T) {
	p := samplePlate(t, "P")
	p.AddGroups(plate.NewGroup("G", plate.MustParseIndex("A1"), plate.MustParseIndex("D4")))

	got, err := stats.Group(p, "G", stats.Mean)
	require.NoError(t, err)
	want := map[string]float64{"A1": 2, "D4": math.NaN()}
	if diff := cmp.Diff(want, flatten(got), nanEqual); diff != "" {
		t.Fatalf("group means (-want +got):\n%s", diff)
	}

	_, err = stats.Group(p, "missing", stats.Mean)
	assert.ErrorIs(t, err, plate.ErrNotFound)
}

func TestNilOperand(t *testing.T) {
	_, err := stats.Well[int](nil, stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
	_, err = stats.WellSet[int](nil, stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
	_, err = stats.Plate[int](nil, stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
	_, err = stats.Stack[int](nil, stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
	_, err = stats.WellSetAggregate[int](nil, stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
	_, err = stats.PlateAggregate[int](nil, stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
	_, err = stats.StackAggregate[int](nil, stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
	_, err = stats.Group[int](nil, "G", stats.Mean)
	assert.ErrorIs(t, err, stats.ErrNilOperand)
}
