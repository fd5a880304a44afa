package plate_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-microplate/plate"
)

func newPlate(tb testing.TB, kind plate.PlateType, label string) *plate.Plate[float64] {
	tb.Helper()
	p, err := plate.NewPlate[float64](kind, label)
	require.NoError(tb, err)
	return p
}

// ─────────────────────────────────────────────────────────────────────────────
// PlateType
// ─────────────────────────────────────────────────────────────────────────────

func TestPlateType_Presets(t *testing.T) {
	tests := []struct {
		kind       plate.PlateType
		rows, cols int
		descriptor string
	}{
		{plate.Plate6, 2, 3, "6-Well"},
		{plate.Plate12, 3, 4, "12-Well"},
		{plate.Plate24, 4, 6, "24-Well"},
		{plate.Plate48, 6, 8, "48-Well"},
		{plate.Plate96, 8, 12, "96-Well"},
		{plate.Plate384, 16, 24, "384-Well"},
		{plate.Plate1536, 32, 48, "1536-Well"},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			rows, cols, ok := tt.kind.Dimensions()
			require.True(t, ok)
			assert.Equal(t, tt.rows, rows)
			assert.Equal(t, tt.cols, cols)
			assert.Equal(t, tt.rows*tt.cols, tt.kind.Wells())
			assert.Equal(t, tt.descriptor, tt.kind.String())
			assert.Equal(t, tt.descriptor, plate.Descriptor(rows, cols))
			assert.Equal(t, tt.kind, plate.TypeForDimensions(rows, cols))
			assert.True(t, tt.kind.IsValid())
		})
	}
}

func TestPlateType_Custom(t *testing.T) {
	_, _, ok := plate.Custom.Dimensions()
	assert.False(t, ok)
	assert.Equal(t, "Custom", plate.Custom.String())
	assert.Equal(t, plate.Custom, plate.TypeForDimensions(12, 8))
	assert.Equal(t, "Custom Plate: 5x7", plate.Descriptor(5, 7))
	assert.False(t, plate.PlateType(99).IsValid())
}

func TestParsePlateType(t *testing.T) {
	tests := map[string]plate.PlateType{
		"96":        plate.Plate96,
		"384-Well":  plate.Plate384,
		"6well":     plate.Plate6,
		" custom ":  plate.Custom,
		"1536-WELL": plate.Plate1536,
	}
	for in, want := range tests {
		got, err := plate.ParsePlateType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"97", "well", "", "ninety-six"} {
		_, err := plate.ParsePlateType(in)
		assert.ErrorIs(t, err, plate.ErrInvalidDimensions, in)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

func TestNewPlate(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P1")
	assert.Equal(t, 8, p.Rows())
	assert.Equal(t, 12, p.Columns())
	assert.Equal(t, 96, p.Capacity())
	assert.Equal(t, plate.Plate96, p.Type())
	assert.Equal(t, "96-Well", p.Descriptor())
	assert.True(t, p.IsEmpty())

	_, err := plate.NewPlate[float64](plate.Custom, "P")
	assert.ErrorIs(t, err, plate.ErrInvalidDimensions)

	_, err = plate.NewPlate[float64](plate.PlateType(42), "P")
	assert.ErrorIs(t, err, plate.ErrInvalidDimensions)
}

func TestNewPlateSize(t *testing.T) {
	p, err := plate.NewPlateSize[int](5, 7, "odd")
	require.NoError(t, err)
	assert.Equal(t, plate.Custom, p.Type())
	assert.Equal(t, "Custom Plate: 5x7", p.Descriptor())

	p, err = plate.NewPlateSize[int](16, 24, "p384")
	require.NoError(t, err)
	assert.Equal(t, plate.Plate384, p.Type())

	for _, d := range [][2]int{{0, 12}, {8, 0}, {-1, -1}} {
		_, err := plate.NewPlateSize[int](d[0], d[1], "bad")
		assert.ErrorIs(t, err, plate.ErrInvalidDimensions, "%v", d)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Wells
// ─────────────────────────────────────────────────────────────────────────────

func TestPlate_RejectsOutOfBoundsWell(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P1")
	require.True(t, p.AddWells(well(t, "A1", 1)).OK())

	w, err := plate.NewWell(8, 1, 1.0)
	require.NoError(t, err)
	out := p.AddWells(w)

	assert.False(t, out.OK())
	assert.ErrorIs(t, out.Err(), plate.ErrBounds)
	assert.Equal(t, 1, p.Len())
}

func TestPlate_AddWellsIsFailSoft(t *testing.T) {
	p := newPlate(t, plate.Plate6, "P")
	out := p.AddWells(well(t, "A1"), well(t, "C1"), well(t, "A4"), well(t, "A1"), well(t, "B3"))

	assert.Equal(t, 5, out.Attempted())
	assert.Equal(t, 2, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrBounds)
	assert.ErrorIs(t, out.Err(), plate.ErrDuplicate)
	assert.Equal(t, []string{"A1", "B3"}, labels(p.Wells().Wells()))

	failures := out.Failures()
	require.Len(t, failures, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{failures[0].Position, failures[1].Position, failures[2].Position})
	assert.Equal(t, "C1", failures[0].Key)
}

func TestPlate_WellSetOperations(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P")
	set := newSet(t, "A1", "A2", "B1", "B2")
	require.True(t, p.AddWellSet(set).OK())

	out := p.RemoveLabels("A1,Z99", ",")
	assert.Equal(t, 1, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrBounds)

	out = p.RemoveIndices(plate.MustParseIndex("A1"))
	assert.ErrorIs(t, out.Err(), plate.ErrNotFound)

	require.True(t, p.ReplaceWells(well(t, "A2", 9)).OK())
	got, ok := p.WellLabel("A2")
	require.True(t, ok)
	assert.Equal(t, []float64{9}, got.Values())

	out = p.ReplaceWells(well(t, "I1", 9))
	assert.ErrorIs(t, out.Err(), plate.ErrBounds)

	require.True(t, p.RetainLabels("A2,B2", ",").OK())
	assert.Equal(t, []string{"A2", "B2"}, labels(p.Wells().Wells()))

	require.True(t, p.RetainWells(well(t, "B2")).OK())
	assert.Equal(t, 1, p.Len())

	require.True(t, p.RemoveWells(well(t, "B2")).OK())
	assert.True(t, p.IsEmpty())
}

func TestPlate_Lookups(t *testing.T) {
	p := newPlate(t, plate.Plate24, "P")
	p.AddWellSet(newSet(t, "A1", "A2", "B1", "D6"))

	assert.True(t, p.Contains(plate.MustParseIndex("D6")))
	assert.True(t, p.ContainsLabel("b1"))
	assert.False(t, p.ContainsLabel("C3"))
	_, ok := p.Well(plate.MustParseIndex("C3"))
	assert.False(t, ok)

	assert.Equal(t, []string{"A1", "A2"}, labels(p.Row(0).Wells()))
	assert.Equal(t, []string{"A1", "B1"}, labels(p.Column(1).Wells()))
	assert.Equal(t, []string{"A1", "A2", "B1"},
		labels(p.Block(plate.MustParseIndex("A1"), plate.MustParseIndex("B2")).Wells()))

	assert.True(t, p.InBounds(plate.MustParseIndex("D6")))
	assert.False(t, p.InBounds(plate.MustParseIndex("E1")))
	assert.False(t, p.InBounds(plate.MustParseIndex("A7")))

	var seen []string
	for w := range p.All() {
		seen = append(seen, w.Label())
	}
	assert.Equal(t, []string{"A1", "A2", "B1", "D6"}, seen)
}

func TestPlate_WellsIsACopy(t *testing.T) {
	p := newPlate(t, plate.Plate6, "P")
	p.AddWells(well(t, "A1", 1))

	ws := p.Wells()
	w, _ := ws.GetLabel("A1")
	w.Append(2)
	ws.Clear()

	got, ok := p.WellLabel("A1")
	require.True(t, ok)
	assert.Equal(t, []float64{1}, got.Values())
	assert.Equal(t, "P", ws.Label())
}

// ─────────────────────────────────────────────────────────────────────────────
// Groups
// ─────────────────────────────────────────────────────────────────────────────

func TestPlate_AddGroups(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P")
	controls, out := plate.ParseGroup("Controls", "A1,A2,A3", ",")
	require.True(t, out.OK())

	require.True(t, p.AddGroups(controls).OK())
	assert.Equal(t, 1, p.GroupCount())

	out = p.AddGroups(controls.Clone())
	assert.ErrorIs(t, out.Err(), plate.ErrDuplicate)

	outside := plate.NewGroup("Outside", plate.MustParseIndex("A1"), plate.MustParseIndex("I1"))
	out = p.AddGroups(outside, nil)
	assert.ErrorIs(t, out.Err(), plate.ErrBounds)
	assert.ErrorIs(t, out.Err(), plate.ErrFormat)
	assert.False(t, p.ContainsGroup("Outside"))
}

func TestPlate_GroupIsCopiedOnInsert(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P")
	g := plate.NewGroup("G", plate.MustParseIndex("A1"))
	p.AddGroups(g)
	g.Add(plate.MustParseIndex("B1"))

	stored, ok := p.Group("G")
	require.True(t, ok)
	assert.Equal(t, 1, stored.Len())
}

func TestPlate_ResolveGroupMaterialisesEmptyWells(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P")
	p.AddWells(well(t, "A1", 0.5), well(t, "A3", 0.7))
	p.AddGroups(plate.NewBlockGroup("Row A", plate.MustParseIndex("A1"), plate.MustParseIndex("A3")))

	set, ok := p.ResolveGroup("Row A")
	require.True(t, ok)
	assert.Equal(t, "Row A", set.Label())
	assert.Equal(t, []string{"A1", "A2", "A3"}, labels(set.Wells()))

	a2, _ := set.GetLabel("A2")
	assert.True(t, a2.IsEmpty())
	a1, _ := set.GetLabel("A1")
	assert.Equal(t, []float64{0.5}, a1.Values())

	assert.Equal(t, 2, p.Len(), "resolving never populates the plate")

	a1.Append(9)
	stored, _ := p.WellLabel("A1")
	assert.Equal(t, []float64{0.5}, stored.Values())

	_, ok = p.ResolveGroup("missing")
	assert.False(t, ok)
}

func TestPlate_RemoveAndRetainGroups(t *testing.T) {
	mk := func() *plate.Plate[float64] {
		p := newPlate(t, plate.Plate96, "P")
		require.True(t, p.AddGroups(
			plate.NewGroup("A", plate.MustParseIndex("A1")),
			plate.NewGroup("B", plate.MustParseIndex("B1")),
			plate.NewGroup("C", plate.MustParseIndex("C1")),
		).OK())
		return p
	}

	p := mk()
	out := p.RemoveGroups(plate.NewGroup("A", plate.MustParseIndex("A1")), plate.NewGroup("B", plate.MustParseIndex("B2")))
	assert.Equal(t, 1, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrNotFound)
	assert.Equal(t, []string{"B", "C"}, labels(p.Groups()))

	p = mk()
	out = p.RemoveGroupList("A, C, Z", ",")
	assert.Equal(t, 2, out.Succeeded())
	assert.Equal(t, []string{"B"}, labels(p.Groups()))

	p = mk()
	assert.True(t, p.RemoveGroupLabels("B").OK())
	assert.Equal(t, []string{"A", "C"}, labels(p.Groups()))

	p = mk()
	out = p.RetainGroupLabels("A", "Q")
	assert.ErrorIs(t, out.Err(), plate.ErrNotFound)
	assert.Equal(t, []string{"A"}, labels(p.Groups()))

	p = mk()
	assert.True(t, p.RetainGroupList("B;C", ";").OK())
	assert.Equal(t, []string{"B", "C"}, labels(p.Groups()))

	p = mk()
	assert.True(t, p.RetainGroups(plate.NewGroup("C", plate.MustParseIndex("C1"))).OK())
	assert.Equal(t, []string{"C"}, labels(p.Groups()))

	p.ClearGroups()
	assert.Zero(t, p.GroupCount())
}

func TestPlate_ClearKeepsGroups(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P")
	p.AddWells(well(t, "A1", 1))
	p.AddGroups(plate.NewGroup("G", plate.MustParseIndex("A1")))

	p.Clear()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 1, p.GroupCount())
	assert.Equal(t, "P", p.Label())
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

func TestPlate_CopyAndEqual(t *testing.T) {
	p := newPlate(t, plate.Plate96, "P")
	p.AddWells(well(t, "A1", 1), well(t, "B2", 2))
	p.AddGroups(plate.NewGroup("G", plate.MustParseIndex("A1"), plate.MustParseIndex("C3")))

	cp := p.Copy()
	assert.True(t, p.Equal(cp))
	assert.Zero(t, p.Compare(cp))

	w, _ := cp.WellLabel("A1")
	w.Append(5)
	orig, _ := p.WellLabel("A1")
	assert.Equal(t, []float64{1}, orig.Values())
	assert.False(t, p.Equal(cp), "resolved group values differ")

	cp = p.Copy()
	cp.AddWells(well(t, "H12"))
	assert.False(t, p.Equal(cp), "well count differs")

	cp = p.Copy()
	cp.SetLabel("Q")
	assert.False(t, p.Equal(cp))

	cp = p.Copy()
	cp.RemoveGroupLabels("G")
	assert.False(t, p.Equal(cp))

	assert.False(t, p.Equal(nil))
}

func TestPlate_CompareKey(t *testing.T) {
	mk := func(rows, cols int, label string) *plate.Plate[float64] {
		p, err := plate.NewPlateSize[float64](rows, cols, label)
		require.NoError(t, err)
		return p
	}
	plates := []*plate.Plate[float64]{
		mk(16, 24, "a"),
		mk(8, 12, "z"),
		mk(2, 48, "a"),
		mk(12, 8, "a"),
		mk(8, 12, "b"),
		mk(2, 3, "x"),
	}
	sort.Slice(plates, func(i, j int) bool { return plates[i].Compare(plates[j]) < 0 })

	var got []string
	for _, p := range plates {
		got = append(got, p.Descriptor()+"/"+p.Label())
	}
	assert.Equal(t, []string{
		"6-Well/x",
		"Custom Plate: 2x48/a",
		"96-Well/b",
		"96-Well/z",
		"Custom Plate: 12x8/a",
		"384-Well/a",
	}, got)
}

func TestPlate_String(t *testing.T) {
	p := newPlate(t, plate.Plate96, "Run1")
	p.AddWells(well(t, "A1"), well(t, "A2"))
	p.AddGroups(plate.NewGroup("G"))
	assert.Equal(t, "Run1 (96-Well, 2 wells, 1 group)", p.String())
}
