package plate_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-microplate/plate"
)

func labels[T interface{ Label() string }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return out
}

func newSet(tb testing.TB, names ...string) *plate.WellSet[float64] {
	tb.Helper()
	s := plate.NewWellSet[float64]("set")
	for i, n := range names {
		require.True(tb, s.Add(well(tb, n, float64(i))).OK())
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove / Replace / Retain
// ─────────────────────────────────────────────────────────────────────────────

func TestWellSet_AddOrdersByIndex(t *testing.T) {
	s := plate.NewWellSet[float64]("s")
	out := s.Add(well(t, "B1"), well(t, "A2"), well(t, "A10"), well(t, "A1"))
	require.True(t, out.OK())
	assert.Equal(t, []string{"A1", "A2", "A10", "B1"}, labels(s.Wells()))
}

func TestWellSet_AddDuplicateIsFailSoft(t *testing.T) {
	s := plate.NewWellSet[float64]("s")
	out := s.Add(well(t, "A1", 1), well(t, "A1", 2), well(t, "A2", 3))

	assert.False(t, out.OK())
	assert.Equal(t, 3, out.Attempted())
	assert.Equal(t, 2, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrDuplicate)
	assert.Equal(t, 2, s.Len())

	got, ok := s.GetLabel("A1")
	require.True(t, ok)
	assert.Equal(t, []float64{1}, got.Values(), "Add never merges or overwrites")
}

func TestWellSet_AddNil(t *testing.T) {
	s := plate.NewWellSet[float64]("s")
	out := s.Add(nil, well(t, "A1"))
	assert.Equal(t, 1, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrFormat)
}

func TestWellSet_OwnsItsWells(t *testing.T) {
	w := well(t, "A1", 1)
	s, out := plate.WellSetOf("s", w)
	require.True(t, out.OK())

	w.Append(2)
	got, _ := s.GetLabel("A1")
	assert.Equal(t, []float64{1}, got.Values())

	cp := s.Copy()
	got.Append(3)
	cpWell, _ := cp.GetLabel("A1")
	assert.Equal(t, []float64{1}, cpWell.Values())
}

func TestWellSet_Remove(t *testing.T) {
	s := newSet(t, "A1", "A2", "A3")
	out := s.Remove(well(t, "A2"), well(t, "H1"))
	assert.Equal(t, 1, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrNotFound)
	assert.Equal(t, []string{"A1", "A3"}, labels(s.Wells()))

	out = s.RemoveIndices(plate.MustParseIndex("A1"))
	assert.True(t, out.OK())
	assert.Equal(t, 1, s.Len())
}

func TestWellSet_RemoveLabels(t *testing.T) {
	s := newSet(t, "A1", "A2", "A3")
	out := s.RemoveLabels("A1, zz ,A3", ",")
	assert.Equal(t, 3, out.Attempted())
	assert.Equal(t, 2, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrFormat)
	assert.Equal(t, []string{"A2"}, labels(s.Wells()))
}

func TestWellSet_RemoveSet(t *testing.T) {
	s := newSet(t, "A1", "A2", "A3")
	out := s.RemoveSet(newSet(t, "A1", "A3"))
	assert.True(t, out.OK())
	assert.Equal(t, []string{"A2"}, labels(s.Wells()))
}

func TestWellSet_Replace(t *testing.T) {
	s := newSet(t, "A1")
	out := s.Replace(well(t, "A1", 42), well(t, "B1", 7))
	require.True(t, out.OK())
	assert.Equal(t, 2, s.Len())

	got, _ := s.GetLabel("A1")
	assert.Equal(t, []float64{42}, got.Values())
}

func TestWellSet_Retain(t *testing.T) {
	s := newSet(t, "A1", "A2", "A3", "B1")
	out := s.RetainIndices(plate.MustParseIndex("A1"), plate.MustParseIndex("B1"), plate.MustParseIndex("C5"))
	assert.Equal(t, 2, out.Succeeded())
	assert.ErrorIs(t, out.Err(), plate.ErrNotFound)
	assert.Equal(t, []string{"A1", "B1"}, labels(s.Wells()))

	s = newSet(t, "A1", "A2", "A3")
	assert.True(t, s.RetainLabels("A2;A3", ";").OK())
	assert.Equal(t, []string{"A2", "A3"}, labels(s.Wells()))

	s = newSet(t, "A1", "A2", "A3")
	assert.True(t, s.RetainSet(newSet(t, "A3")).OK())
	assert.Equal(t, []string{"A3"}, labels(s.Wells()))

	s = newSet(t, "A1", "A2")
	s.Retain()
	assert.True(t, s.IsEmpty(), "retaining nothing empties the set")
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

func TestWellSet_Lookup(t *testing.T) {
	s := newSet(t, "A1", "B2")
	assert.True(t, s.Contains(well(t, "B2", 100)), "membership ignores values")
	assert.False(t, s.Contains(nil))
	assert.True(t, s.ContainsIndex(plate.MustParseIndex("A1")))
	assert.True(t, s.ContainsLabel("b2"))
	assert.False(t, s.ContainsLabel("C3"))
	assert.False(t, s.ContainsLabel("???"))

	_, ok := s.GetLabel("C3")
	assert.False(t, ok)
	_, ok = s.GetLabel("bad")
	assert.False(t, ok)

	sub := s.GetLabels("A1,C3,bad", ",")
	assert.Equal(t, []string{"A1"}, labels(sub.Wells()))
}

func TestWellSet_RowColumnBlock(t *testing.T) {
	s := newSet(t, "A1", "A2", "A3", "B1", "B2", "B3", "C1", "C2", "C3")

	assert.Equal(t, []string{"B1", "B2", "B3"}, labels(s.Row(1).Wells()))
	assert.Equal(t, []string{"A2", "B2", "C2"}, labels(s.Column(2).Wells()))
	assert.Equal(t, []string{"B2", "B3", "C2", "C3"},
		labels(s.Block(plate.MustParseIndex("C3"), plate.MustParseIndex("B2")).Wells()))
	assert.True(t, s.Row(9).IsEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Navigation
// ─────────────────────────────────────────────────────────────────────────────

func TestWellSet_Navigation(t *testing.T) {
	s := newSet(t, "A1", "A3", "B2")
	idx := plate.MustParseIndex

	label := func(w *plate.Well[float64], ok bool) string {
		if !ok {
			return "-"
		}
		return w.Label()
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"First", label(s.First()), "A1"},
		{"Last", label(s.Last()), "B2"},
		{"Higher A1", label(s.Higher(idx("A1"))), "A3"},
		{"Higher A2", label(s.Higher(idx("A2"))), "A3"},
		{"Higher B2", label(s.Higher(idx("B2"))), "-"},
		{"Lower A3", label(s.Lower(idx("A3"))), "A1"},
		{"Lower A1", label(s.Lower(idx("A1"))), "-"},
		{"Ceiling A2", label(s.Ceiling(idx("A2"))), "A3"},
		{"Ceiling A3", label(s.Ceiling(idx("A3"))), "A3"},
		{"Ceiling C1", label(s.Ceiling(idx("C1"))), "-"},
		{"Floor A2", label(s.Floor(idx("A2"))), "A1"},
		{"Floor A1", label(s.Floor(idx("A1"))), "A1"},
		{"Floor Z9", label(s.Floor(idx("Z9"))), "B2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestWellSet_Poll(t *testing.T) {
	s := newSet(t, "A1", "A3", "B2")
	w, ok := s.PollFirst()
	require.True(t, ok)
	assert.Equal(t, "A1", w.Label())
	w, ok = s.PollLast()
	require.True(t, ok)
	assert.Equal(t, "B2", w.Label())
	assert.Equal(t, []string{"A3"}, labels(s.Wells()))

	s.Clear()
	_, ok = s.PollFirst()
	assert.False(t, ok)
}

func TestWellSet_Views(t *testing.T) {
	s := newSet(t, "A1", "A3", "B2", "C1")
	idx := plate.MustParseIndex

	tests := []struct {
		name string
		got  *plate.WellSet[float64]
		want []string
	}{
		{"HeadSet exclusive", s.HeadSet(idx("B2"), false), []string{"A1", "A3"}},
		{"HeadSet inclusive", s.HeadSet(idx("B2"), true), []string{"A1", "A3", "B2"}},
		{"HeadSet absent bound", s.HeadSet(idx("B1"), true), []string{"A1", "A3"}},
		{"TailSet exclusive", s.TailSet(idx("A3"), false), []string{"B2", "C1"}},
		{"TailSet inclusive", s.TailSet(idx("A3"), true), []string{"A3", "B2", "C1"}},
		{"SubSet (]", s.SubSet(idx("A1"), false, idx("B2"), true), []string{"A3", "B2"}},
		{"SubSet [)", s.SubSet(idx("A1"), true, idx("B2"), false), []string{"A1", "A3"}},
		{"SubSet [] single", s.SubSet(idx("A3"), true, idx("A3"), true), []string{"A3"}},
		{"SubSet () single", s.SubSet(idx("A3"), false, idx("A3"), true), []string{}},
		{"SubSet reversed", s.SubSet(idx("C1"), true, idx("A1"), true), []string{}},
		{"HeadSetRank", s.HeadSetRank(2), []string{"A1", "A3"}},
		{"TailSetRank", s.TailSetRank(3), []string{"C1"}},
		{"SubSetRank", s.SubSetRank(1, 3), []string{"A3", "B2"}},
		{"SubSetRank clipped", s.SubSetRank(-4, 99), []string{"A1", "A3", "B2", "C1"}},
		{"SubSetRank empty", s.SubSetRank(3, 1), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(tt.got.Wells()))
		})
	}
}

func TestWellSet_ViewsAreCopies(t *testing.T) {
	s := newSet(t, "A1", "A2")
	head := s.HeadSet(plate.MustParseIndex("B1"), false)
	w, _ := head.GetLabel("A1")
	w.Append(100)

	orig, _ := s.GetLabel("A1")
	assert.Equal(t, []float64{0}, orig.Values())
}

func TestWellSet_IterationMatchesSortedOrder(t *testing.T) {
	var want []plate.Index
	for r := 0; r < 32; r++ {
		for c := 1; c <= 48; c++ {
			want = append(want, plate.MustIndex(r, c))
		}
	}
	shuffled := append([]plate.Index(nil), want...)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	s := plate.NewWellSet[int]("big")
	for _, idx := range shuffled {
		require.True(t, s.Add(plate.NewWellAt[int](idx)).OK())
	}
	if diff := cmp.Diff(want, s.Indices()); diff != "" {
		t.Fatalf("Indices mismatch (-want +got):\n%s", diff)
	}

	var back []plate.Index
	for w := range s.Backward() {
		back = append(back, w.Index())
	}
	assert.Equal(t, want[len(want)-1], back[0])
	assert.Len(t, back, len(want))
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

func TestWellSet_EqualAndCompare(t *testing.T) {
	a := newSet(t, "A1", "A2")
	b := newSet(t, "A1", "A2")
	assert.True(t, a.Equal(b))
	assert.Zero(t, a.Compare(b))

	b.Replace(well(t, "A2", 5))
	assert.False(t, a.Equal(b))
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))

	c := newSet(t, "A1")
	assert.Positive(t, a.Compare(c), "larger set sorts after")

	d := newSet(t, "A1", "A2")
	d.SetLabel("other")
	assert.False(t, a.Equal(d))
	assert.Positive(t, a.Compare(d), "label is compared first")
}

func TestWellSet_String(t *testing.T) {
	s := newSet(t, "A2", "A1")
	assert.Equal(t, "set{A1, A2}", s.String())
}
