package snapshot

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-microplate/monitoring"
	"github.com/hasbyte1/go-microplate/numeric"
	"github.com/hasbyte1/go-microplate/plate"
)

// Well is the serialisable form of a plate.Well.
type Well[T numeric.Value] struct {
	Index  string `json:"index" yaml:"index"`
	Values []T    `json:"values" yaml:"values,flow"`
}

// Group is the serialisable form of a plate.Group. Wells lists member
// labels in index order.
type Group struct {
	Label string   `json:"label" yaml:"label"`
	Wells []string `json:"wells" yaml:"wells,flow"`
}

// WellSet is the serialisable form of a plate.WellSet.
type WellSet[T numeric.Value] struct {
	Label    string           `json:"label" yaml:"label"`
	DataType numeric.DataType `json:"dataType,omitempty" yaml:"dataType,omitempty"`
	Wells    []Well[T]        `json:"wells" yaml:"wells"`
}

// Plate is the serialisable form of a plate.Plate. A Plate with groups and
// no wells doubles as a layout file.
type Plate[T numeric.Value] struct {
	Label      string           `json:"label" yaml:"label"`
	Rows       int              `json:"rows" yaml:"rows"`
	Columns    int              `json:"columns" yaml:"columns"`
	Descriptor string           `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	DataType   numeric.DataType `json:"dataType,omitempty" yaml:"dataType,omitempty"`
	Groups     []Group          `json:"groups,omitempty" yaml:"groups,omitempty"`
	Wells      []Well[T]        `json:"wells,omitempty" yaml:"wells,omitempty"`
}

// Stack is the serialisable form of a plate.Stack.
type Stack[T numeric.Value] struct {
	Label      string           `json:"label" yaml:"label"`
	Rows       int              `json:"rows" yaml:"rows"`
	Columns    int              `json:"columns" yaml:"columns"`
	Descriptor string           `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	DataType   numeric.DataType `json:"dataType,omitempty" yaml:"dataType,omitempty"`
	Plates     []Plate[T]       `json:"plates" yaml:"plates"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Read
// ─────────────────────────────────────────────────────────────────────────────

// FromWell captures w.
func FromWell[T numeric.Value](w *plate.Well[T]) Well[T] {
	return Well[T]{Index: w.Label(), Values: w.Values()}
}

// FromGroup captures g.
func FromGroup(g *plate.Group) Group {
	indices := g.Indices()
	labels := make([]string, len(indices))
	for i, idx := range indices {
		labels[i] = idx.String()
	}
	return Group{Label: g.Label(), Wells: labels}
}

// FromWellSet captures s.
func FromWellSet[T numeric.Value](s *plate.WellSet[T]) WellSet[T] {
	out := WellSet[T]{Label: s.Label(), DataType: s.DataType(), Wells: make([]Well[T], 0, s.Len())}
	for w := range s.All() {
		out.Wells = append(out.Wells, FromWell(w))
	}
	return out
}

// FromPlate captures p, including its groups.
func FromPlate[T numeric.Value](p *plate.Plate[T]) Plate[T] {
	out := Plate[T]{
		Label:      p.Label(),
		Rows:       p.Rows(),
		Columns:    p.Columns(),
		Descriptor: p.Descriptor(),
		DataType:   p.DataType(),
	}
	for _, g := range p.Groups() {
		out.Groups = append(out.Groups, FromGroup(g))
	}
	for w := range p.All() {
		out.Wells = append(out.Wells, FromWell(w))
	}
	return out
}

// FromStack captures s and every plate in stack order.
func FromStack[T numeric.Value](s *plate.Stack[T]) Stack[T] {
	out := Stack[T]{
		Label:      s.Label(),
		Rows:       s.Rows(),
		Columns:    s.Columns(),
		Descriptor: s.Descriptor(),
		DataType:   s.DataType(),
		Plates:     make([]Plate[T], 0, s.Len()),
	}
	for p := range s.All() {
		out.Plates = append(out.Plates, FromPlate(p))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Build
// ─────────────────────────────────────────────────────────────────────────────

// checkType accepts an empty tag or the tag of T.
func checkType[T numeric.Value](tag numeric.DataType) error {
	if want := numeric.TypeOf[T](); tag != "" && tag != want {
		return fmt.Errorf("%w: snapshot holds %s, want %s", ErrDataType, tag, want)
	}
	return nil
}

// Build rebuilds the well.
func (s Well[T]) Build() (*plate.Well[T], error) {
	return plate.ParseWell(s.Index, s.Values...)
}

// Build rebuilds the group.
func (s Group) Build() (*plate.Group, error) {
	indices := make([]plate.Index, 0, len(s.Wells))
	var errs []error
	for _, l := range s.Wells {
		idx, err := plate.ParseIndex(l)
		if err != nil {
			errs = append(errs, fmt.Errorf("group %q: %w", s.Label, err))
			continue
		}
		indices = append(indices, idx)
	}
	return plate.NewGroup(s.Label, indices...), errors.Join(errs...)
}

// buildWells rebuilds each well, skipping the ones that fail.
func buildWells[T numeric.Value](in []Well[T]) ([]*plate.Well[T], []error) {
	out := make([]*plate.Well[T], 0, len(in))
	var errs []error
	for _, sw := range in {
		w, err := sw.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, w)
	}
	return out, errs
}

// Build rebuilds the well set. Items that cannot be rebuilt are skipped and
// their errors returned joined alongside the partial result.
func (s WellSet[T]) Build() (*plate.WellSet[T], error) {
	if err := checkType[T](s.DataType); err != nil {
		return nil, err
	}
	wells, errs := buildWells(s.Wells)
	set := plate.NewWellSet[T](s.Label)
	if err := set.Add(wells...).Err(); err != nil {
		errs = append(errs, err)
	}
	return set, report("well set", s.Label, errs)
}

// Build rebuilds the plate with its groups. Items that cannot be rebuilt
// are skipped and their errors returned joined alongside the partial
// result.
func (s Plate[T]) Build() (*plate.Plate[T], error) {
	if err := checkType[T](s.DataType); err != nil {
		return nil, err
	}
	p, err := plate.NewPlateSize[T](s.Rows, s.Columns, s.Label)
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, sg := range s.Groups {
		g, err := sg.Build()
		if err != nil {
			errs = append(errs, err)
		}
		if err := p.AddGroups(g).Err(); err != nil {
			errs = append(errs, err)
		}
	}
	wells, werrs := buildWells(s.Wells)
	errs = append(errs, werrs...)
	if err := p.AddWells(wells...).Err(); err != nil {
		errs = append(errs, err)
	}
	return p, report("plate", s.Label, errs)
}

// Build rebuilds the stack and every plate in it. Plates that fail are
// rebuilt as far as possible; their errors are returned joined.
func (s Stack[T]) Build() (*plate.Stack[T], error) {
	if err := checkType[T](s.DataType); err != nil {
		return nil, err
	}
	st, err := plate.NewStackSize[T](s.Rows, s.Columns, s.Label)
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, sp := range s.Plates {
		p, err := sp.Build()
		if err != nil {
			errs = append(errs, err)
			if p == nil {
				continue
			}
		}
		if err := st.Add(p).Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return st, report("stack", s.Label, errs)
}

// report logs and joins rebuild failures.
func report(kind, label string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	err := errors.Join(errs...)
	monitoring.Logf("snapshot: rebuild %s %q: %d failure(s)", kind, label, len(errs))
	return err
}
