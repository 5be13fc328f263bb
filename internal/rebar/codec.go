package rebar

import "fmt"

const (
	TypeBeam = "beam"
	TypeSlab = "slab"
)

// Document is the serialisable form of a Reinforcement.
type Document struct {
	Type string             `json:"type"`
	Beam *BeamReinforcement `json:"beam,omitempty"`
	Slab *SlabReinforcement `json:"slab,omitempty"`
}

// Encode wraps a reinforcement layout in its document form.
func Encode(r Reinforcement) Document {
	switch v := r.(type) {
	case *BeamReinforcement:
		return Document{Type: TypeBeam, Beam: v}
	case *SlabReinforcement:
		return Document{Type: TypeSlab, Slab: v}
	default:
		return Document{}
	}
}

// Decode validates the document and returns the layout it holds.
func (d Document) Decode() (Reinforcement, error) {
	switch d.Type {
	case TypeBeam:
		if d.Beam == nil {
			return nil, fmt.Errorf("%w: beam document has no beam data", ErrInvalidLayout)
		}
		return decodeBeam(d.Beam)
	case TypeSlab:
		if d.Slab == nil {
			return nil, fmt.Errorf("%w: slab document has no slab data", ErrInvalidLayout)
		}
		return NewSlab(d.Slab.Top, d.Slab.Bottom)
	default:
		return nil, fmt.Errorf("%w: unknown reinforcement type %q", ErrInvalidLayout, d.Type)
	}
}

func decodeBeam(b *BeamReinforcement) (*BeamReinforcement, error) {
	var out *BeamReinforcement
	if b.Layout == nil {
		if len(b.Top.Rows) > 1 || len(b.Bottom.Rows) > 1 {
			return nil, fmt.Errorf("%w: multi-row beam needs a layout", ErrIncompleteReinforcement)
		}
		var top, bottom []float64
		if len(b.Top.Rows) == 1 {
			top = b.Top.Rows[0]
		}
		if len(b.Bottom.Rows) == 1 {
			bottom = b.Bottom.Rows[0]
		}
		out = NewSimpleBeam(top, bottom)
	} else {
		var err error
		out, err = NewBeam(b.Top, b.Bottom, *b.Layout)
		if err != nil {
			return nil, err
		}
	}
	if err := out.ShareWithSlab(b.SlabBars, b.SymmetricSlabBars); err != nil {
		return nil, err
	}
	return out, nil
}
