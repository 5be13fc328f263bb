package geometry

import "fmt"

// Document is the serialisable form of a Shape.
type Document struct {
	Type            Kind    `json:"type"`
	Width           float64 `json:"width,omitempty"`
	Depth           float64 `json:"depth,omitempty"`
	Thickness       float64 `json:"thickness,omitempty"`
	WebWidth        float64 `json:"web_width,omitempty"`
	FlangeWidth     float64 `json:"flange_width,omitempty"`
	FlangeThickness float64 `json:"flange_thickness,omitempty"`
}

// Encode converts a shape into its document form.
func Encode(s Shape) Document {
	switch v := s.(type) {
	case Rectangle:
		return Document{Type: KindRectangle, Width: v.W, Depth: v.H}
	case SlabStrip:
		return Document{Type: KindSlab, Thickness: v.Thickness}
	case TShape:
		return flangeDocument(KindT, v.Flange)
	case LShape:
		return flangeDocument(KindL, v.Flange)
	default:
		return Document{}
	}
}

func flangeDocument(kind Kind, f Flange) Document {
	return Document{
		Type:            kind,
		Depth:           f.H,
		WebWidth:        f.Bw,
		FlangeWidth:     f.Bf,
		FlangeThickness: f.Hf,
	}
}

// Decode builds the shape described by the document.
func (d Document) Decode() (Shape, error) {
	switch d.Type {
	case KindRectangle:
		return NewRectangle(d.Width, d.Depth)
	case KindSlab:
		return NewSlabStrip(d.Thickness)
	case KindT:
		return NewTShape(d.WebWidth, d.Depth, d.FlangeWidth, d.FlangeThickness)
	case KindL:
		return NewLShape(d.WebWidth, d.Depth, d.FlangeWidth, d.FlangeThickness)
	default:
		return nil, fmt.Errorf("%w: unknown shape type %q", ErrInvalidShape, d.Type)
	}
}
