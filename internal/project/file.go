package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gorcd/internal/ec2"
	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/params"
	"github.com/alexiusacademia/gorcd/internal/rebar"
)

// Project file format identifiers
const (
	FileFormat    = "gorcd-project"
	FileVersion   = 1
	FileExtension = ".rcd"
)

// ErrInvalidFile is wrapped by every project file decoding failure.
var ErrInvalidFile = errors.New("invalid project file")

// File is the on-disk form of a project. Results are never stored.
type File struct {
	Format      string      `json:"format"`
	Version     int         `json:"version"`
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Author      string      `json:"author,omitempty"`
	Element     ElementType `json:"element"`

	Geometry      *geometry.Document      `json:"geometry,omitempty"`
	Reinforcement *rebar.Document         `json:"reinforcement,omitempty"`
	Grade         string                  `json:"grade,omitempty"`
	Params        params.DesignParameters `json:"params"`
	Links         *rebar.ShearLinks       `json:"links,omitempty"`

	Actions Actions `json:"actions"`
}

// ToFile converts the project inputs into their file form.
func (p *Project) ToFile() File {
	f := File{
		Format:      FileFormat,
		Version:     FileVersion,
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Author:      p.Author,
		Element:     p.Element,
		Grade:       p.Concrete.Tag,
		Params:      p.Params,
		Links:       p.Links,
		Actions:     p.Actions,
	}
	if p.Shape != nil {
		doc := geometry.Encode(p.Shape)
		f.Geometry = &doc
	}
	if p.Reinforcement != nil {
		doc := rebar.Encode(p.Reinforcement)
		f.Reinforcement = &doc
	}
	return f
}

// FromFile rebuilds a project, validating every part.
func FromFile(f File) (*Project, error) {
	if f.Format != FileFormat {
		return nil, fmt.Errorf("%w: unexpected format %q", ErrInvalidFile, f.Format)
	}
	if f.Version < 1 || f.Version > FileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidFile, f.Version)
	}
	element, err := ParseElementType(string(f.Element))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	p := &Project{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Author:      f.Author,
		Element:     element,
		Params:      f.Params,
		Links:       f.Links,
		Actions:     f.Actions,
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if f.Geometry != nil {
		if p.Shape, err = f.Geometry.Decode(); err != nil {
			return nil, fmt.Errorf("%w: geometry: %w", ErrInvalidFile, err)
		}
	}
	if f.Reinforcement != nil {
		if p.Reinforcement, err = f.Reinforcement.Decode(); err != nil {
			return nil, fmt.Errorf("%w: reinforcement: %w", ErrInvalidFile, err)
		}
	}
	if f.Grade != "" {
		if p.Concrete, err = ec2.Grade(f.Grade); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
	}
	if f.Links != nil {
		if err := f.Links.Validate(); err != nil {
			return nil, fmt.Errorf("%w: links: %w", ErrInvalidFile, err)
		}
	}

	return p, nil
}

// Marshal encodes the project inputs as indented JSON.
func Marshal(p *Project) ([]byte, error) {
	return json.MarshalIndent(p.ToFile(), "", "  ")
}

// Unmarshal decodes a project file.
func Unmarshal(data []byte) (*Project, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return FromFile(f)
}

// Save writes the project to path.
func Save(path string, p *Project) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	slog.Debug("project saved", "path", path, "id", p.ID)
	return nil
}

// Load reads a project file from path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	p, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("project loaded", "path", path, "id", p.ID)
	return p, nil
}
