package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/project"
	"github.com/alexiusacademia/gorcd/internal/rebar"
)

var reportDate = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func slabProject(t *testing.T) *project.Project {
	t.Helper()
	p := project.New("Transfer slab")
	p.Author = "A. Engineer"
	p.Element = project.ElementSlab

	shape, err := geometry.NewSlabStrip(500)
	require.NoError(t, err)
	p.Shape = shape

	r, err := rebar.NewSlab(
		rebar.SlabFace{Layers: []rebar.Layer{{Diameter: 25, Spacing: 200}}},
		rebar.SlabFace{Layers: []rebar.Layer{{Diameter: 32, Spacing: 175}}},
	)
	require.NoError(t, err)
	p.Reinforcement = r

	require.NoError(t, p.SetConcreteGrade("C32/40"))
	p.Params.CoverTop = 25
	p.Params.CoverBottom = 50
	p.Params.RedistributionRatio = 0.85
	p.Actions = project.Actions{ULSMoment: "600", ULSShear: "150", SLSMoment: "400"}
	return p
}

func calculated(t *testing.T) *Report {
	t.Helper()
	p := slabProject(t)
	require.NoError(t, p.Calculate())
	r, err := Build(p, reportDate)
	require.NoError(t, err)
	return r
}

func TestBuild(t *testing.T) {
	_, err := Build(slabProject(t), reportDate)
	assert.True(t, errors.Is(err, ErrNotCalculated))

	r := calculated(t)
	assert.Equal(t, "Transfer slab", r.Project)
	assert.Equal(t, "2026-03-02", r.Date)
	require.Len(t, r.Checks, 3)

	var headings []string
	for _, s := range r.Sections {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{"Actions", "Flexure", "Shear", "Cracking"}, headings)

	flexure := r.Sections[1]
	assert.Contains(t, flexure.Rows, Row{"As,prov", "4595.7 mm²"})
	assert.Contains(t, flexure.Rows, Row{"Moment capacity", "782.79"})
}

func TestBuild_CrackingSkipped(t *testing.T) {
	p := slabProject(t)
	p.Actions.SLSMoment = "-100"
	require.NoError(t, p.Calculate())

	r, err := Build(p, reportDate)
	require.NoError(t, err)
	assert.False(t, r.Pass())

	last := r.Sections[len(r.Sections)-1]
	assert.Equal(t, "Cracking", last.Heading)
	require.Len(t, last.Rows, 1)
	assert.Equal(t, "NOT CHECKED", verdict(r.Checks[2]))
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, calculated(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, calculated(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(reportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "RC Section Check", v)

	v, err = f.GetCellValue(reportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Transfer slab", v)
}

func TestWriteBatchXLSX(t *testing.T) {
	rows := []BatchRow{
		{File: "a.rcd", Name: "A", Checks: []project.Check{
			{Name: "Flexure", Value: 100, Limit: 200, Pass: true},
			{Name: "Shear", Value: 50, Limit: 100, Pass: true},
		}},
		{File: "b.rcd", Name: "B", Err: "invalid project file"},
	}
	assert.True(t, rows[0].Pass())
	assert.False(t, rows[1].Pass())

	var buf bytes.Buffer
	require.NoError(t, WriteBatchXLSX(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(batchSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Result", got[0][5])
	assert.Equal(t, "PASS", got[1][5])
	assert.Equal(t, "0.5", got[1][2])
	assert.Equal(t, "FAIL", got[2][5])
	assert.Equal(t, "invalid project file", got[2][6])
}

func TestSave(t *testing.T) {
	r := calculated(t)
	dir := t.TempDir()

	for _, name := range []string{"calc.pdf", "calc.xlsx"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, r))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	assert.Error(t, Save(filepath.Join(dir, "calc.txt"), r))
}
