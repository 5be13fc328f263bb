package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcd/internal/config"
	"github.com/alexiusacademia/gorcd/internal/project"
)

func TestTemplateProject_Calculates(t *testing.T) {
	cfg = config.Default()
	cfg.Author = "A. Engineer"

	for _, element := range []project.ElementType{project.ElementBeam, project.ElementSlab} {
		t.Run(string(element), func(t *testing.T) {
			p, err := templateProject("T1", element)
			require.NoError(t, err)
			assert.Equal(t, "A. Engineer", p.Author)
			assert.Equal(t, "C30/37", p.Concrete.Tag)

			require.NoError(t, p.Calculate())
			res := p.Results()
			require.True(t, res.Calculated, "%v", res.Messages)
			assert.NotNil(t, res.Cracking, res.CrackingMessage)
			assert.Len(t, p.Checks(), 3)
		})
	}
}

func TestFindProjects(t *testing.T) {
	base := t.TempDir()
	for _, f := range []string{"a.rcd", "level1/b.rcd", "level1/deep/c.rcd", "notes.txt"} {
		path := filepath.Join(base, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	files, err := findProjects(base, "**/*.rcd")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.rcd", "level1/b.rcd", "level1/deep/c.rcd"}, files)

	files, err = findProjects(base, "level1/*.rcd")
	require.NoError(t, err)
	assert.Equal(t, []string{"level1/b.rcd"}, files)

	_, err = findProjects(base, "[")
	assert.Error(t, err)
}

func TestCheckProjects(t *testing.T) {
	cfg = config.Default()
	base := t.TempDir()

	p, err := templateProject("Beam", project.ElementBeam)
	require.NoError(t, err)
	require.NoError(t, project.Save(filepath.Join(base, "beam.rcd"), p))
	require.NoError(t, os.WriteFile(filepath.Join(base, "broken.rcd"), []byte("{"), 0o644))

	rows := checkProjects(base, []string{"beam.rcd", "broken.rcd"})
	require.Len(t, rows, 2)
	assert.Equal(t, "Beam", rows[0].Name)
	assert.Empty(t, rows[0].Err)
	assert.Len(t, rows[0].Checks, 3)
	assert.NotEmpty(t, rows[1].Err)
	assert.False(t, rows[1].Pass())
}
