package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/osa911/portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjects(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		titles []string
	}{
		{
			name: "yaml list",
			data: "- title: One\n  description: first\n  technologies: [Go, React]\n- title: Two\n  description: second\n  featured: true\n",
			titles: []string{"One", "Two"},
		},
		{
			name:   "yaml document",
			data:   "projects:\n  - title: One\n    description: first\n",
			titles: []string{"One"},
		},
		{
			name:   "json list",
			data:   `[{"title":"One","description":"first","githubLink":"https://github.com/x/y","featured":true}]`,
			titles: []string{"One"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs, err := parseProjects([]byte(tt.data))
			require.NoError(t, err)
			require.Len(t, inputs, len(tt.titles))
			for i, title := range tt.titles {
				assert.Equal(t, title, inputs[i].Title)
			}
		})
	}

	inputs, err := parseProjects([]byte(`[{"title":"One","description":"first","githubLink":"https://github.com/x/y","featured":true}]`))
	require.NoError(t, err)
	assert.True(t, inputs[0].Featured)
	assert.Equal(t, "https://github.com/x/y", inputs[0].GithubLink)

	_, err = parseProjects([]byte("title: lonely\n"))
	assert.Error(t, err)
}

func TestLoadProjectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: One\n  description: first\n"), 0o644))

	inputs, err := loadProjectFile(path)
	require.NoError(t, err)
	assert.Len(t, inputs, 1)

	_, err = loadProjectFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPrintProjects(t *testing.T) {
	var buf bytes.Buffer
	printProjects(&buf, nil)
	assert.Equal(t, "No projects found\n", buf.String())

	buf.Reset()
	printProjects(&buf, []*models.Project{{
		ID:           "1",
		Title:        "Portfolio",
		Featured:     true,
		Technologies: []string{"Go", "React"},
		CreatedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}})
	assert.Contains(t, buf.String(), "Portfolio")
	assert.Contains(t, buf.String(), "Go, React")
	assert.Contains(t, buf.String(), "2024-05-01")
}

func TestPrintContacts(t *testing.T) {
	contacts := []*models.ContactMessage{{
		ID:        "abc",
		Name:      "Ana",
		Email:     "ana@x.com",
		Message:   "Hello there",
		CreatedAt: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
	}}

	var buf bytes.Buffer
	printContacts(&buf, contacts, false)
	assert.Contains(t, buf.String(), "ana@x.com")
	assert.Contains(t, buf.String(), "No Subject")
	assert.NotContains(t, buf.String(), "Hello there")

	buf.Reset()
	printContacts(&buf, contacts, true)
	assert.Contains(t, buf.String(), "Hello there")
}

func TestSampleNotification(t *testing.T) {
	msg, err := sampleNotification("owner@example.com", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "Portfolio Contact: Portfolio CLI - Test message", msg.Subject)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, buf.String(), "portfolio dev")
}

func TestRootRegistersCommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"serve", "migrate", "projects", "contacts", "mail", "version"} {
		assert.Contains(t, names, want)
	}
}
