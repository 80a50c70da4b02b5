package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/osa911/portfolio/internal/app"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage portfolio projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		featured, _ := cmd.Flags().GetBool("featured")
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			list := a.Projects.List
			if featured {
				list = a.Projects.ListFeatured
			}
			projects, err := list(ctx)
			if err != nil {
				return err
			}
			printProjects(cmd.OutOrStdout(), projects)
			return nil
		})
	},
}

var projectsImportCmd = &cobra.Command{
	Use:   "import <file.yaml|file.json>",
	Short: "Create projects from a YAML or JSON file",
	Long: `Create projects from a YAML or JSON file.

The file holds either a list of projects or a document with a "projects" list:

  projects:
    - title: Portfolio
      description: This site
      technologies: [Go, React]
      githubLink: https://github.com/osa911/portfolio
      featured: true`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := loadProjectFile(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			created, err := a.Projects.Import(ctx, inputs)
			for _, p := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%s)\n", p.Title, p.ID)
			}
			if err != nil {
				return fmt.Errorf("imported %d of %d projects: %w", len(created), len(inputs), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d projects\n", len(created))
			return nil
		})
	},
}

// loadProjectFile reads project inputs from YAML; JSON parses as YAML too
func loadProjectFile(path string) ([]service.ProjectInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseProjects(data)
}

func parseProjects(data []byte) ([]service.ProjectInput, error) {
	var list []service.ProjectInput
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc struct {
		Projects []service.ProjectInput `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse projects: %w", err)
	}
	if len(doc.Projects) == 0 {
		return nil, fmt.Errorf("no projects found")
	}
	return doc.Projects, nil
}

func printProjects(out io.Writer, projects []*models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tFEATURED\tTECHNOLOGIES\tCREATED")
	for _, p := range projects {
		featured := ""
		if p.Featured {
			featured = "★"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, featured, strings.Join(p.Technologies, ", "), p.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
}

func init() {
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsImportCmd)

	projectsListCmd.Flags().Bool("featured", false, "Only list featured projects")
}
