package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"text/template"
	"time"

	"github.com/wasmhub-labs/wasmhub/internal/manifest"
	"github.com/wasmhub-labs/wasmhub/internal/platform"
)

//go:embed templates
var templatesFS embed.FS

// Data holds all template variables available to scaffold templates.
type Data struct {
	Name        string // e.g., "my-wasm-app"
	Description string // Human-readable description
	Version     string // Semver, e.g., "0.1.0"
	Year        int    // Current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	ProjectDir string
	Files      []string
	Warnings   []string
}

// NewData creates a Data with derived fields populated.
func NewData(name string) *Data {
	return &Data{
		Name:        name,
		Description: fmt.Sprintf("C/WASM project %s", name),
		Version:     "0.1.0",
		Year:        time.Now().Year(),
	}
}

// fileSpec maps one embedded template to its output path within a project.
type fileSpec struct {
	tmpl string
	out  string
	mode os.FileMode
}

// fileSet returns the templates rendered for the current platform. Only
// the platform family's build script is generated.
func fileSet() []fileSpec {
	files := []fileSpec{
		{tmpl: "main.c.tmpl", out: filepath.Join("src", "main.c"), mode: 0644},
		{tmpl: "index.html.tmpl", out: filepath.Join("www", "index.html"), mode: 0644},
		{tmpl: "wasmhub.yaml.tmpl", out: manifest.FileName, mode: 0644},
	}
	if runtime.GOOS == "windows" {
		return append(files, fileSpec{tmpl: "build.bat.tmpl", out: platform.WindowsBuildScript, mode: 0644})
	}
	return append(files, fileSpec{tmpl: "build.sh.tmpl", out: platform.UnixBuildScript, mode: 0755})
}

// Generate creates a new project under projectsDir. The target directory
// must not already exist. Files are rendered into a temporary sibling
// directory first and renamed into place, so a failed generation never
// leaves a partial project behind.
func Generate(data *Data, projectsDir string) (*Result, error) {
	target := filepath.Join(projectsDir, data.Name)
	if _, err := os.Stat(target); err == nil {
		return nil, fmt.Errorf("project %q already exists at %s", data.Name, target)
	}

	if err := os.MkdirAll(projectsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating projects directory: %w", err)
	}

	tmp, err := os.MkdirTemp(projectsDir, "."+data.Name+".tmp-")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	// MkdirTemp creates 0700; the finished project should be a normal tree.
	if err := platform.Chmod(tmp, 0755); err != nil {
		return nil, fmt.Errorf("setting staging directory mode: %w", err)
	}

	result := &Result{ProjectDir: target}

	for _, spec := range fileSet() {
		if err := renderFile(data, spec, tmp); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, spec.out)
	}

	if err := os.Rename(tmp, target); err != nil {
		return nil, fmt.Errorf("moving project into place: %w", err)
	}

	// Validate the generated manifest; issues are warnings, not failures.
	manifestFile := filepath.Join(target, manifest.FileName)
	valResult, valErr := manifest.ValidateFile(manifestFile)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}

// renderFile executes one template into dir, creating parent directories
// and applying the requested mode.
func renderFile(data *Data, spec fileSpec, dir string) error {
	tmplBytes, err := fs.ReadFile(templatesFS, "templates/"+spec.tmpl)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", spec.tmpl, err)
	}

	tmpl, err := template.New(spec.tmpl).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", spec.tmpl, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", spec.tmpl, err)
	}

	outPath := filepath.Join(dir, spec.out)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if spec.mode != 0644 {
		if err := platform.Chmod(outPath, spec.mode); err != nil {
			return fmt.Errorf("setting mode on %s: %w", outPath, err)
		}
	}
	return nil
}
