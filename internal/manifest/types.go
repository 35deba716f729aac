package manifest

// FileName is the manifest file written into every scaffolded project.
const FileName = "wasmhub.yaml"

// ProjectManifest describes a scaffolded C/WASM project: its identity and
// the C functions exported to JavaScript.
type ProjectManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Source      string   `yaml:"source" json:"source"`
	Output      string   `yaml:"output" json:"output"`
	Exports     []string `yaml:"exports" json:"exports"`
}
