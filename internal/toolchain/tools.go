package toolchain

// Tool describes one external executable the hub depends on.
type Tool struct {
	// Name is the human-readable name shown in reports.
	Name string
	// Binary is the executable looked up on PATH.
	Binary string
	// Description explains what the tool is needed for.
	Description string
	// Required marks tools without which the hub cannot build lessons.
	Required bool
	// MinVersion, when non-empty, is the lowest advisable version.
	MinVersion string
}

// Tools returns the fixed probe table. The slice is freshly allocated so
// callers cannot mutate the table.
func Tools() []Tool {
	return []Tool{
		{
			Name:        "Emscripten (emcc)",
			Binary:      "emcc",
			Description: "C/C++ to WASM compiler",
			Required:    true,
			MinVersion:  "3.0.0",
		},
		{
			Name:        "Node.js",
			Binary:      "node",
			Description: "For npm packages and dev server",
			Required:    true,
			MinVersion:  "18.0.0",
		},
		{
			Name:        "wabt (wat2wasm)",
			Binary:      "wat2wasm",
			Description: "WAT to WASM compiler (optional)",
		},
		{
			Name:        "Git",
			Binary:      "git",
			Description: "Needed to clone the emsdk toolchain (optional)",
		},
	}
}

// Lookup returns the table entry for a binary name.
func Lookup(binary string) (Tool, bool) {
	for _, t := range Tools() {
		if t.Binary == binary {
			return t, true
		}
	}
	return Tool{}, false
}
