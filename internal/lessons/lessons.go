package lessons

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed lessons.yaml
var rawIndex []byte

// Lesson is one numbered entry of the learning content tree.
type Lesson struct {
	Number int    `yaml:"number"`
	Dir    string `yaml:"dir"`
	Title  string `yaml:"title"`
}

// File names expected inside a lesson directory.
const (
	ReadmeFile = "README.md"
	DemoFile   = "demo.html"
)

// learnSubdir is the lesson tree's location under the hub root.
const learnSubdir = "learn"

var (
	once  sync.Once
	index []Lesson
)

type indexDoc struct {
	Lessons []Lesson `yaml:"lessons"`
}

func load() {
	once.Do(func() {
		var doc indexDoc
		if err := yaml.Unmarshal(rawIndex, &doc); err != nil {
			// The index is embedded; a parse failure is a build defect.
			panic(fmt.Sprintf("lessons: parsing embedded index: %v", err))
		}
		index = doc.Lessons
	})
}

// Count returns the number of configured lessons.
func Count() int {
	load()
	return len(index)
}

// Lookup returns the lesson for a number, or an error naming the valid
// range. It touches no files.
func Lookup(n int) (Lesson, error) {
	load()
	for _, l := range index {
		if l.Number == n {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("invalid lesson number %d: available lessons are 1-%d", n, len(index))
}

// Path returns the lesson's directory under the hub root.
func (l Lesson) Path(root string) string {
	return filepath.Join(root, learnSubdir, l.Dir)
}

// ReadmePath returns the lesson's README location under the hub root.
func (l Lesson) ReadmePath(root string) string {
	return filepath.Join(l.Path(root), ReadmeFile)
}

// DemoPath returns the lesson's demo page location under the hub root.
func (l Lesson) DemoPath(root string) string {
	return filepath.Join(l.Path(root), DemoFile)
}
