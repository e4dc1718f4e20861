package composite

import (
	"fmt"
	"strings"
)

// Node is the component interface shared by files and directories.
type Node interface {
	Name() string
	// Size returns the node's total size in bytes, summed recursively
	// for directories.
	Size() int64
	// Render returns the subtree as indented text, two spaces per level.
	Render(indent int) string
}

// File is a leaf node with a fixed size.
type File struct {
	name string
	size int64
}

// NewFile returns a file leaf.
func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

func (f *File) Name() string { return f.name }
func (f *File) Size() int64  { return f.size }

func (f *File) Render(indent int) string {
	return fmt.Sprintf("%s📄 %s (%d bytes)", strings.Repeat("  ", indent), f.name, f.size)
}

// Dir is a composite node owning an ordered list of children.
type Dir struct {
	name     string
	children []Node
}

// NewDir returns an empty directory.
func NewDir(name string) *Dir {
	return &Dir{name: name}
}

func (d *Dir) Name() string { return d.name }

// Size sums all descendants on every call.
func (d *Dir) Size() int64 {
	var total int64
	for _, c := range d.children {
		total += c.Size()
	}
	return total
}

// Add appends a child.
func (d *Dir) Add(n Node) {
	d.children = append(d.children, n)
}

// Remove deletes the first child equal to n; a no-op when absent.
func (d *Dir) Remove(n Node) {
	for i, c := range d.children {
		if c == n {
			d.children = append(d.children[:i], d.children[i+1:]...)
			return
		}
	}
}

// Children returns the ordered child list.
func (d *Dir) Children() []Node {
	return append([]Node(nil), d.children...)
}

func (d *Dir) Render(indent int) string {
	lines := []string{fmt.Sprintf("%s📁 %s/ (%d bytes total)",
		strings.Repeat("  ", indent), d.name, d.Size())}
	for _, c := range d.children {
		lines = append(lines, c.Render(indent+1))
	}
	return strings.Join(lines, "\n")
}
