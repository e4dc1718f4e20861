package composite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTree() (root, documents, projects, webapp *Dir) {
	root = NewDir("root")

	documents = NewDir("Documents")
	documents.Add(NewFile("resume.pdf", 245760))
	documents.Add(NewFile("cover_letter.docx", 15360))

	webapp = NewDir("WebApp")
	webapp.Add(NewFile("index.html", 2048))
	webapp.Add(NewFile("style.css", 4096))
	webapp.Add(NewFile("script.js", 8192))

	projects = NewDir("Projects")
	projects.Add(webapp)

	root.Add(documents)
	root.Add(projects)
	root.Add(NewFile("readme.txt", 512))
	return root, documents, projects, webapp
}

func TestDirSizeSumsRecursively(t *testing.T) {
	root, documents, projects, webapp := buildTree()

	assert.Equal(t, int64(14336), webapp.Size())
	assert.Equal(t, int64(14336), projects.Size())
	assert.Equal(t, int64(261120), documents.Size())
	assert.Equal(t, int64(275968), root.Size())
}

func TestDirSizeEqualsSumOfChildren(t *testing.T) {
	root, _, _, _ := buildTree()

	var sum int64
	for _, c := range root.Children() {
		sum += c.Size()
	}
	assert.Equal(t, root.Size(), sum)
}

func TestSingleLeafSize(t *testing.T) {
	f := NewFile("test.txt", 1024)
	assert.Equal(t, int64(1024), f.Size())
}

func TestSizeReflectsCurrentChildren(t *testing.T) {
	dir := NewDir("dir")
	a := NewFile("a", 100)
	b := NewFile("b", 200)
	dir.Add(a)
	dir.Add(b)
	assert.Equal(t, int64(300), dir.Size())

	// Aggregates are recomputed, never cached.
	dir.Remove(a)
	assert.Equal(t, int64(200), dir.Size())

	dir.Remove(a) // absent: no-op
	assert.Equal(t, int64(200), dir.Size())
}

func TestRenderIndentsPerLevel(t *testing.T) {
	root, _, _, _ := buildTree()

	out := root.Render(0)
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "📁 root/")
	assert.Contains(t, out, "  📁 Documents/")
	assert.Contains(t, out, "    📄 resume.pdf (245760 bytes)")
	assert.Contains(t, out, "    📁 WebApp/")
	assert.Contains(t, out, "      📄 index.html (2048 bytes)")
}

func TestUniformInterface(t *testing.T) {
	root, documents, _, _ := buildTree()

	nodes := []Node{root, documents, NewFile("test.txt", 1024)}
	for _, n := range nodes {
		assert.NotEmpty(t, n.Name())
		assert.GreaterOrEqual(t, n.Size(), int64(0))
	}
}
