package template

import (
	"fmt"
	"io"
)

// Pipeline names the fixed build steps. Concrete pipelines embed
// BasePipeline for the default test and deploy steps.
type Pipeline interface {
	ProjectName() string
	FetchDependencies(w io.Writer)
	Compile(w io.Writer)
	Test(w io.Writer)
	Package(w io.Writer)
	Deploy(w io.Writer)
}

// Run executes the pipeline steps in their fixed order:
// fetch, compile, test, package, deploy.
func Run(w io.Writer, p Pipeline) {
	fmt.Fprintf(w, "\n🔨 Building %s...\n", p.ProjectName())
	p.FetchDependencies(w)
	p.Compile(w)
	p.Test(w)
	p.Package(w)
	p.Deploy(w)
	fmt.Fprintf(w, "✅ Build completed for %s!\n", p.ProjectName())
}

// BasePipeline supplies the default test and deploy steps.
type BasePipeline struct{}

func (BasePipeline) Test(w io.Writer) {
	fmt.Fprintln(w, "3. Running tests...")
	fmt.Fprintln(w, "   ✓ All tests passed")
}

func (BasePipeline) Deploy(w io.Writer) {
	fmt.Fprintln(w, "5. Deploying to production...")
	fmt.Fprintln(w, "   ✓ Deployment successful")
}

// JavaBuild builds with Maven, overriding the default test step.
type JavaBuild struct {
	BasePipeline
}

func (JavaBuild) ProjectName() string { return "Java Application" }

func (JavaBuild) FetchDependencies(w io.Writer) {
	fmt.Fprintln(w, "1. Fetching dependencies with Maven...")
	fmt.Fprintln(w, "   Downloading: spring-boot, junit, lombok...")
	fmt.Fprintln(w, "   ✓ Dependencies resolved")
}

func (JavaBuild) Compile(w io.Writer) {
	fmt.Fprintln(w, "2. Compiling Java source files...")
	fmt.Fprintln(w, "   javac -d target/classes src/main/java/**/*.java")
	fmt.Fprintln(w, "   ✓ Compilation successful")
}

func (JavaBuild) Test(w io.Writer) {
	fmt.Fprintln(w, "3. Running JUnit tests...")
	fmt.Fprintln(w, "   mvn test")
	fmt.Fprintln(w, "   ✓ All tests passed")
}

func (JavaBuild) Package(w io.Writer) {
	fmt.Fprintln(w, "4. Creating JAR package...")
	fmt.Fprintln(w, "   mvn package")
	fmt.Fprintln(w, "   ✓ Created: target/app.jar")
}

// PythonBuild builds with pip and pytest.
type PythonBuild struct {
	BasePipeline
}

func (PythonBuild) ProjectName() string { return "Python Application" }

func (PythonBuild) FetchDependencies(w io.Writer) {
	fmt.Fprintln(w, "1. Installing dependencies with pip...")
	fmt.Fprintln(w, "   pip install -r requirements.txt")
	fmt.Fprintln(w, "   ✓ Dependencies installed")
}

func (PythonBuild) Compile(w io.Writer) {
	fmt.Fprintln(w, "2. Checking Python syntax...")
	fmt.Fprintln(w, "   python -m py_compile src/**/*.py")
	fmt.Fprintln(w, "   ✓ Syntax check passed")
}

func (PythonBuild) Test(w io.Writer) {
	fmt.Fprintln(w, "3. Running pytest...")
	fmt.Fprintln(w, "   pytest tests/")
	fmt.Fprintln(w, "   ✓ All tests passed")
}

func (PythonBuild) Package(w io.Writer) {
	fmt.Fprintln(w, "4. Creating wheel package...")
	fmt.Fprintln(w, "   python -m build --wheel")
	fmt.Fprintln(w, "   ✓ Created: dist/app-1.0.0-py3-none-any.whl")
}

// JavaScriptBuild bundles with webpack and deploys to a CDN, overriding
// the default deploy step.
type JavaScriptBuild struct {
	BasePipeline
}

func (JavaScriptBuild) ProjectName() string { return "JavaScript Application" }

func (JavaScriptBuild) FetchDependencies(w io.Writer) {
	fmt.Fprintln(w, "1. Installing dependencies with npm...")
	fmt.Fprintln(w, "   npm install")
	fmt.Fprintln(w, "   ✓ Dependencies installed")
}

func (JavaScriptBuild) Compile(w io.Writer) {
	fmt.Fprintln(w, "2. Bundling with Webpack...")
	fmt.Fprintln(w, "   webpack --mode production")
	fmt.Fprintln(w, "   ✓ Bundle created: dist/bundle.js")
}

func (JavaScriptBuild) Test(w io.Writer) {
	fmt.Fprintln(w, "3. Running Jest tests...")
	fmt.Fprintln(w, "   npm test")
	fmt.Fprintln(w, "   ✓ All tests passed")
}

func (JavaScriptBuild) Package(w io.Writer) {
	fmt.Fprintln(w, "4. Creating production build...")
	fmt.Fprintln(w, "   npm run build")
	fmt.Fprintln(w, "   ✓ Created: build/ directory")
}

func (JavaScriptBuild) Deploy(w io.Writer) {
	fmt.Fprintln(w, "5. Deploying to CDN...")
	fmt.Fprintln(w, "   Uploading to AWS S3...")
	fmt.Fprintln(w, "   ✓ Deployment successful")
}

// DockerBuild builds an image and deploys to Kubernetes, overriding both
// default steps.
type DockerBuild struct {
	BasePipeline
}

func (DockerBuild) ProjectName() string { return "Docker Application" }

func (DockerBuild) FetchDependencies(w io.Writer) {
	fmt.Fprintln(w, "1. Pulling base images...")
	fmt.Fprintln(w, "   docker pull node:18-alpine")
	fmt.Fprintln(w, "   ✓ Base image ready")
}

func (DockerBuild) Compile(w io.Writer) {
	fmt.Fprintln(w, "2. Building Docker image...")
	fmt.Fprintln(w, "   docker build -t myapp:latest .")
	fmt.Fprintln(w, "   ✓ Image built successfully")
}

func (DockerBuild) Test(w io.Writer) {
	fmt.Fprintln(w, "3. Running container tests...")
	fmt.Fprintln(w, "   docker run --rm myapp:latest npm test")
	fmt.Fprintln(w, "   ✓ All tests passed")
}

func (DockerBuild) Package(w io.Writer) {
	fmt.Fprintln(w, "4. Tagging and pushing image...")
	fmt.Fprintln(w, "   docker tag myapp:latest registry.io/myapp:v1.0")
	fmt.Fprintln(w, "   ✓ Image tagged")
}

func (DockerBuild) Deploy(w io.Writer) {
	fmt.Fprintln(w, "5. Deploying to Kubernetes...")
	fmt.Fprintln(w, "   kubectl apply -f deployment.yaml")
	fmt.Fprintln(w, "   ✓ Deployment successful")
}
