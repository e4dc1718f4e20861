package demo

import (
	"github.com/mesh-intelligence/patternbook/pkg/template"
)

func templateRecipes(r *Runner) error {
	r.banner("Template Method Pattern - Recipe System Example")

	recipes := []template.Recipe{
		template.Coffee{},
		template.Tea{},
		template.Soup{},
		template.Latte{},
	}
	for _, recipe := range recipes {
		template.Prepare(r.Out, recipe)
		r.println()
	}

	r.footer(
		"Key Benefit: The algorithm structure is defined once,",
		"but specific steps can be customized by each recipe!",
	)
	return nil
}

func templateBuilds(r *Runner) error {
	r.banner("Template Method Pattern - Build Process Example")

	builds := []template.Pipeline{
		template.JavaBuild{},
		template.PythonBuild{},
		template.JavaScriptBuild{},
		template.DockerBuild{},
	}
	for _, build := range builds {
		template.Run(r.Out, build)
		r.println()
	}

	r.footer(
		"Key Benefit: The build process structure is defined once,",
		"but each project type can customize specific steps!",
	)
	return nil
}
