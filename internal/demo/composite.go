package demo

import (
	"github.com/mesh-intelligence/patternbook/pkg/composite"
)

func compositeFileSystem(r *Runner) error {
	r.banner("Composite Pattern - File System Example")

	root := composite.NewDir("root")

	documents := composite.NewDir("Documents")
	documents.Add(composite.NewFile("resume.pdf", 245760))
	documents.Add(composite.NewFile("cover_letter.docx", 15360))

	projects := composite.NewDir("Projects")
	webapp := composite.NewDir("WebApp")
	webapp.Add(composite.NewFile("index.html", 2048))
	webapp.Add(composite.NewFile("style.css", 4096))
	webapp.Add(composite.NewFile("script.js", 8192))

	mobile := composite.NewDir("MobileApp")
	mobile.Add(composite.NewFile("MainActivity.java", 12288))
	mobile.Add(composite.NewFile("layout.xml", 3072))

	projects.Add(webapp)
	projects.Add(mobile)

	images := composite.NewDir("Images")
	images.Add(composite.NewFile("photo1.jpg", 1048576))
	images.Add(composite.NewFile("photo2.png", 2097152))

	root.Add(documents)
	root.Add(projects)
	root.Add(images)
	root.Add(composite.NewFile("readme.txt", 512))

	r.step("File System Structure:")
	r.println(root.Render(0))
	r.println()

	r.step("Size Analysis:")
	r.printf("Root folder size: %d bytes (%.2f KB)\n", root.Size(), float64(root.Size())/1024)
	r.printf("Documents folder size: %d bytes\n", documents.Size())
	r.printf("Projects folder size: %d bytes\n", projects.Size())
	r.printf("WebApp folder size: %d bytes\n", webapp.Size())
	r.printf("MobileApp folder size: %d bytes\n", mobile.Size())
	r.printf("Images folder size: %d bytes\n", images.Size())
	r.println()

	r.step("Uniform Interface Demo:")
	for _, node := range []composite.Node{root, documents, composite.NewFile("test.txt", 1024)} {
		r.printf("%s: %d bytes\n", node.Name(), node.Size())
	}
	r.println()

	r.footer(
		"Key Benefit: Can treat files and folders uniformly!",
		"Operations work the same way on both individual files and folders!",
	)
	return nil
}

func compositeOrgChart(r *Runner) error {
	r.banner("Composite Pattern - Organization Chart Example")

	company := composite.NewDepartment("TechCorp Inc.")

	engineering := composite.NewDepartment("Engineering")
	engineering.Add(composite.NewEmployee("Alice Johnson", "Engineering Manager", 120000))
	engineering.Add(composite.NewEmployee("Bob Smith", "Senior Developer", 95000))
	engineering.Add(composite.NewEmployee("Charlie Brown", "Developer", 75000))
	engineering.Add(composite.NewEmployee("Diana Prince", "QA Engineer", 70000))

	sales := composite.NewDepartment("Sales")
	sales.Add(composite.NewEmployee("Eve Wilson", "Sales Manager", 110000))
	sales.Add(composite.NewEmployee("Frank Miller", "Sales Representative", 60000))
	sales.Add(composite.NewEmployee("Grace Lee", "Sales Representative", 58000))

	marketing := composite.NewDepartment("Marketing")
	marketing.Add(composite.NewEmployee("Henry Davis", "Marketing Director", 130000))

	digital := composite.NewDepartment("Digital Marketing")
	digital.Add(composite.NewEmployee("Ivy Chen", "SEO Specialist", 65000))
	digital.Add(composite.NewEmployee("Jack Taylor", "Content Writer", 55000))

	social := composite.NewDepartment("Social Media")
	social.Add(composite.NewEmployee("Kate Anderson", "Social Media Manager", 70000))
	social.Add(composite.NewEmployee("Liam O'Brien", "Graphic Designer", 60000))

	marketing.Add(digital)
	marketing.Add(social)

	hr := composite.NewDepartment("Human Resources")
	hr.Add(composite.NewEmployee("Mia Rodriguez", "HR Manager", 100000))
	hr.Add(composite.NewEmployee("Noah Kim", "Recruiter", 65000))

	company.Add(engineering)
	company.Add(sales)
	company.Add(marketing)
	company.Add(hr)
	company.Add(composite.NewEmployee("Oliver White", "CEO", 250000))

	r.step("Organization Chart:")
	r.println(company.Render(0))
	r.println()

	r.step("Organization Statistics:")
	r.printf("Total Employees: %d\n", company.Headcount())
	r.printf("Total Payroll: $%.0f\n", company.Salary())
	r.println()

	r.step("Department Breakdown:")
	for _, dept := range []*composite.Department{engineering, sales, marketing, hr} {
		r.printf("%s:\n", dept.Name())
		r.printf("  Employees: %d\n", dept.Headcount())
		r.printf("  Total Salary: $%.0f\n", dept.Salary())
		r.printf("  Average Salary: $%.0f\n", dept.Salary()/float64(dept.Headcount()))
	}
	r.println()

	r.step("Uniform Interface Demo:")
	units := []composite.Unit{
		company,
		engineering,
		composite.NewEmployee("Test Employee", "Tester", 50000),
	}
	for _, u := range units {
		r.printf("%s: %d employees, $%.0f salary\n", u.Name(), u.Headcount(), u.Salary())
	}
	r.println()

	r.footer(
		"Key Benefit: Can treat employees and departments uniformly!",
		"Operations work the same way on both individual employees and departments!",
	)
	return nil
}
