package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildOrg() (company, engineering, marketing *Department) {
	company = NewDepartment("TechCorp Inc.")

	engineering = NewDepartment("Engineering")
	engineering.Add(NewEmployee("Alice Johnson", "Engineering Manager", 120000))
	engineering.Add(NewEmployee("Bob Smith", "Senior Developer", 95000))

	marketing = NewDepartment("Marketing")
	marketing.Add(NewEmployee("Henry Davis", "Marketing Director", 130000))

	digital := NewDepartment("Digital Marketing")
	digital.Add(NewEmployee("Ivy Chen", "SEO Specialist", 65000))
	digital.Add(NewEmployee("Jack Taylor", "Content Writer", 55000))
	marketing.Add(digital)

	company.Add(engineering)
	company.Add(marketing)
	company.Add(NewEmployee("Oliver White", "CEO", 250000))
	return company, engineering, marketing
}

func TestDepartmentAggregates(t *testing.T) {
	company, engineering, marketing := buildOrg()

	assert.Equal(t, 2, engineering.Headcount())
	assert.Equal(t, 215000.0, engineering.Salary())

	// Marketing includes its nested department.
	assert.Equal(t, 3, marketing.Headcount())
	assert.Equal(t, 250000.0, marketing.Salary())

	assert.Equal(t, 6, company.Headcount())
	assert.Equal(t, 715000.0, company.Salary())
}

func TestCompanyAggregateEqualsSumOfMembers(t *testing.T) {
	company, _, _ := buildOrg()

	var salary float64
	var headcount int
	for _, m := range company.Members() {
		salary += m.Salary()
		headcount += m.Headcount()
	}
	assert.Equal(t, company.Salary(), salary)
	assert.Equal(t, company.Headcount(), headcount)
}

func TestEmployeeLeafValues(t *testing.T) {
	e := NewEmployee("Test Employee", "Tester", 50000)
	assert.Equal(t, 1, e.Headcount())
	assert.Equal(t, 50000.0, e.Salary())
}

func TestDepartmentRemove(t *testing.T) {
	dept := NewDepartment("Sales")
	eve := NewEmployee("Eve Wilson", "Sales Manager", 110000)
	frank := NewEmployee("Frank Miller", "Sales Representative", 60000)
	dept.Add(eve)
	dept.Add(frank)

	dept.Remove(eve)
	assert.Equal(t, 1, dept.Headcount())
	assert.Equal(t, 60000.0, dept.Salary())
}

func TestOrgRenderShowsTotals(t *testing.T) {
	company, _, _ := buildOrg()

	out := company.Render(0)
	assert.Contains(t, out, "🏢 TechCorp Inc. (6 employees, $715000 total salary)")
	assert.Contains(t, out, "  🏢 Engineering (2 employees, $215000 total salary)")
	assert.Contains(t, out, "    👤 Alice Johnson - Engineering Manager ($120000)")
	assert.Contains(t, out, "    🏢 Digital Marketing (2 employees, $120000 total salary)")
}
