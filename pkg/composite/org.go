package composite

import (
	"fmt"
	"strings"
)

// Unit is the component interface shared by employees and departments.
type Unit interface {
	Name() string
	// Salary returns the total salary, summed recursively for departments.
	Salary() float64
	// Headcount returns the total number of employees in the subtree.
	Headcount() int
	Render(indent int) string
}

// Employee is a leaf unit.
type Employee struct {
	name   string
	title  string
	salary float64
}

// NewEmployee returns an employee leaf.
func NewEmployee(name, title string, salary float64) *Employee {
	return &Employee{name: name, title: title, salary: salary}
}

func (e *Employee) Name() string    { return e.name }
func (e *Employee) Title() string   { return e.title }
func (e *Employee) Salary() float64 { return e.salary }
func (e *Employee) Headcount() int  { return 1 }

func (e *Employee) Render(indent int) string {
	return fmt.Sprintf("%s👤 %s - %s ($%.0f)",
		strings.Repeat("  ", indent), e.name, e.title, e.salary)
}

// Department is a composite unit owning an ordered member list.
type Department struct {
	name    string
	members []Unit
}

// NewDepartment returns an empty department.
func NewDepartment(name string) *Department {
	return &Department{name: name}
}

func (d *Department) Name() string { return d.name }

func (d *Department) Salary() float64 {
	var total float64
	for _, m := range d.members {
		total += m.Salary()
	}
	return total
}

func (d *Department) Headcount() int {
	var total int
	for _, m := range d.members {
		total += m.Headcount()
	}
	return total
}

// Add appends a member.
func (d *Department) Add(u Unit) {
	d.members = append(d.members, u)
}

// Remove deletes the first member equal to u; a no-op when absent.
func (d *Department) Remove(u Unit) {
	for i, m := range d.members {
		if m == u {
			d.members = append(d.members[:i], d.members[i+1:]...)
			return
		}
	}
}

// Members returns the ordered member list.
func (d *Department) Members() []Unit {
	return append([]Unit(nil), d.members...)
}

func (d *Department) Render(indent int) string {
	lines := []string{fmt.Sprintf("%s🏢 %s (%d employees, $%.0f total salary)",
		strings.Repeat("  ", indent), d.name, d.Headcount(), d.Salary())}
	for _, m := range d.members {
		lines = append(lines, m.Render(indent+1))
	}
	return strings.Join(lines, "\n")
}
