package models

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentProduct     Department = "Product"
	DepartmentDesign      Department = "Design"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
)

var Departments = []Department{
	DepartmentEngineering,
	DepartmentProduct,
	DepartmentDesign,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
	DepartmentOperations,
}

func (d Department) IsValid() bool {
	for _, dep := range Departments {
		if d == dep {
			return true
		}
	}
	return false
}
