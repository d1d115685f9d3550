package company

type Company struct {
	ID       int64
	Name     string
	Industry string
	JobCount int
}
