package domain

import "time"

const (
	CategoryGeneral      = "general"
	CategoryAgriculture  = "agriculture"
	CategoryConstruction = "construction"
	CategoryDomestic     = "domestic"
	CategoryDriving      = "driving"
	CategoryRetail       = "retail"

	DefaultBusinessType = "Individual"
)

var jobCategories = map[string]struct{}{
	CategoryGeneral:      {},
	CategoryAgriculture:  {},
	CategoryConstruction: {},
	CategoryDomestic:     {},
	CategoryDriving:      {},
	CategoryRetail:       {},
}

// ValidCategory reports whether c is a known job category.
func ValidCategory(c string) bool {
	_, ok := jobCategories[c]
	return ok
}

// Job is a posting owned by an employer identity.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Phone        string    `json:"phone"`
	WhatsApp     string    `json:"whatsapp,omitempty"`
	BusinessType string    `json:"businessType"`
	EmployerID   string    `json:"employerId"`
	EmployerName string    `json:"employerName"`
	Salary       string    `json:"salary,omitempty"`
	Requirements []string  `json:"requirements"`
	IsActive     bool      `json:"isActive"`
	Applicants   []string  `json:"applicants"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobPatch carries the editable fields of a job. Nil fields are left untouched.
type JobPatch struct {
	Title        *string
	Description  *string
	Location     *string
	Category     *string
	Phone        *string
	WhatsApp     *string
	BusinessType *string
	Salary       *string
	Requirements []string
	IsActive     *bool
}

// Empty reports whether the patch changes nothing.
func (p JobPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Location == nil &&
		p.Category == nil && p.Phone == nil && p.WhatsApp == nil &&
		p.BusinessType == nil && p.Salary == nil && p.Requirements == nil &&
		p.IsActive == nil
}
