package models

import "time"

// Organization represents a registered company that employs staff
type Organization struct {
	BaseModel
	Name          string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Sector        string     `json:"sector" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	TaxID         string     `json:"tax_id" gorm:"column:tax_id;uniqueIndex;not null;size:14" validate:"required,numeric,len=14"`
	City          string     `json:"city" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	IsActive      bool       `json:"is_active" gorm:"not null;default:true"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
