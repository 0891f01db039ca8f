package labstore

import (
	"fmt"
	"strings"
	"time"
)

// Company is the model entity for the companies table.
type Company struct {
	config `json:"-"`
	// ID of the entity.
	ID int `json:"id,omitempty"`
	// CompanyNameEn holds the value of the "company_name_en" field.
	CompanyNameEn string `json:"company_name_en,omitempty"`
	// CompanyNameTh holds the value of the "company_name_th" field.
	CompanyNameTh string `json:"company_name_th,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// SubDistrict holds the value of the "sub_district" field.
	SubDistrict string `json:"sub_district,omitempty"`
	// District holds the value of the "district" field.
	District string `json:"district,omitempty"`
	// Province holds the value of the "province" field.
	Province string `json:"province,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode string `json:"postal_code,omitempty"`
	// TaxID holds the value of the "tax_id" field.
	TaxID *string `json:"tax_id,omitempty"`
	// Telephone holds the value of the "telephone" field.
	Telephone *string `json:"telephone,omitempty"`
	// FaxNumber holds the value of the "fax_number" field.
	FaxNumber *string `json:"fax_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// scanValues returns the scan destinations aligned with company.Columns.
func (c *Company) scanValues() []any {
	return []any{
		&c.ID,
		&c.CompanyNameEn,
		&c.CompanyNameTh,
		&c.Address,
		&c.SubDistrict,
		&c.District,
		&c.Province,
		&c.PostalCode,
		&c.TaxID,
		&c.Telephone,
		&c.FaxNumber,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

// Update returns a builder for updating this Company. The builder is bound
// to the transaction or client the entity was loaded with.
func (c *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(c.config).UpdateOne(c)
}

// String implements the fmt.Stringer.
func (c *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", c.ID))
	builder.WriteString("company_name_en=")
	builder.WriteString(c.CompanyNameEn)
	builder.WriteString(", ")
	builder.WriteString("company_name_th=")
	builder.WriteString(c.CompanyNameTh)
	builder.WriteString(", ")
	builder.WriteString("province=")
	builder.WriteString(c.Province)
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(c.PostalCode)
	if v := c.TaxID; v != nil {
		builder.WriteString(", ")
		builder.WriteString("tax_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
