package labstore

import (
	"fmt"
	"strings"
	"time"
)

// ReceiptAddress is the model entity for the receipt_addresses table.
type ReceiptAddress struct {
	config `json:"-"`
	// ID of the entity.
	ID int `json:"id,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Province holds the value of the "province" field.
	Province string `json:"province,omitempty"`
	// District holds the value of the "district" field.
	District string `json:"district,omitempty"`
	// SubDistrict holds the value of the "sub_district" field.
	SubDistrict string `json:"sub_district,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode string `json:"postal_code,omitempty"`
	// Telephone holds the value of the "telephone" field.
	Telephone *string `json:"telephone,omitempty"`
	// FaxNumber holds the value of the "fax_number" field.
	FaxNumber *string `json:"fax_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// scanValues returns the scan destinations aligned with
// receiptaddress.Columns.
func (ra *ReceiptAddress) scanValues() []any {
	return []any{
		&ra.ID,
		&ra.Address,
		&ra.Province,
		&ra.District,
		&ra.SubDistrict,
		&ra.PostalCode,
		&ra.Telephone,
		&ra.FaxNumber,
		&ra.CreatedAt,
		&ra.UpdatedAt,
	}
}

// Update returns a builder for updating this ReceiptAddress. The builder is
// bound to the transaction or client the entity was loaded with.
func (ra *ReceiptAddress) Update() *ReceiptAddressUpdateOne {
	return NewReceiptAddressClient(ra.config).UpdateOne(ra)
}

// String implements the fmt.Stringer.
func (ra *ReceiptAddress) String() string {
	var builder strings.Builder
	builder.WriteString("ReceiptAddress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ra.ID))
	builder.WriteString("address=")
	builder.WriteString(ra.Address)
	builder.WriteString(", ")
	builder.WriteString("province=")
	builder.WriteString(ra.Province)
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(ra.PostalCode)
	builder.WriteByte(')')
	return builder.String()
}

// ReceiptAddresses is a parsable slice of ReceiptAddress.
type ReceiptAddresses []*ReceiptAddress
