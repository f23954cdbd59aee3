package donorform

import "github.com/dmitrymomot/donorkit/pkg/export"

// FieldRequest is one field checked on blur or input.
type FieldRequest struct {
	Field    string `json:"field" form:"field"`
	Kind     string `json:"kind" form:"kind"`
	Value    string `json:"value" form:"value"`
	Required bool   `json:"required" form:"required"`
}

// FormRequest is a whole form checked on submit.
type FormRequest struct {
	Fields []FieldRequest `json:"fields"`
}

type DOBRequest struct {
	DOB string `json:"dob" form:"dob"`
}

type DateHelperRequest struct {
	Field string `json:"field" form:"field"`
	Value string `json:"value" form:"value"`
}

type PhoneRequest struct {
	Phone string `json:"phone" form:"phone"`
}

type ScheduleRequest struct {
	LastDonation string `json:"last_donation" form:"last_donation"`
}

// ExportRequest carries the records to export. The records always come
// from the caller; the service keeps none. Donors is the registry shape
// and is projected onto the donor columns when Records is empty.
type ExportRequest struct {
	Filename string         `json:"filename"`
	Title    string         `json:"title"`
	Headers  []string       `json:"headers"`
	Records  export.Table   `json:"records"`
	Donors   []export.Donor `json:"donors"`
}

func (r ExportRequest) table() export.Table {
	if len(r.Records) == 0 && len(r.Donors) > 0 {
		return export.DonorRecords(r.Donors)
	}
	return r.Records
}

type SearchRequest struct {
	Term    string       `json:"term"`
	Records export.Table `json:"records"`
}
