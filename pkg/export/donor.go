package export

import (
	"strconv"
)

// Donor is the registry row supplied by the server for donor exports.
type Donor struct {
	DonorID          string `json:"donor_id"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	BloodGroup       string `json:"blood_group"`
	City             string `json:"city"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	LastDonationDate string `json:"last_donation_date"`
	Eligible         bool   `json:"eligible"`
	Status           string `json:"status"`
}

// DonorColumns is the column order of DonorRecords.
var DonorColumns = []string{
	"Donor ID", "Name", "Age", "Gender", "Blood Group", "City",
	"Phone", "Email", "Last Donation", "Eligible", "Status",
}

// DonorRecords projects donors onto the export columns. Missing email reads
// "N/A", a donor who never gave reads "Never" and an unset status "Active".
func DonorRecords(donors []Donor) Table {
	t := make(Table, 0, len(donors))
	for _, d := range donors {
		t = append(t, NewRecord(
			"Donor ID", d.DonorID,
			"Name", d.Name,
			"Age", strconv.Itoa(d.Age),
			"Gender", d.Gender,
			"Blood Group", d.BloodGroup,
			"City", d.City,
			"Phone", d.Phone,
			"Email", orDefault(d.Email, "N/A"),
			"Last Donation", orDefault(d.LastDonationDate, "Never"),
			"Eligible", yesNo(d.Eligible),
			"Status", orDefault(d.Status, "Active"),
		))
	}
	return t
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
