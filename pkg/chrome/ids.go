package chrome

// Element ids and selectors shared between the page markup and the patches.
const (
	ToastContainerID  = "toast-container"
	BannerContainerID = "banner-container"
	AgeDisplayID      = "age-display"
	DonationInfoID    = "donation-info"
	ModalRootID       = "modal-root"
	ResultsCountID    = "results-count"
	StyleElementID    = "donorkit-chrome-styles"
)

// FeedbackID is the id of the feedback element rendered under a field.
func FeedbackID(fieldID string) string {
	return fieldID + "-feedback"
}

// HelperID is the id of the long-date helper rendered under a date field.
func HelperID(fieldID string) string {
	return fieldID + "-helper"
}

func selector(id string) string {
	return "#" + id
}
