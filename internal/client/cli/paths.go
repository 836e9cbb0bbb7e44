package cli

// Route paths of the app. The quote request page requires a session.
const (
	PathLanding            = "/"
	PathQuoteRequest       = "/quote-request"
	PathSchedule           = "/schedule"
	PathGallery            = "/gallery"
	PathServices           = "/services"
	PathInstructions       = "/instructions"
	PathTestimonials       = "/testimonials"
	PathAboutUs            = "/about-us"
	PathContactUs          = "/contact-us"
	PathPrivacyPolicy      = "/privacy-policy"
	PathLogin              = "/login"
	PathLoginFailed        = "/login-failed"
	PathScheduleManagement = "/schedule-management"
)

func isProtected(path string) bool {
	return path == PathQuoteRequest
}
