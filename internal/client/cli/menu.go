package cli

// MenuLink is one entry of the app bar menu. Section names an anchor on the
// target page; ScrollDuration is how long the scroll to it takes, in ms.
type MenuLink struct {
	Label          string
	Link           string
	Section        string
	ScrollDuration int
}

var menuLinks = []MenuLink{
	{Label: "Schedule", Link: PathLanding, Section: "schedule-section", ScrollDuration: 500},
	{Label: "Get a Quote", Link: PathQuoteRequest},
	{Label: "Gallery", Link: PathGallery},
	{Label: "Services", Link: PathServices},
	{Label: "Instructions", Link: PathInstructions},
	{Label: "Testimonials", Link: PathTestimonials, Section: "testimonials-section", ScrollDuration: 500},
	{Label: "About Us", Link: PathLanding, Section: "about-us-section", ScrollDuration: 1000},
	{Label: "Contact Us", Link: PathLanding, Section: "contact-us-section", ScrollDuration: 1500},
}

var editScheduleMenuLinks = []MenuLink{
	{Label: "Home", Link: PathLanding, Section: "schedule-section", ScrollDuration: 500},
}

// MenuLinks returns the menu for the current auth state. Anonymous visitors
// get the extra "Home" entry.
func MenuLinks(isAuthorized bool) []MenuLink {
	out := make([]MenuLink, 0, len(menuLinks)+len(editScheduleMenuLinks))
	out = append(out, menuLinks...)
	if !isAuthorized {
		out = append(out, editScheduleMenuLinks...)
	}
	return out
}

// sectionPaths maps menu sections to the page the terminal renders for
// them.
var sectionPaths = map[string]string{
	"schedule-section":     PathSchedule,
	"testimonials-section": PathTestimonials,
	"about-us-section":     PathAboutUs,
	"contact-us-section":   PathContactUs,
}

// target is the page a menu link opens.
func (l MenuLink) target() string {
	if p, ok := sectionPaths[l.Section]; ok && l.Label != "Home" {
		return p
	}
	return l.Link
}
