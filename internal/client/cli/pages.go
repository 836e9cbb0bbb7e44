package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
)

const companyPhone = "+13055550199"

var staticPages = map[string]string{
	PathLanding: `Yacht transport across the Atlantic and the Mediterranean.
Type "schedule" for the nearest sailings or "quote" to request a quote.`,
	PathAboutUs: `About Us
We move yachts of every size on dedicated carriers, loading and discharging
afloat or by crane, with insurance from dock to dock.`,
	PathInstructions: `Instructions
1. Request a quote with your yacht's dimensions and preferred route.
2. Confirm the booking and send the paperwork.
3. Prepare the yacht for loading and meet the loading master at the port.`,
	PathTestimonials: `Testimonials
"Smooth loading in Palma and the boat arrived spotless." (M/Y owner)
"Clear communication at every step." (Charter captain)`,
	PathServices: `Services
Float-on/float-off, lift-on/lift-off, cradle supply, port agency.`,
	PathGallery: `Gallery
Photos are available in the mobile and web apps.`,
	PathPrivacyPolicy: `Privacy Policy
Contact details from quote requests are only used to answer the request.`,
}

// open renders the page at path. Protected pages go through login first.
func (a *App) open(ctx context.Context, path string) error {
	if isProtected(path) && !a.isLoggedIn() {
		a.printf("Please sign in to continue\n")
		return a.login(ctx, path)
	}

	a.current = path
	switch path {
	case PathSchedule:
		return a.Schedule(ctx)
	case PathQuoteRequest:
		return a.Quote(ctx)
	case PathContactUs:
		a.printf("Contact Us\nPhone: %s\n", models.FormatPhoneNumber(companyPhone))
		return nil
	case PathLogin:
		return a.Login(ctx)
	}

	if text, ok := staticPages[path]; ok {
		a.printf("%s\n", text)
		return nil
	}
	a.printf("Page not found: %s\n", path)
	return nil
}

// Page opens a page by its path or short name ("about", "contact").
func (a *App) Page(ctx context.Context, name string) error {
	return a.open(ctx, pathFor(name))
}

var pageAliases = map[string]string{
	"home":         PathLanding,
	"schedule":     PathSchedule,
	"quote":        PathQuoteRequest,
	"about":        PathAboutUs,
	"instructions": PathInstructions,
	"testimonials": PathTestimonials,
	"contact":      PathContactUs,
	"services":     PathServices,
	"gallery":      PathGallery,
	"privacy":      PathPrivacyPolicy,
}

func pathFor(name string) string {
	if strings.HasPrefix(name, "/") {
		return name
	}
	if p, ok := pageAliases[name]; ok {
		return p
	}
	return "/" + name
}

// Menu prints the app bar links for the current auth state and opens the
// one picked by number.
func (a *App) Menu(ctx context.Context) error {
	links := MenuLinks(a.isLoggedIn())
	for i, l := range links {
		a.printf("%2d. %s\n", i+1, l.Label)
	}

	choice, err := ask(a.reader, "Pick a number (empty to stay)", a.out)
	if err != nil || choice == "" {
		return err
	}
	var n int
	if _, err := fmt.Sscanf(choice, "%d", &n); err != nil || n < 1 || n > len(links) {
		a.printf("No such menu entry: %s\n", choice)
		return nil
	}
	return a.open(ctx, links[n-1].target())
}

// Schedule loads and prints the nearest sailings.
func (a *App) Schedule(ctx context.Context) error {
	a.printf("Loading sailings...\n")
	st := a.scheduleService.NearestSailings(ctx)
	a.printf("%s", renderSchedule(st))
	return nil
}

func renderSchedule(st models.ScheduleState) string {
	var b strings.Builder
	if st.Error != "" {
		b.WriteString(st.Error + "\n")
		return b.String()
	}
	if st.Offline {
		fmt.Fprintf(&b, "Offline: showing schedule saved %s\n", models.InternationalDate(st.FetchedAt))
	}
	if len(st.Schedule) == 0 {
		b.WriteString("No upcoming sailings\n")
		return b.String()
	}

	for _, s := range st.Schedule {
		r := models.RouteFor(s)
		if len(r) == 0 {
			continue
		}
		first, last := r[0], r[len(r)-1]
		fmt.Fprintf(&b, "%s\n", r.Name())
		fmt.Fprintf(&b, "  %s (%s) -> %s (%s)\n",
			r.LoadingPort(), models.InternationalDate(first.ArrivalOn),
			r.DestinationPort(), models.InternationalDate(last.ArrivalOn))
		fmt.Fprintf(&b, "  %.0f nm, %d days in transit\n", models.MilesForRoute(r), models.DaysInTransit(r))
	}
	return b.String()
}
