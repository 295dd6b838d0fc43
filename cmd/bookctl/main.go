// bookctl submits a booking against a running portfolio service, walking the
// same details -> payment -> success flow the site frontend uses. Handy for
// smoke-testing a deployment without a browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/booking"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/client"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/config"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	base := flag.String("base", cfg.Client.APIBaseURL, "API base URL")
	kind := flag.String("type", portfolio.BookingService, "booking type: Service or Consultation")
	title := flag.String("title", "", "service or topic title")
	price := flag.String("price", "", "displayed price")
	name := flag.String("name", "", "client name")
	email := flag.String("email", "", "client email")
	date := flag.String("date", "", "requested date (required for Service bookings)")
	notes := flag.String("notes", "", "optional notes")
	flag.Parse()

	w := booking.NewWorkflow(client.New(*base).SubmitBooking)

	if err := w.Select(booking.Item{Kind: *kind, Title: *title, Price: *price}); err != nil {
		log.Fatalf("select: %v", err)
	}
	if err := w.SubmitDetails(booking.Details{Name: *name, Email: *email, Date: *date, Notes: *notes}); err != nil {
		fmt.Fprintf(os.Stderr, "details rejected: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("step: %s (no network call yet)\n", w.Step())

	if err := w.Confirm(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "booking was NOT recorded: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("step: %s — booking recorded for %q\n", w.Step(), *title)
}
