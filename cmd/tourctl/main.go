// tourctl is a terminal client for the tour API: browse and filter the
// catalog, keep a wishlist, and walk the booking form.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mapmytour/tour-api/internal/config"
	"github.com/mapmytour/tour-api/internal/domain/booking"
	"github.com/mapmytour/tour-api/internal/domain/catalog"
	"github.com/mapmytour/tour-api/internal/domain/wishlist"
	"github.com/mapmytour/tour-api/internal/gateway"
	"github.com/mapmytour/tour-api/internal/pkg/kvstore"
	"github.com/mapmytour/tour-api/internal/pkg/logger"
)

func main() {
	cfg := config.Load()

	// CLI output is the product; logging goes to stderr.
	logger.Init(cfg.LogLevel, "development", os.Stderr)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	svc := gateway.NewClient(cfg.BackendURL, 15*time.Second)

	kv, err := newStateStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "list":
		err = runList(ctx, svc, kv, os.Args[2:])
	case "show":
		err = runShow(ctx, svc, os.Args[2:])
	case "wish":
		err = runWish(ctx, kv, os.Args[2:])
	case "wishlist":
		err = runWishlist(ctx, svc, kv)
	case "book":
		err = runBook(ctx, svc, kv, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tourctl <command> [flags]

commands:
  list      list tours (-sort, -min-price, -max-price, -duration)
  show      show one tour by id
  wish      toggle a tour id on the wishlist
  wishlist  list wishlisted tours
  book      book a tour (-first, -last, -email, ...)`)
}

func newStateStore(cfg *config.Config) (kvstore.Store, error) {
	if cfg.StateBackend == "redis" {
		return kvstore.NewRedisStore(cfg.RedisURL)
	}
	return kvstore.NewFileStore(cfg.StateDir)
}

func runList(ctx context.Context, svc gateway.TourService, kv kvstore.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	sortBy := fs.String("sort", "name", "sort order: name, price-low, price-high, duration")
	minPrice := fs.Int("min-price", 0, "minimum price")
	maxPrice := fs.Int("max-price", 2000, "maximum price")
	duration := fs.String("duration", "", "duration bucket: 1-5, 6-10, 11-15, 16+")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := catalog.NewStore(svc)
	store.SetSortBy(catalog.SortBy(*sortBy))
	store.SetPriceRange(*minPrice, *maxPrice)
	store.SetDuration(*duration)

	store.LoadAll(ctx)
	if msg := store.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	wl, err := wishlist.Load(ctx, kv)
	if err != nil {
		return err
	}

	displayed := store.Displayed()
	fmt.Printf("Showing %d of %d tours\n\n", len(displayed), len(store.Tours()))
	for _, t := range displayed {
		mark := " "
		if wl.IsWishlisted(t.ID) {
			mark = "*"
		}
		fmt.Printf("%s [%s] %-32s $%-5d %s\n", mark, t.ID, t.Title, t.Price, t.Duration)
	}
	return nil
}

func runShow(ctx context.Context, svc gateway.TourService, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tourctl show <id>")
	}

	store := catalog.NewStore(svc)
	store.LoadOne(ctx, args[0])
	if msg := store.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	t := store.CurrentTour()
	fmt.Printf("%s (%s)\n", t.Title, t.Duration)
	if t.OriginalPrice > t.Price {
		fmt.Printf("Price: $%d (was $%d)\n", t.Price, t.OriginalPrice)
	} else {
		fmt.Printf("Price: $%d\n", t.Price)
	}
	fmt.Printf("Difficulty: %s  Group size: %s\n\n", t.Difficulty, t.GroupSize)
	fmt.Println(t.Description)

	if len(t.Highlights) > 0 {
		fmt.Println("\nHighlights:")
		for _, h := range t.Highlights {
			fmt.Println("  -", h)
		}
	}
	if len(t.Itinerary) > 0 {
		fmt.Println("\nItinerary:")
		for _, day := range t.Itinerary {
			fmt.Printf("  Day %d: %s: %s\n", day.Day, day.Title, day.Description)
		}
	}
	return nil
}

func runWish(ctx context.Context, kv kvstore.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tourctl wish <id>")
	}

	wl, err := wishlist.Load(ctx, kv)
	if err != nil {
		return err
	}
	if err := wl.Toggle(ctx, args[0]); err != nil {
		return err
	}

	if wl.IsWishlisted(args[0]) {
		fmt.Printf("Added %s to wishlist\n", args[0])
	} else {
		fmt.Printf("Removed %s from wishlist\n", args[0])
	}
	return nil
}

func runWishlist(ctx context.Context, svc gateway.TourService, kv kvstore.Store) error {
	wl, err := wishlist.Load(ctx, kv)
	if err != nil {
		return err
	}

	ids := wl.IDs()
	if len(ids) == 0 {
		fmt.Println("Wishlist is empty")
		return nil
	}

	store := catalog.NewStore(svc)
	store.LoadAll(ctx)
	byID := map[string]string{}
	for _, t := range store.Tours() {
		byID[t.ID] = fmt.Sprintf("%s ($%d, %s)", t.Title, t.Price, t.Duration)
	}

	for _, id := range ids {
		if title, ok := byID[id]; ok {
			fmt.Printf("[%s] %s\n", id, title)
		} else {
			fmt.Printf("[%s] (no longer in catalog)\n", id)
		}
	}
	return nil
}

func runBook(ctx context.Context, svc gateway.TourService, kv kvstore.Store, args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: tourctl book <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("book", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	participants := fs.Int("participants", 0, "number of participants")
	startDate := fs.String("date", "", "preferred start date (YYYY-MM-DD)")
	requests := fs.String("requests", "", "special requests")
	emergency := fs.String("emergency", "", "emergency contact name")
	emergencyPhone := fs.String("emergency-phone", "", "emergency contact phone")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	store := catalog.NewStore(svc)
	store.LoadOne(ctx, id)
	if msg := store.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	w := booking.NewWizard(ctx, svc, kv, *store.CurrentTour())

	// Only flags actually given overwrite the persisted draft.
	err := w.UpdateDraft(ctx, func(d *booking.Draft) {
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "first":
				d.FirstName = *first
			case "last":
				d.LastName = *last
			case "email":
				d.Email = *email
			case "phone":
				d.Phone = *phone
			case "participants":
				d.Participants = *participants
			case "date":
				d.StartDate = *startDate
			case "requests":
				d.SpecialRequests = *requests
			case "emergency":
				d.EmergencyContact = *emergency
			case "emergency-phone":
				d.EmergencyPhone = *emergencyPhone
			}
		})
	})
	if err != nil {
		return err
	}

	// Walk the three steps, then submit.
	if err := w.Next(); err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}

	result, err := w.Submit(ctx, nil)
	if err != nil {
		return fmt.Errorf("booking failed (your draft is saved, retry with tourctl book %s): %w", id, err)
	}

	fmt.Printf("Booking confirmed! (id %s)\n", result.ID)
	fmt.Printf("%s for %d participant(s), total $%d\n", result.TourTitle, result.Participants, result.TotalPrice)
	fmt.Printf("Confirmation will be sent to %s\n", result.Email)
	return nil
}
