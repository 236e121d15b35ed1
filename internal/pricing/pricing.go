package pricing

import (
	"math"
	"time"
)

const (
	// Nightly rate used when the requested category is unknown. Pricing
	// must never block booking creation, so misses degrade to this.
	DefaultNightlyRate = 3500

	Currency = "INR"

	taxRate            = 0.18
	weekendMultiplier  = 1.20
	peakMultiplier     = 1.30
	largeGroupMultiple = 1.10
)

// RoomCategory describes a bookable room type and its nightly base rate.
type RoomCategory struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"product_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	MaxGuests   int      `json:"max_guests"`
	NightlyRate int64    `json:"nightly_rate"`
}

// Catalog is the fixed room-category catalog.
var Catalog = []RoomCategory{
	{
		ID:          "standard",
		ProductID:   "prod_standard_room",
		Name:        "Standard Room",
		Description: "Comfortable room with essential amenities",
		Features:    []string{"Free WiFi", "Air Conditioning", "TV", "Private Bathroom"},
		MaxGuests:   2,
		NightlyRate: 3500,
	},
	{
		ID:          "deluxe",
		ProductID:   "prod_deluxe_room",
		Name:        "Deluxe Room",
		Description: "Spacious room with premium amenities",
		Features:    []string{"Free WiFi", "Air Conditioning", "Smart TV", "Mini Bar", "City View"},
		MaxGuests:   3,
		NightlyRate: 6000,
	},
	{
		ID:          "suite",
		ProductID:   "prod_suite_room",
		Name:        "Suite",
		Description: "Luxurious suite with separate living area",
		Features:    []string{"Free WiFi", "Air Conditioning", "Smart TV", "Mini Bar", "Ocean View", "Balcony"},
		MaxGuests:   4,
		NightlyRate: 12000,
	},
	{
		ID:          "family",
		ProductID:   "prod_family_room",
		Name:        "Family Room",
		Description: "Large room perfect for families",
		Features:    []string{"Free WiFi", "Air Conditioning", "Smart TV", "Kitchenette", "Sofa Bed"},
		MaxGuests:   6,
		NightlyRate: 8000,
	},
}

// FindCategory looks a category up by its id or product id. The second
// return value is false on a miss.
func FindCategory(id string) (RoomCategory, bool) {
	for _, c := range Catalog {
		if c.ID == id || c.ProductID == id {
			return c, true
		}
	}
	return RoomCategory{}, false
}

// Quote is a fully computed price for a stay. All amounts are whole
// rupees; conversion to paise happens at the gateway boundary.
type Quote struct {
	BasePrice  int64  `json:"basePrice"` // adjusted nightly rate
	TotalPrice int64  `json:"totalPrice"`
	Taxes      int64  `json:"taxes"`
	FinalPrice int64  `json:"finalPrice"`
	Duration   int    `json:"duration"`
	Currency   string `json:"currency"`
}

// Compute applies the surcharge rules to the nightly base rate and
// produces a quote:
//
//	weekend check-in (Fri/Sat)  x1.20
//	peak season (Dec/Jan)       x1.30
//	more than two guests        x1.10
//
// Multipliers compose; the adjusted nightly rate is rounded once after
// all of them are applied. Deterministic for fixed inputs.
func Compute(nightlyRate int64, checkIn time.Time, guests, nights int) Quote {
	adjusted := float64(nightlyRate)

	switch checkIn.Weekday() {
	case time.Friday, time.Saturday:
		adjusted *= weekendMultiplier
	}

	switch checkIn.Month() {
	case time.December, time.January:
		adjusted *= peakMultiplier
	}

	if guests > 2 {
		adjusted *= largeGroupMultiple
	}

	base := int64(math.Round(adjusted))
	total := int64(math.Round(float64(base) * float64(nights)))
	taxes := int64(math.Round(float64(total) * taxRate))

	return Quote{
		BasePrice:  base,
		TotalPrice: total,
		Taxes:      taxes,
		FinalPrice: total + taxes,
		Duration:   nights,
		Currency:   Currency,
	}
}

// QuoteForCategory resolves the category rate (falling back to
// DefaultNightlyRate on a miss) and computes the quote.
func QuoteForCategory(categoryID string, checkIn time.Time, guests, nights int) Quote {
	rate := int64(DefaultNightlyRate)
	if c, ok := FindCategory(categoryID); ok {
		rate = c.NightlyRate
	}
	return Compute(rate, checkIn, guests, nights)
}
