package catalog

import (
	"context"

	"github.com/hdcode14/otpbs-exploreease/internal/logger"
	"github.com/hdcode14/otpbs-exploreease/internal/metrics"
)

// Seed loads the initial catalog on a cold start. The empty-table check
// is an existence query, so two concurrent cold starts can both pass it;
// the second insert set then duplicates the catalog. Acceptable for a
// single-process deployment, where startup is serialized.
func Seed(ctx context.Context, repo Repository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, req := range seedPackages {
		pkg, err := repo.Create(ctx, req)
		if err != nil {
			return err
		}
		metrics.SetSlotsAvailable(pkg.ID, pkg.AvailableSlots)
	}

	logger.Infof("seeded %d catalog packages", len(seedPackages))
	return nil
}

var seedPackages = []UpsertRequest{
	{
		Name: "Darjeeling Delight", Destination: "Darjeeling", Category: "Hill Station",
		Duration: "5D / 4N", Price: 14999, Rating: 4.7, Latitude: 27.0360, Longitude: 88.2627,
		Description: "Experience the queen of hills with breathtaking views of Kanchenjunga and lush tea gardens.",
		Image:       "darjeeling.jpg", Region: "West Bengal",
		Itinerary:  "Day 1: Arrival & Local Sightseeing|Day 2: Tiger Hill & Batasia Loop|Day 3: Ghoom Monastery|Day 4: Tea Garden Visit|Day 5: Departure",
		Inclusions: "Accommodation|Meals|Transport|Guide|Entry Fees",
		AvailableSlots: 50,
	},
	{
		Name: "Sundarban Safari", Destination: "South 24 Parganas", Category: "Wildlife",
		Duration: "3D / 2N", Price: 9499, Rating: 4.5, Latitude: 21.9497, Longitude: 88.9401,
		Description: "Explore the mystical mangrove forests and spot the Royal Bengal Tiger in their natural habitat.",
		Image:       "sundarban.jpg", Region: "West Bengal",
		Itinerary:  "Day 1: Arrival & Boat Safari|Day 2: Tiger Spotting & Bird Watching|Day 3: Village Tour & Departure",
		Inclusions: "Accommodation|All Meals|Boat Safari|Guide|Permits",
		AvailableSlots: 50,
	},
	{
		Name: "Kolkata Heritage Walk", Destination: "Kolkata", Category: "Cultural",
		Duration: "2D / 1N", Price: 6999, Rating: 4.6, Latitude: 22.5726, Longitude: 88.3639,
		Description: "Discover the cultural capital of India with its colonial architecture and rich history.",
		Image:       "kolkata.jpg", Region: "West Bengal",
		Itinerary:  "Day 1: Victoria Memorial & Park Street|Day 2: Howrah Bridge & Kalighat Temple",
		Inclusions: "Hotel Stay|Breakfast|Transport|Guide|Entry Fees",
		AvailableSlots: 50,
	},
	{
		Name: "Majestic Meghalaya", Destination: "Shillong & Cherrapunjee", Category: "Nature",
		Duration: "6D / 5N", Price: 18499, Rating: 4.8, Latitude: 25.5788, Longitude: 91.8933,
		Description: "Witness the living root bridges and stunning waterfalls in the abode of clouds.",
		Image:       "meghalaya.jpg", Region: "Northeast",
		Itinerary:  "Day 1: Arrival in Shillong|Day 2: Cherrapunjee Waterfalls|Day 3: Living Root Bridges|Day 4: Dawki River|Day 5: Local Markets|Day 6: Departure",
		Inclusions: "Accommodation|All Meals|Transport|Guide|Activities",
		AvailableSlots: 50,
	},
	{
		Name: "Mystical Arunachal", Destination: "Tawang", Category: "Adventure",
		Duration: "7D / 6N", Price: 21999, Rating: 4.7, Latitude: 27.5880, Longitude: 91.8650,
		Description: "Explore the land of dawn-lit mountains with ancient monasteries and pristine landscapes.",
		Image:       "arunachal.jpg", Region: "Northeast",
		Itinerary:  "Day 1: Guwahati to Bomdila|Day 2: Bomdila to Tawang|Day 3: Tawang Monastery|Day 4: Madhuri Lake|Day 5: Bum La Pass|Day 6: Return Journey|Day 7: Departure",
		Inclusions: "Accommodation|All Meals|Transport|Inner Line Permits|Guide",
		AvailableSlots: 50,
	},
	{
		Name: "Dzukou Dream Trail", Destination: "Nagaland", Category: "Trekking",
		Duration: "5D / 4N", Price: 16999, Rating: 4.6, Latitude: 25.6514, Longitude: 94.1058,
		Description: "Trek through the beautiful Dzukou Valley with its unique flora and stunning landscapes.",
		Image:       "dzuko.jpg", Region: "Northeast",
		Itinerary:  "Day 1: Arrival in Kohima|Day 2: Trek to Dzukou Valley|Day 3: Valley Exploration|Day 4: Return Trek|Day 5: Departure",
		Inclusions: "Accommodation|All Meals|Trek Guide|Camping Equipment|Permits",
		AvailableSlots: 50,
	},
	{
		Name: "Goa Beach Escape", Destination: "Goa", Category: "Beach",
		Duration: "4D / 3N", Price: 12999, Rating: 4.7, Latitude: 15.2993, Longitude: 74.1240,
		Description: "Relax on pristine beaches and experience Portuguese heritage in this tropical paradise.",
		Image:       "goa.jpg", Region: "Other India",
		Itinerary:  "Day 1: Arrival & Beach Visit|Day 2: North Goa Exploration|Day 3: South Goa Relaxation|Day 4: Departure",
		Inclusions: "Beach Resort|Breakfast|Transport|Water Sports",
		AvailableSlots: 50,
	},
	{
		Name: "Himalayan Escape", Destination: "Himachal", Category: "Adventure",
		Duration: "6D / 5N", Price: 17999, Rating: 4.8, Latitude: 31.1048, Longitude: 77.1734,
		Description: "Experience the majestic Himalayas with adventure activities and scenic beauty.",
		Image:       "himachal.jpg", Region: "Other India",
		Itinerary:  "Day 1: Delhi to Manali|Day 2: Solang Valley|Day 3: Rohtang Pass|Day 4: Local Sightseeing|Day 5: Kasol Visit|Day 6: Departure",
		Inclusions: "Accommodation|All Meals|Transport|Adventure Activities",
		AvailableSlots: 50,
	},
	{
		Name: "Royal Rajasthan", Destination: "Jaipur–Udaipur–Jodhpur", Category: "Heritage",
		Duration: "6D / 5N", Price: 19499, Rating: 4.7, Latitude: 26.9124, Longitude: 75.7873,
		Description: "Experience royal heritage with palaces, forts, and cultural experiences.",
		Image:       "rajasthan.jpg", Region: "Other India",
		Itinerary:  "Day 1: Jaipur Arrival|Day 2: Amber Fort & City Palace|Day 3: Udaipur Lake City|Day 4: Jodhpur Fort|Day 5: Desert Experience|Day 6: Departure",
		Inclusions: "Heritage Hotels|All Meals|Transport|Guide|Cultural Shows",
		AvailableSlots: 50,
	},
	{
		Name: "Discover Dubai", Destination: "UAE", Category: "Luxury",
		Duration: "5D / 4N", Price: 58999, Rating: 4.9, Latitude: 25.2048, Longitude: 55.2708,
		Description: "Experience luxury shopping, stunning architecture, and desert adventures.",
		Image:       "dubai.jpg", Region: "International",
		Itinerary:  "Day 1: Burj Khalifa & Dubai Mall|Day 2: Desert Safari|Day 3: Palm Jumeirah|Day 4: Abu Dhabi Day Trip|Day 5: Departure",
		Inclusions: "5-Star Hotel|Breakfast|Sightseeing|Desert Safari|Visa Assistance",
		AvailableSlots: 50,
	},
	{
		Name: "Bangkok Getaway", Destination: "Thailand", Category: "Leisure",
		Duration: "4D / 3N", Price: 47999, Rating: 4.8, Latitude: 13.7563, Longitude: 100.5018,
		Description: "Explore vibrant street markets, ancient temples, and delicious street food.",
		Image:       "bangkok.jpg", Region: "International",
		Itinerary:  "Day 1: Arrival & Street Food Tour|Day 2: Grand Palace & Temples|Day 3: Floating Markets|Day 4: Departure",
		Inclusions: "Hotel Stay|Breakfast|Tours|Airport Transfers",
		AvailableSlots: 50,
	},
	{
		Name: "Bali Bliss", Destination: "Indonesia", Category: "Honeymoon",
		Duration: "6D / 5N", Price: 64999, Rating: 4.9, Latitude: -8.4095, Longitude: 115.1889,
		Description: "Perfect romantic getaway with beautiful beaches, temples, and luxury resorts.",
		Image:       "bali.jpg", Region: "International",
		Itinerary:  "Day 1: Arrival in Ubud|Day 2: Temple Tour|Day 3: Beach Day|Day 4: Water Sports|Day 5: Romantic Dinner|Day 6: Departure",
		Inclusions: "Luxury Villa|All Meals|Private Transport|Spa Sessions",
		AvailableSlots: 50,
	},
}
