package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"staybook/internal/database"
	"staybook/internal/domain"
)

var sampleUsers = []struct {
	Username, FirstName, LastName, Email string
}{
	{"john_doe", "John", "Doe", "john@example.com"},
	{"jane_smith", "Jane", "Smith", "jane@example.com"},
	{"mike_johnson", "Mike", "Johnson", "mike@example.com"},
	{"sarah_wilson", "Sarah", "Wilson", "sarah@example.com"},
	{"david_brown", "David", "Brown", "david@example.com"},
	{"emma_davis", "Emma", "Davis", "emma@example.com"},
	{"alex_miller", "Alex", "Miller", "alex@example.com"},
	{"lisa_garcia", "Lisa", "Garcia", "lisa@example.com"},
	{"ryan_taylor", "Ryan", "Taylor", "ryan@example.com"},
	{"anna_anderson", "Anna", "Anderson", "anna@example.com"},
}

var sampleListings = []domain.Listing{
	{
		Title:         "Luxury Downtown Apartment",
		Description:   "Beautiful modern apartment in the heart of the city with stunning views and premium amenities.",
		PricePerNight: 150.00,
		Location:      "New York, NY",
		PropertyType:  domain.PropertyApartment,
		Bedrooms:      2, Bathrooms: 2, MaxGuests: 4,
		Amenities: "WiFi, Air Conditioning, Kitchen, Parking, Pool, Gym",
	},
	{
		Title:         "Cozy Beach House",
		Description:   "Charming beach house just steps from the ocean. Perfect for a relaxing getaway.",
		PricePerNight: 200.00,
		Location:      "Miami, FL",
		PropertyType:  domain.PropertyHouse,
		Bedrooms:      3, Bathrooms: 2, MaxGuests: 6,
		Amenities: "WiFi, Beach Access, Kitchen, Parking, BBQ Grill",
	},
	{
		Title:         "Mountain View Villa",
		Description:   "Spectacular villa with panoramic mountain views and luxury furnishings.",
		PricePerNight: 350.00,
		Location:      "Aspen, CO",
		PropertyType:  domain.PropertyVilla,
		Bedrooms:      4, Bathrooms: 3, MaxGuests: 8,
		Amenities: "WiFi, Fireplace, Kitchen, Parking, Hot Tub, Mountain Views",
	},
	{
		Title:         "Urban Studio Loft",
		Description:   "Modern studio loft in trendy neighborhood with exposed brick and high ceilings.",
		PricePerNight: 80.00,
		Location:      "Portland, OR",
		PropertyType:  domain.PropertyStudio,
		Bedrooms:      1, Bathrooms: 1, MaxGuests: 2,
		Amenities: "WiFi, Kitchen, Exposed Brick, High Ceilings",
	},
	{
		Title:         "Lakefront Cabin",
		Description:   "Rustic cabin on the lake perfect for fishing and outdoor activities.",
		PricePerNight: 120.00,
		Location:      "Lake Tahoe, CA",
		PropertyType:  domain.PropertyCabin,
		Bedrooms:      2, Bathrooms: 1, MaxGuests: 4,
		Amenities: "WiFi, Lake Access, Kitchen, Parking, Fireplace, Fishing",
	},
}

var sampleComments = []string{
	"Amazing place! Exactly as described. The host was very responsive.",
	"Great location and clean space. Would definitely stay again.",
	"Decent stay, a few small issues with the hot water but overall fine.",
	"Absolutely loved it. The views alone are worth the price.",
	"Comfortable and quiet. Check-in was smooth.",
}

func main() {
	userCount := flag.Int("users", 10, "number of users to create")
	listingCount := flag.Int("listings", 20, "number of listings to create")
	bookingCount := flag.Int("bookings", 30, "number of bookings to create")
	reviewCount := flag.Int("reviews", 25, "number of reviews to create")
	clear := flag.Bool("clear", false, "clear existing data before seeding")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staybook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	if *clear {
		log.Println("Cleaning old data...")
		db.Exec("DELETE FROM reviews")
		db.Exec("DELETE FROM bookings")
		db.Exec("DELETE FROM listings")
		db.Exec("DELETE FROM users")
	}

	// ================== USERS ==================
	log.Printf("Creating %d users...", *userCount)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	users := make([]domain.User, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		u := domain.User{
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if i < len(sampleUsers) {
			s := sampleUsers[i]
			u.Username = s.Username
			u.FirstName = s.FirstName
			u.LastName = s.LastName
			u.Email = s.Email
		} else {
			u.Username = fmt.Sprintf("user_%d", i+1)
			u.FirstName = "User"
			u.LastName = fmt.Sprintf("%d", i+1)
			u.Email = fmt.Sprintf("user%d@example.com", i+1)
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== LISTINGS ==================
	log.Printf("Creating %d listings...", *listingCount)
	listings := make([]domain.Listing, 0, *listingCount)
	for i := 0; i < *listingCount; i++ {
		l := sampleListings[i%len(sampleListings)]
		if i >= len(sampleListings) {
			l.Title = fmt.Sprintf("Property %d - %s", i+1, l.Title)
			l.PricePerNight = math.Round((rand.Float64()*350+50)*100) / 100
			l.Bedrooms = rand.Intn(5) + 1
			l.Bathrooms = rand.Intn(3) + 1
			l.MaxGuests = l.Bedrooms * 2
		}
		l.HostID = users[rand.Intn(len(users))].ID
		l.IsAvailable = true
		db.Create(&l)
		listings = append(listings, l)
	}

	// ================== BOOKINGS ==================
	log.Printf("Creating %d bookings...", *bookingCount)
	statuses := []domain.BookingStatus{
		domain.BookingPending, domain.BookingConfirmed,
		domain.BookingCancelled, domain.BookingCompleted,
	}

	bookings := make([]domain.Booking, 0, *bookingCount)
	if len(users) < 2 {
		log.Println("Skipping bookings: need at least 2 users so a guest is never the host")
		*bookingCount = 0
	}
	for i := 0; i < *bookingCount; i++ {
		l := listings[rand.Intn(len(listings))]

		guest := users[rand.Intn(len(users))]
		for guest.ID == l.HostID {
			guest = users[rand.Intn(len(users))]
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		checkIn := today.AddDate(0, 0, rand.Intn(91)-30)
		nights := rand.Intn(14) + 1
		checkOut := checkIn.AddDate(0, 0, nights)

		requests := "Standard check-in"
		if rand.Float64() <= 0.3 {
			requests = "Early check-in requested"
		}

		b := domain.Booking{
			ListingID:       l.ID,
			GuestID:         guest.ID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  rand.Intn(l.MaxGuests) + 1,
			TotalPrice:      math.Round(l.PricePerNight*float64(nights)*100) / 100,
			Status:          statuses[rand.Intn(len(statuses))],
			SpecialRequests: requests,
		}
		db.Create(&b)
		bookings = append(bookings, b)
	}

	// ================== REVIEWS ==================
	log.Printf("Creating %d reviews...", *reviewCount)
	type pair struct {
		listing  string
		reviewer int64
	}
	seen := map[pair]bool{}
	created := 0

	for attempts := 0; created < *reviewCount && attempts < *reviewCount*10; attempts++ {
		l := listings[rand.Intn(len(listings))]
		reviewer := users[rand.Intn(len(users))]
		if reviewer.ID == l.HostID {
			continue
		}

		key := pair{l.ID.String(), reviewer.ID}
		if seen[key] {
			continue
		}

		rv := domain.Review{
			ListingID:  l.ID,
			ReviewerID: reviewer.ID,
			Rating:     rand.Intn(3) + 3, // seeded stays skew positive
			Comment:    sampleComments[rand.Intn(len(sampleComments))],
		}

		// link the review to a matching completed booking when one exists
		for _, b := range bookings {
			if b.ListingID == l.ID && b.GuestID == reviewer.ID && b.Status == domain.BookingCompleted {
				id := b.ID
				rv.BookingID = &id
				break
			}
		}

		if err := db.Create(&rv).Error; err != nil {
			continue
		}
		seen[key] = true
		created++
	}

	log.Printf("Successfully seeded database with: %d users, %d listings, %d bookings, %d reviews",
		len(users), len(listings), len(bookings), created)
}
