// Package seed carries the embedded demo dataset: a roster of Maharashtra
// guides and an attraction catalog. Guide positions are synthesized around
// Mumbai at seed time; production positions come from location pings.
package seed

import (
	"wanderer/internal/model"
)

// DemoPassword is the bcrypt-hashed password for every seeded demo account.
const DemoPassword = "guide1234"

// Mumbai city centre, the anchor for synthesized demo guide positions.
const (
	AnchorLat = 19.0760
	AnchorLon = 72.8777
)

// GuideData bundles a guide user with their profile.
type GuideData struct {
	Name        string
	Email       string
	Image       string
	Bio         string
	Languages   []string
	Specialties []string
	Location    string
	Experience  int
	Rating      float64
}

// Guides is the demo guide roster.
var Guides = []GuideData{
	{
		Name:        "Ravi Maharaj",
		Email:       "ravi.maharaj@example.com",
		Image:       "https://randomuser.me/api/portraits/men/1.jpg",
		Bio:         "Experienced guide specializing in Mumbai heritage tours with 7 years of experience.",
		Languages:   []string{"English", "Hindi", "Marathi"},
		Specialties: []string{"Heritage", "Architecture", "Food Tours"},
		Location:    "Mumbai",
		Experience:  7,
		Rating:      4.8,
	},
	{
		Name:        "Priya Kulkarni",
		Email:       "priya.kulkarni@example.com",
		Image:       "https://randomuser.me/api/portraits/women/2.jpg",
		Bio:         "Pune-based guide with expertise in historical monuments and local cuisine.",
		Languages:   []string{"English", "Hindi", "Marathi"},
		Specialties: []string{"History", "Food Tours", "Cultural Tours"},
		Location:    "Pune",
		Experience:  5,
		Rating:      4.7,
	},
	{
		Name:        "Amol Patil",
		Email:       "amol.patil@example.com",
		Image:       "https://randomuser.me/api/portraits/men/3.jpg",
		Bio:         "Expert guide for Ajanta and Ellora caves with archaeological knowledge.",
		Languages:   []string{"English", "Hindi", "Marathi"},
		Specialties: []string{"Archaeology", "Buddhist Art", "History"},
		Location:    "Aurangabad",
		Experience:  8,
		Rating:      4.9,
	},
	{
		Name:        "Sangeeta Sharma",
		Email:       "sangeeta.sharma@example.com",
		Image:       "https://randomuser.me/api/portraits/women/4.jpg",
		Bio:         "Nashik-based guide specialized in wine tourism and spiritual circuits. Offers unique food and cultural experiences in the region.",
		Languages:   []string{"English", "Hindi", "Marathi"},
		Specialties: []string{"Wine Tours", "Temple Circuits", "Food Tours"},
		Location:    "Nashik",
		Experience:  4,
		Rating:      4.7,
	},
	{
		Name:        "Vikram Jadhav",
		Email:       "vikram.jadhav@example.com",
		Image:       "https://randomuser.me/api/portraits/men/5.jpg",
		Bio:         "Kolhapur native with deep knowledge of the region's royal history, temples, and culinary traditions. Expert in Maratha fort architecture.",
		Languages:   []string{"English", "Hindi", "Marathi", "Kannada"},
		Specialties: []string{"Historical Forts", "Temple Tours", "Local Cuisine"},
		Location:    "Kolhapur",
		Experience:  6,
		Rating:      4.5,
	},
	{
		Name:        "Anita Desai",
		Email:       "anita.desai@example.com",
		Image:       "https://randomuser.me/api/portraits/women/6.jpg",
		Bio:         "Nature lover and hiking enthusiast based in Lonavala. Specializes in monsoon tours when the Western Ghats are at their most beautiful.",
		Languages:   []string{"English", "Hindi", "Marathi"},
		Specialties: []string{"Scenic Hill Stations", "Hiking", "Monsoon Specials"},
		Location:    "Lonavala",
		Experience:  3,
		Rating:      4.4,
	},
	{
		Name:        "Deepak Chavan",
		Email:       "deepak.chavan@example.com",
		Image:       "https://randomuser.me/api/portraits/men/7.jpg",
		Bio:         "Coastal expert from Alibaug specializing in beach tourism, historical coastal forts, and water activities along the Konkan coast.",
		Languages:   []string{"English", "Hindi", "Marathi", "Konkani"},
		Specialties: []string{"Beach Tours", "Coastal Forts", "Water Sports"},
		Location:    "Alibaug",
		Experience:  5,
		Rating:      4.6,
	},
	{
		Name:        "Meera Joshi",
		Email:       "meera.joshi@example.com",
		Image:       "https://randomuser.me/api/portraits/women/8.jpg",
		Bio:         "Wildlife expert from Nagpur specializing in Tadoba and Pench tiger reserves. Knowledgeable about Central Indian tribal cultures and traditions.",
		Languages:   []string{"English", "Hindi", "Marathi", "Telugu"},
		Specialties: []string{"Wildlife Tours", "Tiger Safaris", "Tribal Culture"},
		Location:    "Nagpur",
		Experience:  8,
		Rating:      4.8,
	},
	{
		Name:        "Rahul Sawant",
		Email:       "rahul.sawant@example.com",
		Image:       "https://randomuser.me/api/portraits/men/9.jpg",
		Bio:         "Hill station expert based in Mahabaleshwar. Specializes in strawberry farm tours, nature photography, and hidden viewpoints in the region.",
		Languages:   []string{"English", "Hindi", "Marathi"},
		Specialties: []string{"Strawberry Farms", "Scenic Viewpoints", "Photography Tours"},
		Location:    "Mahabaleshwar",
		Experience:  4,
		Rating:      4.5,
	},
	{
		Name:        "Nisha Patil",
		Email:       "nisha.patil@example.com",
		Image:       "https://randomuser.me/api/portraits/women/10.jpg",
		Bio:         "Konkan coast specialist from Ratnagiri. Expert in local seafood, Alphonso mango plantations, and pristine beaches of the Konkan region.",
		Languages:   []string{"English", "Hindi", "Marathi", "Konkani"},
		Specialties: []string{"Coastal Tourism", "Seafood Tours", "Alphonso Mango Farms"},
		Location:    "Ratnagiri",
		Experience:  6,
		Rating:      4.7,
	},
}

// Places is the demo attraction catalog.
var Places = []model.Place{
	{
		Name:        "Gateway of India",
		Location:    "Mumbai, Maharashtra",
		Description: "Iconic monument built during British rule, a symbol of Mumbai and a popular tourist spot.",
		Latitude:    18.9219,
		Longitude:   72.8347,
		Category:    model.CategoryMonument,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/3/3a/Mumbai_03-2016_30_Gateway_of_India.jpg",
	},
	{
		Name:        "Ellora Caves",
		Location:    "Aurangabad, Maharashtra",
		Description: "UNESCO World Heritage site with 34 rock-cut temples and monasteries dating back to 600-1000 CE.",
		Latitude:    20.0258,
		Longitude:   75.1780,
		Category:    model.CategoryHeritage,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/8/8c/Kailasa_temple_at_ellora.JPG",
	},
	{
		Name:        "Lonavala",
		Location:    "Lonavala, Maharashtra",
		Description: "Popular hill station in the Western Ghats, famous for its scenic beauty, waterfalls, and chikki.",
		Latitude:    18.7546,
		Longitude:   73.4062,
		Category:    model.CategoryNature,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/b/b0/Lonavla_Lake.JPG",
	},
	{
		Name:        "Ajanta Caves",
		Location:    "Aurangabad, Maharashtra",
		Description: "30 rock-cut Buddhist cave monuments dating from the 2nd century BCE to about 480 CE.",
		Latitude:    20.5526,
		Longitude:   75.7033,
		Category:    model.CategoryHeritage,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/4/41/Ajanta_%288%29.jpg",
	},
	{
		Name:        "Mahabaleshwar",
		Location:    "Mahabaleshwar, Maharashtra",
		Description: "Hill station in Western Ghats, known for its strawberries, honey, and panoramic views.",
		Latitude:    17.9256,
		Longitude:   73.6395,
		Category:    model.CategoryNature,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/d/d3/Mahabaleshwar_hills_01.jpg",
	},
	{
		Name:        "Shaniwar Wada",
		Location:    "Pune, Maharashtra",
		Description: "Historical fortification in Pune, once the seat of the Peshwa rulers of the Maratha Empire.",
		Latitude:    18.5195,
		Longitude:   73.8553,
		Category:    model.CategoryHeritage,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/f/f9/Shaniwarwada_Fort.jpg",
	},
	{
		Name:        "Shirdi Sai Baba Temple",
		Location:    "Shirdi, Maharashtra",
		Description: "Major pilgrimage site dedicated to the saint Sai Baba of Shirdi.",
		Latitude:    19.7645,
		Longitude:   74.4762,
		Category:    model.CategorySpiritual,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/e/e4/Shirdi_sai_baba_temple.jpg",
	},
	{
		Name:        "Marine Drive",
		Location:    "Mumbai, Maharashtra",
		Description: "3.6-kilometre-long boulevard along the coast, known as the Queen's Necklace when lit at night.",
		Latitude:    18.9432,
		Longitude:   72.8236,
		Category:    model.CategoryLandmark,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/0/07/Mumbai_Marine_Drive.jpg",
	},
	{
		Name:        "Elephanta Caves",
		Location:    "Mumbai, Maharashtra",
		Description: "UNESCO World Heritage site of rock-cut cave temples dedicated to Shiva on Elephanta Island.",
		Latitude:    18.9633,
		Longitude:   72.9315,
		Category:    model.CategoryHeritage,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/a/a7/Elephanta_Caves_Trimurti.jpg",
	},
	{
		Name:        "Chhatrapati Shivaji Terminus",
		Location:    "Mumbai, Maharashtra",
		Description: "Historic railway station and UNESCO World Heritage site blending Victorian Gothic and Indian architecture.",
		Latitude:    18.9398,
		Longitude:   72.8355,
		Category:    model.CategoryMonument,
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/1/17/Chhatrapati_shivaji_terminus.jpg",
	},
}
