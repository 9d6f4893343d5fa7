package fallback

import "github.com/laveehere/wanderbot/internal/travel"

// Hand-curated demo content for the preset cities. Keys are canonical
// lowercase city names (travel.CityKey).

var demoWeather = map[string]travel.WeatherSnapshot{
	"tokyo":    {Temperature: 22, Humidity: 65, WindSpeed: 4.2, Pressure: 1012, Condition: travel.ConditionClear, Description: "clear sky"},
	"paris":    {Temperature: 16, Humidity: 70, WindSpeed: 5.0, Pressure: 1015, Condition: travel.ConditionCloudy, Description: "scattered clouds"},
	"london":   {Temperature: 13, Humidity: 78, WindSpeed: 6.1, Pressure: 1010, Condition: travel.ConditionRain, Description: "light rain"},
	"delhi":    {Temperature: 31, Humidity: 45, WindSpeed: 3.0, Pressure: 1006, Condition: travel.ConditionMist, Description: "haze"},
	"new york": {Temperature: 18, Humidity: 55, WindSpeed: 5.5, Pressure: 1014, Condition: travel.ConditionClear, Description: "sunny"},
}

var demoPlaces = map[string]map[travel.Category][]travel.PlaceResult{
	"tokyo": {
		travel.CategoryCulture: {
			{Name: "Senso-ji Temple", Address: "2 Chome-3-1 Asakusa, Taito City, Tokyo", Lat: 35.7148, Lon: 139.7967, Type: "temple", Category: "culture", Importance: 0.85},
			{Name: "Meiji Shrine", Address: "1-1 Yoyogikamizonocho, Shibuya City, Tokyo", Lat: 35.6764, Lon: 139.6993, Type: "shrine", Category: "culture", Importance: 0.82},
			{Name: "Tokyo National Museum", Address: "13-9 Uenokoen, Taito City, Tokyo", Lat: 35.7188, Lon: 139.7765, Type: "museum", Category: "culture", Importance: 0.8},
		},
		travel.CategoryFood: {
			{Name: "Tsukiji Outer Market", Address: "4 Chome-16-2 Tsukiji, Chuo City, Tokyo", Lat: 35.6654, Lon: 139.7707, Type: "market", Category: "food", Importance: 0.78},
			{Name: "Omoide Yokocho", Address: "1 Chome-2 Nishishinjuku, Shinjuku City, Tokyo", Lat: 35.6938, Lon: 139.6994, Type: "food street", Category: "food", Importance: 0.7},
			{Name: "Ramen Street", Address: "1 Chome-9-1 Marunouchi, Chiyoda City, Tokyo", Lat: 35.6812, Lon: 139.7671, Type: "restaurant", Category: "food", Importance: 0.66},
		},
		travel.CategoryShopping: {
			{Name: "Ginza", Address: "Ginza, Chuo City, Tokyo", Lat: 35.6717, Lon: 139.7650, Type: "shopping district", Category: "shopping", Importance: 0.8},
			{Name: "Nakamise Shopping Street", Address: "1 Chome-36-3 Asakusa, Taito City, Tokyo", Lat: 35.7113, Lon: 139.7966, Type: "market", Category: "shopping", Importance: 0.72},
			{Name: "Shibuya 109", Address: "2 Chome-29-1 Dogenzaka, Shibuya City, Tokyo", Lat: 35.6595, Lon: 139.6986, Type: "mall", Category: "shopping", Importance: 0.68},
		},
		travel.CategoryPlaces: {
			{Name: "Tokyo Skytree", Address: "1 Chome-1-2 Oshiage, Sumida City, Tokyo", Lat: 35.7101, Lon: 139.8107, Type: "tower", Category: "places", Importance: 0.86},
			{Name: "Shibuya Crossing", Address: "Shibuya City, Tokyo", Lat: 35.6595, Lon: 139.7005, Type: "landmark", Category: "places", Importance: 0.8},
			{Name: "Ueno Park", Address: "Uenokoen, Taito City, Tokyo", Lat: 35.7156, Lon: 139.7745, Type: "park", Category: "places", Importance: 0.74},
		},
		travel.CategoryLocal: {
			{Name: "Yanaka Ginza", Address: "3 Chome-13-1 Yanaka, Taito City, Tokyo", Lat: 35.7282, Lon: 139.7656, Type: "market", Category: "local", Importance: 0.6},
			{Name: "Shimokitazawa", Address: "Kitazawa, Setagaya City, Tokyo", Lat: 35.6613, Lon: 139.6682, Type: "district", Category: "local", Importance: 0.58},
			{Name: "Todoroki Valley", Address: "1 Chome-22 Todoroki, Setagaya City, Tokyo", Lat: 35.6062, Lon: 139.6488, Type: "garden", Category: "local", Importance: 0.5},
		},
	},
	"paris": {
		travel.CategoryCulture: {
			{Name: "Louvre Museum", Address: "Rue de Rivoli, 75001 Paris", Lat: 48.8606, Lon: 2.3376, Type: "museum", Category: "culture", Importance: 0.9},
			{Name: "Musee d'Orsay", Address: "1 Rue de la Legion d'Honneur, 75007 Paris", Lat: 48.8600, Lon: 2.3266, Type: "museum", Category: "culture", Importance: 0.84},
			{Name: "Notre-Dame Cathedral", Address: "6 Parvis Notre-Dame, 75004 Paris", Lat: 48.8530, Lon: 2.3499, Type: "cathedral", Category: "culture", Importance: 0.88},
		},
		travel.CategoryFood: {
			{Name: "Marche des Enfants Rouges", Address: "39 Rue de Bretagne, 75003 Paris", Lat: 48.8629, Lon: 2.3622, Type: "market", Category: "food", Importance: 0.72},
			{Name: "Rue Cler Market Street", Address: "Rue Cler, 75007 Paris", Lat: 48.8566, Lon: 2.3061, Type: "market", Category: "food", Importance: 0.66},
			{Name: "Le Marais Bistros", Address: "Le Marais, 75004 Paris", Lat: 48.8590, Lon: 2.3620, Type: "restaurant", Category: "food", Importance: 0.64},
		},
		travel.CategoryShopping: {
			{Name: "Galeries Lafayette Haussmann", Address: "40 Boulevard Haussmann, 75009 Paris", Lat: 48.8738, Lon: 2.3320, Type: "department store", Category: "shopping", Importance: 0.78},
			{Name: "Champs-Elysees", Address: "Avenue des Champs-Elysees, 75008 Paris", Lat: 48.8698, Lon: 2.3078, Type: "shopping district", Category: "shopping", Importance: 0.82},
			{Name: "Le Bon Marche", Address: "24 Rue de Sevres, 75007 Paris", Lat: 48.8510, Lon: 2.3243, Type: "department store", Category: "shopping", Importance: 0.7},
		},
		travel.CategoryPlaces: {
			{Name: "Eiffel Tower", Address: "Champ de Mars, 75007 Paris", Lat: 48.8584, Lon: 2.2945, Type: "tower", Category: "places", Importance: 0.95},
			{Name: "Arc de Triomphe", Address: "Place Charles de Gaulle, 75008 Paris", Lat: 48.8738, Lon: 2.2950, Type: "monument", Category: "places", Importance: 0.87},
			{Name: "Jardin du Luxembourg", Address: "75006 Paris", Lat: 48.8462, Lon: 2.3372, Type: "garden", Category: "places", Importance: 0.75},
		},
		travel.CategoryLocal: {
			{Name: "Canal Saint-Martin", Address: "Quai de Valmy, 75010 Paris", Lat: 48.8710, Lon: 2.3655, Type: "district", Category: "local", Importance: 0.6},
			{Name: "Marche d'Aligre", Address: "Place d'Aligre, 75012 Paris", Lat: 48.8490, Lon: 2.3780, Type: "market", Category: "local", Importance: 0.56},
			{Name: "Butte-aux-Cailles", Address: "75013 Paris", Lat: 48.8270, Lon: 2.3500, Type: "district", Category: "local", Importance: 0.5},
		},
	},
	"london": {
		travel.CategoryCulture: {
			{Name: "British Museum", Address: "Great Russell St, London WC1B 3DG", Lat: 51.5194, Lon: -0.1270, Type: "museum", Category: "culture", Importance: 0.9},
			{Name: "Tower of London", Address: "London EC3N 4AB", Lat: 51.5081, Lon: -0.0759, Type: "castle", Category: "culture", Importance: 0.86},
			{Name: "Westminster Abbey", Address: "20 Deans Yd, London SW1P 3PA", Lat: 51.4993, Lon: -0.1273, Type: "church", Category: "culture", Importance: 0.84},
		},
		travel.CategoryFood: {
			{Name: "Borough Market", Address: "8 Southwark St, London SE1 1TL", Lat: 51.5055, Lon: -0.0910, Type: "market", Category: "food", Importance: 0.8},
			{Name: "Brick Lane", Address: "Brick Ln, London E1 6QL", Lat: 51.5206, Lon: -0.0717, Type: "food street", Category: "food", Importance: 0.68},
			{Name: "Covent Garden Restaurants", Address: "Covent Garden, London WC2E 8RF", Lat: 51.5117, Lon: -0.1240, Type: "restaurant", Category: "food", Importance: 0.66},
		},
		travel.CategoryShopping: {
			{Name: "Oxford Street", Address: "Oxford St, London", Lat: 51.5154, Lon: -0.1410, Type: "shopping district", Category: "shopping", Importance: 0.8},
			{Name: "Harrods", Address: "87-135 Brompton Rd, London SW1X 7XL", Lat: 51.4994, Lon: -0.1632, Type: "department store", Category: "shopping", Importance: 0.76},
			{Name: "Camden Market", Address: "Camden Lock Pl, London NW1 8AF", Lat: 51.5415, Lon: -0.1466, Type: "market", Category: "shopping", Importance: 0.7},
		},
		travel.CategoryPlaces: {
			{Name: "Big Ben", Address: "Westminster, London SW1A 0AA", Lat: 51.5007, Lon: -0.1246, Type: "landmark", Category: "places", Importance: 0.9},
			{Name: "London Eye", Address: "Riverside Building, County Hall, London SE1 7PB", Lat: 51.5033, Lon: -0.1196, Type: "attraction", Category: "places", Importance: 0.84},
			{Name: "Hyde Park", Address: "London W2 2UH", Lat: 51.5073, Lon: -0.1657, Type: "park", Category: "places", Importance: 0.76},
		},
		travel.CategoryLocal: {
			{Name: "Columbia Road Flower Market", Address: "Columbia Rd, London E2 7RG", Lat: 51.5291, Lon: -0.0694, Type: "market", Category: "local", Importance: 0.58},
			{Name: "Little Venice", Address: "London W9", Lat: 51.5233, Lon: -0.1836, Type: "district", Category: "local", Importance: 0.54},
			{Name: "Maltby Street Market", Address: "41 Maltby St, London SE1 3PA", Lat: 51.5000, Lon: -0.0757, Type: "market", Category: "local", Importance: 0.5},
		},
	},
	"delhi": {
		travel.CategoryCulture: {
			{Name: "Red Fort", Address: "Netaji Subhash Marg, Chandni Chowk, New Delhi", Lat: 28.6562, Lon: 77.2410, Type: "monument", Category: "culture", Importance: 0.88},
			{Name: "Humayun's Tomb", Address: "Mathura Road, Nizamuddin East, New Delhi", Lat: 28.5933, Lon: 77.2507, Type: "monument", Category: "culture", Importance: 0.82},
			{Name: "Qutub Minar", Address: "Mehrauli, New Delhi", Lat: 28.5245, Lon: 77.1855, Type: "monument", Category: "culture", Importance: 0.84},
		},
		travel.CategoryFood: {
			{Name: "Chandni Chowk", Address: "Old Delhi, New Delhi", Lat: 28.6506, Lon: 77.2303, Type: "food street", Category: "food", Importance: 0.78},
			{Name: "Karim's", Address: "16 Gali Kababian, Jama Masjid, New Delhi", Lat: 28.6496, Lon: 77.2336, Type: "restaurant", Category: "food", Importance: 0.7},
			{Name: "Khan Market", Address: "Rabindra Nagar, New Delhi", Lat: 28.6003, Lon: 77.2270, Type: "market", Category: "food", Importance: 0.64},
		},
		travel.CategoryShopping: {
			{Name: "Dilli Haat", Address: "Opposite INA Market, New Delhi", Lat: 28.5733, Lon: 77.2098, Type: "bazaar", Category: "shopping", Importance: 0.7},
			{Name: "Connaught Place", Address: "New Delhi", Lat: 28.6315, Lon: 77.2167, Type: "shopping district", Category: "shopping", Importance: 0.76},
			{Name: "Sarojini Nagar Market", Address: "Sarojini Nagar, New Delhi", Lat: 28.5777, Lon: 77.1971, Type: "market", Category: "shopping", Importance: 0.62},
		},
		travel.CategoryPlaces: {
			{Name: "India Gate", Address: "Kartavya Path, New Delhi", Lat: 28.6129, Lon: 77.2295, Type: "monument", Category: "places", Importance: 0.86},
			{Name: "Lotus Temple", Address: "Lotus Temple Rd, Bahapur, New Delhi", Lat: 28.5535, Lon: 77.2588, Type: "temple", Category: "places", Importance: 0.8},
			{Name: "Lodhi Garden", Address: "Lodhi Rd, New Delhi", Lat: 28.5931, Lon: 77.2197, Type: "garden", Category: "places", Importance: 0.68},
		},
		travel.CategoryLocal: {
			{Name: "Majnu-ka-Tilla", Address: "New Aruna Nagar, New Delhi", Lat: 28.7006, Lon: 77.2292, Type: "district", Category: "local", Importance: 0.55},
			{Name: "Champa Gali", Address: "Saidulajab, Saket, New Delhi", Lat: 28.5224, Lon: 77.1981, Type: "street", Category: "local", Importance: 0.52},
			{Name: "Sunder Nursery", Address: "Sunder Nagar, New Delhi", Lat: 28.5949, Lon: 77.2445, Type: "garden", Category: "local", Importance: 0.5},
		},
	},
	"new york": {
		travel.CategoryCulture: {
			{Name: "Metropolitan Museum of Art", Address: "1000 5th Ave, New York, NY", Lat: 40.7794, Lon: -73.9632, Type: "museum", Category: "culture", Importance: 0.9},
			{Name: "Museum of Modern Art", Address: "11 W 53rd St, New York, NY", Lat: 40.7614, Lon: -73.9776, Type: "museum", Category: "culture", Importance: 0.84},
			{Name: "American Museum of Natural History", Address: "200 Central Park West, New York, NY", Lat: 40.7813, Lon: -73.9740, Type: "museum", Category: "culture", Importance: 0.82},
		},
		travel.CategoryFood: {
			{Name: "Chelsea Market", Address: "75 9th Ave, New York, NY", Lat: 40.7424, Lon: -74.0060, Type: "market", Category: "food", Importance: 0.76},
			{Name: "Katz's Delicatessen", Address: "205 E Houston St, New York, NY", Lat: 40.7223, Lon: -73.9874, Type: "restaurant", Category: "food", Importance: 0.7},
			{Name: "Smorgasburg", Address: "90 Kent Ave, Brooklyn, NY", Lat: 40.7216, Lon: -73.9622, Type: "market", Category: "food", Importance: 0.62},
		},
		travel.CategoryShopping: {
			{Name: "Fifth Avenue", Address: "5th Ave, New York, NY", Lat: 40.7580, Lon: -73.9785, Type: "shopping district", Category: "shopping", Importance: 0.8},
			{Name: "SoHo", Address: "SoHo, New York, NY", Lat: 40.7233, Lon: -74.0030, Type: "shopping district", Category: "shopping", Importance: 0.74},
			{Name: "Macy's Herald Square", Address: "151 W 34th St, New York, NY", Lat: 40.7508, Lon: -73.9893, Type: "department store", Category: "shopping", Importance: 0.68},
		},
		travel.CategoryPlaces: {
			{Name: "Statue of Liberty", Address: "Liberty Island, New York, NY", Lat: 40.6892, Lon: -74.0445, Type: "monument", Category: "places", Importance: 0.92},
			{Name: "Central Park", Address: "New York, NY", Lat: 40.7829, Lon: -73.9654, Type: "park", Category: "places", Importance: 0.88},
			{Name: "Brooklyn Bridge", Address: "New York, NY 10038", Lat: 40.7061, Lon: -73.9969, Type: "bridge", Category: "places", Importance: 0.84},
		},
		travel.CategoryLocal: {
			{Name: "The High Line", Address: "New York, NY 10011", Lat: 40.7480, Lon: -74.0048, Type: "park", Category: "local", Importance: 0.66},
			{Name: "Roosevelt Island Tramway", Address: "254 E 60th St, New York, NY", Lat: 40.7614, Lon: -73.9642, Type: "attraction", Category: "local", Importance: 0.54},
			{Name: "Greenpoint", Address: "Brooklyn, NY", Lat: 40.7304, Lon: -73.9515, Type: "district", Category: "local", Importance: 0.5},
		},
	},
}

var demoEvents = map[string][]string{
	"tokyo": {
		"Sumida River fireworks preparations underway",
		"Seasonal exhibition opens at the National Museum",
		"Weekend farmers market at the United Nations University",
	},
	"paris": {
		"Nuit des Musees late-night museum openings",
		"Open-air cinema season at Parc de la Villette",
		"Seine riverside summer installations",
	},
	"london": {
		"South Bank food festival this weekend",
		"New exhibition announced at the Tate Modern",
		"Open House architecture weekend",
	},
	"delhi": {
		"Crafts fair at Dilli Haat",
		"Qutub Festival classical music evenings",
		"Winter book fair at Pragati Maidan",
	},
	"new york": {
		"Broadway week ticket offers",
		"Bryant Park outdoor film series",
		"Harvest market in Union Square",
	},
}

var demoClothing = map[string][]string{
	"tokyo": {
		"The kimono is the classic formal garment; the lighter yukata appears at summer festivals.",
		"Rental shops around Asakusa offer kimono fittings for temple visits.",
	},
	"paris": {
		"Parisian dress leans smart-casual; scarves are a year-round staple.",
		"Many restaurants expect at least smart-casual attire in the evening.",
	},
	"london": {
		"Layers and a waterproof jacket are essential in every season.",
		"Traditional Harris tweed and trench coats are the classic local look.",
	},
	"delhi": {
		"Kurtas and saris are everyday traditional wear; light cotton suits the heat.",
		"Cover shoulders and knees when visiting temples and mosques.",
	},
	"new york": {
		"Anything goes, but comfortable shoes matter: New Yorkers walk everywhere.",
		"Winters need a serious coat; summers are hot and humid.",
	},
}

var demoTips = map[string][]string{
	"tokyo": {
		"Buy a Suica or Pasmo card on arrival; it works on nearly all trains and buses.",
		"Convenience-store food is genuinely good and open around the clock.",
		"Visit Senso-ji before 9am to see it without the crowds.",
	},
	"paris": {
		"Museums are free on the first Sunday of the month; expect queues.",
		"A carnet of metro tickets beats single fares.",
		"Boulangeries discount pastries shortly before closing.",
	},
	"london": {
		"Contactless cards work on all buses and tubes; no ticket needed.",
		"Most national museums are free, special exhibitions aside.",
		"Markets like Borough quieten considerably on weekday mornings.",
	},
	"delhi": {
		"The metro is the fastest way across the city; buy a token or card.",
		"Agree auto-rickshaw fares before setting off, or insist on the meter.",
		"Carry small notes; street vendors rarely have change.",
	},
	"new york": {
		"A 7-day unlimited MetroCard pays off after about 13 rides.",
		"The Staten Island Ferry gives a free view of the Statue of Liberty.",
		"Museum 'suggested admission' is genuinely optional for NY residents.",
	},
}
