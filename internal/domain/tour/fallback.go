package tour

// fallbackTours is the fixed catalog served whenever the upstream source is
// unreachable or returns an unrecognized shape. Read-only; never mutated.
var fallbackTours = []Tour{
	{
		ID:            "1",
		Title:         "Himalayan Trek Adventure",
		Price:         1200,
		OriginalPrice: 1500,
		Duration:      "12 Days",
		Difficulty:    "Moderate",
		GroupSize:     "8-12 People",
		Image:         "https://images.pexels.com/photos/1366919/pexels-photo-1366919.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description:   "Experience the breathtaking beauty of the Himalayas on this incredible 12-day trekking adventure.",
		Highlights: []string{
			"Summit views of 8000m+ peaks",
			"Traditional village homestays",
			"Professional mountain guides",
			"All permits and fees included",
		},
		Inclusions: []string{
			"Airport transfers",
			"All accommodation (tea houses/camping)",
			"All meals during the trek",
			"Experienced English-speaking guide",
			"Porter services (1 porter for 2 clients)",
			"All necessary permits and entrance fees",
			"First aid kit and oxygen meter",
			"Trekking route map",
			"Achievement certificate",
		},
		Exclusions: []string{
			"International flights to/from Nepal",
			"Nepal entry visa fee",
			"Personal trekking equipment",
			"Travel insurance",
			"Personal expenses and tips",
			"Emergency helicopter rescue",
			"Extra night accommodation in Kathmandu",
		},
		Itinerary: []ItineraryDay{
			{
				Day:         1,
				Title:       "Arrival in Kathmandu",
				Description: "Arrive at Tribhuvan International Airport and transfer to hotel.",
				Activities:  []string{"Airport pickup", "Hotel check-in", "Welcome dinner", "Trip briefing"},
			},
			{
				Day:         2,
				Title:       "Fly to Lukla, trek to Phakding",
				Description: "Early morning flight to Lukla and begin trekking to Phakding.",
				Activities:  []string{"Scenic mountain flight", "Start of trek", "River valley walking", "Village exploration"},
			},
		},
	},
	{
		ID:            "2",
		Title:         "Annapurna Base Camp Trek",
		Price:         980,
		OriginalPrice: 1200,
		Duration:      "10 Days",
		Difficulty:    "Moderate",
		GroupSize:     "6-10 People",
		Image:         "https://images.pexels.com/photos/1450082/pexels-photo-1450082.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description:   "Discover the stunning Annapurna region on this classic trek to base camp.",
		Highlights: []string{
			"Annapurna Base Camp at 4,130m",
			"Diverse landscapes and ecosystems",
			"Gurung and Magar cultural villages",
			"Natural hot springs",
		},
		Inclusions: []string{
			"Airport transfers",
			"All accommodation during trek",
			"All meals during the trek",
			"Experienced trekking guide",
			"Porter services",
			"All permits and fees",
			"First aid kit",
			"Trekking map",
		},
		Exclusions: []string{
			"International flights",
			"Nepal visa fee",
			"Personal equipment",
			"Travel insurance",
			"Personal expenses",
			"Emergency evacuation",
			"Extra nights in Pokhara",
		},
		Itinerary: []ItineraryDay{
			{
				Day:         1,
				Title:       "Drive to Pokhara",
				Description: "Scenic drive from Kathmandu to Pokhara.",
				Activities:  []string{"Mountain highway drive", "Lake city arrival", "Hotel check-in", "Lakeside walk"},
			},
			{
				Day:         2,
				Title:       "Trek to Ulleri",
				Description: "Begin trek from Nayapul to Ulleri village.",
				Activities:  []string{"Trek start", "Village paths", "Stone staircase", "Mountain lodge stay"},
			},
		},
	},
	{
		ID:            "3",
		Title:         "Manaslu Circuit Trek",
		Price:         1350,
		OriginalPrice: 1600,
		Duration:      "14 Days",
		Difficulty:    "Challenging",
		GroupSize:     "6-8 People",
		Image:         "https://images.pexels.com/photos/1591447/pexels-photo-1591447.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description:   "Explore the remote and pristine Manaslu region, often called the \"Japanese Alps\" of Nepal.",
		Highlights: []string{
			"Remote mountain wilderness",
			"Larkya La Pass at 5,160m",
			"Tibetan Buddhist culture",
			"Manaslu Base Camp option",
		},
		Inclusions: []string{
			"All permits and fees",
			"Experienced guide and porters",
			"All accommodation",
			"All meals during trek",
			"Transportation",
			"First aid kit",
			"Satellite phone for emergency",
		},
		Exclusions: []string{
			"International flights",
			"Visa fees",
			"Personal gear",
			"Insurance",
			"Personal expenses",
			"Emergency helicopter",
			"Extra accommodation",
		},
		Itinerary: []ItineraryDay{
			{
				Day:         1,
				Title:       "Drive to Soti Khola",
				Description: "Long drive from Kathmandu to trek starting point.",
				Activities:  []string{"Early departure", "Mountain road drive", "River valley entry", "Lodge accommodation"},
			},
		},
	},
}

// Upstream records carry only a subset of the Tour fields, so the remainder
// is filled with fixed placeholder content. Flagged for product review.
var (
	defaultDifficulty = "Moderate"
	defaultGroupSize  = "6-12 People"

	genericHighlights = []string{
		"Professional guides",
		"All permits included",
		"Accommodation provided",
		"Meals included",
	}
	genericInclusions = []string{
		"Professional guide",
		"All permits and fees",
		"Accommodation",
		"Meals during the tour",
		"Transportation",
	}
	genericExclusions = []string{
		"International flights",
		"Personal expenses",
		"Travel insurance",
		"Tips and gratuities",
	}
	genericItinerary = []ItineraryDay{
		{
			Day:         1,
			Title:       "Arrival and Welcome",
			Description: "Arrive at destination and meet your guide.",
			Activities:  []string{"Airport pickup", "Hotel check-in", "Welcome dinner"},
		},
		{
			Day:         2,
			Title:       "Tour Begins",
			Description: "Start your adventure with the first day of activities.",
			Activities:  []string{"Breakfast", "Tour activities", "Local dinner"},
		},
	}
)
