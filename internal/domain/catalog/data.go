package catalog

import "marblecraft/internal/domain/entities"

const imageBaseURL = "https://storage.googleapis.com/workspace-0f70711f-8b4e-4d94-86f1-2a93ccde5887/image/"

func imageURL(name string) string {
	return imageBaseURL + name + ".png"
}

// EmbeddedServices returns a fresh copy of the source-embedded service records.
func EmbeddedServices() []entities.Service {
	return []entities.Service{
		{
			ID:          "marble_flooring",
			Name:        "Marble Flooring Installation",
			Description: "Professional marble flooring installation with precision cutting and expert fitting. Perfect for living rooms, bedrooms, and commercial spaces.",
			BasePrice:   25,
			Category:    entities.CategoryFlooring,
			Duration:    6,
			Image:       imageURL("db92296d-b50a-4f3d-9154-c4a3f7fe5766"),
			Features: []string{
				"Precision cutting and fitting",
				"Professional leveling and alignment",
				"Grout application and finishing",
				"Post-installation cleaning",
				"Quality guarantee",
				"Minimal dust installation process",
			},
			MinArea: 15,
		},
		{
			ID:          "marble_countertops",
			Name:        "Marble Countertop Installation",
			Description: "Custom marble countertop installation for kitchens and bathrooms. Expert edge finishing and seamless integration.",
			BasePrice:   35,
			Category:    entities.CategoryCountertops,
			Duration:    4,
			Image:       imageURL("5e87ba4b-07a2-423f-a8f9-a1b390630fee"),
			Features: []string{
				"Custom measurement and templating",
				"Professional edge finishing",
				"Seamless installation",
				"Sink cutout and fitting",
				"Backsplash integration",
				"Surface protection treatment",
			},
			MinArea: 8,
		},
		{
			ID:          "marble_walls",
			Name:        "Marble Wall Cladding",
			Description: "Transform your walls with elegant marble cladding. Perfect for accent walls, bathrooms, and feature areas.",
			BasePrice:   30,
			Category:    entities.CategoryWalls,
			Duration:    5,
			Image:       imageURL("4e099bed-437c-4c7a-8525-31b1fa4e7caa"),
			Features: []string{
				"Wall preparation and leveling",
				"Precision marble cutting",
				"Secure mounting system",
				"Seamless joint alignment",
				"Corner and edge finishing",
				"Surface sealing",
			},
			MinArea: 12,
		},
		{
			ID:          "marble_stairs",
			Name:        "Marble Staircase Installation",
			Description: "Elegant marble staircase installation with non-slip finishing. Includes treads, risers, and landing areas.",
			BasePrice:   45,
			Category:    entities.CategoryStairs,
			Duration:    8,
			Image:       imageURL("2ed46790-db54-446e-ba33-de5ce82a46e2"),
			Features: []string{
				"Custom tread and riser cutting",
				"Non-slip surface treatment",
				"Handrail integration support",
				"Landing area installation",
				"Safety compliance",
				"Professional edge polishing",
			},
			MinArea: 10,
		},
		{
			ID:          "marble_bathroom",
			Name:        "Marble Bathroom Suite",
			Description: "Complete marble bathroom transformation including floors, walls, shower areas, and vanity tops.",
			BasePrice:   40,
			Category:    entities.CategoryBathrooms,
			Duration:    10,
			Image:       imageURL("108037a9-4e9a-44fe-8186-4eb3b718a36a"),
			Features: []string{
				"Waterproof installation",
				"Shower and tub surround",
				"Vanity top installation",
				"Floor and wall coordination",
				"Drainage integration",
				"Moisture protection sealing",
			},
			MinArea: 20,
		},
	}
}

// EmbeddedDesigns returns a fresh copy of the source-embedded design records.
func EmbeddedDesigns() []entities.MarbleDesign {
	return []entities.MarbleDesign{
		// Classic whites
		{
			ID:              "carrara_classic",
			Name:            "Carrara Classic",
			Type:            "Natural Marble",
			Image:           imageURL("b09e8636-f679-46f7-9e2d-843b2a10d523"),
			Description:     "Timeless Italian Carrara marble with soft gray veining on a white background. Perfect for any elegant interior.",
			PriceMultiplier: 1.2,
			Color:           "White",
			Pattern:         "Veined",
			Origin:          "Italy",
		},
		{
			ID:              "calacatta_gold",
			Name:            "Calacatta Gold",
			Type:            "Premium Natural",
			Image:           imageURL("986508de-ee15-4b01-ba6d-aca90ccbe794"),
			Description:     "Luxurious Calacatta marble featuring dramatic gold and gray veining. A statement piece for high-end projects.",
			PriceMultiplier: 1.8,
			Color:           "White",
			Pattern:         "Bold Veined",
			Origin:          "Italy",
		},
		{
			ID:              "thassos_pure",
			Name:            "Thassos Pure",
			Type:            "Natural Marble",
			Image:           imageURL("4b8e8f42-4c46-48a5-adfe-4eb0a89569ab"),
			Description:     "Pure white Greek marble with a crystalline structure. Ideal for modern minimalist designs.",
			PriceMultiplier: 1.3,
			Color:           "Pure White",
			Pattern:         "Solid",
			Origin:          "Greece",
		},

		// Grays and darks
		{
			ID:              "emperador_dark",
			Name:            "Emperador Dark",
			Type:            "Natural Marble",
			Image:           imageURL("ce19c1c1-1f27-4da8-965d-14d088cad28e"),
			Description:     "Rich dark brown marble with cream and gold veining. Adds warmth and sophistication to any space.",
			PriceMultiplier: 1.4,
			Color:           "Dark Brown",
			Pattern:         "Veined",
			Origin:          "Spain",
		},
		{
			ID:              "nero_marquina",
			Name:            "Nero Marquina",
			Type:            "Natural Marble",
			Image:           imageURL("0fc8bd06-bd8d-49b4-ab8a-b5cca56c930c"),
			Description:     "Deep black Spanish marble with distinctive white veining. Perfect for creating dramatic contrasts.",
			PriceMultiplier: 1.5,
			Color:           "Black",
			Pattern:         "Veined",
			Origin:          "Spain",
		},
		{
			ID:              "gray_cloud",
			Name:            "Gray Cloud",
			Type:            "Natural Marble",
			Image:           imageURL("32c98aab-add5-4f81-933d-04a9b3985073"),
			Description:     "Contemporary gray marble with cloud-like white patterns. Ideal for modern architectural projects.",
			PriceMultiplier: 1.1,
			Color:           "Gray",
			Pattern:         "Cloudy",
			Origin:          "Turkey",
		},

		// Colored
		{
			ID:              "verde_guatemala",
			Name:            "Verde Guatemala",
			Type:            "Natural Marble",
			Image:           imageURL("af5d660c-8499-4e9d-be53-d4a279bb768f"),
			Description:     "Vibrant green marble with natural patterns. Brings a unique natural element to interior spaces.",
			PriceMultiplier: 1.6,
			Color:           "Green",
			Pattern:         "Natural",
			Origin:          "Guatemala",
		},
		{
			ID:              "rosso_verona",
			Name:            "Rosso Verona",
			Type:            "Natural Marble",
			Image:           imageURL("1aaef105-fd25-4851-8a40-2b25520965e1"),
			Description:     "Distinctive red Italian marble with fossil inclusions. A bold choice for feature walls and accents.",
			PriceMultiplier: 1.7,
			Color:           "Red",
			Pattern:         "Fossil",
			Origin:          "Italy",
		},

		// Budget
		{
			ID:              "botticino_classic",
			Name:            "Botticino Classic",
			Type:            "Natural Marble",
			Image:           imageURL("dfb3641f-1923-42d7-9bff-28f76335b5ba"),
			Description:     "Affordable Italian marble in warm cream tones with subtle natural patterns. Great value for larger projects.",
			PriceMultiplier: 0.9,
			Color:           "Cream",
			Pattern:         "Subtle",
			Origin:          "Italy",
		},
		{
			ID:              "turkish_cream",
			Name:            "Turkish Cream",
			Type:            "Natural Marble",
			Image:           imageURL("43d8c7f2-6b01-4a32-bca3-8a733cc14b1a"),
			Description:     "Cost-effective cream marble with uniform texture. Perfect for budget-conscious elegant installations.",
			PriceMultiplier: 0.8,
			Color:           "Cream",
			Pattern:         "Uniform",
			Origin:          "Turkey",
		},

		// Engineered
		{
			ID:              "quartz_calacatta",
			Name:            "Engineered Calacatta",
			Type:            "Engineered Stone",
			Image:           imageURL("fb153868-be6e-483b-a509-2b2dc93d3ece"),
			Description:     "Engineered quartz with Calacatta marble appearance. Consistent veining and superior durability.",
			PriceMultiplier: 1.1,
			Color:           "White",
			Pattern:         "Consistent Veined",
			Origin:          "Manufactured",
		},
		{
			ID:              "quartz_carrara",
			Name:            "Engineered Carrara",
			Type:            "Engineered Stone",
			Image:           imageURL("3db24d42-1e50-4921-ada2-64360556c35b"),
			Description:     "Engineered stone mimicking classic Carrara marble. Low maintenance with natural marble aesthetics.",
			PriceMultiplier: 1.0,
			Color:           "White",
			Pattern:         "Uniform Veined",
			Origin:          "Manufactured",
		},
	}
}
