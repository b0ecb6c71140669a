package catalog

// Seed is the shop's collection.
func Seed() []Product {
	return []Product{
		{
			ID:          "ceramic-vase",
			Name:        "Handcrafted Ceramic Vase",
			UnitPrice:   68,
			Description: "Hand-thrown stoneware vase with a matte glaze.",
			Image:       "handmade-vase.png",
			Category:    "ceramics",
		},
		{
			ID:          "table-lamp",
			Name:        "Brass Table Lamp",
			UnitPrice:   120,
			Description: "Solid brass base with a linen drum shade.",
			Image:       "table-lamp.png",
			Category:    "lighting",
		},
		{
			ID:          "throw-pillows",
			Name:        "Linen Throw Pillows",
			UnitPrice:   45,
			Description: "Pair of stonewashed linen pillows with hidden zips.",
			Image:       "throw-pillow.png",
			Category:    "textiles",
		},
		{
			ID:          "wooden-stool",
			Name:        "Carved Wooden Stool",
			UnitPrice:   95,
			Description: "Hand-carved acacia stool, oiled finish.",
			Image:       "wooden-stool.png",
			Category:    "furniture",
		},
		{
			ID:          "glass-vase",
			Name:        "Art Glass Vase",
			UnitPrice:   88,
			Description: "Mouth-blown glass with swirled amber inclusions.",
			Image:       "glass-vase.png",
			Category:    "ceramics",
		},
		{
			ID:          "pendant-light",
			Name:        "Woven Pendant Light",
			UnitPrice:   150,
			Description: "Rattan pendant shade woven over a steel frame.",
			Image:       "pendant-light.png",
			Category:    "lighting",
		},
		{
			ID:          "wool-throw",
			Name:        "Merino Wool Throw",
			UnitPrice:   110,
			Description: "Chunky-knit merino throw in undyed cream.",
			Image:       "throw-blanket.png",
			Category:    "textiles",
		},
		{
			ID:          "side-table",
			Name:        "Marble Side Table",
			UnitPrice:   230,
			Description: "Carrara marble top on a blackened steel base.",
			Image:       "side-table.png",
			Category:    "furniture",
		},
	}
}
