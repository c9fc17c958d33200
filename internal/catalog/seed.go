package catalog

import "github.com/shopspring/decimal"

func price(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func pricePtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func intPtr(value int) *int {
	return &value
}

func seedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Fruits & Vegetables", Image: "https://images.pexels.com/photos/1132047/pexels-photo-1132047.jpeg"},
		{ID: "2", Name: "Dairy & Breakfast", Image: "https://images.pexels.com/photos/248412/pexels-photo-248412.jpeg"},
		{ID: "3", Name: "Snacks & Munchies", Image: "https://images.pexels.com/photos/1987042/pexels-photo-1987042.jpeg"},
		{ID: "4", Name: "Cold Drinks & Juices", Image: "https://images.pexels.com/photos/2531188/pexels-photo-2531188.jpeg"},
		{ID: "5", Name: "Instant & Frozen Food", Image: "https://images.pexels.com/photos/4553031/pexels-photo-4553031.jpeg"},
		{ID: "6", Name: "Tea, Coffee & Health Drinks", Image: "https://images.pexels.com/photos/312418/pexels-photo-312418.jpeg"},
		{ID: "7", Name: "Bakery & Biscuits", Image: "https://images.pexels.com/photos/1775043/pexels-photo-1775043.jpeg"},
		{ID: "8", Name: "Sweet Tooth", Image: "https://images.pexels.com/photos/1291712/pexels-photo-1291712.jpeg"},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID: "1", Name: "Fresh Bananas",
			Price: price(40), OriginalPrice: pricePtr(50), DiscountPercent: intPtr(20),
			Image: "https://images.pexels.com/photos/1093038/pexels-photo-1093038.jpeg",
			Unit:  "1 kg", CategoryID: "1",
			Description: "Fresh and ripe bananas from organic farms. Rich in potassium and perfect for smoothies or a quick snack.",
			InStock:     true,
		},
		{
			ID: "2", Name: "Red Apple",
			Price: price(120),
			Image: "https://images.pexels.com/photos/1510392/pexels-photo-1510392.jpeg",
			Unit:  "1 kg", CategoryID: "1",
			Description: "Crisp and sweet red apples. Perfect for snacking, baking, or adding to salads.",
			InStock:     true,
		},
		{
			ID: "3", Name: "Organic Milk",
			Price: price(65), OriginalPrice: pricePtr(75), DiscountPercent: intPtr(13),
			Image: "https://images.pexels.com/photos/2510627/pexels-photo-2510627.jpeg",
			Unit:  "500 ml", CategoryID: "2",
			Description: "Farm-fresh organic milk. Pasteurized and homogenized for the best taste and nutrition.",
			InStock:     true,
		},
		{
			ID: "4", Name: "Brown Eggs",
			Price: price(80),
			Image: "https://images.pexels.com/photos/7638155/pexels-photo-7638155.jpeg",
			Unit:  "6 pcs", CategoryID: "2",
			Description: "Free-range brown eggs from healthy hens. High in protein and essential nutrients.",
			InStock:     true,
		},
		{
			ID: "5", Name: "Potato Chips",
			Price: price(30), OriginalPrice: pricePtr(40), DiscountPercent: intPtr(25),
			Image: "https://images.pexels.com/photos/4498177/pexels-photo-4498177.jpeg",
			Unit:  "100 g", CategoryID: "3",
			Description: "Crispy potato chips with just the right amount of salt. Perfect for movie nights or parties.",
			InStock:     true,
		},
		{
			ID: "6", Name: "Mixed Nuts",
			Price: price(200),
			Image: "https://images.pexels.com/photos/1120575/pexels-photo-1120575.jpeg",
			Unit:  "250 g", CategoryID: "3",
			Description: "Premium mix of almonds, cashews, and walnuts. A healthy snack packed with nutrients.",
			InStock:     true,
		},
		{
			ID: "7", Name: "Orange Juice",
			Price: price(95), OriginalPrice: pricePtr(110), DiscountPercent: intPtr(14),
			Image: "https://images.pexels.com/photos/158053/fresh-orange-juice-squeezed-refreshing-citrus-158053.jpeg",
			Unit:  "1 L", CategoryID: "4",
			Description: "Freshly squeezed orange juice with no added sugar. Rich in vitamin C and antioxidants.",
			InStock:     true,
		},
		{
			ID: "8", Name: "Cola",
			Price: price(60),
			Image: "https://images.pexels.com/photos/2668308/pexels-photo-2668308.jpeg",
			Unit:  "750 ml", CategoryID: "4",
			Description: "Classic cola drink. Best served chilled with ice for a refreshing experience.",
			InStock:     true,
		},
		{
			ID: "9", Name: "Frozen Pizza",
			Price: price(250), OriginalPrice: pricePtr(300), DiscountPercent: intPtr(17),
			Image: "https://images.pexels.com/photos/5792329/pexels-photo-5792329.jpeg",
			Unit:  "400 g", CategoryID: "5",
			Description: "Ready-to-bake margherita pizza with a thin, crispy crust and premium cheese topping.",
			InStock:     true,
		},
		{
			ID: "10", Name: "Green Coffee",
			Price: price(350),
			Image: "https://images.pexels.com/photos/4829069/pexels-photo-4829069.jpeg",
			Unit:  "250 g", CategoryID: "6",
			Description: "Premium green coffee beans with rich aroma and flavor. Perfect for weight management.",
			InStock:     true,
		},
		{
			ID: "11", Name: "Chocolate Cake",
			Price: price(450), OriginalPrice: pricePtr(500), DiscountPercent: intPtr(10),
			Image: "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg",
			Unit:  "500 g", CategoryID: "7",
			Description: "Decadent chocolate cake with rich frosting. Perfect for celebrations or dessert.",
			InStock:     true,
		},
		{
			ID: "12", Name: "Chocolate Bar",
			Price: price(100),
			Image: "https://images.pexels.com/photos/65882/chocolate-dark-coffee-confiserie-65882.jpeg",
			Unit:  "100 g", CategoryID: "8",
			Description: "Premium dark chocolate bar with 70% cocoa. Rich, smooth, and satisfying for chocolate lovers.",
			InStock:     true,
		},
	}
}

func seedOffers() []Offer {
	return []Offer{
		{
			ID:          "1",
			Title:       "Get 50% off on your first order",
			Description: "Use code WELCOME50",
			Image:       "https://images.pexels.com/photos/5650026/pexels-photo-5650026.jpeg",
			Color:       "#FFF3CD",
		},
		{
			ID:          "2",
			Title:       "Free delivery on orders above ₹500",
			Description: "Limited time offer",
			Image:       "https://images.pexels.com/photos/6169/woman-hand-smartphone-shopping.jpg",
			Color:       "#D1E7DD",
		},
		{
			ID:          "3",
			Title:       "Buy 1 Get 1 Free on all beverages",
			Description: "This weekend only",
			Image:       "https://images.pexels.com/photos/1536355/pexels-photo-1536355.jpeg",
			Color:       "#CFE2FF",
		},
	}
}

func seedRecentSearches() []string {
	return []string{"Milk", "Bread", "Eggs", "Bananas", "Rice", "Onions"}
}
