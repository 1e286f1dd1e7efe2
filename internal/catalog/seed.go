package catalog

import "github.com/shreyat81/e-com-mart/internal/domain"

// SeedProducts is the fixture catalog loaded by cmd/seed. Prices are INR.
func SeedProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:          1,
			Name:        "Sony WH-1000XM5 Wireless Headphones",
			Price:       29990,
			Image:       "/black-headphones-pink_94046-1948.webp",
			Category:    "Electronics",
			Type:        "Audio",
			Brand:       "Sony",
			Rating:      4.8,
			Reviews:     245,
			InStock:     true,
			Description: "Industry-leading noise cancellation with premium sound quality. 30-hour battery life with quick charging support.",
			Specifications: map[string]string{
				"brand":             "Sony",
				"model":             "WH-1000XM5",
				"connectivity":      "Bluetooth 5.2, 3.5mm Jack",
				"batteryLife":       "30 hours",
				"noiseCancellation": "Active Noise Cancellation",
				"weight":            "250g",
				"color":             "Black",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "3-5 business days",
				Charges:           0,
				ReturnPolicy:      "30-day return policy",
			},
			Offers: []string{
				"10% instant discount with HDFC Credit Card",
				"No-cost EMI available",
				"Free delivery",
			},
		},
		{
			ID:          2,
			Name:        "Apple Watch Series 9 GPS 41mm",
			Price:       41900,
			Image:       "/apple-watch-sport-42mm-silver-aluminum-case-with-black-band.webp",
			Category:    "Electronics",
			Type:        "Wearables",
			Brand:       "Apple",
			Rating:      4.9,
			Reviews:     892,
			InStock:     true,
			Description: "Advanced health and fitness tracking. Always-on Retina display with S9 chip for peak performance.",
			Specifications: map[string]string{
				"brand":           "Apple",
				"model":           "Series 9",
				"display":         "1.9\" Retina LTPO OLED",
				"processor":       "S9 SiP",
				"storage":         "32GB",
				"waterResistance": "50m",
				"batteryLife":     "18 hours",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-4 business days",
				Charges:           0,
				ReturnPolicy:      "14-day return policy",
			},
			Offers: []string{
				"5% cashback on Amazon Pay ICICI Card",
				"Free engraving",
				"1-year warranty included",
			},
		},
		{
			ID:          3,
			Name:        "Anker USB-C to Lightning Cable (6ft)",
			Price:       1299,
			Image:       "/usb-c-cable.webp",
			Category:    "Accessories",
			Type:        "Cables",
			Brand:       "Anker",
			Rating:      4.5,
			Reviews:     1560,
			InStock:     true,
			Description: "MFi certified fast charging cable. Durable braided design with 10000+ bend lifespan.",
			Specifications: map[string]string{
				"brand":         "Anker",
				"model":         "PowerLine II",
				"length":        "6ft / 1.8m",
				"connector":     "USB-C to Lightning",
				"certification": "MFi Certified",
				"color":         "Black",
				"warranty":      "Lifetime warranty",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-3 business days",
				Charges:           0,
				ReturnPolicy:      "30-day return policy",
			},
			Offers: []string{
				"Buy 2 Get 10% off",
				"Free delivery",
			},
		},
		{
			ID:          4,
			Name:        "Dell Inspiron 15 Laptop (i5, 8GB, 512GB SSD)",
			Price:       52990,
			Image:       "/dell-inspiron-15.webp",
			Category:    "Electronics",
			Type:        "Laptops",
			Brand:       "Dell",
			Rating:      4.4,
			Reviews:     543,
			InStock:     true,
			Description: "15.6\" FHD display with 11th Gen Intel Core i5 processor. Perfect for work and entertainment.",
			Specifications: map[string]string{
				"brand":     "Dell",
				"model":     "Inspiron 15 3511",
				"processor": "Intel Core i5-1135G7",
				"ram":       "8GB DDR4",
				"storage":   "512GB SSD",
				"display":   "15.6\" FHD",
				"graphics":  "Intel Iris Xe",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "3-5 business days",
				Charges:           0,
				ReturnPolicy:      "10-day return policy",
			},
			Offers: []string{
				"₹2000 instant discount with ICICI Cards",
				"No-cost EMI available",
				"1-year warranty",
			},
		},
		{
			ID:          5,
			Name:        "Anker PowerCore 20000mAh Power Bank",
			Price:       2999,
			Image:       "/powercore-20k.webp",
			Category:    "Accessories",
			Type:        "Power Banks",
			Brand:       "Anker",
			Rating:      4.6,
			Reviews:     724,
			InStock:     true,
			Description: "Ultra-high-capacity portable charger with dual USB ports. Fast charging support.",
			Specifications: map[string]string{
				"brand":        "Anker",
				"model":        "PowerCore 20K",
				"capacity":     "20000mAh",
				"output":       "Dual USB (2.4A each)",
				"input":        "Micro USB / USB-C",
				"weight":       "356g",
				"rechargeTime": "10 hours",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-3 business days",
				Charges:           0,
				ReturnPolicy:      "18-month warranty",
			},
			Offers: []string{
				"10% off on prepaid orders",
				"Free delivery",
				"Exchange offer available",
			},
		},
		{
			ID:          6,
			Name:        "JBL Flip 6 Portable Bluetooth Speaker",
			Price:       9999,
			Image:       "/jbl-flip-6.webp",
			Category:    "Electronics",
			Type:        "Audio",
			Brand:       "JBL",
			Rating:      4.7,
			Reviews:     438,
			InStock:     true,
			Description: "Waterproof portable speaker with powerful sound. 12-hour playtime with deep bass.",
			Specifications: map[string]string{
				"brand":       "JBL",
				"model":       "Flip 6",
				"bluetooth":   "Bluetooth 5.1",
				"batteryLife": "12 hours",
				"waterproof":  "IP67",
				"weight":      "550g",
				"output":      "30W",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-4 business days",
				Charges:           0,
				ReturnPolicy:      "30-day return policy",
			},
			Offers: []string{
				"15% cashback on Amazon Pay",
				"Free carrying case",
				"No-cost EMI for 3 months",
			},
		},
		{
			ID:          7,
			Name:        "Lamicall Adjustable Phone Stand",
			Price:       599,
			Image:       "/lamicall-stand.webp",
			Category:    "Accessories",
			Type:        "Phone Accessories",
			Brand:       "Lamicall",
			Rating:      4.4,
			Reviews:     267,
			InStock:     true,
			Description: "Multi-angle aluminum phone stand for desk. Compatible with all smartphones and tablets.",
			Specifications: map[string]string{
				"brand":            "Lamicall",
				"model":            "S1",
				"material":         "Aluminum alloy",
				"compatibility":    "4-13 inch devices",
				"adjustableAngles": "Yes",
				"weight":           "180g",
				"color":            "Silver",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "3-4 business days",
				Charges:           0,
				ReturnPolicy:      "30-day return policy",
			},
			Offers: []string{
				"Buy 2 Get 15% off",
				"Free delivery",
			},
		},
		{
			ID:          8,
			Name:        "Logitech MX Master 3S Wireless Mouse",
			Price:       8999,
			Image:       "/mx-master-3s.webp",
			Category:    "Electronics",
			Type:        "Computer Accessories",
			Brand:       "Logitech",
			Rating:      4.8,
			Reviews:     1243,
			InStock:     true,
			Description: "Advanced wireless mouse with ultra-fast scrolling. Ergonomic design for productivity.",
			Specifications: map[string]string{
				"brand":        "Logitech",
				"model":        "MX Master 3S",
				"connectivity": "Bluetooth, USB Receiver",
				"sensor":       "8000 DPI",
				"batteryLife":  "70 days",
				"buttons":      "7 programmable",
				"weight":       "141g",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-3 business days",
				Charges:           0,
				ReturnPolicy:      "30-day return policy",
			},
			Offers: []string{
				"10% instant discount with bank cards",
				"Free delivery",
				"1-year warranty",
			},
		},
		{
			ID:          9,
			Name:        "OnePlus Nord CE 3 Lite 5G (8GB, 128GB)",
			Price:       19999,
			Image:       "/nord-ce-3-lite.webp",
			Category:    "Electronics",
			Type:        "Smartphones",
			Brand:       "OnePlus",
			Rating:      4.3,
			Reviews:     534,
			InStock:     true,
			Description: "6.72\" FHD+ display with 108MP camera. Snapdragon 695 5G processor for smooth performance.",
			Specifications: map[string]string{
				"brand":     "OnePlus",
				"model":     "Nord CE 3 Lite",
				"display":   "6.72\" FHD+ 120Hz",
				"processor": "Snapdragon 695",
				"ram":       "8GB",
				"storage":   "128GB",
				"camera":    "108MP + 2MP + 2MP",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-3 business days",
				Charges:           0,
				ReturnPolicy:      "10-day replacement",
			},
			Offers: []string{
				"Exchange offer up to ₹15,000",
				"No-cost EMI available",
				"1-year warranty",
			},
		},
		{
			ID:          10,
			Name:        "Logitech C920 HD Pro Webcam",
			Price:       6499,
			Image:       "/logitech-c920.webp",
			Category:    "Electronics",
			Type:        "Computer Accessories",
			Brand:       "Logitech",
			Rating:      4.5,
			Reviews:     892,
			InStock:     true,
			Description: "Full HD 1080p webcam with auto-focus. Built-in stereo microphones for clear audio.",
			Specifications: map[string]string{
				"brand":       "Logitech",
				"model":       "C920",
				"resolution":  "1080p at 30fps",
				"fieldOfView": "78 degrees",
				"autofocus":   "Yes",
				"microphone":  "Dual stereo",
				"mounting":    "Universal clip",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "3-5 business days",
				Charges:           0,
				ReturnPolicy:      "30-day return policy",
			},
			Offers: []string{
				"15% off on prepaid orders",
				"Free tripod stand worth ₹499",
				"Free shipping",
			},
		},
		{
			ID:          11,
			Name:        "boAt Airdopes 131 TWS Earbuds",
			Price:       1299,
			Image:       "/airdopes-131.webp",
			Category:    "Electronics",
			Type:        "Audio",
			Brand:       "boAt",
			Rating:      4.1,
			Reviews:     8456,
			InStock:     true,
			Description: "True wireless earbuds with 60-hour playback. IPX4 water resistant with BEAST mode for gaming.",
			Specifications: map[string]string{
				"brand":           "boAt",
				"model":           "Airdopes 131",
				"bluetooth":       "Bluetooth 5.3",
				"playback":        "60 hours",
				"waterResistance": "IPX4",
				"charging":        "Type-C fast charging",
				"driver":          "13mm",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-3 business days",
				Charges:           0,
				ReturnPolicy:      "7-day replacement",
			},
			Offers: []string{
				"10% instant discount on HDFC Cards",
				"Free delivery",
				"1-year warranty",
			},
		},
		{
			ID:          12,
			Name:        "Samsung Galaxy M14 5G (6GB, 128GB)",
			Price:       13990,
			Image:       "/galaxy-m14.webp",
			Category:    "Electronics",
			Type:        "Smartphones",
			Brand:       "Samsung",
			Rating:      4.2,
			Reviews:     1567,
			InStock:     true,
			Description: "6.6\" FHD+ display with 50MP triple camera. 6000mAh battery with Exynos 1330 processor.",
			Specifications: map[string]string{
				"brand":     "Samsung",
				"model":     "Galaxy M14 5G",
				"display":   "6.6\" FHD+ 90Hz",
				"processor": "Exynos 1330",
				"ram":       "6GB",
				"storage":   "128GB",
				"camera":    "50MP + 2MP + 2MP",
				"battery":   "6000mAh",
			},
			Shipping: &domain.ShippingInfo{
				EstimatedDelivery: "2-3 business days",
				Charges:           0,
				ReturnPolicy:      "10-day replacement",
			},
			Offers: []string{
				"Exchange offer up to ₹10,500",
				"No-cost EMI available",
				"1-year warranty",
			},
		},
	}
}
