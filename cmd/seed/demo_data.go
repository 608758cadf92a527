package main

import (
	"time"

	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/models"
)

func demoProducts() []models.Product {
	day := func(n int) time.Time { return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, n) }

	return []models.Product{
		{ID: 1, Name: "Laptop Dell XPS 13 9340", CategoryID: 1, BrandID: 1, ListPrice: 42_990_000, SalePrice: 37_990_000, Sold: 48,
			CPU: "Intel Core Ultra 7", RAM: "16GB", Storage: "512GB SSD", ScreenSize: "13.4 inch", GPU: "Intel Arc", CreatedAt: day(3),
			Images: []string{"/images/products/dell-xps-13.jpg"}, Status: models.ProductStatusActive},
		{ID: 2, Name: "MacBook Air M3 13 inch", CategoryID: 1, BrandID: 2, ListPrice: 27_990_000, SalePrice: 26_490_000, Sold: 132,
			CPU: "Apple M3", RAM: "8GB", Storage: "256GB SSD", ScreenSize: "13.6 inch", GPU: "Apple 8-core GPU", CreatedAt: day(10),
			Images: []string{"/images/products/macbook-air-m3.jpg"}, Status: models.ProductStatusActive},
		{ID: 3, Name: "ASUS ROG Strix G16", CategoryID: 2, BrandID: 3, ListPrice: 45_990_000, SalePrice: 38_990_000, Sold: 21,
			CPU: "Intel Core i7", RAM: "16GB", Storage: "1TB SSD", ScreenSize: "16 inch", GPU: "RTX 4060", CreatedAt: day(1),
			Images: []string{"/images/products/rog-strix-g16.jpg"}, Status: models.ProductStatusActive},
		{ID: 4, Name: "Lenovo ThinkPad X1 Carbon Gen 12", CategoryID: 1, BrandID: 4, ListPrice: 52_990_000, SalePrice: 49_990_000, Sold: 9,
			CPU: "Intel Core Ultra 7", RAM: "32GB", Storage: "1TB SSD", ScreenSize: "14 inch", GPU: "Intel Arc", CreatedAt: day(14),
			Images: []string{"/images/products/thinkpad-x1.jpg"}, Status: models.ProductStatusActive},
		{ID: 5, Name: "Acer Nitro V 15", CategoryID: 2, BrandID: 5, ListPrice: 24_990_000, SalePrice: 19_990_000, Sold: 87,
			CPU: "AMD Ryzen 5", RAM: "8GB", Storage: "512GB SSD", ScreenSize: "15.6 inch", GPU: "RTX 3050", CreatedAt: day(6),
			Images: []string{"/images/products/acer-nitro-v.jpg"}, Status: models.ProductStatusActive},
		{ID: 6, Name: "HP Pavilion 14", CategoryID: 1, BrandID: 6, ListPrice: 16_990_000, SalePrice: 16_990_000, Sold: 64,
			CPU: "Intel Core i5", RAM: "16GB", Storage: "512GB SSD", ScreenSize: "14 inch", GPU: "Intel Iris Xe", CreatedAt: day(8),
			Images: []string{}, Status: models.ProductStatusActive},
		{ID: 7, Name: "MSI Katana 15 (preorder)", CategoryID: 2, BrandID: 7, ListPrice: 29_990_000, SalePrice: 27_990_000,
			CPU: "Intel Core i7", RAM: "16GB", Storage: "1TB SSD", ScreenSize: "15.6 inch", GPU: "RTX 4070", CreatedAt: day(20),
			Images: []string{}, Status: models.ProductStatusDraft},
	}
}

func demoVouchers() []models.Voucher {
	expires := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

	return []models.Voucher{
		{Code: "WELCOME5", Title: "5% off your first order", DiscountPercent: 5, MaxDiscount: 500_000, MinRank: loyalty.Bronze, Active: true},
		{Code: "SILVER8", Title: "Silver members 8% off", DiscountPercent: 8, MaxDiscount: 1_000_000, MinOrderValue: 10_000_000, MinRank: loyalty.Silver, Active: true, ExpiresAt: &expires},
		{Code: "GOLD12", Title: "Gold members 12% off", DiscountPercent: 12, MaxDiscount: 2_000_000, MinOrderValue: 15_000_000, MinRank: loyalty.Gold, Active: true, ExpiresAt: &expires},
		{Code: "DIAMOND20", Title: "Diamond members 20% off", DiscountPercent: 20, MaxDiscount: 5_000_000, MinRank: loyalty.Diamond, Active: true},
	}
}

func demoUsers() []models.User {
	return []models.User{
		{Email: "bronze@shop.local", Name: "Bronze Shopper", TotalSpent: 4_500_000},
		{Email: "silver@shop.local", Name: "Silver Shopper", TotalSpent: 18_000_000},
		{Email: "gold@shop.local", Name: "Gold Shopper", TotalSpent: 30_000_000},
		{Email: "diamond@shop.local", Name: "Diamond Shopper", TotalSpent: 75_250_000},
	}
}
