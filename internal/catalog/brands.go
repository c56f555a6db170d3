package catalog

import "carmarket-service/internal/model"

// MasterBrands is the static brand master list. Brand rows in the
// relational store are synced from here by id, not from the per-brand
// JSON files.
var MasterBrands = []model.Brand{
	{ID: 1, Name: "VinFast", Link: "vinfast", Description: "Vietnamese electric vehicle manufacturer", Image: "/brands/vinfast.webp", IsActive: true},
	{ID: 2, Name: "Toyota", Link: "toyota", Description: "Japanese automaker", Image: "/brands/toyota.webp", IsActive: true},
	{ID: 3, Name: "Honda", Link: "honda", Description: "Japanese automaker", Image: "/brands/honda.webp", IsActive: true},
	{ID: 4, Name: "Hyundai", Link: "hyundai", Description: "South Korean automaker", Image: "/brands/hyundai.webp", IsActive: true},
	{ID: 5, Name: "Kia", Link: "kia", Description: "South Korean automaker", Image: "/brands/kia.webp", IsActive: true},
	{ID: 6, Name: "Mazda", Link: "mazda", Description: "Japanese automaker", Image: "/brands/mazda.webp", IsActive: true},
	{ID: 7, Name: "Ford", Link: "ford", Description: "American automaker", Image: "/brands/ford.webp", IsActive: true},
	{ID: 8, Name: "Mitsubishi", Link: "mitsubishi", Description: "Japanese automaker", Image: "/brands/mitsubishi.webp", IsActive: true},
	{ID: 9, Name: "Mercedes-Benz", Link: "mercedes-benz", Description: "German luxury automaker", Image: "/brands/mercedes-benz.webp", IsActive: true},
	{ID: 10, Name: "BMW", Link: "bmw", Description: "German luxury automaker", Image: "/brands/bmw.webp", IsActive: true},
	{ID: 11, Name: "Suzuki", Link: "suzuki", Description: "Japanese automaker", Image: "/brands/suzuki.webp", IsActive: true},
	{ID: 12, Name: "Nissan", Link: "nissan", Description: "Japanese automaker", Image: "/brands/nissan.webp", IsActive: true},
}
