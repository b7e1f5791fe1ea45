package entities

import "slices"

// Categories a listing can be filed under.
var Categories = []string{
	"Venue",
	"Photography",
	"Videography",
	"Catering",
	"Florist",
	"Music & Entertainment",
	"Planner",
	"Hair & Makeup",
	"Attire",
	"Cakes & Desserts",
	"Stationery",
	"Transportation",
}

// Specialties is the fixed vocabulary specialty tags are drawn from.
var Specialties = []string{
	"Beach Weddings",
	"Cultural Ceremonies",
	"Destination Weddings",
	"Eco-Friendly",
	"Elopements",
	"Garden Weddings",
	"Intimate Gatherings",
	"Large Celebrations",
	"LGBTQ+ Friendly",
	"Luxury",
	"Modern",
	"Rustic",
	"Traditional",
	"Vintage",
}

func IsSpecialty(v string) bool {
	return slices.Contains(Specialties, v)
}

func IsCategory(v string) bool {
	return slices.Contains(Categories, v)
}
