package catalog

import "github.com/om-engineers/OME-BookingService/internal/domain"

// DefaultOfferings стартовый каталог услуг Om Engineers
// Порядок элементов определяет порядок выдачи в листинге
func DefaultOfferings() []domain.ServiceOffering {
	return []domain.ServiceOffering{
		{
			Name:               "Electrical Repair",
			Description:        "Complete electrical solutions for your home including wiring, outlets, and fixtures",
			Category:           domain.CategoryElectrical,
			DurationMinMinutes: 120,
			DurationMaxMinutes: 240,
			PriceMin:           500,
			PriceMax:           2000,
			Icon:               "⚡",
			IsActive:           true,
		},
		{
			Name:               "Plumbing Services",
			Description:        "Professional plumbing repairs and installations for all your water-related needs",
			Category:           domain.CategoryPlumbing,
			DurationMinMinutes: 60,
			DurationMaxMinutes: 180,
			PriceMin:           300,
			PriceMax:           1500,
			Icon:               "🔧",
			IsActive:           true,
		},
		{
			Name:               "AC Repair & Service",
			Description:        "Air conditioning repair, maintenance, and installation services",
			Category:           domain.CategoryHVAC,
			DurationMinMinutes: 60,
			DurationMaxMinutes: 120,
			PriceMin:           800,
			PriceMax:           3000,
			Icon:               "❄️",
			IsActive:           true,
		},
		{
			Name:               "Home Appliance Repair",
			Description:        "Repair services for washing machines, refrigerators, microwaves, and more",
			Category:           domain.CategoryAppliance,
			DurationMinMinutes: 120,
			DurationMaxMinutes: 180,
			PriceMin:           600,
			PriceMax:           2500,
			Icon:               "🏠",
			IsActive:           true,
		},
		{
			Name:               "Carpentry Services",
			Description:        "Furniture repair, custom woodwork, and carpentry solutions",
			Category:           domain.CategoryCarpentry,
			DurationMinMinutes: 180,
			DurationMaxMinutes: 360,
			PriceMin:           1000,
			PriceMax:           5000,
			Icon:               "🔨",
			IsActive:           true,
		},
		{
			Name:               "Painting Services",
			Description:        "Interior and exterior painting services for homes and offices",
			Category:           domain.CategoryPainting,
			DurationMinMinutes: 240,
			DurationMaxMinutes: 480,
			PriceMin:           1500,
			PriceMax:           8000,
			Icon:               "🎨",
			IsActive:           true,
		},
		{
			Name:               "Cleaning Services",
			Description:        "Deep cleaning, regular maintenance, and specialized cleaning services",
			Category:           domain.CategoryCleaning,
			DurationMinMinutes: 120,
			DurationMaxMinutes: 240,
			PriceMin:           800,
			PriceMax:           3000,
			Icon:               "🧹",
			IsActive:           true,
		},
		{
			Name:               "Pest Control",
			Description:        "Safe and effective pest control solutions for your home",
			Category:           domain.CategoryPestControl,
			DurationMinMinutes: 60,
			DurationMaxMinutes: 120,
			PriceMin:           1000,
			PriceMax:           4000,
			Icon:               "🐛",
			IsActive:           true,
		},
	}
}
