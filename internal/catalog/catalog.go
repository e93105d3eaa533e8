package catalog

// Static service catalog. Services are fixed content, not a managed
// collection; the booking engine only needs them for validation and pricing.

type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Description     string  `json:"description"`
}

var services = []Service{
	{
		ID:              "classic-haircut",
		Name:            "Classic Haircut",
		Price:           15,
		DurationMinutes: 30,
		Description:     "Precision cut tailored to your style. Wash and styling included.",
	},
	{
		ID:              "fade-haircut",
		Name:            "Fade Haircut",
		Price:           18,
		DurationMinutes: 40,
		Description:     "Modern fade with smooth transitions and sharp lines.",
	},
	{
		ID:              "beard-trim",
		Name:            "Beard Trim",
		Price:           8,
		DurationMinutes: 20,
		Description:     "Expert beard shaping with hot towel and precise lines.",
	},
	{
		ID:              "combo",
		Name:            "Haircut + Beard",
		Price:           25,
		DurationMinutes: 45,
		Description:     "The full package: haircut and beard shaping.",
	},
	{
		ID:              "eyebrow-threading",
		Name:            "Eyebrow Threading",
		Price:           4,
		DurationMinutes: 15,
		Description:     "Precise eyebrow shaping with traditional threading.",
	},
	{
		ID:              "wax-treatment",
		Name:            "Wax Treatment",
		Price:           4,
		DurationMinutes: 15,
		Description:     "Hot wax cleanup for nose and ears. Priced per zone.",
	},
	{
		ID:              "face-mask",
		Name:            "Face Mask",
		Price:           3,
		DurationMinutes: 25,
		Description:     "Refreshing face mask with premium products.",
	},
}

func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func ServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// TotalDuration sums the durations of the given services. Unknown IDs
// contribute nothing; callers validate existence separately.
func TotalDuration(ids []string) int {
	total := 0
	for _, id := range ids {
		if s, ok := ServiceByID(id); ok {
			total += s.DurationMinutes
		}
	}
	return total
}

func TotalPrice(ids []string) float64 {
	total := 0.0
	for _, id := range ids {
		if s, ok := ServiceByID(id); ok {
			total += s.Price
		}
	}
	return total
}
