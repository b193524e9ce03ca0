package models

import "strings"

// District is one entry of the fixed 64-district reference table. The
// coordinates are the marker position used by the map page.
type District struct {
	Name     string  `json:"name"`
	Division string  `json:"division"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Divisions returns the 8 division names in display order.
func Divisions() []string {
	return []string{
		"Dhaka", "Chittagong", "Rajshahi", "Khulna",
		"Barisal", "Sylhet", "Rangpur", "Mymensingh",
	}
}

// bangladeshDistricts is static reference data, loaded once and never
// mutated. Lookups go through LookupDistrict.
var bangladeshDistricts = []District{
	// Dhaka Division
	{Name: "Dhaka", Division: "Dhaka", Lat: 23.8103, Lng: 90.4125},
	{Name: "Gazipur", Division: "Dhaka", Lat: 24.0022, Lng: 90.4264},
	{Name: "Narayanganj", Division: "Dhaka", Lat: 23.6238, Lng: 90.4996},
	{Name: "Tangail", Division: "Dhaka", Lat: 24.2513, Lng: 89.9167},
	{Name: "Manikganj", Division: "Dhaka", Lat: 23.8617, Lng: 90.0003},
	{Name: "Munshiganj", Division: "Dhaka", Lat: 23.5422, Lng: 90.5305},
	{Name: "Narsingdi", Division: "Dhaka", Lat: 23.9229, Lng: 90.7176},
	{Name: "Faridpur", Division: "Dhaka", Lat: 23.6070, Lng: 89.8429},
	{Name: "Gopalganj", Division: "Dhaka", Lat: 23.0050, Lng: 89.8266},
	{Name: "Madaripur", Division: "Dhaka", Lat: 23.1642, Lng: 90.1896},
	{Name: "Rajbari", Division: "Dhaka", Lat: 23.7574, Lng: 89.6444},
	{Name: "Shariatpur", Division: "Dhaka", Lat: 23.2423, Lng: 90.4348},
	{Name: "Kishoreganj", Division: "Dhaka", Lat: 24.4260, Lng: 90.7760},

	// Chittagong Division
	{Name: "Chittagong", Division: "Chittagong", Lat: 22.3569, Lng: 91.7832},
	{Name: "Coxs Bazar", Division: "Chittagong", Lat: 21.4272, Lng: 92.0058},
	{Name: "Comilla", Division: "Chittagong", Lat: 23.4607, Lng: 91.1809},
	{Name: "Feni", Division: "Chittagong", Lat: 23.0159, Lng: 91.3976},
	{Name: "Brahmanbaria", Division: "Chittagong", Lat: 23.9608, Lng: 91.1115},
	{Name: "Rangamati", Division: "Chittagong", Lat: 22.7324, Lng: 92.2985},
	{Name: "Noakhali", Division: "Chittagong", Lat: 22.8696, Lng: 91.0995},
	{Name: "Chandpur", Division: "Chittagong", Lat: 23.2332, Lng: 90.6712},
	{Name: "Lakshmipur", Division: "Chittagong", Lat: 22.9447, Lng: 90.8282},
	{Name: "Khagrachhari", Division: "Chittagong", Lat: 23.1193, Lng: 91.9847},
	{Name: "Bandarban", Division: "Chittagong", Lat: 22.1953, Lng: 92.2183},

	// Rajshahi Division
	{Name: "Rajshahi", Division: "Rajshahi", Lat: 24.3745, Lng: 88.6042},
	{Name: "Bogra", Division: "Rajshahi", Lat: 24.8465, Lng: 89.3770},
	{Name: "Pabna", Division: "Rajshahi", Lat: 24.0064, Lng: 89.2372},
	{Name: "Natore", Division: "Rajshahi", Lat: 24.4206, Lng: 89.0000},
	{Name: "Sirajganj", Division: "Rajshahi", Lat: 24.4533, Lng: 89.7006},
	{Name: "Chapainawabganj", Division: "Rajshahi", Lat: 24.5965, Lng: 88.2775},
	{Name: "Naogaon", Division: "Rajshahi", Lat: 24.7936, Lng: 88.9318},
	{Name: "Joypurhat", Division: "Rajshahi", Lat: 25.0968, Lng: 89.0227},

	// Khulna Division
	{Name: "Khulna", Division: "Khulna", Lat: 22.8456, Lng: 89.5403},
	{Name: "Jessore", Division: "Khulna", Lat: 23.1634, Lng: 89.2182},
	{Name: "Satkhira", Division: "Khulna", Lat: 22.7185, Lng: 89.0705},
	{Name: "Bagerhat", Division: "Khulna", Lat: 22.6602, Lng: 89.7895},
	{Name: "Jhenaidah", Division: "Khulna", Lat: 23.5450, Lng: 89.1539},
	{Name: "Magura", Division: "Khulna", Lat: 23.4855, Lng: 89.4198},
	{Name: "Narail", Division: "Khulna", Lat: 23.1163, Lng: 89.5840},
	{Name: "Chuadanga", Division: "Khulna", Lat: 23.6401, Lng: 88.8410},
	{Name: "Kushtia", Division: "Khulna", Lat: 23.9012, Lng: 89.1200},
	{Name: "Meherpur", Division: "Khulna", Lat: 23.7622, Lng: 88.6318},

	// Barisal Division
	{Name: "Barisal", Division: "Barisal", Lat: 22.7010, Lng: 90.3535},
	{Name: "Patuakhali", Division: "Barisal", Lat: 22.3596, Lng: 90.3298},
	{Name: "Bhola", Division: "Barisal", Lat: 22.6859, Lng: 90.6482},
	{Name: "Pirojpur", Division: "Barisal", Lat: 22.5791, Lng: 89.9759},
	{Name: "Barguna", Division: "Barisal", Lat: 22.1521, Lng: 90.1119},
	{Name: "Jhalokati", Division: "Barisal", Lat: 22.6406, Lng: 90.1987},

	// Sylhet Division
	{Name: "Sylhet", Division: "Sylhet", Lat: 24.8949, Lng: 91.8687},
	{Name: "Moulvibazar", Division: "Sylhet", Lat: 24.4829, Lng: 91.7774},
	{Name: "Habiganj", Division: "Sylhet", Lat: 24.3745, Lng: 91.4152},
	{Name: "Sunamganj", Division: "Sylhet", Lat: 25.0657, Lng: 91.3950},

	// Rangpur Division
	{Name: "Rangpur", Division: "Rangpur", Lat: 25.7439, Lng: 89.2752},
	{Name: "Dinajpur", Division: "Rangpur", Lat: 25.6217, Lng: 88.6354},
	{Name: "Gaibandha", Division: "Rangpur", Lat: 25.3285, Lng: 89.5280},
	{Name: "Kurigram", Division: "Rangpur", Lat: 25.8073, Lng: 89.6295},
	{Name: "Lalmonirhat", Division: "Rangpur", Lat: 25.9923, Lng: 89.2847},
	{Name: "Nilphamari", Division: "Rangpur", Lat: 25.9317, Lng: 88.8560},
	{Name: "Panchagarh", Division: "Rangpur", Lat: 26.3411, Lng: 88.5541},
	{Name: "Thakurgaon", Division: "Rangpur", Lat: 26.0336, Lng: 88.4616},

	// Mymensingh Division
	{Name: "Mymensingh", Division: "Mymensingh", Lat: 24.7471, Lng: 90.4203},
	{Name: "Jamalpur", Division: "Mymensingh", Lat: 25.0831, Lng: 89.9410},
	{Name: "Netrokona", Division: "Mymensingh", Lat: 24.8105, Lng: 90.7272},
	{Name: "Sherpur", Division: "Mymensingh", Lat: 25.0204, Lng: 90.0152},
}

// Districts returns a copy of the full reference table.
func Districts() []District {
	out := make([]District, len(bangladeshDistricts))
	copy(out, bangladeshDistricts)
	return out
}

// LookupDistrict resolves raw input (any casing) to the canonical
// district record.
func LookupDistrict(raw string) (District, bool) {
	raw = strings.TrimSpace(raw)
	for _, d := range bangladeshDistricts {
		if strings.EqualFold(raw, d.Name) {
			return d, true
		}
	}
	return District{}, false
}

// DistrictsIn returns the districts belonging to the given division.
func DistrictsIn(division string) []District {
	var out []District
	for _, d := range bangladeshDistricts {
		if strings.EqualFold(division, d.Division) {
			out = append(out, d)
		}
	}
	return out
}
