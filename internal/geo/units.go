package geo

// Length conversion factors.
const (
	KmPerNm = 1.852
	KmPerSm = 1.609347
	SmPerNm = 1.150778974
)

// Unit is a length unit used for reporting.
type Unit string

const (
	Kilometers    Unit = "km"
	NauticalMiles Unit = "nm"
	StatuteMiles  Unit = "sm"
)

// FromKm converts a distance in kilometers into unit u.
// kmPerNm lets callers override the nautical mile ratio; zero means KmPerNm.
func FromKm(km float64, u Unit, kmPerNm float64) float64 {
	if kmPerNm == 0 {
		kmPerNm = KmPerNm
	}

	switch u {
	case NauticalMiles:
		return km / kmPerNm
	case StatuteMiles:
		return km / KmPerSm
	default:
		return km
	}
}
