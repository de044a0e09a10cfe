package domain

// ServiceDuration is one of two enumerated service lengths, each with its
// own guest-count price ladder
type ServiceDuration string

const (
	DurationShort ServiceDuration = "short" // 2-hour service
	DurationLong  ServiceDuration = "long"  // 4-hour service
)

// IsValid returns true for a known service duration
func (d ServiceDuration) IsValid() bool {
	return d == DurationShort || d == DurationLong
}

// MeatSelectionCount is the number of meats every package includes
const MeatSelectionCount = 4

// MeatOptions are the eight meats a customer chooses from
var MeatOptions = []string{
	"carne-asada",
	"pollo-asado",
	"al-pastor",
	"carnitas",
	"chorizo",
	"barbacoa",
	"lengua",
	"veggie",
}

// AguaFrescaFlavors are the flavor sub-selections for the agua-fresca extra
var AguaFrescaFlavors = []string{
	"horchata",
	"jamaica",
	"tamarindo",
	"limon",
}

// AguaFrescaID is the only extra that carries flavor sub-selections
const AguaFrescaID = "agua-fresca"

// IsMeatOption returns true for a known meat option
func IsMeatOption(meat string) bool {
	for _, m := range MeatOptions {
		if m == meat {
			return true
		}
	}
	return false
}

// IsAguaFrescaFlavor returns true for a known agua-fresca flavor
func IsAguaFrescaFlavor(flavor string) bool {
	for _, f := range AguaFrescaFlavors {
		if f == flavor {
			return true
		}
	}
	return false
}

// ValidMeatSelection returns true if meats contains exactly
// MeatSelectionCount distinct known options
func ValidMeatSelection(meats []string) bool {
	if len(meats) != MeatSelectionCount {
		return false
	}
	seen := make(map[string]bool, len(meats))
	for _, m := range meats {
		if !IsMeatOption(m) || seen[m] {
			return false
		}
		seen[m] = true
	}
	return true
}
