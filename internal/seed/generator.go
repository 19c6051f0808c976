package seed

import (
	"crypto/rand"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	bandDivisor        = 8
	maxBadges          = 3
)

// Reputation bands. Weighting comes from how many draw outcomes map to
// each band.
const (
	solidMin        = 62.0
	solidRange      = 18.0
	strongMin       = 80.0
	strongRange     = 12.0
	strugglingMin   = 45.0
	strugglingRange = 17.0
	legendMin       = 92.0
	legendRange     = 7.0
	wildcardMin     = 45.0
	wildcardRange   = 54.0
)

// Order volume and accuracy bands.
const (
	ordersMin     = 30.0
	ordersRange   = 120.0
	accuracyMin   = 71.0
	accuracyRange = 28.5
)

// Budget band, rounded to the nearest budgetStep rupees.
const (
	budgetMin   = 4000.0
	budgetRange = 92000.0
	budgetStep  = 50.0
)

// Team name pools in shop-floor flavor. Names are drawn in a fixed
// traversal so they stay unique until the pools are exhausted.
var nameLead = []string{ //nolint:gochecknoglobals // static name pool
	"Bobbin", "Crankshaft", "Dyno", "Gearbox", "Lathe", "Rivet",
	"Sprocket", "Turbine", "Piston", "Flywheel", "Conveyor", "Solder",
	"Grinder", "Camshaft", "Forge",
}

var nameTail = []string{ //nolint:gochecknoglobals // static name pool
	"Bandits", "Crew", "Dynamos", "Gang", "Lords", "Rockets",
	"Squad", "Titans", "Mavericks", "Barons", "Raiders", "Wranglers",
}

var badgePool = []string{ //nolint:gochecknoglobals // static badge pool
	"🚀", "⚙️", "🔥", "🛠️", "🏭", "📦", "🔧", "⚡", "🎯", "🧲",
}

// Junk cells a messy spreadsheet realistically contains.
var junkPool = []string{ //nolint:gochecknoglobals // static junk pool
	"N/A", "n/a", "oops", "???", "TBD", "",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randomIndex returns a random int in [0, n).
func randomIndex(n int) int {
	if n <= 0 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateTeam creates one team row with band-distributed metrics.
func generateTeam(index int) Team {
	return Team{
		Name:       teamName(index),
		Reputation: round1(generateReputation()),
		Orders:     math.Round(ordersMin + getRandomFloat()*ordersRange),
		Accuracy:   round1(accuracyMin + getRandomFloat()*accuracyRange),
		Budget:     math.Round((budgetMin+getRandomFloat()*budgetRange)/budgetStep) * budgetStep,
		Badges:     generateBadges(),
	}
}

// generateReputation creates a reputation score with varied distribution.
func generateReputation() float64 {
	draw, _ := rand.Int(rand.Reader, big.NewInt(bandDivisor))
	switch draw.Int64() {
	case 0, 1, 2:
		// Solid teams (62 - 80) - most common
		return solidMin + getRandomFloat()*solidRange
	case 3, 4:
		// Strong teams (80 - 92)
		return strongMin + getRandomFloat()*strongRange
	case 5:
		// Struggling teams (45 - 62)
		return strugglingMin + getRandomFloat()*strugglingRange
	case 6:
		// Legendary teams (92 - 99) - rare
		return legendMin + getRandomFloat()*legendRange
	default:
		// Random across the full range (45 - 99)
		return wildcardMin + getRandomFloat()*wildcardRange
	}
}

// teamName builds a unique name by traversing the pools pairwise; past
// the pool product a numeric suffix keeps names unique.
func teamName(index int) string {
	lead := nameLead[index%len(nameLead)]
	tail := nameTail[(index/len(nameLead))%len(nameTail)]
	name := lead + " " + tail

	product := len(nameLead) * len(nameTail)
	if index >= product {
		name += " " + strconv.Itoa(index/product+1)
	}
	return name
}

// generateBadges draws up to maxBadges distinct badges; some teams have
// none.
func generateBadges() string {
	count := randomIndex(maxBadges + 1)
	if count == 0 {
		return ""
	}

	seen := make(map[int]bool, count)
	badges := make([]string, 0, count)
	for len(badges) < count {
		i := randomIndex(len(badgePool))
		if seen[i] {
			continue
		}
		seen[i] = true
		badges = append(badges, badgePool[i])
	}
	return strings.Join(badges, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
