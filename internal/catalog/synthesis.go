package catalog

import (
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/posturelab/coach-backend/internal/domain"
)

// knownBrands are house and partner brands recognized in product labels.
var knownBrands = []string{
	"Garmin", "Domyos", "Kalenji", "Kiprun", "Quechua", "Forclaz",
	"Btwin", "Van Rysel", "Rockrider", "Nabaiji", "Aptonia", "Nyamba",
}

var (
	marketplaceBrandRe = regexp.MustCompile(`/mp/([^/]+)/`)
	productIDRe        = regexp.MustCompile(`R-p-(\d+)`)
)

const placeholderImageURL = "https://contents.mediadecathlon.com/s894037/k$d26c4de3bb9d2c8aa58e8a3e3b1d3f47/sq/200x200/decathlon-logo.jpg"

// SynthesizeProduct fills fields the catalog file left empty. It runs once
// per entry at load time; passing a fixed rng seed makes the synthesized
// values stable for the process lifetime and reproducible in tests.
func SynthesizeProduct(p *domain.Product, rng *rand.Rand) {
	if p.Brand == "" {
		p.Brand = inferBrand(p.Label, p.URL)
	}
	if p.Description == "" {
		p.Description = p.Label + ". Produit de qualité sélectionné par Decathlon pour accompagner votre entraînement."
	}
	if p.Price == 0 {
		p.Price = synthesizePrice(p.Label, rng)
	}
	if p.Rating == 0 {
		p.Rating = math.Round((3.5+rng.Float64()*1.5)*10) / 10
	}
	if p.Reviews == 0 {
		p.Reviews = rng.Intn(500) + 10
	}
	if p.Image == "" {
		p.Image = synthesizeImageURL(p.URL)
	}
}

func inferBrand(label, url string) string {
	// marketplace listings carry the seller brand in the URL path
	if m := marketplaceBrandRe.FindStringSubmatch(url); m != nil {
		brand := strings.ReplaceAll(m[1], "-", " ")
		return strings.ToUpper(brand[:1]) + brand[1:]
	}
	labelLower := strings.ToLower(label)
	for _, brand := range knownBrands {
		if strings.Contains(labelLower, strings.ToLower(brand)) {
			return brand
		}
	}
	return "Decathlon"
}

// synthesizePrice bands the price by what the label suggests the product is.
func synthesizePrice(label string, rng *rand.Rand) float64 {
	labelLower := strings.ToLower(label)

	switch {
	case containsAny(labelLower, "garmin", "montre", "gps"):
		return float64(rng.Intn(300) + 150)
	case containsAny(labelLower, "tapis", "vélo", "velo"):
		return float64(rng.Intn(200) + 100)
	case containsAny(labelLower, "casque", "bande", "gourde"):
		return float64(rng.Intn(50) + 20)
	default:
		return float64(rng.Intn(60) + 20)
	}
}

func synthesizeImageURL(url string) string {
	if m := productIDRe.FindStringSubmatch(url); m != nil {
		return "https://contents.mediadecathlon.com/p" + m[1] + "/sq/200x200/"
	}
	return placeholderImageURL
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
