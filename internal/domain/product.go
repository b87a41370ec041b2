package domain

import "strings"

// Product is a single catalog entry identified case-insensitively by label.
// Fields missing from the source file are synthesized once at load time
// (see catalog.SynthesizeProduct); after that the entry never changes.
type Product struct {
	Label       string  `json:"label"`
	URL         string  `json:"url"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image"`
}

// FullURL resolves the stored URL against the shop base URL. URLs that are
// already absolute are returned unchanged.
func (p Product) FullURL(baseURL string) string {
	if strings.HasPrefix(p.URL, "http") {
		return p.URL
	}
	return baseURL + p.URL
}

// ProductView is the API shape of a product with the resolved absolute URL.
type ProductView struct {
	Product
	URL string `json:"url"`
}

func NewProductView(p Product, shopBaseURL string) ProductView {
	return ProductView{Product: p, URL: p.FullURL(shopBaseURL)}
}
