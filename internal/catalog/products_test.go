package catalog

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/posturelab/coach-backend/internal/domain"
)

const productFixture = `[
  {"label": "Tapis de sol confort", "url": "/p/tapis-de-sol/R-p-12345"},
  {"label": "Montre GPS Garmin Forerunner", "url": "https://example.com/watch"},
  {"label": "Gourde running 500ml", "url": "/mp/hydro-flask/gourde-500"}
]`

func TestLoadProducts(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "products.json", productFixture)
	store, err := LoadProducts(path, 42)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}

	if store.Len() != 3 {
		t.Fatalf("len: want=3 got=%d", store.Len())
	}

	p, ok := store.Get("TAPIS DE SOL CONFORT")
	if !ok {
		t.Fatal("case-insensitive lookup failed")
	}
	if p.Brand == "" || p.Description == "" || p.Price == 0 || p.Rating == 0 || p.Reviews == 0 || p.Image == "" {
		t.Fatalf("expected all fields synthesized, got %+v", p)
	}
}

func TestLoadProductsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "products.json", productFixture)
	first, err := LoadProducts(path, 42)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	second, err := LoadProducts(path, 42)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}

	for _, label := range first.Labels() {
		a, _ := first.Get(label)
		b, _ := second.Get(label)
		if a != b {
			t.Fatalf("same seed produced different products:\n%+v\n%+v", a, b)
		}
	}
}

func TestSynthesizeProduct(t *testing.T) {
	t.Parallel()

	t.Run("marketplace brand from url", func(t *testing.T) {
		t.Parallel()
		p := domain.Product{Label: "Gourde", URL: "/mp/hydro-flask/gourde-500"}
		SynthesizeProduct(&p, rand.New(rand.NewSource(1)))
		if p.Brand != "Hydro flask" {
			t.Fatalf("brand: want=%q got=%q", "Hydro flask", p.Brand)
		}
	})

	t.Run("known brand in label", func(t *testing.T) {
		t.Parallel()
		p := domain.Product{Label: "Montre GPS Garmin Forerunner", URL: "/p/x"}
		SynthesizeProduct(&p, rand.New(rand.NewSource(1)))
		if p.Brand != "Garmin" {
			t.Fatalf("brand: want=Garmin got=%q", p.Brand)
		}
	})

	t.Run("fallback brand", func(t *testing.T) {
		t.Parallel()
		p := domain.Product{Label: "Tapis de sol", URL: "/p/x"}
		SynthesizeProduct(&p, rand.New(rand.NewSource(1)))
		if p.Brand != "Decathlon" {
			t.Fatalf("brand: want=Decathlon got=%q", p.Brand)
		}
	})

	t.Run("image from product id", func(t *testing.T) {
		t.Parallel()
		p := domain.Product{Label: "Tapis", URL: "/p/tapis/R-p-98765"}
		SynthesizeProduct(&p, rand.New(rand.NewSource(1)))
		want := "https://contents.mediadecathlon.com/p98765/sq/200x200/"
		if p.Image != want {
			t.Fatalf("image: want=%q got=%q", want, p.Image)
		}
	})

	t.Run("placeholder image without product id", func(t *testing.T) {
		t.Parallel()
		p := domain.Product{Label: "Tapis", URL: "/p/tapis"}
		SynthesizeProduct(&p, rand.New(rand.NewSource(1)))
		if p.Image != placeholderImageURL {
			t.Fatalf("image: want placeholder got=%q", p.Image)
		}
	})

	t.Run("price bands", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(7))

		watch := domain.Product{Label: "Montre GPS"}
		SynthesizeProduct(&watch, rng)
		if watch.Price < 150 || watch.Price >= 450 {
			t.Fatalf("watch price out of band: %v", watch.Price)
		}

		bottle := domain.Product{Label: "Gourde isotherme"}
		SynthesizeProduct(&bottle, rng)
		if bottle.Price < 20 || bottle.Price >= 70 {
			t.Fatalf("bottle price out of band: %v", bottle.Price)
		}
	})

	t.Run("existing fields untouched", func(t *testing.T) {
		t.Parallel()
		p := domain.Product{
			Label:       "Tapis",
			Brand:       "Domyos",
			Description: "already set",
			Price:       19.99,
			Rating:      4.2,
			Reviews:     77,
			Image:       "https://example.com/i.jpg",
		}
		before := p
		SynthesizeProduct(&p, rand.New(rand.NewSource(1)))
		if p != before {
			t.Fatalf("synthesis overwrote fields:\nbefore=%+v\nafter=%+v", before, p)
		}
	})

	t.Run("rating range and rounding", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 100; i++ {
			p := domain.Product{Label: "Bande élastique"}
			SynthesizeProduct(&p, rng)
			if p.Rating < 3.5 || p.Rating > 5.0 {
				t.Fatalf("rating out of range: %v", p.Rating)
			}
			if p.Reviews < 10 || p.Reviews > 510 {
				t.Fatalf("reviews out of range: %d", p.Reviews)
			}
		}
	})
}

func TestProductSearch(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "products.json", productFixture)
	store, err := LoadProducts(path, 42)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}

	entries, matched := store.Search("gourde", 50, 0)
	if matched != 1 || len(entries) != 1 {
		t.Fatalf("search: matched=%d returned=%d", matched, len(entries))
	}
	if !strings.Contains(entries[0].Label, "Gourde") {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}

	_, matched = store.Search("", 2, 0)
	if matched != 3 {
		t.Fatalf("empty query matched: want=3 got=%d", matched)
	}
}
