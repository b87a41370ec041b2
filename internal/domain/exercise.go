package domain

// Exercise is a single catalog entry. Entries are immutable after load and
// identified case-insensitively by name.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Force            string   `json:"force,omitempty"`
	Level            string   `json:"level"`
	Mechanic         string   `json:"mechanic,omitempty"`
	Equipment        string   `json:"equipment"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category"`
	Images           []string `json:"images"`
}

// ImageURLs resolves the stored relative image paths against baseURL. The
// absolute URLs are derived on demand, never stored.
func (e Exercise) ImageURLs(baseURL string) []string {
	urls := make([]string, 0, len(e.Images))
	for _, p := range e.Images {
		urls = append(urls, baseURL+p)
	}
	return urls
}

// ExerciseView is the API shape of an exercise, the entry plus its derived
// image URLs.
type ExerciseView struct {
	Exercise
	ImageURLs []string `json:"imageUrls"`
}

func NewExerciseView(e Exercise, imageBaseURL string) ExerciseView {
	return ExerciseView{Exercise: e, ImageURLs: e.ImageURLs(imageBaseURL)}
}
