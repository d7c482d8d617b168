package domain

// A named climatological index with its daily occurrence probability.
// The probability is derived externally from historical annual index
// values (e.g., ECA&D station records); the core only requires it to
// lie in [0,1].
type WeatherIndex struct {
	Code             string
	Description      string
	DailyProbability float64
}
