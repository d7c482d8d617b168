package dto

type WeatherIndexResponse struct {
	Code             string  `json:"code"`
	Description      string  `json:"description"`
	DailyProbability float64 `json:"daily_probability"`
}

type ListWeatherIndicesResponse struct {
	Indices []WeatherIndexResponse `json:"indices"`
}
