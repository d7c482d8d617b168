package handlers

import (
	"delivery-time-simulator/internal/api/dto"
	"delivery-time-simulator/internal/ports"
	"log"
	"net/http"
)

// WeatherHandler exposes the read-only weather-index mapping.
type WeatherHandler struct {
	Repo ports.WeatherIndexRepository
}

func (h *WeatherHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	indices, err := h.Repo.ListIndices(r.Context())
	if err != nil {
		log.Printf("list weather indices failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWeatherIndicesResponse{
		Indices: make([]dto.WeatherIndexResponse, 0, len(indices)),
	}
	for _, idx := range indices {
		res.Indices = append(res.Indices, dto.WeatherIndexResponse{
			Code:             idx.Code,
			Description:      idx.Description,
			DailyProbability: idx.DailyProbability,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
