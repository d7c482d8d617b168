package handlers

import (
	"crypto/sha256"
	"delivery-time-simulator/internal/api/dto"
	"delivery-time-simulator/internal/domain"
	"delivery-time-simulator/internal/platform/obs"
	"delivery-time-simulator/internal/ports"
	"delivery-time-simulator/internal/services"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

type SimulationHandler struct {
	Repo  ports.WeatherIndexRepository
	Cache ports.SummaryCache
}

// Run executes one Monte Carlo simulation batch.
// It resolves the weather occurrence probability (explicit value or
// stored index codes), runs the engine, and returns the statistical
// summary, optionally with the three aligned per-parcel sequences or
// a CSV rendering of them.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.OperatingHoursPerDay == 0 {
		req.OperatingHoursPerDay = 8
	}

	weatherProb, ok := h.resolveWeatherProbability(w, r, &req)
	if !ok {
		return
	}

	params := domain.SimulationParameters{
		BaseTransitDays:      req.BaseTransitDays,
		ArrivalRatePerHour:   req.ArrivalRatePerHour,
		ServiceRatePerHour:   req.ServiceRatePerHour,
		OperatingHoursPerDay: req.OperatingHoursPerDay,
		WeatherProbability:   weatherProb,
		WeatherDelayMinDays:  req.WeatherDelayMinDays,
		WeatherDelayMaxDays:  req.WeatherDelayMaxDays,
		StrikeProbability:    req.StrikeProbability,
		StrikeDelayMinDays:   req.StrikeDelayMinDays,
		StrikeDelayMaxDays:   req.StrikeDelayMaxDays,
		TrialCount:           req.TrialCount,
	}

	seeded := req.Seed != nil
	seed := uint64(time.Now().UnixNano())
	if seeded {
		seed = *req.Seed
	}

	wantCSV := r.URL.Query().Get("format") == "csv"

	// Seeded summary-only runs are pure functions of the request, so
	// their responses can be served from the cache verbatim.
	cacheable := seeded && !req.IncludeTrials && !wantCSV && h.Cache != nil
	var key string
	if cacheable {
		key = summaryCacheKey(params, seed, req.ThresholdsDays, req.HistogramBins)
		if payload, hit, err := h.Cache.Get(r.Context(), key); err != nil {
			log.Printf("summary cache get failed: %v", err)
		} else if hit {
			var cached dto.SimulationResponse
			if err := json.Unmarshal(payload, &cached); err != nil {
				log.Printf("summary cache payload corrupt: key=%s err=%v", key, err)
			} else {
				cached.Cached = true
				writeJSON(w, r, http.StatusOK, cached)
				return
			}
		}
	}

	stop := obs.Time(r.Context(), "simulation.Run")
	result, runErr := services.RunSimulation(params, seed)
	stop(&runErr)
	if runErr != nil {
		h.writeDomainError(w, r, runErr)
		return
	}

	summary, err := services.Summarize(result, req.ThresholdsDays, req.HistogramBins)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	if wantCSV {
		writeTrialsCSV(w, r, result)
		return
	}

	res := dto.SimulationResponse{
		Seed:               seed,
		WeatherProbability: weatherProb,
		Summary:            toSummaryResponse(summary),
	}
	if req.IncludeTrials {
		res.Trials = &dto.TrialSeriesResponse{
			TotalDays:         result.TotalDays(),
			QueueDelayDays:    result.WaitingDays(),
			ExternalDelayDays: result.ExternalDelayDays(),
		}
	}

	if cacheable {
		if payload, err := json.Marshal(res); err == nil {
			if err := h.Cache.Set(r.Context(), key, payload); err != nil {
				log.Printf("summary cache set failed: %v", err)
			}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// resolveWeatherProbability picks between an explicit probability and
// stored index codes. Giving both is ambiguous and rejected.
func (h *SimulationHandler) resolveWeatherProbability(w http.ResponseWriter, r *http.Request, req *dto.SimulationRequest) (float64, bool) {
	if len(req.WeatherIndexCodes) == 0 {
		if req.WeatherProbability != nil {
			return *req.WeatherProbability, true
		}
		return 0, true
	}

	if req.WeatherProbability != nil {
		writeError(w, r, http.StatusBadRequest, "provide either weather_probability or weather_index_codes, not both")
		return 0, false
	}
	if h.Repo == nil {
		writeError(w, r, http.StatusBadRequest, "weather index lookup is not configured")
		return 0, false
	}

	indices, err := h.Repo.GetIndices(r.Context(), req.WeatherIndexCodes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParameter) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return 0, false
		}
		log.Printf("get weather indices failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return 0, false
	}

	prob, err := services.CombinedOccurrenceProbability(indices)
	if err != nil {
		h.writeDomainError(w, r, err)
		return 0, false
	}
	return prob, true
}

func (h *SimulationHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) || errors.Is(err, domain.ErrDegenerateBatch) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("run simulation failed: %v", err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func toSummaryResponse(s *services.Summary) dto.SummaryResponse {
	exceedance := make([]dto.ExceedanceResponse, 0, len(s.Exceedance))
	for _, e := range s.Exceedance {
		exceedance = append(exceedance, dto.ExceedanceResponse{
			ThresholdDays: e.ThresholdDays,
			Probability:   e.Probability,
		})
	}
	return dto.SummaryResponse{
		TrialCount: s.TrialCount,
		MeanDays:   s.MeanDays,
		MedianDays: s.MedianDays,
		Exceedance: exceedance,
		Histogram: dto.HistogramResponse{
			Edges:  s.Histogram.Edges,
			Counts: s.Histogram.Counts,
		},
	}
}

// summaryCacheKey is a deterministic digest of everything the response
// depends on.
func summaryCacheKey(params domain.SimulationParameters, seed uint64, thresholds []float64, bins int) string {
	payload, _ := json.Marshal(struct {
		Params     domain.SimulationParameters
		Seed       uint64
		Thresholds []float64
		Bins       int
	}{params, seed, thresholds, bins})

	digest := sha256.Sum256(payload)
	return "simsummary:" + hex.EncodeToString(digest[:])
}

func writeTrialsCSV(w http.ResponseWriter, r *http.Request, result *domain.SimulationResult) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="simulation_trials.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"parcel", "total_days", "queue_delay_days", "external_delay_days"}); err != nil {
		log.Printf("csv write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		return
	}

	totals := result.TotalDays()
	waiting := result.WaitingDays()
	external := result.ExternalDelayDays()

	for i := range totals {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(totals[i], 'g', -1, 64),
			strconv.FormatFloat(waiting[i], 'g', -1, 64),
			strconv.FormatFloat(external[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			log.Printf("csv write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("csv flush failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
