package classifier

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/alovak/cardcheck/card"
	"github.com/alovak/cardcheck/internal/audit"
	"github.com/alovak/cardcheck/internal/cardgen"
	"github.com/alovak/cardcheck/internal/isomsg"
	"github.com/go-chi/chi/v5"
)

const (
	maxMessageBytes = 64 << 10
	maxJSONBytes    = 4 << 10
)

// API is a HTTP API for the classifier service
type API struct {
	classifier *Service
}

func NewAPI(classifier *Service) *API {
	return &API{
		classifier: classifier,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/checksum", a.checksum)
	r.Route("/classify", func(r chi.Router) {
		r.Post("/", a.classify)
		r.Post("/iso8583", a.classifyISO8583)
	})
	r.Route("/verdicts", func(r chi.Router) {
		r.Get("/", a.listVerdicts)
		r.Get("/{verdictID}", a.getVerdict)
	})
}

// cardNumber accepts either a JSON string or a JSON integer literal so large
// numbers are never rounded through float64.
type cardNumber string

func (n *cardNumber) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = cardNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = cardNumber(num.String())
	return nil
}

type numberRequest struct {
	Number cardNumber `json:"number"`
}

func decodeNumber(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := numberRequest{}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes)).Decode(&req)
	if err == nil {
		return string(req.Number), true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	} else {
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
	return "", false
}

type checksumResponse struct {
	Number   string `json:"number"`
	Checksum int    `json:"checksum"`
	Valid    bool   `json:"valid"`
}

func (a *API) checksum(w http.ResponseWriter, r *http.Request) {
	number, ok := decodeNumber(w, r)
	if !ok {
		return
	}

	sum, err := a.classifier.Checksum(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checksumResponse{
		Number:   cardgen.MaskPAN(number),
		Checksum: sum,
		Valid:    card.ValidChecksum(sum),
	})
}

func (a *API) classify(w http.ResponseWriter, r *http.Request) {
	number, ok := decodeNumber(w, r)
	if !ok {
		return
	}

	verdict, err := a.classifier.Classify(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

// classifyISO8583 expects the packed message as the raw request body.
func (a *API) classifyISO8583(w http.ResponseWriter, r *http.Request) {
	packed, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMessageBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	verdict, err := a.classifier.ClassifyISO8583(r.Context(), packed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

func (a *API) getVerdict(w http.ResponseWriter, r *http.Request) {
	verdictID := chi.URLParam(r, "verdictID")

	verdict, err := a.classifier.GetVerdict(r.Context(), verdictID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

func (a *API) listVerdicts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = v
	}

	verdicts, err := a.classifier.ListVerdicts(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdicts)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, card.ErrMalformed),
		errors.Is(err, isomsg.ErrMalformed),
		errors.Is(err, isomsg.ErrNoPAN):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, audit.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
