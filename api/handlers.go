/*
handlers.go - HTTP API handlers for the compensation calculator

PURPOSE:
  Exposes the compensation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Calculation:
    POST   /api/compensation/calculate        Ad hoc calculation
    POST   /api/compensation/direct-care-days Direct care autofill

  Reference:
    GET    /api/rates/ranks                   Rank table
    GET    /api/rates/shifts                  Shift type reference

  Profiles:
    GET    /api/profiles                      List stored profiles
    POST   /api/profiles                      Create profile
    GET    /api/profiles/{id}                 Get profile
    PUT    /api/profiles/{id}                 Update profile
    DELETE /api/profiles/{id}                 Delete profile
    POST   /api/profiles/{id}/calculate       Calculate a stored profile

  Examples:
    GET    /api/examples                      List example physicians
    POST   /api/examples/{id}/calculate       Calculate an example

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, invalid input
  - 404: Profile or example not found
  - 422: Validation failures
  - 500: Internal errors

SECURITY NOTE:
  No authentication. The calculator exposes no personal data beyond
  what the caller submits itself; deploy behind the hospital SSO proxy
  if profiles are enabled in a shared environment.

SEE ALSO:
  - dto.go: Request/response data structures
  - examples.go: Example physician presets
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agonzalez06/hospitalist-calculator/comp"
	"github.com/agonzalez06/hospitalist-calculator/physician"
	"github.com/agonzalez06/hospitalist-calculator/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// CALCULATION ENDPOINTS
// =============================================================================

// Calculate runs the engine over an ad hoc input.
// POST /api/compensation/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	profile := req.toProfile()
	result, err := profile.Calculate()
	if err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultDTO(result))
}

// DirectCareDays computes the auto-filled direct care day count.
// POST /api/compensation/direct-care-days
func (h *Handler) DirectCareDays(w http.ResponseWriter, r *http.Request) {
	var req DirectCareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	days := comp.DirectCareDays(comp.DirectCareInput{
		StatusFTE:      decimal.NewFromFloat(req.StatusFTE),
		NonClinicalFTE: decimal.NewFromFloat(req.NonClinicalFTE),
		OtherDeptFTE:   decimal.NewFromFloat(req.OtherDeptFTE),
		ShiftDays:      req.ShiftDays,
	})

	writeJSON(w, http.StatusOK, DirectCareDTO{DirectCareDays: days})
}

// =============================================================================
// REFERENCE ENDPOINTS
// =============================================================================

// ListRanks returns the rank table.
// GET /api/rates/ranks
func (h *Handler) ListRanks(w http.ResponseWriter, r *http.Request) {
	ranks := make([]RankDTO, 0, len(comp.RankNames))
	for _, name := range comp.RankNames {
		ranks = append(ranks, RankDTO{
			Rank:       name,
			AComponent: comp.AComponentForRank(name).Float64(),
		})
	}
	writeJSON(w, http.StatusOK, ranks)
}

// ListShiftRates returns the shift type reference table, including the
// tiered night rows and the separately compensated addiction row.
// GET /api/rates/shifts
func (h *Handler) ListShiftRates(w http.ResponseWriter, r *http.Request) {
	rates := make([]ShiftRateDTO, 0, len(comp.ShiftCatalog)+3)
	for _, rate := range comp.ShiftCatalog {
		ratio, _ := rate.Ratio.Float64()
		sos, _ := rate.SoS.Float64()
		rates = append(rates, ShiftRateDTO{Name: rate.Name, Ratio: ratio, SoS: &sos})
	}

	standardSoS, _ := comp.NightStandardSoS.Float64()
	premiumSoS, _ := comp.NightPremiumSoS.Float64()
	rates = append(rates,
		ShiftRateDTO{Name: comp.ShiftStandardNights, Ratio: 1.0, SoS: &standardSoS, Notes: "Night premium"},
		ShiftRateDTO{Name: comp.ShiftPremiumNights, Ratio: 1.0, SoS: &premiumSoS, Notes: "Extra night premium"},
		ShiftRateDTO{Name: comp.ShiftAddiction, Ratio: 1.0, Notes: "Separate compensation"},
	)

	writeJSON(w, http.StatusOK, rates)
}

// =============================================================================
// PROFILE ENDPOINTS
// =============================================================================

// ListProfiles returns all stored profiles.
// GET /api/profiles
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Store.ListProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list profiles", err)
		return
	}
	if profiles == nil {
		profiles = []physician.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

// CreateProfile stores a new profile.
// POST /api/profiles
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile physician.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if err := profile.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.Store.SaveProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// GetProfile returns one profile.
// GET /api/profiles/{id}
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile replaces a stored profile.
// PUT /api/profiles/{id}
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Store.GetProfile(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	var profile physician.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	profile.ID = id

	if err := profile.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.Store.SaveProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// DeleteProfile removes a stored profile.
// DELETE /api/profiles/{id}
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteProfile(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CalculateProfile runs the engine over a stored profile. The result is
// returned, never stored.
// POST /api/profiles/{id}/calculate
func (h *Handler) CalculateProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadProfile(w, r)
	if !ok {
		return
	}

	result, err := profile.Calculate()
	if err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResultDTO(result))
}

func (h *Handler) loadProfile(w http.ResponseWriter, r *http.Request) (*physician.Profile, bool) {
	id := chi.URLParam(r, "id")
	profile, err := h.Store.GetProfile(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return nil, false
	}
	return profile, true
}

// =============================================================================
// EXAMPLE ENDPOINTS
// =============================================================================

// ListExamples returns the example physician presets.
// GET /api/examples
func (h *Handler) ListExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, exampleList())
}

// CalculateExample runs the engine over an example preset.
// POST /api/examples/{id}/calculate
func (h *Handler) CalculateExample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	profile, ok := exampleProfile(id)
	if !ok {
		writeError(w, http.StatusNotFound, "example not found", nil)
		return
	}

	result, err := profile.Calculate()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "example failed to calculate", err)
		return
	}
	writeJSON(w, http.StatusOK, toResultDTO(result))
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeValidationError maps validator failures to 422 and everything
// else (bad dates, mostly) to 400.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fe.Field()+" failed "+fe.Tag())
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Code:    "validation",
			Details: details,
		})
		return
	}
	writeError(w, http.StatusBadRequest, "invalid input", err)
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found", nil)
		return
	}
	writeError(w, http.StatusInternalServerError, "storage error", err)
}
