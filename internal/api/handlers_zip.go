package api

import (
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/atlasgrid/user-atlas/internal/api/respond"
	"github.com/atlasgrid/user-atlas/internal/geocode"
)

// ZipHandler exposes the read-only ZIP validation probe.
type ZipHandler struct {
	lookup geocode.Lookup
}

func NewZipHandler(lookup geocode.Lookup) *ZipHandler { return &ZipHandler{lookup: lookup} }

// ValidateZip GET /api/zipcodes/validate/{zipCode}
// Always answers 200; invalidity is encoded in the payload, not the status.
func (h *ZipHandler) ValidateZip(w http.ResponseWriter, r *http.Request) {
	zip := mux.Vars(r)["zipCode"]
	res := h.lookup.Validate(r.Context(), zip)
	respond.WriteJSON(w, http.StatusOK, res)
}
