package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msoren/trip-atlas/internal/domain"
)

// ListRecords handles GET /storage/collection?collection=<name>.
// It returns every record in the collection wrapped in the standard
// envelope: {"status":"ok","data":[...]}. An empty collection yields an
// empty data array, never null.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	collection := r.URL.Query().Get("collection")

	records, err := s.records.ListByCollection(r.Context(), collection)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeStatus(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusBody{Status: "ok", Data: records})
}

// UpsertRecord handles POST /storage.
// The body is a flat JSON object carrying "collection", "key", and the
// record fields. The addressing fields are required; everything else is
// stored opaquely and replaces any previous version of the record.
func (s *Server) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	var body domain.Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeStatus(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	collection, _ := body["collection"].(string)
	if err := s.records.Upsert(r.Context(), collection, body); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeStatus(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		serverError(w, r, err)
		return
	}

	writeStatus(w, http.StatusOK, "ok")
}
