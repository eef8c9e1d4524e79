package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listNotes serves GET /api/notes?userId=<id>. With authentication the
// query parameter may be omitted and defaults to the caller.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := r.URL.Query().Get("userId")
	if caller, ok := utils.GetUserIDFromContext(ctx); ok && userID == "" {
		userID = caller
	}

	notes, err := h.services.NoteService.List(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Str("user_id", userID).Msg("error listing notes")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NotePayloads(notes), http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	note, ok := decodeNote(w, r)
	if !ok {
		return
	}

	created, err := h.services.NoteService.Create(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	h.metrics.noteOperation("create")
	utils.WriteJSON(w, models.NewNotePayload(created), http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := noteIDParam(w, r)
	if !ok {
		return
	}

	note, ok := decodeNote(w, r)
	if !ok {
		return
	}

	updated, err := h.services.NoteService.Update(ctx, id, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Int64("note_id", id).Msg("error updating note")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	h.metrics.noteOperation("update")
	utils.WriteJSON(w, models.NewNotePayload(updated), http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := noteIDParam(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Int64("note_id", id).Msg("error deleting note")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	h.metrics.noteOperation("delete")
	w.WriteHeader(http.StatusNoContent)
}

func noteIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Error().
			Str("func", "noteIDParam").
			Str("id", chi.URLParam(r, "id")).
			Msg(ErrInvalidNoteID.Error())
		utils.WriteError(w, ErrInvalidNoteID.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeNote(w http.ResponseWriter, r *http.Request) (models.Note, bool) {
	log := logger.FromRequest(r)

	var payload models.NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "decodeNote").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return models.Note{}, false
	}

	note, err := payload.ToNote()
	if err != nil {
		log.Err(err).Str("func", "decodeNote").Msg("invalid note timestamps")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return models.Note{}, false
	}
	return note, true
}
