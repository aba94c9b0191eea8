// notesapi/routes/notes.go
package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"notesapi/notesapi/controllers"
	"notesapi/notesapi/sources/psql/dao"
	"notesapi/notesapi/types"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func NotesRoutes(ctrl *controllers.NotesController) chi.Router {
	r := chi.NewRouter()

	// List notes
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 10)
		notes, err := ctrl.ListNotes(r.Context(), page, limit)
		if err != nil {
			return nil, http.StatusInternalServerError, errors.New("Something bad happened while fetching all note items")
		}
		return map[string]any{
			"status":  "success",
			"results": len(notes),
			"notes":   notes,
		}, http.StatusOK, nil
	}))

	// Create note
	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CreateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		if req.Title == "" || req.Content == "" {
			return nil, http.StatusBadRequest, errors.New("title and content are required")
		}
		category := ""
		if req.Category != nil {
			category = *req.Category
		}
		note, err := ctrl.CreateNote(r.Context(), req.Title, req.Content, category)
		if err != nil {
			if errors.Is(err, dao.ErrDuplicateTitle) {
				return nil, http.StatusConflict, errors.New("Note with that title already exists")
			}
			return nil, http.StatusInternalServerError, err
		}
		return map[string]any{
			"status": "success",
			"data":   map[string]any{"note": note},
		}, http.StatusCreated, nil
	}))

	// Get single note
	r.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		note, err := ctrl.GetNoteByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, dao.ErrNoteNotFound) {
				return nil, http.StatusNotFound, fmt.Errorf("Note with ID: %s not found", id)
			}
			return nil, http.StatusInternalServerError, err
		}
		return map[string]any{
			"status": "success",
			"data":   map[string]any{"note": note},
		}, http.StatusOK, nil
	}))

	// Patch note (partial field merge)
	r.Patch("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		var req types.UpdateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		note, err := ctrl.UpdateNote(r.Context(), id, req)
		if err != nil {
			switch {
			case errors.Is(err, dao.ErrNoteNotFound):
				return nil, http.StatusNotFound, fmt.Errorf("Note with ID: %s not found", id)
			case errors.Is(err, dao.ErrDuplicateTitle):
				return nil, http.StatusConflict, errors.New("Note with that title already exists")
			default:
				return nil, http.StatusInternalServerError, err
			}
		}
		return map[string]any{
			"status": "success",
			"data":   map[string]any{"note": note},
		}, http.StatusOK, nil
	}))

	// Delete note
	r.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		if err := ctrl.DeleteNote(r.Context(), id); err != nil {
			if errors.Is(err, dao.ErrNoteNotFound) {
				return nil, http.StatusNotFound, fmt.Errorf("Note with ID: %s not found", id)
			}
			return nil, http.StatusInternalServerError, err
		}
		return nil, http.StatusNoContent, nil
	}))

	return r
}
