package importer

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"aleppo/lib/bookmarklet"
)

// RegisterRoutes mounts the import API on mux. The caller is expected
// to sit this behind its own authentication; handlers trust the
// X-User-Key header as the user's identity.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/import", s.handleImportURL)
	mux.HandleFunc("POST /api/import/bookmarklet", s.handleImportBookmarklet)
	mux.HandleFunc("GET /api/imports", s.handleListImports)
	mux.HandleFunc("GET /api/imports/{id}", s.handleGetImport)
	mux.HandleFunc("GET /api/import/check-duplicate", s.handleCheckDuplicate)
	mux.HandleFunc("GET /api/bookmarklet", s.handleBookmarklet)
}

func userKey(r *http.Request) string {
	return r.Header.Get("X-User-Key")
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to encode response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJson(w, status, map[string]string{"error": message})
}

func (s *Service) handleImportURL(w http.ResponseWriter, r *http.Request) {
	user := userKey(r)
	if user == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Url string `json:"url"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.Url == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := s.ImportURL(r.Context(), user, body.Url)
	if err != nil {
		slog.ErrorContext(r.Context(), "import url", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJson(w, http.StatusOK, result)
}

func (s *Service) handleImportBookmarklet(w http.ResponseWriter, r *http.Request) {
	user := userKey(r)
	if user == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload bookmarklet.Payload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := s.ImportPayload(r.Context(), user, payload)
	if err != nil {
		slog.ErrorContext(r.Context(), "import bookmarklet payload", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJson(w, http.StatusOK, result)
}

func (s *Service) handleListImports(w http.ResponseWriter, r *http.Request) {
	user := userKey(r)
	if user == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := s.ListImports(r.Context(), user)
	if err != nil {
		slog.ErrorContext(r.Context(), "list imports", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJson(w, http.StatusOK, records)
}

func (s *Service) handleGetImport(w http.ResponseWriter, r *http.Request) {
	user := userKey(r)
	if user == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	record, err := s.GetImport(r.Context(), user, r.PathValue("id"))
	if err == sql.ErrNoRows {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "get import", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJson(w, http.StatusOK, record)
}

func (s *Service) handleCheckDuplicate(w http.ResponseWriter, r *http.Request) {
	user := userKey(r)
	if user == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	match, err := s.CheckDuplicate(
		r.Context(), user,
		r.URL.Query().Get("url"),
		r.URL.Query().Get("title"),
	)
	if err != nil {
		slog.ErrorContext(r.Context(), "check duplicate", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJson(w, http.StatusOK, map[string]any{
		"duplicate": match != nil,
		"match":     match,
	})
}

func (s *Service) handleBookmarklet(w http.ResponseWriter, r *http.Request) {
	link, err := s.Bookmarklet()
	if err != nil {
		slog.ErrorContext(r.Context(), "build bookmarklet", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJson(w, http.StatusOK, map[string]string{"bookmarklet": link})
}
