package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"vocaquiz/internal/service"
	"vocaquiz/internal/validation"
)

// VocabHandler serves the vocabulary management endpoints: CSV upload,
// category listing, progress statistics and backup export.
type VocabHandler struct {
	vocab         *service.VocabService
	imports       *service.ImportService
	matches       *service.MatchService
	backups       *service.BackupService
	uploadMaxSize int64
}

// NewVocabHandler creates a new vocabulary handler.
func NewVocabHandler(vocab *service.VocabService, imports *service.ImportService,
	matches *service.MatchService, backups *service.BackupService, uploadMaxSize int64) *VocabHandler {
	return &VocabHandler{
		vocab:         vocab,
		imports:       imports,
		matches:       matches,
		backups:       backups,
		uploadMaxSize: uploadMaxSize,
	}
}

// Upload handles POST /api/vocabulary/upload: a multipart CSV file plus an
// optional category name.
func (h *VocabHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize)
	if err := r.ParseMultipartForm(h.uploadMaxSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Upload too large or malformed", "parsing upload form", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing 'file' field", "reading upload file", err)
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" {
		respondWithError(w, http.StatusBadRequest, "Only .csv files are supported", "", nil)
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		// the file name doubles as a category when none is given
		category = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}
	if err := validation.ValidateCategory(category); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	imported, err := h.imports.ImportCSV(file, category)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Could not import file: "+err.Error(), "importing CSV", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"imported": imported,
		"category": category,
	})
}

// Categories handles GET /api/categories.
func (h *VocabHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.vocab.ListCategories()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Could not load categories", "listing categories", err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// Stats handles GET /api/stats: aggregate accuracy plus the most-missed words.
func (h *VocabHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.matches.Stats()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Could not load stats", "loading stats", err)
		return
	}

	failed, err := h.matches.FailedWords(10)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Could not load stats", "loading failed words", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats":        stats,
		"failed_words": failed,
	})
}

// Export handles GET /api/backup/export, streaming the full database as JSON.
func (h *VocabHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=vocaquiz_backup.json")

	if err := h.backups.ExportToWriter(w); err != nil {
		// headers are already out; log and abort the stream
		respondWithError(w, http.StatusInternalServerError, "Export failed", "exporting backup", err)
	}
}
