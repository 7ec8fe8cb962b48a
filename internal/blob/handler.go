package blob

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/pkg"
)

const maxUploadSize = 15 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=blob_test

type blobStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

type Handler struct {
	store blobStore
}

func NewHandler(store blobStore) *Handler {
	return &Handler{
		store: store,
	}
}

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		http.Error(w, "missing content type", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Errorf("read upload body: %s", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	url, err := h.store.Upload(r.Context(), data, contentType)
	if err != nil {
		if errors.Is(err, ErrEmptyData) {
			http.Error(w, "empty body", http.StatusBadRequest)
			return
		}
		log.Errorf("upload blob: %s", err)
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, UploadResponse{URL: url}, http.StatusCreated)
}

func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	data, err := h.store.Download(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, ErrBadKey):
			http.Error(w, "invalid key", http.StatusBadRequest)
		default:
			log.Errorf("download blob %s: %s", key, err)
			http.Error(w, "download failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteResponseBytesOK(w, http.DetectContentType(data), data)
}
