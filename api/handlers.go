package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vasilii314/kennel/dog"
	"github.com/vasilii314/kennel/store"
)

const maxBodyBytes = 1 << 20

type ErrResponse struct {
	Detail string `json:"detail"`
}

// dogRequest mirrors dog.Dog with pointer fields
// so missing and null fields can be told apart
// from zero values.
type dogRequest struct {
	Name *string   `json:"name"`
	PK   *int      `json:"pk"`
	Kind *dog.Kind `json:"kind"`
}

func (a *Api) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

func (a *Api) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	p := a.Posts.Create()
	a.logger.Info("created post", zap.Int("id", p.ID))
	writeJSON(w, http.StatusOK, p)
}

func (a *Api) ListDogsHandler(w http.ResponseWriter, r *http.Request) {
	var kind *dog.Kind
	if raw := r.URL.Query().Get("kind"); raw != "" {
		k, err := dog.ParseKind(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		kind = &k
	}
	writeJSON(w, http.StatusOK, a.Dogs.List(kind))
}

func (a *Api) CreateDogHandler(w http.ResponseWriter, r *http.Request) {
	d, err := decodeDog(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	created, err := a.Dogs.Create(d)
	if err != nil {
		a.writeStoreError(w, err, d.PK, d.PK)
		return
	}
	a.logger.Info("created dog", zap.Int("pk", created.PK))
	writeJSON(w, http.StatusOK, created)
}

func (a *Api) GetDogHandler(w http.ResponseWriter, r *http.Request) {
	pk, err := pathPK(r)
	if err != nil {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Path pk (%s) is not a valid integer.", chi.URLParam(r, "pk")))
		return
	}
	d, err := a.Dogs.Get(pk)
	if err != nil {
		a.writeStoreError(w, err, pk, pk)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// UpdateDogHandler replaces the whole record at pk with the body.
func (a *Api) UpdateDogHandler(w http.ResponseWriter, r *http.Request) {
	pk, err := pathPK(r)
	if err != nil {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Path pk (%s) is not a valid integer.", chi.URLParam(r, "pk")))
		return
	}
	d, err := decodeDog(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	replaced, err := a.Dogs.Replace(pk, d)
	if err != nil {
		a.writeStoreError(w, err, pk, d.PK)
		return
	}
	a.logger.Info("replaced dog", zap.Int("pk", replaced.PK))
	writeJSON(w, http.StatusOK, replaced)
}

// writeStoreError maps a store error to its status and detail.
// pk is the key the request addressed, bodyPK the one in the body.
func (a *Api) writeStoreError(w http.ResponseWriter, err error, pk, bodyPK int) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Dog with pk %d not found.", pk))
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, fmt.Sprintf("Dog with pk %d already exists.", pk))
	case errors.Is(err, store.ErrMismatch):
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Path pk (%d) does not match pk in request body (%d).", pk, bodyPK))
	default:
		a.logger.Error("store error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func pathPK(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "pk")
	pk, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid pk %q: %w", raw, err)
	}
	return pk, nil
}

// decodeDog reads exactly one JSON object from the body.
// Anything but whitespace after it is rejected.
func decodeDog(r *http.Request) (dog.Dog, error) {
	var req dogRequest
	d := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := d.Decode(&req)
	if errors.Is(err, io.EOF) {
		return dog.Dog{}, errors.New("body is required")
	}
	if err != nil {
		return dog.Dog{}, fmt.Errorf("error unmarshalling body: %w", err)
	}
	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		return dog.Dog{}, errors.New("unexpected data after JSON object")
	}
	var missing []string
	if req.Name == nil {
		missing = append(missing, "name")
	}
	if req.PK == nil {
		missing = append(missing, "pk")
	}
	if req.Kind == nil {
		missing = append(missing, "kind")
	}
	if len(missing) > 0 {
		return dog.Dog{}, fmt.Errorf("missing required fields: %v", missing)
	}
	return dog.Dog{Name: *req.Name, PK: *req.PK, Kind: *req.Kind}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrResponse{Detail: detail})
}
