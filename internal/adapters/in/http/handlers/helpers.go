package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-playground/validator/v10"

	productdom "alwarmart/internal/domain/product"
)

// validate checks JSON request DTOs; domain rules live in the domain
// packages, this only guards shape.
var validate = validator.New()

// maxMultipartMemory bounds in-memory multipart parsing; larger parts spill
// to temp files.
const maxMultipartMemory = 32 << 20

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeValidationError reports the collected messages of a failed product
// submit as a 422 with the full list.
func writeValidationError(w http.ResponseWriter, verr *productdom.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"errors": verr.Messages,
	})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// readImageFiles loads every uploaded part under the field name into
// memory, preserving selection order.
func readImageFiles(r *http.Request, field string) ([]productdom.ImageFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var files []productdom.ImageFile
	for _, fh := range r.MultipartForm.File[field] {
		data, err := readPart(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, productdom.ImageFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

// readOneImageFile returns the first uploaded part under the field name, or
// nil when the field is absent.
func readOneImageFile(r *http.Request, field string) (*productdom.ImageFile, error) {
	files, err := readImageFiles(r, field)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return &files[0], nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// asValidationError unwraps a product submit failure.
func asValidationError(err error) (*productdom.ValidationError, bool) {
	var verr *productdom.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
