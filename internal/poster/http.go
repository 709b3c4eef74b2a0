// Copyright (c) 2026 Kinodex. All rights reserved.

package poster

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinodex/kinodex/internal/platform/apperr"
	"github.com/kinodex/kinodex/internal/platform/middleware"
	requestutil "github.com/kinodex/kinodex/internal/platform/request"
	"github.com/kinodex/kinodex/internal/platform/respond"
)

// Handler implements the poster HTTP endpoints.
//
// Both endpoints require an authenticated bearer token and accept no query
// parameters at all.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the poster endpoints.
//
// # Endpoints
//   - GET  /{imdbID}     : Streams the stored poster image.
//   - POST /add/{imdbID} : Uploads (or replaces) a poster image.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Get("/{imdbID}", handler.getPoster)
	router.Post("/add/{imdbID}", handler.addPoster)

	return router
}

// getPoster handles GET /posters/{imdbID}.
func (handler *Handler) getPoster(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.NoQueryParams(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	imdbID := requestutil.Param(request, "imdbID")

	path, err := handler.service.Resolve(request.Context(), imdbID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.ServeFile(writer, request, path)
}

// addPoster handles POST /posters/add/{imdbID}.
//
// Expects a multipart form with the image under the "poster" field.
func (handler *Handler) addPoster(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.NoQueryParams(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	imdbID := requestutil.Param(request, "imdbID")

	request.Body = http.MaxBytesReader(writer, request.Body, MaxUploadBytes)
	file, _, err := request.FormFile(FormField)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Poster file is required under the 'poster' field."))
		return
	}
	defer file.Close()

	record, err := handler.service.Upload(request.Context(), imdbID, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}
