// Copyright (c) 2026 Kinodex. All rights reserved.

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/kinodex/kinodex/internal/platform/request"
	"github.com/kinodex/kinodex/internal/platform/respond"
	"github.com/kinodex/kinodex/pkg/pagination"
)

// Handler implements the catalog HTTP endpoints.
//
// Response shapes here are a fixed public contract: the listing is a raw
// array, search uses the `{data, pagination}` envelope, and the detail view
// is a flat object.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog endpoints.
//
// # Endpoints
//   - GET /         : Full unfiltered listing.
//   - GET /search   : Filtered, paginated search.
//   - GET /item/:id : Denormalized movie detail.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTitles)
	router.Get("/search", handler.searchTitles)
	router.Get("/item/{imdbID}", handler.getDetail)

	return router
}

// listTitles handles GET /catalog.
func (handler *Handler) listTitles(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.service.ListTitles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if movies == nil {
		movies = []*Movie{}
	}
	respond.JSON(writer, http.StatusOK, movies)
}

// searchTitles handles GET /catalog/search.
//
// Query parameters: title?, year?, page?=1, perPage?=100. Pagination wire
// values are coerced to their defaults here, before any arithmetic.
func (handler *Handler) searchTitles(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	query := request.URL.Query()
	filter := Filter{
		Title: query.Get("title"),
		Year:  query.Get("year"),
	}

	rows, total, err := handler.service.Search(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if rows == nil {
		rows = []SearchRow{}
	}
	respond.Paginated(writer, rows, pagination.NewMeta(params, total, len(rows)))
}

// getDetail handles GET /catalog/item/{imdbID}.
//
// This endpoint accepts no query parameters at all; any present parameter is
// rejected by name before the service is invoked.
func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.NoQueryParams(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "imdbID")

	detail, err := handler.service.Detail(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, detail)
}
