// Copyright (c) 2026 Kinodex. All rights reserved.

package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinodex/kinodex/internal/catalog"
	"github.com/kinodex/kinodex/pkg/pointer"
)

func newTestServer(titles *fakeTitleRepository, names *fakeNameRepository) *httptest.Server {
	handler := catalog.NewHandler(newService(titles, names))
	return httptest.NewServer(handler.Routes())
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	return body
}

/*
TestHandler_Search_Envelope verifies the wire shape of a search response:
a data array plus a pagination block with the full metadata key set.
*/
func TestHandler_Search_Envelope(t *testing.T) {
	titles := &fakeTitleRepository{
		searchRows: []catalog.SearchRow{
			{Title: "Heat", Year: pointer.To(1995), ImdbID: "tt0113277", Type: "movie"},
			{Title: "Heat", Year: pointer.To(1986), ImdbID: "tt0091209", Type: "movie"},
		},
		searchTotal: 12,
	}
	server := newTestServer(titles, &fakeNameRepository{})
	defer server.Close()

	response, err := http.Get(server.URL + "/search?title=heat&page=2&perPage=2")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)
	body := decodeBody(t, response)

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Heat", first["Title"])
	assert.Equal(t, float64(1995), first["Year"])
	assert.Equal(t, "tt0113277", first["imdbID"])
	assert.Equal(t, "movie", first["Type"])

	meta, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(12), meta["total"])
	assert.Equal(t, float64(6), meta["lastPage"])
	assert.Equal(t, float64(2), meta["perPage"])
	assert.Equal(t, float64(2), meta["currentPage"])
	assert.Equal(t, float64(3), meta["from"])
	assert.Equal(t, float64(4), meta["to"])

	assert.Equal(t, 2, titles.lastLimit)
	assert.Equal(t, 2, titles.lastOffset)
}

/*
TestHandler_Search_CoercesPagination checks that malformed pagination wire
values fall back to the defaults before any arithmetic happens.
*/
func TestHandler_Search_CoercesPagination(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantLimit   int
		wantOffset  int
		wantCurrent float64
	}{
		{"defaults", "", 100, 0, 1},
		{"non_numeric", "?page=abc&perPage=xyz", 100, 0, 1},
		{"zero_page", "?page=0&perPage=0", 100, 0, 1},
		{"negative", "?page=-2&perPage=-5", 100, 0, 1},
		{"explicit_window", "?page=4&perPage=25", 25, 75, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titles := &fakeTitleRepository{}
			server := newTestServer(titles, &fakeNameRepository{})
			defer server.Close()

			response, err := http.Get(server.URL + "/search" + tt.query)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, http.StatusOK, response.StatusCode)
			assert.Equal(t, tt.wantLimit, titles.lastLimit)
			assert.Equal(t, tt.wantOffset, titles.lastOffset)

			meta := decodeBody(t, response)["pagination"].(map[string]any)
			assert.Equal(t, tt.wantCurrent, meta["currentPage"])
		})
	}
}

/*
TestHandler_Search_EmptyPage verifies the envelope when the filter matches
nothing: an empty (not null) data array and a zeroed last page.
*/
func TestHandler_Search_EmptyPage(t *testing.T) {
	server := newTestServer(&fakeTitleRepository{}, &fakeNameRepository{})
	defer server.Close()

	response, err := http.Get(server.URL + "/search?title=zzzz")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)
	body := decodeBody(t, response)

	data, ok := body["data"].([]any)
	require.True(t, ok, "data must be an array even when empty")
	assert.Empty(t, data)

	meta := body["pagination"].(map[string]any)
	assert.Equal(t, float64(0), meta["total"])
	assert.Equal(t, float64(0), meta["lastPage"])
	assert.Equal(t, float64(1), meta["from"])
	assert.Equal(t, float64(0), meta["to"])
}

/*
TestHandler_Search_InvalidYear checks the error envelope for a malformed
year filter.
*/
func TestHandler_Search_InvalidYear(t *testing.T) {
	titles := &fakeTitleRepository{}
	server := newTestServer(titles, &fakeNameRepository{})
	defer server.Close()

	response, err := http.Get(server.URL + "/search?year=99")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	body := decodeBody(t, response)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.False(t, titles.searchCalled)
}

/*
TestHandler_ListTitles verifies the unfiltered listing is a raw JSON array,
including the empty-catalog case.
*/
func TestHandler_ListTitles(t *testing.T) {
	t.Run("empty_catalog", func(t *testing.T) {
		server := newTestServer(&fakeTitleRepository{}, &fakeNameRepository{})
		defer server.Close()

		response, err := http.Get(server.URL + "/")
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusOK, response.StatusCode)

		var movies []json.RawMessage
		require.NoError(t, json.NewDecoder(response.Body).Decode(&movies))
		assert.NotNil(t, movies)
		assert.Empty(t, movies)
	})

	t.Run("populated_catalog", func(t *testing.T) {
		titles := &fakeTitleRepository{
			movies: map[string]*catalog.Movie{
				"tt0113277": {TConst: "tt0113277", TitleType: "movie", PrimaryTitle: "Heat"},
			},
		}
		server := newTestServer(titles, &fakeNameRepository{})
		defer server.Close()

		response, err := http.Get(server.URL + "/")
		require.NoError(t, err)
		defer response.Body.Close()

		var movies []map[string]any
		require.NoError(t, json.NewDecoder(response.Body).Decode(&movies))
		require.Len(t, movies, 1)
		assert.Equal(t, "tt0113277", movies[0]["tconst"])
		assert.Equal(t, "Heat", movies[0]["primaryTitle"])
	})
}

/*
TestHandler_Detail_RejectsQueryParams verifies that the detail endpoint
rejects any query parameter and names the offenders in the error message.
*/
func TestHandler_Detail_RejectsQueryParams(t *testing.T) {
	server := newTestServer(&fakeTitleRepository{}, &fakeNameRepository{})
	defer server.Close()

	response, err := http.Get(server.URL + "/item/tt0113277?foo=1&bar=2")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	body := decodeBody(t, response)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Equal(t, "Invalid query parameters: bar, foo. Query parameters are not permitted.", body["error"])
}

/*
TestHandler_Detail_Shape checks the flat detail object on the wire, with its
OMDb-style capitalized keys and rating entries.
*/
func TestHandler_Detail_Shape(t *testing.T) {
	titles := &fakeTitleRepository{
		movies: map[string]*catalog.Movie{
			"tt0113277": {
				TConst:         "tt0113277",
				PrimaryTitle:   "Heat",
				StartYear:      pointer.To(1995),
				RuntimeMinutes: pointer.To(170),
				Genres:         "Action,Crime,Drama",
			},
		},
		ratings: map[string]*catalog.Rating{"tt0113277": {AverageRating: 8.3}},
	}
	server := newTestServer(titles, &fakeNameRepository{})
	defer server.Close()

	response, err := http.Get(server.URL + "/item/tt0113277")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)
	body := decodeBody(t, response)

	assert.Equal(t, "Heat", body["Title"])
	assert.Equal(t, float64(1995), body["Year"])
	assert.Equal(t, "170 min", body["Runtime"])
	assert.Equal(t, "Action,Crime,Drama", body["Genre"])

	ratings, ok := body["Ratings"].([]any)
	require.True(t, ok)
	require.Len(t, ratings, 1)
	entry := ratings[0].(map[string]any)
	assert.Equal(t, "Internet Movie Database", entry["Source"])
	assert.Equal(t, "8.3/10", entry["Value"])
}

/*
TestHandler_Detail_NotFound checks the 404 envelope for an unknown id.
*/
func TestHandler_Detail_NotFound(t *testing.T) {
	server := newTestServer(&fakeTitleRepository{}, &fakeNameRepository{})
	defer server.Close()

	response, err := http.Get(server.URL + "/item/tt9999999")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	body := decodeBody(t, response)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.True(t, strings.Contains(body["error"].(string), "tt9999999"))
}
