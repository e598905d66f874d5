package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

func TestResourceController_ListResources(t *testing.T) {
	svc := &fakeResourceService{
		resources: []*domain.Resource{{ID: "r1", Title: "Natural Language Processing with Python", Tags: []string{"NLP", "Python"}}},
		total:     25,
	}
	c := NewResourceController(testLogger, svc, testErrors)

	rr := httptest.NewRecorder()
	c.ListResources(rr, httptest.NewRequest(http.MethodGet, "/api/resources?search=NLP&page=2&limit=12", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[ResourceListResponse](t, rr)
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, Limit: 12, Total: 25, Pages: 3}, body.Pagination)
	assert.Equal(t, "NLP", svc.lastQuery.Search)
}

func TestResourceController_ListResources_Empty(t *testing.T) {
	c := NewResourceController(testLogger, &fakeResourceService{resources: []*domain.Resource{}}, testErrors)

	rr := httptest.NewRecorder()
	c.ListResources(rr, httptest.NewRequest(http.MethodGet, "/api/resources", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[],"pagination":{"page":1,"limit":12,"total":0,"pages":0}}`, rr.Body.String())
}

func TestResourceController_FeaturedResources(t *testing.T) {
	svc := &fakeResourceService{featured: []*domain.Resource{{ID: "r1", Featured: true}}}
	c := NewResourceController(testLogger, svc, testErrors)

	rr := httptest.NewRecorder()
	c.FeaturedResources(rr, httptest.NewRequest(http.MethodGet, "/api/resources/featured", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[FeaturedResourcesResponse](t, rr)
	assert.Equal(t, 1, body.Count)
}

func TestResourceController_GetResource_CountsViews(t *testing.T) {
	svc := &fakeResourceService{views: map[string]int{"nlp-with-python": 10}}
	c := NewResourceController(testLogger, svc, testErrors)

	get := func(slug string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/resources/"+slug, nil)
		req.SetPathValue("slug", slug)
		rr := httptest.NewRecorder()
		c.GetResource(rr, req)
		return rr
	}

	for want := 11; want <= 13; want++ {
		rr := get("nlp-with-python")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, want, decodeBody[ResourceResponse](t, rr).Data.Views)
	}

	rr := get("missing")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Resource not found", decodeBody[helpers.ErrorResponse](t, rr).Error)
}

func TestResourceController_CreateResource(t *testing.T) {
	svc := &fakeResourceService{}
	c := NewResourceController(testLogger, svc, testErrors)

	body := `{"title":"Deep Learning","slug":"deep-learning","description":"The book","type":"book","category":"Deep Learning","tags":["DL"]}`
	rr := httptest.NewRecorder()
	c.CreateResource(rr, httptest.NewRequest(http.MethodPost, "/api/resources", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "res-1", decodeBody[ResourceResponse](t, rr).Data.ID)
	assert.True(t, svc.lastCreate.Published)
	assert.False(t, svc.lastCreate.Featured)

	svc.err = &domain.ConflictError{Entity: "Resource", Field: "slug", Value: "deep-learning"}
	rr = httptest.NewRecorder()
	c.CreateResource(rr, httptest.NewRequest(http.MethodPost, "/api/resources", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rr.Code)
}
