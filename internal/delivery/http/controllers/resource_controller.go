package controllers

import (
	"log/slog"
	"net/http"

	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

// ResourceRequest is the request body for POST /api/resources.
type ResourceRequest struct {
	Title       string   `json:"title" example:"Natural Language Processing with Python"`
	Slug        string   `json:"slug" example:"nlp-with-python"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Type        string   `json:"type" enums:"article,tutorial,video,book,course,dataset,tool,paper,other"`
	Category    string   `json:"category" enums:"AI,Machine Learning,Deep Learning,NLP,Computer Vision,Robotics,Data Science,Other"`
	Difficulty  string   `json:"difficulty" enums:"Beginner,Intermediate,Advanced"`
	Image       string   `json:"image"`
	URL         string   `json:"url"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	// Published defaults to true.
	Published *bool `json:"published"`
}

func (req ResourceRequest) toDomain() *domain.Resource {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	return &domain.Resource{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Type:        req.Type,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Image:       req.Image,
		URL:         req.URL,
		Author:      req.Author,
		Tags:        req.Tags,
		Featured:    req.Featured,
		Views:       req.Views,
		Likes:       req.Likes,
		Published:   published,
	}
}

// ResourceListResponse is the paginated response body for GET /api/resources.
type ResourceListResponse struct {
	Success    bool                   `json:"success" example:"true"`
	Count      int                    `json:"count"`
	Data       []*domain.Resource     `json:"data"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// FeaturedResourcesResponse is the response body for GET /api/resources/featured.
type FeaturedResourcesResponse struct {
	Success bool               `json:"success" example:"true"`
	Count   int                `json:"count"`
	Data    []*domain.Resource `json:"data"`
}

// ResourceResponse wraps a single resource.
type ResourceResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    *domain.Resource `json:"data"`
}

type ResourceController struct {
	Logger  *slog.Logger
	Service domain.ResourceService
	Errors  helpers.ErrorWriter
}

func NewResourceController(logger *slog.Logger, svc domain.ResourceService, errs helpers.ErrorWriter) *ResourceController {
	return &ResourceController{
		Logger:  logger,
		Service: svc,
		Errors:  errs,
	}
}

// ListResources godoc
// @Summary List published resources
// @Description Featured first, then newest. search matches title, description or any tag, case-insensitively.
// @Tags resources
// @Produce json
// @Param type query string false "Resource type"
// @Param category query string false "Resource category"
// @Param difficulty query string false "Beginner, Intermediate or Advanced"
// @Param featured query string false "\"true\" for featured only, any other value for non-featured"
// @Param search query string false "Text to look for"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Items per page (1-100)" default(12)
// @Success 200 {object} controllers.ResourceListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/resources [get]
func (c *ResourceController) ListResources(w http.ResponseWriter, r *http.Request) {
	q := helpers.ResourceQuery(r)
	resources, total, err := c.Service.List(r.Context(), q)
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ResourceListResponse{
		Success:    true,
		Count:      len(resources),
		Data:       resources,
		Pagination: helpers.NewPaginationMeta(q.Pagination, total),
	})
}

// FeaturedResources godoc
// @Summary List featured resources
// @Description Up to six published featured resources, newest first.
// @Tags resources
// @Produce json
// @Success 200 {object} controllers.FeaturedResourcesResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/resources/featured [get]
func (c *ResourceController) FeaturedResources(w http.ResponseWriter, r *http.Request) {
	resources, err := c.Service.Featured(r.Context())
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, FeaturedResourcesResponse{Success: true, Count: len(resources), Data: resources})
}

// GetResource godoc
// @Summary Get a published resource by slug
// @Description Each call counts one view.
// @Tags resources
// @Produce json
// @Param slug path string true "Resource slug"
// @Success 200 {object} controllers.ResourceResponse
// @Failure 404 {object} helpers.ErrorResponse "Resource not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/resources/{slug} [get]
func (c *ResourceController) GetResource(w http.ResponseWriter, r *http.Request) {
	resource, err := c.Service.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ResourceResponse{Success: true, Data: resource})
}

// CreateResource godoc
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource body ResourceRequest true "Resource"
// @Success 201 {object} controllers.ResourceResponse
// @Failure 400 {object} helpers.ErrorResponse "validation failed"
// @Failure 409 {object} helpers.ErrorResponse "slug already in use"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/resources [post]
func (c *ResourceController) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req ResourceRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	resource := req.toDomain()
	if err := c.Service.Create(r.Context(), resource); err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, ResourceResponse{Success: true, Data: resource})
}
