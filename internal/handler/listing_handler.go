package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"itda/internal/auth"
	apperrors "itda/internal/errors"
	"itda/internal/model"
	"itda/internal/service"
)

// ListingHandler serves the /properties endpoints.
type ListingHandler struct {
	svc service.ListingService
}

// NewListingHandler creates a listing handler.
func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

// ListingRequest is the body of a create request. Bathrooms defaults to 1.
// Price and Rooms are pointers so that an absent value is reported rather
// than stored as zero.
type ListingRequest struct {
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description" validate:"required"`
	PropertyType model.PropertyType  `json:"propertyType" validate:"required,oneof=아파트 빌라 단독주택 오피스텔 상가 사무실 기타"`
	DealType     model.DealType      `json:"dealType" validate:"required,oneof=매매 전세 월세"`
	Price        *int64              `json:"price" validate:"required,gte=0"`
	Deposit      *int64              `json:"deposit" validate:"omitempty,gte=0"`
	MonthlyRent  *int64              `json:"monthlyRent" validate:"omitempty,gte=0"`
	Area         float64             `json:"area" validate:"gt=0"`
	Rooms        *int                `json:"rooms" validate:"required,gte=0"`
	Bathrooms    *int                `json:"bathrooms" validate:"omitempty,gte=0"`
	Floor        *int                `json:"floor"`
	TotalFloors  *int                `json:"totalFloors" validate:"omitempty,gte=0"`
	Address      model.Address       `json:"address"`
	Coordinates  model.Coordinates   `json:"coordinates"`
	Images       []string            `json:"images"`
	Features     []string            `json:"features"`
	Status       model.ListingStatus `json:"status" validate:"omitempty,oneof=판매중 계약완료 판매완료"`
}

func (r *ListingRequest) listing() *model.Listing {
	bathrooms := 1
	if r.Bathrooms != nil {
		bathrooms = *r.Bathrooms
	}
	var price int64
	if r.Price != nil {
		price = *r.Price
	}
	var rooms int
	if r.Rooms != nil {
		rooms = *r.Rooms
	}
	return &model.Listing{
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		PropertyType: r.PropertyType,
		DealType:     r.DealType,
		Price:        price,
		Deposit:      r.Deposit,
		MonthlyRent:  r.MonthlyRent,
		Area:         r.Area,
		Rooms:        rooms,
		Bathrooms:    bathrooms,
		Floor:        r.Floor,
		TotalFloors:  r.TotalFloors,
		Address:      r.Address,
		Coordinates:  r.Coordinates,
		Images:       datatypes.JSONSlice[string](r.Images),
		Features:     datatypes.JSONSlice[string](r.Features),
		Status:       r.Status,
	}
}

// BrokerSummary is the public view of a listing's broker.
type BrokerSummary struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Phone      string               `json:"phone"`
	BrokerInfo *model.BrokerProfile `json:"brokerInfo,omitempty"`
}

// ListingResponse is a listing with its broker reduced to a summary.
type ListingResponse struct {
	*model.Listing
	Broker *BrokerSummary `json:"broker,omitempty"`
}

func newListingResponse(l *model.Listing) ListingResponse {
	resp := ListingResponse{Listing: l}
	if l.Broker != nil {
		resp.Broker = &BrokerSummary{
			ID:         l.Broker.ID,
			Name:       l.Broker.Name,
			Phone:      l.Broker.Phone,
			BrokerInfo: l.Broker.BrokerInfo,
		}
	}
	return resp
}

func newListingResponses(listings []model.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, newListingResponse(&listings[i]))
	}
	return out
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Properties  []ListingResponse `json:"properties"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int64             `json:"total"`
}

// ListingMessageResponse wraps a listing with a status message.
type ListingMessageResponse struct {
	Message  string          `json:"message"`
	Property ListingResponse `json:"property"`
}

// MessageResponse carries only a status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Search godoc
// @Summary Search active listings
// @Tags properties
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param propertyType query string false "Property type"
// @Param dealType query string false "Deal type"
// @Param city query string false "City"
// @Param district query string false "District"
// @Param rooms query int false "Exact room count"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param minArea query number false "Minimum area"
// @Param maxArea query number false "Maximum area"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *ListingHandler) Search(c echo.Context) error {
	filter, page, err := parseSearch(c)
	if err != nil {
		return fail(c, err)
	}

	result, err := h.svc.Search(c.Request().Context(), filter, page)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Properties:  newListingResponses(result.Listings),
		TotalPages:  result.TotalPages,
		CurrentPage: result.Page,
		Total:       result.Total,
	})
}

// Get godoc
// @Summary Get a listing
// @Description Returns the listing and counts one view.
// @Tags properties
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} ListingResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, newListingResponse(listing))
}

// Create godoc
// @Summary Create a listing
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ListingRequest true "Listing"
// @Success 201 {object} ListingMessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /properties [post]
func (h *ListingHandler) Create(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()

	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		if _, authErr := h.svc.AuthorizeCreate(ctx, identity); authErr != nil {
			return fail(c, authErr)
		}
		return invalidBody(err)
	}
	if err := c.Validate(&req); err != nil {
		if _, authErr := h.svc.AuthorizeCreate(ctx, identity); authErr != nil {
			return fail(c, authErr)
		}
		return fail(c, err)
	}

	listing, err := h.svc.Create(ctx, identity, req.listing())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, ListingMessageResponse{
		Message:  "listing created",
		Property: newListingResponse(listing),
	})
}

// Update godoc
// @Summary Update a listing
// @Description Fields present in the body overwrite the stored values; absent fields are kept.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body model.ListingPatch true "Fields to change"
// @Success 200 {object} ListingMessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()
	id := c.Param("id")

	var patch model.ListingPatch
	if err := c.Bind(&patch); err != nil {
		if ownErr := h.svc.CheckOwnership(ctx, identity, id); ownErr != nil {
			return fail(c, ownErr)
		}
		return invalidBody(err)
	}

	listing, err := h.svc.Update(ctx, identity, id, &patch)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, ListingMessageResponse{
		Message:  "listing updated",
		Property: newListingResponse(listing),
	})
}

// Delete godoc
// @Summary Delete a listing
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "listing deleted"})
}

// ListMine godoc
// @Summary List the caller's listings
// @Description Every listing owned by the caller regardless of status, newest first.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ListingResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /properties/my/listings [get]
func (h *ListingHandler) ListMine(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return fail(c, err)
	}
	listings, err := h.svc.ListMine(c.Request().Context(), identity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, newListingResponses(listings))
}

// queryParser collects every malformed numeric query parameter.
type queryParser struct {
	c    echo.Context
	errs []apperrors.FieldError
}

func (p *queryParser) invalid(name, msg string) {
	p.errs = append(p.errs, apperrors.FieldError{Field: name, Message: msg})
}

func (p *queryParser) intParam(name string) *int {
	raw := strings.TrimSpace(p.c.QueryParam(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.invalid(name, "must be an integer")
		return nil
	}
	return &v
}

func (p *queryParser) int64Param(name string) *int64 {
	raw := strings.TrimSpace(p.c.QueryParam(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.invalid(name, "must be an integer")
		return nil
	}
	return &v
}

func (p *queryParser) floatParam(name string) *float64 {
	raw := strings.TrimSpace(p.c.QueryParam(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.invalid(name, "must be a number")
		return nil
	}
	return &v
}

func parseSearch(c echo.Context) (model.ListingFilter, model.Pagination, error) {
	p := &queryParser{c: c}
	filter := model.ListingFilter{
		PropertyType: model.PropertyType(strings.TrimSpace(c.QueryParam("propertyType"))),
		DealType:     model.DealType(strings.TrimSpace(c.QueryParam("dealType"))),
		City:         strings.TrimSpace(c.QueryParam("city")),
		District:     strings.TrimSpace(c.QueryParam("district")),
		Rooms:        p.intParam("rooms"),
		MinPrice:     p.int64Param("minPrice"),
		MaxPrice:     p.int64Param("maxPrice"),
		MinArea:      p.floatParam("minArea"),
		MaxArea:      p.floatParam("maxArea"),
	}

	var page model.Pagination
	if v := p.intParam("page"); v != nil {
		page.Page = *v
	}
	if v := p.intParam("limit"); v != nil {
		page.PageSize = *v
	}

	if len(p.errs) > 0 {
		return filter, page, &apperrors.ValidationError{Fields: p.errs}
	}
	return filter, page.Normalize(), nil
}
