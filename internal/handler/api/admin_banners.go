package api

import (
	"errors"
	"net/http"

	reqdto "organic-storefront/internal/handler/dto/request"
	resdto "organic-storefront/internal/handler/dto/response"
	"organic-storefront/internal/handler/httperr"
	"organic-storefront/internal/handler/middleware"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminBannerHandler struct {
	bannerCommands commands.BannerCommands
	bannerQueries  queries.BannerQueries
}

func NewAdminBannerHandler(bannerCommands commands.BannerCommands, bannerQueries queries.BannerQueries) *AdminBannerHandler {
	return &AdminBannerHandler{
		bannerCommands: bannerCommands,
		bannerQueries:  bannerQueries,
	}
}

// @Summary List banners
// @Description All banners regardless of schedule or active flag
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BannerResponse
// @Router /admin/banners [get]
func (h *AdminBannerHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list banners", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBannerViews(banners))
}

// @Summary Create banner
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BannerRequest true "Banner"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /admin/banners [post]
func (h *AdminBannerHandler) CreateBanner(c *gin.Context) {
	req, ok := bindBannerRequest(c)
	if !ok {
		return
	}

	id, err := h.bannerCommands.Create(c.Request.Context(), req, middleware.GetAdminSubject(c))
	if err != nil {
		abortBannerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update banner
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Banner ID"
// @Param request body reqdto.BannerRequest true "Banner"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/banners/{id} [put]
func (h *AdminBannerHandler) UpdateBanner(c *gin.Context) {
	id, ok := parseBannerID(c)
	if !ok {
		return
	}
	req, ok := bindBannerRequest(c)
	if !ok {
		return
	}

	if err := h.bannerCommands.Update(c.Request.Context(), id, req, middleware.GetAdminSubject(c)); err != nil {
		abortBannerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set banner active flag
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Banner ID"
// @Param request body reqdto.SetBannerActiveRequest true "Active flag"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/banners/{id}/active [patch]
func (h *AdminBannerHandler) SetBannerActive(c *gin.Context) {
	id, ok := parseBannerID(c)
	if !ok {
		return
	}

	var req reqdto.SetBannerActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.bannerCommands.SetActive(c.Request.Context(), id, *req.Active, middleware.GetAdminSubject(c)); err != nil {
		abortBannerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete banner
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/banners/{id} [delete]
func (h *AdminBannerHandler) DeleteBanner(c *gin.Context) {
	id, ok := parseBannerID(c)
	if !ok {
		return
	}

	if err := h.bannerCommands.Delete(c.Request.Context(), id, middleware.GetAdminSubject(c)); err != nil {
		abortBannerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindBannerRequest(c *gin.Context) (commands.BannerRequest, bool) {
	var req reqdto.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return commands.BannerRequest{}, false
	}
	return commands.BannerRequest{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		Active:    req.Active,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
	}, true
}

func parseBannerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid banner ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortBannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBannerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Banner not found", nil)
	case errors.Is(err, commands.ErrBannerWindowInverted):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Banner end must not precede its start", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
