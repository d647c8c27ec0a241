package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cafehub/config"
	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/internal/domain/entity"
	"github.com/oksasatya/cafehub/internal/interface/middleware"
	"github.com/oksasatya/cafehub/pkg/response"
	"github.com/oksasatya/cafehub/pkg/validation"
)

// landingListSize is how many cafes the landing page shows.
const landingListSize = 6

type CafeHandler struct {
	Svc    *application.CafeService
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewCafeHandler(svc *application.CafeService, cfg *config.Config, logger *logrus.Logger) *CafeHandler {
	return &CafeHandler{Svc: svc, Cfg: cfg, Logger: logger}
}

type createCafeRequest struct {
	Name         string `form:"cafe_name" binding:"required"`
	City         string `form:"city" binding:"required"`
	Address      string `form:"address" binding:"required"`
	Seats        string `form:"seats" binding:"required"`
	CoffeePrice  string `form:"coffee_price" binding:"required"`
	Description  string `form:"description" binding:"required"`
	HasSockets   string `form:"has_sockets"`
	HasToilet    string `form:"has_toilet"`
	HasWiFi      string `form:"has_wifi"`
	CanTakeCalls string `form:"can_take_calls"`
}

type commentRequest struct {
	Text string `form:"text" json:"text" binding:"required"`
}

func cafeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid cafe id", nil)
		c.JSON(resp.Status, resp)
		return 0, false
	}
	return id, true
}

// Home returns the landing list: the first cafes by id.
func (h *CafeHandler) Home(c *gin.Context) {
	cafes, err := h.Svc.ListCafes(c.Request.Context(), landingListSize)
	if err != nil {
		h.Logger.WithError(err).Error("list cafes failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not load cafes", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"cafes": cafes}, "cafes", nil)
	c.JSON(resp.Status, resp)
}

// List returns every cafe. Authenticated callers also get their own user
// id so the client can mark entries they submitted.
func (h *CafeHandler) List(c *gin.Context) {
	cafes, err := h.Svc.ListCafes(c.Request.Context(), 0)
	if err != nil {
		h.Logger.WithError(err).Error("list cafes failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not load cafes", nil)
		c.JSON(resp.Status, resp)
		return
	}
	data := gin.H{"cafes": cafes}
	if id := middleware.IdentityFrom(c); !id.IsAnonymous() {
		data["viewer_id"] = id.UserID
	}
	resp := response.Success(c, http.StatusOK, data, "cafes", nil)
	c.JSON(resp.Status, resp)
}

// Detail returns one cafe page: the cafe plus its comments in insertion
// order.
func (h *CafeHandler) Detail(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}
	cafe, err := h.Svc.GetCafe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "cafe not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).WithField("cafe_id", id).Error("get cafe failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not load cafe", nil)
		c.JSON(resp.Status, resp)
		return
	}
	comments, err := h.Svc.ListComments(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("cafe_id", id).Error("list comments failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not load comments", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"cafe": cafe, "comments": comments}, "cafe", nil)
	c.JSON(resp.Status, resp)
}

// Create handles the new-place form: multipart fields plus a photo that
// goes to the blob store. The caller becomes the owner.
func (h *CafeHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := application.Authorize(identity, application.IsAuthenticated()); err != nil {
		resp := response.Error[any](c, http.StatusForbidden, "access denied", nil)
		c.JSON(resp.Status, resp)
		return
	}

	var req createCafeRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"image": "is required"})
		c.JSON(resp.Status, resp)
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "could not read uploaded image", nil)
		c.JSON(resp.Status, resp)
		return
	}
	defer func() { _ = f.Close() }()

	imageURL, err := h.Svc.UploadPhoto(c.Request.Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).Warn("photo upload failed")
		resp := response.Error[any](c, http.StatusBadRequest, "could not store photo", nil)
		c.JSON(resp.Status, resp)
		return
	}

	cafe, err := h.Svc.CreateCafe(c.Request.Context(), application.CreateCafeInput{
		Name:         req.Name,
		City:         req.City,
		Address:      req.Address,
		HasSockets:   entity.ParseAmenity(req.HasSockets),
		HasToilet:    entity.ParseAmenity(req.HasToilet),
		HasWiFi:      entity.ParseAmenity(req.HasWiFi),
		CanTakeCalls: entity.ParseAmenity(req.CanTakeCalls),
		Seats:        req.Seats,
		CoffeePrice:  req.CoffeePrice,
		Description:  req.Description,
		ImageURL:     imageURL,
	}, identity.UserID)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateName) {
			resp := response.Error[any](c, http.StatusConflict, "a cafe with that name already exists", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("create cafe failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not create cafe", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success(c, http.StatusCreated, gin.H{"cafe": cafe}, "cafe created", map[string]any{"redirect": "/"})
	c.JSON(resp.Status, resp)
}

// AddComment records a comment by the current identity on a cafe page.
func (h *CafeHandler) AddComment(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := application.Authorize(identity, application.IsAuthenticated()); err != nil {
		resp := response.Error[any](c, http.StatusForbidden, "access denied", nil)
		c.JSON(resp.Status, resp)
		return
	}

	id, ok := cafeID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	comment, err := h.Svc.AddComment(c.Request.Context(), id, req.Text, identity.UserID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "cafe not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).WithField("cafe_id", id).Error("add comment failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not add comment", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success(c, http.StatusCreated, gin.H{"comment": comment}, "comment added", nil)
	c.JSON(resp.Status, resp)
}

// Delete removes a cafe. Admin only; the gate runs before any storage
// access so a forbidden caller cannot cause a partial mutation.
func (h *CafeHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := application.Authorize(identity, application.IsAdmin(h.Cfg.AdminUserID)); err != nil {
		resp := response.Error[any](c, http.StatusForbidden, "access denied", nil)
		c.JSON(resp.Status, resp)
		return
	}

	id, ok := cafeID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCafe(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "cafe not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).WithField("cafe_id", id).Error("delete cafe failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not delete cafe", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "cafe deleted", map[string]any{"redirect": "/"})
	c.JSON(resp.Status, resp)
}

// Search queries the cafe search index.
func (h *CafeHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp := response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		c.JSON(resp.Status, resp)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchCafes(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("cafe search failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"hits": hits}, "search results", nil)
	c.JSON(resp.Status, resp)
}
