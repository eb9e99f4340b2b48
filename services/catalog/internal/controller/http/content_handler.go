package http

import (
	"net/http"
	"strconv"
	"strings"

	"cinewave/services/catalog/internal/entity"
	"cinewave/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewContentHandler(catalogUseCase usecase.CatalogUseCase) *ContentHandler {
	return &ContentHandler{
		catalogUseCase: catalogUseCase,
	}
}

type CreateContentRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required,oneof=FILM SERIE film serie"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Thumbnail   string   `json:"thumbnail"`
	Trailer     string   `json:"trailer"`
	Genre       string   `json:"genre"`
	Director    string   `json:"director"`
	Year        int      `json:"year"`
	Country     string   `json:"country"`
	Language    string   `json:"language"`
	Cast        string   `json:"cast"`
	Duration    int      `json:"duration"`
	VideoPath   string   `json:"video_path"`
}

type UpdateContentRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Thumbnail   *string  `json:"thumbnail"`
	Trailer     *string  `json:"trailer"`
	Genre       *string  `json:"genre"`
	Director    *string  `json:"director"`
	Year        *int     `json:"year"`
	Country     *string  `json:"country"`
	Language    *string  `json:"language"`
	Cast        *string  `json:"cast"`
	Duration    *int     `json:"duration"`
	VideoPath   *string  `json:"video_path"`
}

type SeasonRequest struct {
	Number int    `json:"number" binding:"required,gte=1"`
	Title  string `json:"title"`
}

type EpisodeRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Number      *int   `json:"number" binding:"omitempty,gte=1"`
	Duration    int    `json:"duration"`
	VideoPath   string `json:"video_path" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}

type ContentListResponse struct {
	Contents []*entity.Content `json:"contents"`
	Total    int64             `json:"total"`
}

// handleError maps usecase errors onto HTTP status codes by their message.
func handleError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.HasSuffix(msg, "not found"):
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	case msg == "you can only manage your own content":
		c.JSON(http.StatusForbidden, gin.H{"error": msg})
	case msg == "film requires duration and video path",
		msg == "invalid content type",
		msg == "season number already exists",
		msg == "episode number already exists",
		msg == "rejection reason is required",
		msg == "only approved content can be featured",
		msg == "seasons can only be added to a serie":
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func listInput(c *gin.Context) usecase.ListContentsInput {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return usecase.ListContentsInput{
		Limit:    limit,
		Offset:   offset,
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Featured: c.Query("featured") == "true",
	}
}

// ListContents godoc
// @Summary      Browse the published catalog
// @Description  Lists approved content. Supports search, type and featured filters with pagination.
// @Tags         catalog
// @Produce      json
// @Param        search    query  string  false  "Title search"
// @Param        type      query  string  false  "FILM or SERIE"
// @Param        featured  query  bool    false  "Featured only"
// @Param        limit     query  int     false  "Page size (max 100)"
// @Param        offset    query  int     false  "Page offset"
// @Success      200  {object}  ContentListResponse
// @Router       /contents [get]
func (h *ContentHandler) ListContents(c *gin.Context) {
	contents, total, err := h.catalogUseCase.ListPublished(listInput(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ContentListResponse{Contents: contents, Total: total})
}

// GetContent godoc
// @Summary      Get one content item
// @Description  Returns a film or serie with its seasons and episodes. Unapproved content is only visible to its creator and admins.
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "Content ID"
// @Success      200  {object}  entity.Content
// @Failure      404  {object}  map[string]string
// @Router       /contents/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	content, err := h.catalogUseCase.GetContent(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// CreateContent godoc
// @Summary      Create content
// @Description  Creates a film or serie owned by the authenticated creator. New content starts pending review.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateContentRequest true "Content data"
// @Success      201  {object}  entity.Content
// @Failure      400  {object}  map[string]string
// @Router       /creator/contents [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.catalogUseCase.CreateContent(c.GetString("user_id"), usecase.CreateContentInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Trailer:     req.Trailer,
		Genre:       req.Genre,
		Director:    req.Director,
		Year:        req.Year,
		Country:     req.Country,
		Language:    req.Language,
		CastList:    req.Cast,
		Duration:    req.Duration,
		VideoPath:   req.VideoPath,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, content)
}

// ListMyContents godoc
// @Summary      List own content
// @Description  Lists the authenticated creator's content in every review state.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ContentListResponse
// @Router       /creator/contents [get]
func (h *ContentHandler) ListMyContents(c *gin.Context) {
	contents, total, err := h.catalogUseCase.ListMine(c.GetString("user_id"), listInput(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ContentListResponse{Contents: contents, Total: total})
}

// UpdateContent godoc
// @Summary      Update content
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                true  "Content ID"
// @Param        request body  UpdateContentRequest  true  "Fields to change"
// @Success      200  {object}  entity.Content
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /creator/contents/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.catalogUseCase.UpdateContent(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), usecase.UpdateContentInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		PriceSet:    req.Price != nil,
		Thumbnail:   req.Thumbnail,
		Trailer:     req.Trailer,
		Genre:       req.Genre,
		Director:    req.Director,
		Year:        req.Year,
		Country:     req.Country,
		Language:    req.Language,
		CastList:    req.Cast,
		Duration:    req.Duration,
		VideoPath:   req.VideoPath,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// DeleteContent godoc
// @Summary      Delete content
// @Description  Deletes a content item together with its seasons, episodes and purchase records.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Content ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /creator/contents/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	if err := h.catalogUseCase.DeleteContent(c.Param("id"), c.GetString("user_id"), c.GetString("user_role")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "content deleted"})
}

// AddSeason godoc
// @Summary      Add a season
// @Description  Adds a season to a serie. Season numbers are unique within the serie.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string         true  "Content ID"
// @Param        request body  SeasonRequest  true  "Season data"
// @Success      201  {object}  entity.Season
// @Failure      400  {object}  map[string]string
// @Router       /creator/contents/{id}/seasons [post]
func (h *ContentHandler) AddSeason(c *gin.Context) {
	var req SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season, err := h.catalogUseCase.AddSeason(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), usecase.SeasonInput{
		Number: req.Number,
		Title:  req.Title,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, season)
}

// UpdateSeason godoc
// @Summary      Update a season
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string         true  "Season ID"
// @Param        request body  SeasonRequest  true  "Season data"
// @Success      200  {object}  entity.Season
// @Failure      400  {object}  map[string]string
// @Router       /creator/seasons/{id} [put]
func (h *ContentHandler) UpdateSeason(c *gin.Context) {
	var req SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season, err := h.catalogUseCase.UpdateSeason(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), usecase.SeasonInput{
		Number: req.Number,
		Title:  req.Title,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// DeleteSeason godoc
// @Summary      Delete a season and its episodes
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Season ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /creator/seasons/{id} [delete]
func (h *ContentHandler) DeleteSeason(c *gin.Context) {
	if err := h.catalogUseCase.DeleteSeason(c.Param("id"), c.GetString("user_id"), c.GetString("user_role")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "season deleted"})
}

// AddEpisode godoc
// @Summary      Add an episode
// @Description  Adds an episode to a season. Episode numbers are optional but unique within the season when set. The first episode of a pending serie publishes it automatically when auto-publish is enabled.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string          true  "Season ID"
// @Param        request body  EpisodeRequest  true  "Episode data"
// @Success      201  {object}  entity.Episode
// @Failure      400  {object}  map[string]string
// @Router       /creator/seasons/{id}/episodes [post]
func (h *ContentHandler) AddEpisode(c *gin.Context) {
	var req EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode, err := h.catalogUseCase.AddEpisode(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), usecase.EpisodeInput{
		Title:       req.Title,
		Number:      req.Number,
		Duration:    req.Duration,
		VideoPath:   req.VideoPath,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, episode)
}

// UpdateEpisode godoc
// @Summary      Update an episode
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  string          true  "Season ID"
// @Param        episodeId path  string          true  "Episode ID"
// @Param        request   body  EpisodeRequest  true  "Episode data"
// @Success      200  {object}  entity.Episode
// @Failure      400  {object}  map[string]string
// @Router       /creator/seasons/{id}/episodes/{episodeId} [put]
func (h *ContentHandler) UpdateEpisode(c *gin.Context) {
	var req EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode, err := h.catalogUseCase.UpdateEpisode(c.Param("episodeId"), c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), usecase.EpisodeInput{
		Title:       req.Title,
		Number:      req.Number,
		Duration:    req.Duration,
		VideoPath:   req.VideoPath,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// DeleteEpisode godoc
// @Summary      Delete an episode
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Episode ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /creator/episodes/{id} [delete]
func (h *ContentHandler) DeleteEpisode(c *gin.Context) {
	if err := h.catalogUseCase.DeleteEpisode(c.Param("id"), c.GetString("user_id"), c.GetString("user_role")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "episode deleted"})
}
