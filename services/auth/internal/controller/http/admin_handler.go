package http

import (
	"net/http"
	"strconv"

	"cinewave/services/auth/internal/entity"
	"cinewave/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAdminHandler(authUseCase usecase.AuthUseCase) *AdminHandler {
	return &AdminHandler{
		authUseCase: authUseCase,
	}
}

type CreateCreatorRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"required,min=6"`
	Bio       string `json:"bio"`
	Portfolio string `json:"portfolio"`
	Verified  bool   `json:"verified"`
}

type UpdateCreatorRequest struct {
	Name       *string `json:"name"`
	Bio        *string `json:"bio"`
	Portfolio  *string `json:"portfolio"`
	IsVerified *bool   `json:"is_verified"`
}

// ListCreators godoc
// @Summary      List creators
// @Description  List creator accounts, optionally filtered by verification state.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        verified query bool false "Filter by verification state"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/creators [get]
func (h *AdminHandler) ListCreators(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var verified *bool
	if raw := c.Query("verified"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verified filter"})
			return
		}
		verified = &parsed
	}

	creators, err := h.authUseCase.ListCreators(verified, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list creators"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"creators": creators, "count": len(creators)})
}

// CreateCreator godoc
// @Summary      Create a creator account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCreatorRequest true "Creator data"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/creators [post]
func (h *AdminHandler) CreateCreator(c *gin.Context) {
	var req CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, err := h.authUseCase.CreateCreator(req.Email, req.Name, req.Password, req.Bio, req.Portfolio, req.Verified)
	if err != nil {
		if err.Error() == "user with this email already exists" {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, creator)
}

// GetCreator godoc
// @Summary      Get a creator
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Creator ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /admin/creators/{id} [get]
func (h *AdminHandler) GetCreator(c *gin.Context) {
	creator, err := h.authUseCase.GetUser(c.Param("id"))
	if err != nil || creator.Role != entity.RoleCreator {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return
	}

	c.JSON(http.StatusOK, creator)
}

// UpdateCreator godoc
// @Summary      Update a creator
// @Description  Partial update of a creator profile, including the verification flag reviewed by admins.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Creator ID"
// @Param        request body UpdateCreatorRequest true "Creator fields"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/creators/{id} [patch]
func (h *AdminHandler) UpdateCreator(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.authUseCase.GetUser(id)
	if err != nil || existing.Role != entity.RoleCreator {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Portfolio != nil {
		fields["portfolio"] = *req.Portfolio
	}

	creator := existing
	if len(fields) > 0 {
		creator, err = h.authUseCase.UpdateUser(id, fields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if req.IsVerified != nil {
		creator, err = h.authUseCase.SetCreatorVerification(id, *req.IsVerified)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, creator)
}

// DeleteCreator godoc
// @Summary      Delete a creator
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Creator ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/creators/{id} [delete]
func (h *AdminHandler) DeleteCreator(c *gin.Context) {
	h.deleteAccount(c)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Partial update restricted to an explicit field allow-list (name, email, bio, portfolio, role).
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUseCase.UpdateUser(id, fields)
	if err != nil {
		switch {
		case err.Error() == "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case usecase.IsFieldError(err) || err.Error() == "invalid role":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Deletes an account. Self-deletion and deletion of admin accounts are blocked.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	h.deleteAccount(c)
}

func (h *AdminHandler) deleteAccount(c *gin.Context) {
	requesterID := c.GetString("user_id")
	id := c.Param("id")

	if err := h.authUseCase.DeleteUser(requesterID, id); err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "cannot delete your own account", "cannot delete an administrator account":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
