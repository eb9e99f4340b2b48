package handlers

import (
	"net/http"
	"strconv"

	"cinewave/pkg/logger"
	"cinewave/pkg/models"
	"cinewave/pkg/queue"
	"cinewave/services/billing/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BillingHandler struct {
	billingRepo repository.BillingRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewBillingHandler(billingRepo repository.BillingRepository, queueClient *queue.Client, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billingRepo: billingRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

type PurchaseRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card paypal wallet"`
}

type AccessResponse struct {
	HasAccess     bool     `json:"has_access"`
	NeedsPurchase bool     `json:"needs_purchase"`
	Price         *float64 `json:"price"`
}

// Purchase godoc
// @Summary      Purchase content
// @Description  Buys access to a priced content item. Free content needs no purchase and buying twice is rejected.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        content_id path string          true "Content ID"
// @Param        request    body PurchaseRequest true "Payment method"
// @Success      201  {object}  models.Transaction
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /purchase/{content_id} [post]
func (h *BillingHandler) Purchase(c *gin.Context) {
	userID := c.GetString("user_id")
	contentID := c.Param("content_id")

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.billingRepo.GetContentByID(contentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}

	if content.Price == nil || *content.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no purchase required for free content"})
		return
	}

	if _, err := h.billingRepo.GetPaidTransaction(userID, contentID); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content already purchased"})
		return
	} else if err != gorm.ErrRecordNotFound {
		h.logger.Error("Failed to check existing purchase: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process purchase"})
		return
	}

	transaction := &models.Transaction{
		UserID:        userID,
		ContentID:     contentID,
		Amount:        *content.Price,
		IsPaid:        true,
		PaymentMethod: req.PaymentMethod,
		Type:          models.TransactionTypePurchase,
	}
	if err := h.billingRepo.CreateTransaction(transaction); err != nil {
		h.logger.Error("Failed to create transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process purchase"})
		return
	}

	if h.queueClient != nil {
		event := map[string]interface{}{
			"type":       "content_purchased",
			"content_id": contentID,
			"creator_id": content.CreatorID,
			"buyer_id":   userID,
			"title":      content.Title,
			"amount":     *content.Price,
		}
		if err := h.queueClient.PublishEvent(event); err != nil {
			h.logger.Warn("Failed to publish purchase event: %v", err)
		}
	}

	c.JSON(http.StatusCreated, transaction)
}

// CheckAccess godoc
// @Summary      Check content access
// @Description  Reports whether the authenticated user can watch the content. Creators always have access to their own content.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        content_id path string true "Content ID"
// @Success      200  {object}  AccessResponse
// @Failure      404  {object}  map[string]string
// @Router       /access/{content_id} [get]
func (h *BillingHandler) CheckAccess(c *gin.Context) {
	userID := c.GetString("user_id")
	contentID := c.Param("content_id")

	content, err := h.billingRepo.GetContentByID(contentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}

	resp := AccessResponse{Price: content.Price}

	switch {
	case content.Price == nil || *content.Price <= 0:
		resp.HasAccess = true
	case content.CreatorID == userID:
		resp.HasAccess = true
	default:
		if _, err := h.billingRepo.GetPaidTransaction(userID, contentID); err == nil {
			resp.HasAccess = true
		} else {
			resp.NeedsPurchase = true
		}
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyTransaction godoc
// @Summary      Verify a transaction
// @Description  Returns a transaction belonging to the authenticated user. Other users' transactions read as not found.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Transaction ID"
// @Success      200  {object}  models.Transaction
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [get]
func (h *BillingHandler) VerifyTransaction(c *gin.Context) {
	userID := c.GetString("user_id")

	transaction, err := h.billingRepo.GetTransactionByID(c.Param("id"))
	if err != nil || transaction.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// ListTransactions godoc
// @Summary      List own transactions
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /transactions [get]
func (h *BillingHandler) ListTransactions(c *gin.Context) {
	userID := c.GetString("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	transactions, err := h.billingRepo.GetTransactions(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
