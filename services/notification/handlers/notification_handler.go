package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cinewave/pkg/logger"
	"cinewave/pkg/models"
	"cinewave/services/notification/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
	redisClient      *redis.Client
	logger           *logger.Logger
}

func NewNotificationHandler(notificationRepo repository.NotificationRepository, redisClient *redis.Client, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
		logger:           logger,
	}
}

// ListNotifications godoc
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread query bool false "Unread only"
// @Param        limit  query int  false "Page size"
// @Param        offset query int  false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationRepo.GetByUser(userID, unreadOnly, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}

	unread, err := h.notificationRepo.CountUnread(userID)
	if err != nil {
		h.logger.Error("Failed to count unread notifications: %v", err)
		unread = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.notificationRepo.MarkRead(userID, c.Param("id")); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		h.logger.Error("Failed to mark notification read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

// MarkAllRead godoc
// @Summary      Mark all notifications as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.notificationRepo.MarkAllRead(userID); err != nil {
		h.logger.Error("Failed to mark notifications read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

// HandleEvent turns a platform event from the queue into a stored
// notification and fans it out over redis for connected clients.
func (h *NotificationHandler) HandleEvent(event map[string]interface{}) error {
	eventType, _ := event["type"].(string)

	var notification *models.Notification
	switch eventType {
	case "content_reviewed":
		notification = reviewedNotification(event)
	case "content_purchased":
		notification = purchasedNotification(event)
	default:
		h.logger.Warn("Skipping unknown event type: %s", eventType)
		return nil
	}
	if notification == nil {
		h.logger.Warn("Skipping malformed %s event", eventType)
		return nil
	}

	payload, _ := json.Marshal(event)
	notification.Payload = string(payload)

	if err := h.notificationRepo.Create(notification); err != nil {
		return err
	}

	if h.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		notificationJSON, _ := json.Marshal(notification)
		key := fmt.Sprintf("notifications:%s", notification.UserID)
		h.redisClient.LPush(ctx, key, notificationJSON)
		h.redisClient.LTrim(ctx, key, 0, 99)
		h.redisClient.Expire(ctx, key, 30*24*time.Hour)
		h.redisClient.Publish(ctx, key, notificationJSON)
	}

	h.logger.Info("Notification stored for user %s: %s", notification.UserID, notification.Type)
	return nil
}

func reviewedNotification(event map[string]interface{}) *models.Notification {
	creatorID, _ := event["creator_id"].(string)
	title, _ := event["title"].(string)
	status, _ := event["status"].(string)
	if creatorID == "" {
		return nil
	}

	message := fmt.Sprintf("Your content %q was %s", title, status)
	if reason, ok := event["reason"].(string); ok && reason != "" {
		message = fmt.Sprintf("%s: %s", message, reason)
	}

	return &models.Notification{
		UserID:  creatorID,
		Type:    models.NotificationContentReviewed,
		Message: message,
	}
}

func purchasedNotification(event map[string]interface{}) *models.Notification {
	creatorID, _ := event["creator_id"].(string)
	title, _ := event["title"].(string)
	if creatorID == "" {
		return nil
	}

	message := fmt.Sprintf("Someone purchased %q", title)
	if amount, ok := event["amount"].(float64); ok {
		message = fmt.Sprintf("%s for %.2f", message, amount)
	}

	return &models.Notification{
		UserID:  creatorID,
		Type:    models.NotificationContentPurchased,
		Message: message,
	}
}
