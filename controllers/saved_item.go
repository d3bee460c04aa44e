package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-api/config"
	"marketplace-api/models"
)

// SaveItem bookmarks a listing for the caller
func SaveItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}
	userID, _ := c.Get("userID")

	// The listing has to exist before it can be saved
	var item models.Item
	if err := config.DB.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	// Check if the item is already saved
	var existing models.SavedItem
	err = config.DB.Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "This item is already saved.",
		})
		return
	}

	saved := models.SavedItem{
		UserID:   userID.(int),
		ItemID:   itemID,
		CreateAt: time.Now(),
	}
	if err := config.DB.Create(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item saved successfully.",
	})
}

// GetSavedItems returns the caller's saved listings
func GetSavedItems(c *gin.Context) {
	userID, _ := c.Get("userID")

	var items []models.Item
	err := config.DB.
		Joins("JOIN saved_items ON saved_items.item_id = items.item_id").
		Where("saved_items.user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_items": items})
}

// RemoveSavedItem removes a bookmark
func RemoveSavedItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}
	userID, _ := c.Get("userID")

	result := config.DB.Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.SavedItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "An unexpected error occurred while removing the item.",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "The item does not exist in your saved list.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item removed from your saved list.",
	})
}
