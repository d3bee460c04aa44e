package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-api/config"
	"marketplace-api/models"
)

// ProceedPurchase returns the purchase receipt for an item, binding the
// buyer identity to the authenticated session.
// POST /proceed_purchase/:item_id
func ProceedPurchase(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.Item
	err := config.DB.Preload("Seller").Where("item_id = ?", itemID).First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	userID, _ := c.Get("userID")
	var buyer models.User
	if err := config.DB.Where("user_id = ?", userID).First(&buyer).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"buyer_name":   buyer.FullName(),
		"contact_info": buyer.Email,
		"item":         item,
		"seller_name":  item.Seller.Username,
	})
}
