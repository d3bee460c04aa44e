package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-api/config"
	"marketplace-api/models"
	"marketplace-api/services"
	"marketplace-api/utils"
)

// GetItems returns all listings
func GetItems(c *gin.Context) {
	var items []models.Item
	if err := config.DB.Order("item_id DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItem returns one listing joined with its seller's public info
func GetItem(c *gin.Context) {
	id := c.Param("id")

	var item models.Item
	err := config.DB.Preload("Seller").Where("item_id = ?", id).First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	quality := qualityLabel(item.Quality)

	c.JSON(http.StatusOK, gin.H{
		"item":          item,
		"item_quality":  quality,
		"seller_name":   item.Seller.Username,
		"seller_avatar": item.Seller.ProfilePicture,
	})
}

// qualityLabel renders a quality value for display, e.g. "used_like_new" -> "Used Like New".
func qualityLabel(quality string) string {
	words := strings.Split(quality, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SearchItems filters listings by free text, price range, quality, and category
func SearchItems(c *gin.Context) {
	query := strings.ToLower(c.Query("query"))
	quality := c.Query("quality")
	category := c.Query("category")

	q := config.DB.Model(&models.Item{}).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", "%"+query+"%", "%"+query+"%")

	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.Atoi(minPrice); err == nil {
			q = q.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.Atoi(maxPrice); err == nil {
			q = q.Where("price <= ?", v)
		}
	}
	if quality != "" && quality != "all" {
		q = q.Where("quality = ?", quality)
	}
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var results []models.Item
	if err := q.Find(&results).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   c.Query("query"),
		"results": results,
	})
}

// GetItemsByCategory filters listings by category; "all" returns everything
func GetItemsByCategory(c *gin.Context) {
	category := c.Param("category")

	q := config.DB.Model(&models.Item{})
	if category != "all" {
		q = q.Where("category = ?", category)
	}

	var items []models.Item
	if err := q.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetMyItems returns the caller's listings
func GetMyItems(c *gin.Context) {
	userID, _ := c.Get("userID")

	var items []models.Item
	if err := config.DB.Where("user_id = ?", userID).Order("item_id DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateItem posts a new listing with a grid image and optional detail images
func CreateItem(c *gin.Context) {
	name := utils.SanitizeInput(c.PostForm("item_name"))
	priceStr := c.PostForm("item_price")
	description := c.PostForm("item_desc")
	quality := c.PostForm("item_quality")
	category := utils.SanitizeInput(c.PostForm("item_category"))
	meetupPlace := utils.SanitizeInput(c.PostForm("meetup_place"))
	sellerPhone := utils.SanitizeInput(c.PostForm("seller_phone"))

	if name == "" || description == "" || category == "" || meetupPlace == "" || sellerPhone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All item fields are required"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item price"})
		return
	}

	if !models.ValidQuality(quality) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item quality"})
		return
	}

	if !utils.ValidatePhone(sellerPhone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller phone number"})
		return
	}

	storage := services.ItemImageStorage()

	// Grid image shown on listing pages
	var gridImageURL *string
	if gridImage, err := c.FormFile("grid_image"); err == nil {
		if !services.AllowedImageFile(gridImage.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grid image type"})
			return
		}
		url, err := storage.UploadImage(c.Request.Context(), gridImage, "grid_images")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload grid image"})
			return
		}
		gridImageURL = &url
	}

	// Detail images shown on the item page
	var detailURLs []string
	if form, err := c.MultipartForm(); err == nil {
		for _, detailImage := range form.File["detail_images"] {
			if !services.AllowedImageFile(detailImage.Filename) {
				continue
			}
			url, err := storage.UploadImage(c.Request.Context(), detailImage, "detail_images")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload detail image"})
				return
			}
			detailURLs = append(detailURLs, url)
		}
	}
	var detailImages *string
	if len(detailURLs) > 0 {
		joined := strings.Join(detailURLs, ",")
		detailImages = &joined
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	item := models.Item{
		Name:         name,
		Price:        price,
		Description:  description,
		Quality:      quality,
		Category:     category,
		MeetupPlace:  meetupPlace,
		SellerPhone:  sellerPhone,
		GridImage:    gridImageURL,
		DetailImages: detailImages,
		UserID:       userID.(int),
		CreateAt:     &now,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item posted successfully",
		"item":    item,
	})
}

// UpdateItem edits an owned listing
func UpdateItem(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	type ItemUpdateRequest struct {
		Name      string  `json:"name" binding:"required"`
		Price     float64 `json:"price" binding:"required,gt=0"`
		GridImage *string `json:"grid_image"`
	}

	var req ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.Item
	err := config.DB.Where("item_id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	now := time.Now()
	item.Name = utils.SanitizeInput(req.Name)
	item.Price = req.Price
	if req.GridImage != nil {
		item.GridImage = req.GridImage
	}
	item.UpdateAt = &now

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"item":    item,
	})
}

// DeleteItem removes an owned listing
func DeleteItem(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	result := config.DB.Where("item_id = ? AND user_id = ?", id, userID).
		Delete(&models.Item{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
