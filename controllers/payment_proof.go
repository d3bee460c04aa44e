package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace-api/config"
	"marketplace-api/services"
	"marketplace-api/utils"
)

func proofService() *services.ProofService {
	return services.NewProofService(config.DB, services.NewNotificationService(config.DB))
}

// SubmitProof records a buyer's proof of an off-platform payment.
// POST /submit_proof (multipart form)
func SubmitProof(c *gin.Context) {
	senderName := utils.SanitizeInput(c.PostForm("sender_name"))
	senderNumber := utils.SanitizeInput(c.PostForm("sender_number"))
	referenceCode := utils.SanitizeInput(c.PostForm("reference_type"))
	itemName := utils.SanitizeInput(c.PostForm("item_name"))

	if itemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required."})
		return
	}

	screenshot, err := c.FormFile("screenshot")
	if err != nil || screenshot.Filename == "" || screenshot.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Screenshot is required. Please upload a screenshot of the payment.",
		})
		return
	}
	if !services.AllowedImageFile(screenshot.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Screenshot must be an image file."})
		return
	}

	if senderNumber != "" && !utils.ValidatePhone(senderNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sender number must be a valid phone number."})
		return
	}

	var itemID *int
	if raw := c.PostForm("item_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			itemID = &id
		}
	}

	// Bind the proof to the caller when a valid session is present, so the
	// decision notification can reach them. Anonymous submissions stay valid.
	var userID *int
	if id, exists := c.Get("userID"); exists {
		uid := id.(int)
		userID = &uid
	}

	storedPath, err := services.ScreenshotStorage().UploadImage(c.Request.Context(), screenshot, "screenshots")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store screenshot"})
		return
	}

	proof, err := proofService().Submit(c.Request.Context(), services.SubmitProofInput{
		SenderName:    senderName,
		SenderNumber:  senderNumber,
		ReferenceCode: referenceCode,
		ItemName:      itemName,
		ItemID:        itemID,
		UserID:        userID,
		Screenshot:    storedPath,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while submitting proof of payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Proof of payment has been successfully submitted. Your request is now pending approval.",
		"status":          proof.Status,
		"transaction_ref": proof.TransactionRef,
	})
}

// CheckStatus is the public polling endpoint for a submitted proof.
// GET /check_status?referenceType=... (or ?transactionRef=... for the exact lookup)
func CheckStatus(c *gin.Context) {
	referenceCode := c.Query("referenceType")
	transactionRef := c.Query("transactionRef")

	if referenceCode == "" && transactionRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reference type is required."})
		return
	}

	var (
		status string
		err    error
	)
	if transactionRef != "" {
		status, err = proofService().CheckStatusByTransactionRef(c.Request.Context(), transactionRef)
	} else {
		status, err = proofService().CheckStatus(c.Request.Context(), referenceCode)
	}

	if errors.Is(err, services.ErrProofNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reference type not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
