package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-api/services"
)

// GetProofRequests lists submitted proofs for the admin review page.
// GET /adminresponse lists everything; ?status=Pending narrows to the queue
// awaiting review.
func GetProofRequests(c *gin.Context) {
	proofs, err := proofService().List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": proofs})
}

// ConfirmRequest marks every proof with the reference code as Confirmed.
// POST /confirm_request/:reference_type
func ConfirmRequest(c *gin.Context) {
	decideRequest(c, proofService().Confirm, "confirmed")
}

// RejectRequest marks every proof with the reference code as Rejected.
// POST /reject_request/:reference_type
func RejectRequest(c *gin.Context) {
	decideRequest(c, proofService().Reject, "rejected")
}

func decideRequest(c *gin.Context, decide func(context.Context, string) (int64, error), verb string) {
	referenceCode := c.Param("reference_type")
	if referenceCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reference type is required."})
		return
	}

	updated, err := decide(c.Request.Context(), referenceCode)
	if errors.Is(err, services.ErrProofNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reference type not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Request with reference type %s has been %s.", referenceCode, verb),
		"updated": updated,
	})
}

// GetProofHistory returns the status ledger for a reference code.
// GET /proof_history/:reference_type
func GetProofHistory(c *gin.Context) {
	referenceCode := c.Param("reference_type")

	entries, err := proofService().History(c.Request.Context(), referenceCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load status history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}
