package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProofRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/submit_proof", SubmitProof)
	router.GET("/check_status", CheckStatus)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("failed to write file content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return payload
}

// Validation failures must reject the request before any record is created;
// these handlers run without a database and would panic on any query.
func TestSubmitProofRequiresItemName(t *testing.T) {
	router := newProofRouter()

	body, contentType := multipartBody(t, map[string]string{
		"sender_name":    "Alice",
		"reference_type": "REF123",
	}, "screenshot", "payment.png", []byte("fake image bytes"))

	req := httptest.NewRequest(http.MethodPost, "/submit_proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	payload := decodeBody(t, w)
	if payload["error"] != "Item name is required." {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestSubmitProofRequiresScreenshot(t *testing.T) {
	router := newProofRouter()

	body, contentType := multipartBody(t, map[string]string{
		"sender_name":    "Alice",
		"reference_type": "REF123",
		"item_name":      "Bike",
	}, "", "", nil)

	req := httptest.NewRequest(http.MethodPost, "/submit_proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	payload := decodeBody(t, w)
	if payload["error"] != "Screenshot is required. Please upload a screenshot of the payment." {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestSubmitProofRejectsNonImageScreenshot(t *testing.T) {
	router := newProofRouter()

	body, contentType := multipartBody(t, map[string]string{
		"item_name": "Bike",
	}, "screenshot", "payment.exe", []byte("not an image"))

	req := httptest.NewRequest(http.MethodPost, "/submit_proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitProofRejectsMalformedSenderNumber(t *testing.T) {
	router := newProofRouter()

	body, contentType := multipartBody(t, map[string]string{
		"item_name":     "Bike",
		"sender_number": "not-a-phone",
	}, "screenshot", "payment.png", []byte("fake image bytes"))

	req := httptest.NewRequest(http.MethodPost, "/submit_proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	payload := decodeBody(t, w)
	if payload["error"] != "Sender number must be a valid phone number." {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestCheckStatusRequiresReference(t *testing.T) {
	router := newProofRouter()

	req := httptest.NewRequest(http.MethodGet, "/check_status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	payload := decodeBody(t, w)
	if payload["error"] != "Reference type is required." {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}
