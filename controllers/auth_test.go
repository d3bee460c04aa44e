package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"translated duplicate key", gorm.ErrDuplicatedKey, true},
		{"wrapped duplicate key", fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey), true},
		{"unrelated error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tc.err); got != tc.want {
				t.Errorf("isDuplicateKeyError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(RegisterRequest{
		FirstName:       "Arthit",
		LastName:        "Srisuk",
		Username:        "arthit",
		Email:           "arthit@example.com",
		Password:        "longenough1",
		ConfirmPassword: "different99",
	})

	router := gin.New()
	router.POST("/api/v1/register", Register)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Passwords do not match. Please try again." {
		t.Errorf("error = %q, want password mismatch message", resp["error"])
	}
}
