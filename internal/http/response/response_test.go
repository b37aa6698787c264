package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestErrorWithDataAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set("request_id", "req-1")

	ErrorWithData(c, CodeConflict, "Your cart is empty", gin.H{"redirect": "/cart"})

	if rec.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if int(body["status_code"].(float64)) != CodeConflict {
		t.Fatalf("status_code want %d got %v", CodeConflict, body["status_code"])
	}
	data := body["data"].(map[string]interface{})
	if data["redirect"] != "/cart" || data["request_id"] != "req-1" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestSuccessWithPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SuccessWithPage(c, []string{"a"}, NewPagination(3, 12, 25, 3))

	body := decodeBody(t, rec)
	if int(body["status_code"].(float64)) != CodeOK {
		t.Fatalf("status_code want 0 got %v", body["status_code"])
	}
	pagination := body["pagination"].(map[string]interface{})
	if pagination["total_page"].(float64) != 3 || pagination["page"].(float64) != 3 {
		t.Fatalf("unexpected pagination: %v", pagination)
	}
}

func TestErrorWithoutRequestIDKeepsNilData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Error(c, CodeNotFound, "Cereal not found")

	body := decodeBody(t, rec)
	if body["data"] != nil {
		t.Fatalf("data want nil got %v", body["data"])
	}
	if body["msg"] != "Cereal not found" {
		t.Fatalf("unexpected msg: %v", body["msg"])
	}
}
