package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/SamTech-crypto/audit-workflow-app/pkg/errors"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		data := map[string]string{"foo": "bar"}
		response.OK(c, data)

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}

		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Error plain", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("test err"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)

		if resp.ErrorCode != 1 {
			t.Errorf("expected ErrorCode 1, got %d", resp.ErrorCode)
		}
		if resp.Message != "test err" {
			t.Errorf("expected message 'test err', got %s", resp.Message)
		}
	})

	t.Run("Error with HTTPError status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, pkgErrors.NewHTTPError(http.StatusConflict, "already exists"))

		if w.Code != http.StatusConflict {
			t.Errorf("expected %d, got %d", http.StatusConflict, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != "already exists" {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})

	t.Run("InternalError hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("secret db failure"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("internal error message leaked: %q", resp.Message)
		}
	})
}

func TestDateMarshaling(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	midnight := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)

	got, err := json.Marshal(response.Date(midnight))
	if err != nil {
		t.Fatalf("marshal Date: %v", err)
	}
	// The value's own location is authoritative; no server-local shift.
	if string(got) != `"2026-09-10"` {
		t.Errorf("Date = %s, want 2026-09-10", got)
	}

	stamp := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	got, err = json.Marshal(response.DateTime(stamp))
	if err != nil {
		t.Fatalf("marshal DateTime: %v", err)
	}
	if string(got) != `"2026-09-10 08:30:00"` {
		t.Errorf("DateTime = %s", got)
	}
}
