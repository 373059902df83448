package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "life-go/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	InitValidator()
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Hour)

	token, err := m.GenerateToken("admin", true)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Hour)
	token, err := m.GenerateToken("admin", true)
	require.NoError(t, err)

	other := NewJWTManager("another-secret", "HS256", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err, "wrong key")

	expired := NewJWTManager("secret", "HS256", -time.Minute)
	old, err := expired.GenerateToken("admin", true)
	require.NoError(t, err)
	_, err = m.ValidateToken(old)
	assert.Error(t, err, "expired")

	_, err = m.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.NoError(t, CheckPassword("hunter2", hash))
	assert.Error(t, CheckPassword("hunter3", hash))
	assert.False(t, IsBcryptHash("hunter2"))
}

type sampleRequest struct {
	Age  *int    `json:"age" binding:"required,min=0"`
	Name *string `json:"name" binding:"omitempty,max=5,activityname"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	return c.ShouldBindJSON(&req)
}

func TestFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"missing", `{}`, "age", "This field is required."},
		{"negative", `{"age": -1}`, "age", "Ensure this value is greater than or equal to 0."},
		{"too long", `{"age": 1, "name": "abcdefg"}`, "name", "Ensure this field has no more than 5 characters."},
		{"blank", `{"age": 1, "name": "   "}`, "name", "This field may not be blank."},
		{"wrong type", `{"age": "old"}`, "age", "A valid int is required."},
		{"garbage", `{`, "non_field_errors", "Malformed JSON body."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindSample(t, tt.body)
			require.Error(t, err)
			assert.Equal(t, tt.want, FieldErrors(err)[tt.field])
		})
	}

	assert.NoError(t, bindSample(t, `{"age": 0, "name": "Read"}`))
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", apperrors.NewUserNotFound(9), http.StatusNotFound, "User 9 not found"},
		{"precondition", apperrors.NewLevel1Missing(), http.StatusBadRequest, "Level1 result not found. Submit Category1 inputs first."},
		{"database hides cause", apperrors.NewDatabaseError(errors.New("disk I/O error")), http.StatusInternalServerError, "Database operation failed"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestHandleError_FieldDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, apperrors.NewDuplicateName("Reading"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "DUPLICATE_NAME", body.Code)
	assert.Equal(t, "must be unique per user", body.Errors["name"])
}

func TestEncodeCSV(t *testing.T) {
	data, err := EncodeCSV([]string{"a", "b"}, [][]string{{"1", "x,y"}})
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBFa,b\n1,\"x,y\"\n", string(data))
}
