package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken struct {
	token string
}

func (s staticToken) Get() (string, bool) {
	return s.token, s.token != ""
}

func TestRequestAttachesHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var (
		gotAuthorization string
		gotRequestID     string
	)

	router := gin.New()
	router.GET("/competition", func(c *gin.Context) {
		gotAuthorization = c.GetHeader("Authorization")
		gotRequestID = c.GetHeader("X-Request-Id")

		c.JSON(http.StatusOK, []gin.H{})
	})

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticToken{token: "some-token"})

	var out []struct{}
	err := client.Request(context.Background(), http.MethodGet, "/competition", nil, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer some-token", gotAuthorization)
	assert.NotEmpty(t, gotRequestID)
}

func TestRequestAnonymousOmitsAuthorization(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotAuthorization string

	router := gin.New()
	router.GET("/competition", func(c *gin.Context) {
		gotAuthorization = c.GetHeader("Authorization")

		c.JSON(http.StatusOK, []gin.H{})
	})

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticToken{})

	err := client.Request(context.Background(), http.MethodGet, "/competition", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuthorization)
}

func TestRequestErrorClassification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.PUT("/bet", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request: score out of range"})
	})
	router.POST("/competitor", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	})
	router.GET("/broken", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticToken{})
	ctx := context.Background()

	err := client.Request(ctx, http.MethodPut, "/bet", gin.H{}, nil)
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "bad request: score out of range", Message(err))

	err = client.Request(ctx, http.MethodPost, "/competitor", gin.H{}, nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsRejected(err))

	err = client.Request(ctx, http.MethodGet, "/broken", nil, nil)
	require.Error(t, err)
	assert.False(t, IsRejected(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "boom", Message(err))
}

func TestRequestTransportFailure(t *testing.T) {
	// Nothing listens here; the failure has no response to classify.
	client := NewClient("http://127.0.0.1:1", time.Second, staticToken{})

	err := client.Request(context.Background(), http.MethodGet, "/competition", nil, nil)
	require.Error(t, err)
	assert.False(t, IsRejected(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "something went wrong, please try again", Message(err))
}
