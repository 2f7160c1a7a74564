package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWallet = common.HexToAddress("0x1000000000000000000000000000000000000001")

func newTestKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	})

	return key, string(publicPEM)
}

func signTestToken(t *testing.T, key *rsa.PrivateKey, subject string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func setupAuthRouter(publicKeyPEM string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", Auth(AuthConfig{JWTPublicKey: publicKeyPEM}), func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"caller": caller.Hex()})
	})

	return router
}

func performAuthRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestAuthAcceptsValidToken(t *testing.T) {
	key, publicPEM := newTestKeyPair(t)
	router := setupAuthRouter(publicPEM)

	token := signTestToken(t, key, testWallet.Hex(), time.Now().Add(time.Hour))
	w := performAuthRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testWallet.Hex())
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	_, publicPEM := newTestKeyPair(t)
	router := setupAuthRouter(publicPEM)

	w := performAuthRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestAuthRejectsNonBearerScheme(t *testing.T) {
	key, publicPEM := newTestKeyPair(t)
	router := setupAuthRouter(publicPEM)

	token := signTestToken(t, key, testWallet.Hex(), time.Now().Add(time.Hour))
	w := performAuthRequest(router, "Basic "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	key, publicPEM := newTestKeyPair(t)
	router := setupAuthRouter(publicPEM)

	token := signTestToken(t, key, testWallet.Hex(), time.Now().Add(-time.Hour))
	w := performAuthRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsWrongKey(t *testing.T) {
	_, publicPEM := newTestKeyPair(t)
	otherKey, _ := newTestKeyPair(t)
	router := setupAuthRouter(publicPEM)

	token := signTestToken(t, otherKey, testWallet.Hex(), time.Now().Add(time.Hour))
	w := performAuthRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsNonAddressSubject(t *testing.T) {
	key, publicPEM := newTestKeyPair(t)
	router := setupAuthRouter(publicPEM)

	token := signTestToken(t, key, "alice", time.Now().Add(time.Hour))
	w := performAuthRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
