package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/peoplebook/peoplebook/pkg/config"
)

type SessionData struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionMiddleware attaches a session to every request. Visitors without a
// valid session cookie get a fresh anonymous session, so flash messages
// always have a session to live in.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData := getSessionFromCookie(c)

		if sessionData == nil {
			sessionData = newSession()
			setSessionCookie(c, sessionData)
		}

		c.Set("session", sessionData)

		c.Next()
	}
}

// GetSession retrieves session data from context
func GetSession(c *gin.Context) *SessionData {
	session, exists := c.Get("session")
	if !exists {
		return nil
	}

	if sessionData, ok := session.(*SessionData); ok {
		return sessionData
	}

	return nil
}

func newSession() *SessionData {
	return &SessionData{
		ID:        uuid.New().String(),
		ExpiresAt: time.Now().Add(sessionTTL()),
	}
}

// getSessionFromCookie extracts and validates session data from cookie
func getSessionFromCookie(c *gin.Context) *SessionData {
	cookie, err := c.Cookie("session")
	if err != nil {
		return nil
	}

	// Split cookie value (signature.data)
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}

	signature, data := parts[0], parts[1]

	if !verifySignature(data, signature) {
		return nil
	}

	decodedData, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var sessionData SessionData
	if err := json.Unmarshal(decodedData, &sessionData); err != nil {
		return nil
	}

	if time.Now().After(sessionData.ExpiresAt) {
		return nil
	}

	return &sessionData
}

// setSessionCookie writes the signed session cookie. Secure is only set in
// production so local development over plain HTTP keeps working.
func setSessionCookie(c *gin.Context, sessionData *SessionData) {
	data, err := json.Marshal(sessionData)
	if err != nil {
		return
	}

	encodedData := base64.URLEncoding.EncodeToString(data)
	signature := createSignature(encodedData)

	ttl := int(sessionTTL().Seconds())
	secure := config.AppConfig != nil && config.AppConfig.IsProduction()

	c.SetCookie("session", signature+"."+encodedData, ttl, "/", "", secure, true)
}

func sessionTTL() time.Duration {
	days := 14
	if config.AppConfig != nil && config.AppConfig.Session.TTLDays > 0 {
		days = config.AppConfig.Session.TTLDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// createSignature creates HMAC signature for data
func createSignature(data string) string {
	secret := "default-secret-key"
	if config.AppConfig != nil {
		secret = config.AppConfig.Session.Secret
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

// verifySignature verifies HMAC signature
func verifySignature(data, signature string) bool {
	expectedSignature := createSignature(data)
	return hmac.Equal([]byte(signature), []byte(expectedSignature))
}
