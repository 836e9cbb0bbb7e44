package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/server/auth"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
	"github.com/zayats-yacht/yachtclient/internal/server/services"
)

const (
	sessionKey = "session"

	signInErrorURL = "/api/auth/error?error=CredentialsSignin"
	csrfErrorURL   = "/api/auth/signin?csrf=true"
)

type csrfResponse struct {
	CSRFToken string `json:"csrfToken"`
}

type redirectResponse struct {
	URL string `json:"url"`
}

type sessionUser struct {
	Email string  `json:"email"`
	ID    string  `json:"id"`
	Image *string `json:"image"`
	Name  *string `json:"name"`
}

type sessionResponse struct {
	User    *sessionUser `json:"user,omitempty"`
	Expires string       `json:"expires,omitempty"`
}

// CSRFToken issues a token, stored in a cookie and echoed in the body, for
// the double-submit check on the form endpoints.
func (h *Handler) CSRFToken(c *gin.Context) {
	token, err := auth.NewCSRFToken()
	if err != nil {
		h.logger.Error(c.Request.Context(), "csrf token generation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.setCookie(c, common.CSRFCookieName, token, time.Time{})
	c.JSON(http.StatusOK, csrfResponse{CSRFToken: token})
}

// SignIn checks the form credentials and sets the session cookie.
func (h *Handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.checkCSRF(c) {
		c.JSON(http.StatusForbidden, redirectResponse{URL: csrfErrorURL})
		return
	}

	token, sess, err := h.users.Login(ctx, c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.logger.Info(ctx, "sign-in rejected")
			c.JSON(http.StatusUnauthorized, redirectResponse{URL: signInErrorURL})
			return
		}
		h.logger.Error(ctx, "sign-in failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.setCookie(c, common.SessionCookieName, token, sess.ExpiresAt)
	h.logger.Info(ctx, "signed in", "user_id", sess.User.ID)

	callback := c.PostForm("callbackUrl")
	if callback == "" {
		callback = "/"
	}
	c.JSON(http.StatusOK, redirectResponse{URL: callback})
}

// GetSession answers with the signed-in user, or an empty object.
func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		if !errors.Is(err, services.ErrSessionNotFound) {
			h.logger.Error(c.Request.Context(), "session lookup failed", "err", err)
		}
		c.JSON(http.StatusOK, sessionResponse{})
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		User: &sessionUser{
			Email: sess.User.Email,
			ID:    sess.User.ID,
			Image: sess.User.Image,
			Name:  sess.User.Name,
		},
		Expires: sess.ExpiresAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

// SignOut clears the session cookie.
func (h *Handler) SignOut(c *gin.Context) {
	if !h.checkCSRF(c) {
		c.JSON(http.StatusForbidden, redirectResponse{URL: csrfErrorURL})
		return
	}

	h.clearCookie(c, common.SessionCookieName)
	c.JSON(http.StatusOK, redirectResponse{URL: "/"})
}

// requireSession rejects requests without a valid session and stores the
// session in the gin context otherwise.
func (h *Handler) requireSession(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		if !errors.Is(err, services.ErrSessionNotFound) {
			h.logger.Error(c.Request.Context(), "session lookup failed", "err", err)
		}
		fail(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func (h *Handler) session(c *gin.Context) (*models.Session, error) {
	token, err := c.Cookie(common.SessionCookieName)
	if err != nil {
		return nil, services.ErrSessionNotFound
	}
	return h.users.Session(c.Request.Context(), token)
}

func (h *Handler) checkCSRF(c *gin.Context) bool {
	cookie, err := c.Cookie(common.CSRFCookieName)
	if err != nil {
		return false
	}
	return auth.CheckCSRF(cookie, c.PostForm("csrfToken"))
}

// setCookie sets an HttpOnly, SameSite=Lax cookie on "/". A zero expires
// makes it a browser-session cookie. The dev server speaks plain HTTP, so
// cookies are not marked Secure.
func (h *Handler) setCookie(c *gin.Context, name, value string, expires time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(c *gin.Context, name string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
