package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))
	return r
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	r := newTestEngine()

	protected := r.Group("/")
	protected.Use(AuthRequired())
	protected.GET("/posts/:id/edit", func(c *gin.Context) {
		t.Error("handler must not run for an anonymous request")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/5/edit", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestAuthRequiredClearsStaleSession(t *testing.T) {
	r := newTestEngine()

	// Plants a session id without loading a user, like a session whose
	// account was deleted after login.
	r.GET("/seed", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user_id", uint(42))
		session.Save()
		c.Status(http.StatusOK)
	})

	protected := r.Group("/")
	protected.Use(AuthRequired())
	protected.GET("/private", func(c *gin.Context) {
		t.Error("handler must not run without a loaded user")
	})

	seed := httptest.NewRecorder()
	r.ServeHTTP(seed, httptest.NewRequest(http.MethodGet, "/seed", nil))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for _, ck := range seed.Result().Cookies() {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}
