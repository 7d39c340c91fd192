package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/primelabel/labelview/internal/core/domain"
)

func testContext(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func issuedCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestManager_Load_NoCookieYieldsAnonymous(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	m := NewManager(store, nil, false, time.Hour, zerolog.Nop())

	c, _ := testContext("")
	s := m.Load(c)

	if s.IsAuthenticated() {
		t.Fatal("expected anonymous session")
	}
	if s.ID != "" {
		t.Fatalf("anonymous session must not have an ID yet, got %q", s.ID)
	}
}

func TestManager_SaveThenLoad(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	m := NewManager(store, nil, false, time.Hour, zerolog.Nop())

	c, rec := testContext("")
	s := m.Load(c)
	s.Login("tok-1", &domain.User{Email: "a@example.com"})
	if err := m.Save(c, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.ID == "" {
		t.Fatal("save must assign an ID")
	}

	cookie := issuedCookie(rec)
	if cookie == nil {
		t.Fatal("save must issue the session cookie")
	}
	if cookie.Value != s.ID || !cookie.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}

	c2, _ := testContext(cookie.Value)
	loaded := m.Load(c2)
	if !loaded.IsAuthenticated() || loaded.User.Email != "a@example.com" {
		t.Fatalf("expected signed-in session, got %+v", loaded)
	}
}

func TestManager_Load_DropsExpiredToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	expired := func(token string) bool { return token == "stale" }
	m := NewManager(store, expired, false, time.Hour, zerolog.Nop())

	_ = store.Put(context.Background(), &Session{ID: "sess-1", Token: "stale", User: &domain.User{}})

	c, _ := testContext("sess-1")
	s := m.Load(c)

	if s.IsAuthenticated() {
		t.Fatal("expired token must be dropped during hydration")
	}

	// The drop is persisted.
	stored, err := store.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Token != "" || stored.User != nil {
		t.Fatalf("token drop not persisted: %+v", stored)
	}
}

func TestManager_Load_KeepsLiveToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	m := NewManager(store, func(string) bool { return false }, false, time.Hour, zerolog.Nop())

	_ = store.Put(context.Background(), &Session{ID: "sess-1", Token: "tok-1"})

	c, _ := testContext("sess-1")
	if s := m.Load(c); !s.IsAuthenticated() {
		t.Fatal("live token must survive hydration")
	}
}

func TestManager_Clear(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	m := NewManager(store, nil, false, time.Hour, zerolog.Nop())

	_ = store.Put(context.Background(), &Session{ID: "sess-1", Token: "tok-1"})

	c, rec := testContext("sess-1")
	s := m.Load(c)
	if err := m.Clear(c, s); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if s.IsAuthenticated() {
		t.Fatal("clear must log the session out")
	}
	if _, err := store.Get(context.Background(), "sess-1"); err == nil {
		t.Fatal("clear must delete the stored session")
	}

	cookie := issuedCookie(rec)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("clear must expire the cookie, got %+v", cookie)
	}
}
