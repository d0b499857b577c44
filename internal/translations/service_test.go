package translations

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestDefaults_KeyParity(t *testing.T) {
	b := Defaults()
	uz, ru := b["uz"], b["ru"]
	if len(uz) == 0 || len(ru) == 0 {
		t.Fatalf("defaults must cover both languages")
	}
	if len(uz) != len(ru) {
		t.Fatalf("key count differs: uz=%d ru=%d", len(uz), len(ru))
	}
	for k := range uz {
		if _, ok := ru[k]; !ok {
			t.Fatalf("key %q missing in ru", k)
		}
	}
}

func TestGet_FallsBackToDefaultsWhenEmpty(t *testing.T) {
	s := NewService(NewInMemoryRepository(Bundle{}))
	b := s.Get()
	if len(b["uz"]) == 0 || len(b["ru"]) == 0 {
		t.Fatalf("expected defaults, got %v", b)
	}
}

func TestReplace_RejectsMissingLanguage(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	err := s.Replace(Bundle{"uz": Strings{"title": "x"}})
	if !errors.Is(err, ErrKeyMismatch) {
		t.Fatalf("expected ErrKeyMismatch, got %v", err)
	}
}

func TestReplace_RejectsKeyDrift(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	err := s.Replace(Bundle{
		"uz": Strings{"title": "Sarlavha", "subtitle": "Izoh"},
		"ru": Strings{"title": "Заголовок"},
	})
	if !errors.Is(err, ErrKeyMismatch) {
		t.Fatalf("expected ErrKeyMismatch, got %v", err)
	}
}

func TestReplace_AcceptsMatchingSets(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo)
	b := Bundle{
		"uz": Strings{"title": "Sarlavha"},
		"ru": Strings{"title": "Заголовок"},
	}
	if err := s.Replace(b); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if repo.Get()["ru"]["title"] != "Заголовок" {
		t.Fatalf("bundle not stored")
	}
}

func TestPutTranslations_MismatchReturns422(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(nil)))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)

	body, _ := json.Marshal(Bundle{"uz": Strings{"a": "1"}, "ru": Strings{"b": "2"}})
	req := httptest.NewRequest("PUT", "/api/v1/translations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 422 {
		t.Fatalf("expected 422, got %d", res.StatusCode)
	}
}

func TestGetTranslations_SingleLanguage(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(Defaults())))
	app := fiber.New()
	h.RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/translations?lang=uz", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var strs Strings
	if err := json.NewDecoder(res.Body).Decode(&strs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(strs) == 0 {
		t.Fatalf("expected uz strings")
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/translations?lang=fr", nil))
	if res2.StatusCode != 404 {
		t.Fatalf("expected 404 for unknown language, got %d", res2.StatusCode)
	}
}
