package message

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"+998 99 690 95 75", "+998996909575", false},
		{"998-99-690-95-75", "+998996909575", false},
		{"(998) 99 6909575", "+998996909575", false},
		{"+99899", "+99899", false},
		{"+7 900 000 00 00", "", true},
		{"996909575", "", true},
		{"+998 99 abc", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPhone) {
				t.Errorf("NormalizePhone(%q): expected ErrInvalidPhone, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizePhone(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInMemoryList_NewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	if _, err := repo.Create(Message{Text: "first"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(Message{Text: "second"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all := repo.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(all))
	}
	if all[0].Text != "second" || all[1].Text != "first" {
		t.Fatalf("expected newest first, got %+v", all)
	}
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

func TestSubmit_StoresAndForwards(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewService(NewInMemoryRepository(), notifier)

	created, err := s.Submit(context.Background(), Message{Name: "Ali", Phone: "+998 99 690 95 75", Text: "Aventus bormi?"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.ID == 0 || created.Phone != "+998996909575" || created.CreatedAt == "" {
		t.Fatalf("unexpected stored message %+v", created)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	if !strings.Contains(notifier.sent[0], "Aventus bormi?") {
		t.Fatalf("notification missing the text: %q", notifier.sent[0])
	}
}

func TestSubmit_ValidatesBeforeNotifying(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewService(NewInMemoryRepository(), notifier)

	if _, err := s.Submit(context.Background(), Message{Phone: "+998996909575", Text: "  "}); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := s.Submit(context.Background(), Message{Phone: "12345", Text: "hi"}); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("nothing may be forwarded before validation passes")
	}
	if len(s.List()) != 0 {
		t.Fatalf("nothing may be stored before validation passes")
	}
}

func TestSubmit_NotifierFailureStillStores(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("bot unreachable")}
	s := NewService(NewInMemoryRepository(), notifier)

	created, err := s.Submit(context.Background(), Message{Phone: "+998996909575", Text: "hi"})
	if err == nil {
		t.Fatalf("expected the forward error")
	}
	if created.ID == 0 {
		t.Fatalf("message must be stored despite the failed forward")
	}
	if len(s.List()) != 1 {
		t.Fatalf("expected the message in the list")
	}
}

func TestFormatNotification_EscapesHTML(t *testing.T) {
	got := formatNotification(Message{
		Name:  "<script>alert(1)</script>",
		Phone: "+998996909575",
		Text:  "a <b. injected> b",
	})
	if strings.Contains(got, "<script>") {
		t.Fatalf("user markup must be escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped name, got %q", got)
	}
}

func TestTelegramSend_PayloadShape(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewTelegramClient(TelegramConfig{BotToken: "123:abc", ChatID: "-100200", BaseURL: srv.URL})
	if err := c.Send(context.Background(), "<b>hello</b>"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/bot123:abc/sendMessage" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody.ChatID != "-100200" || gotBody.Text != "<b>hello</b>" || gotBody.ParseMode != "HTML" {
		t.Fatalf("unexpected payload %+v", gotBody)
	}
}

func TestTelegramSend_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	}))
	defer srv.Close()

	c := NewTelegramClient(TelegramConfig{BotToken: "bad", ChatID: "1", BaseURL: srv.URL})
	if err := c.Send(context.Background(), "hi"); err == nil {
		t.Fatalf("expected an error on HTTP 401")
	}
}

func TestSubmitEndpoint(t *testing.T) {
	s := NewService(NewInMemoryRepository(), nil)
	app := fiber.New()
	NewHandler(s).RegisterPublicRoutes(app)

	body := []byte(`{"name":"Ali","phone":"+998 99 690 95 75","text":"order"}`)
	req := httptest.NewRequest("POST", "/api/v1/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	bad := []byte(`{"name":"Ali","phone":"12345","text":"order"}`)
	req2 := httptest.NewRequest("POST", "/api/v1/messages", bytes.NewReader(bad))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", res2.StatusCode)
	}
}

func TestSubmitEndpoint_ForwardFailureReturns202(t *testing.T) {
	s := NewService(NewInMemoryRepository(), &fakeNotifier{err: errors.New("down")})
	app := fiber.New()
	NewHandler(s).RegisterPublicRoutes(app)

	body := []byte(`{"name":"Ali","phone":"+998996909575","text":"order"}`)
	req := httptest.NewRequest("POST", "/api/v1/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 202 {
		t.Fatalf("expected 202, got %d", res.StatusCode)
	}
}
