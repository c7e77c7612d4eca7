package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/theimpacts/impacts/internal/api"
)

func subscribe(t *testing.T, env *testEnv, email string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email})
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, httptest.NewRequest("POST", "/newsletter", bytes.NewReader(body)))
	return rec
}

func TestNewsletter_Subscribe(t *testing.T) {
	env := newTestEnv(t)

	if rec := subscribe(t, env, "reader@example.com"); rec.Code != http.StatusCreated {
		t.Fatalf("first subscribe status = %d; body: %s", rec.Code, rec.Body)
	}

	rec := subscribe(t, env, "reader@example.com")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", rec.Code)
	}
	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "Email already subscribed" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestNewsletter_Subscribe_Invalid(t *testing.T) {
	env := newTestEnv(t)
	if rec := subscribe(t, env, "not-an-email"); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestNewsletter_Subscribe_NormalizesEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := subscribe(t, env, "  Reader@Example.com ")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body)
	}
	var sub struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Errorf("email = %q, want reader@example.com", sub.Email)
	}

	if rec := subscribe(t, env, "reader@example.com"); rec.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", rec.Code)
	}
}

func TestNewsletter_ListAndUnsubscribe(t *testing.T) {
	env := newTestEnv(t)
	token := seedToken(t, env)
	subscribe(t, env, "a@example.com")
	subscribe(t, env, "b@example.com")

	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, authRequest(httptest.NewRequest("GET", "/newsletter", nil), token))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list api.SubscriberListResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 2 || len(list.Subscribers) != 2 {
		t.Errorf("total = %d, len = %d, want 2", list.Total, len(list.Subscribers))
	}

	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/newsletter/a@example.com", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("unsubscribe status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/newsletter/a@example.com", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second unsubscribe status = %d, want 404", rec.Code)
	}
}

func TestStatusChecks(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, httptest.NewRequest("POST", "/status", bytes.NewBufferString(`{"client_name":"probe"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d; body: %s", rec.Code, rec.Body)
	}
	var created map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"id", "client_name", "timestamp"} {
		if _, ok := created[key]; !ok {
			t.Errorf("response missing %q: %v", key, created)
		}
	}

	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, httptest.NewRequest("POST", "/status", bytes.NewBufferString(`{"client_name":""}`)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("empty client status = %d, want 422", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/status", nil))
	var list api.StatusCheckListResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Checks) != 1 {
		t.Errorf("len = %d, want 1", len(list.Checks))
	}
}
