package httpServices

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendPostsMessage(t *testing.T) {
	var got SendSMSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing auth header")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message_id":"m-1","status":"queued"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, "secret").Send(context.Background(), SendSMSRequest{To: "+971500000000", Message: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.MessageID != "m-1" {
		t.Errorf("message id = %s", resp.MessageID)
	}
	if got.To != "+971500000000" || got.Message != "hi" {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestSendRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "").Send(context.Background(), SendSMSRequest{To: "+1555", Message: "x"}); err == nil {
		t.Fatal("expected error")
	}
}
