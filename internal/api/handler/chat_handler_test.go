package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestChatHandler_Send(t *testing.T) {
	chat := &stubChat{}
	h := NewChatHandler(chat)

	c, rec := newContext(http.MethodPost, "/chat/messages", `{"text":"Do you open on Sundays?"}`, "")
	if err := h.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp transcriptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Accepted || len(resp.Messages) != 2 {
		t.Fatalf("unexpected transcript: %+v", resp)
	}
}

func TestChatHandler_Send_BlankIgnored(t *testing.T) {
	chat := &stubChat{}
	h := NewChatHandler(chat)

	c, rec := newContext(http.MethodPost, "/chat/messages", `{"text":"   "}`, "")
	if err := h.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp transcriptResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Accepted || len(resp.Messages) != 0 {
		t.Fatalf("blank message should be ignored: %+v", resp)
	}
}

func TestChatHandler_Reset(t *testing.T) {
	chat := &stubChat{}
	h := NewChatHandler(chat)

	c, _ := newContext(http.MethodDelete, "/chat", "", "")
	if err := h.Reset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if chat.resets != 1 {
		t.Fatalf("expected one reset, got %d", chat.resets)
	}
}
