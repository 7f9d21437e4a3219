package assistant

import (
	"testing"

	"github.com/evalizada/manat/internal/model"
)

func TestNew_SeedsGreeting(t *testing.T) {
	tr := New()
	msgs := tr.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Sender != model.SenderAssistant {
		t.Error("greeting must come from the assistant")
	}
}

func TestSend_AppendsAndSchedulesReply(t *testing.T) {
	tr := New()
	if !tr.Send("how much did I spend?") {
		t.Fatal("Send rejected valid input")
	}
	if tr.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", tr.Pending())
	}

	msgs := tr.Messages()
	last := msgs[len(msgs)-1]
	if last.Sender != model.SenderUser || last.Text != "how much did I spend?" {
		t.Errorf("last message = %+v", last)
	}
}

func TestSend_IgnoresBlank(t *testing.T) {
	tr := New()
	if tr.Send("   ") {
		t.Error("blank message accepted")
	}
	if tr.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", tr.Pending())
	}
}

func TestReply_LandsOncePerSend(t *testing.T) {
	tr := New()
	tr.Send("first")
	tr.Send("second")

	if !tr.Reply() || !tr.Reply() {
		t.Fatal("two replies were scheduled, both should land")
	}
	if tr.Reply() {
		t.Error("third reply landed with nothing pending")
	}

	msgs := tr.Messages()
	// greeting + 2 user + 2 assistant
	if len(msgs) != 5 {
		t.Fatalf("messages = %d, want 5", len(msgs))
	}
	if msgs[len(msgs)-1].Sender != model.SenderAssistant {
		t.Error("reply must come from the assistant")
	}
}
