package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is one entry of the transcript. Messages are never edited,
// reordered or removed.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
}

// Pending is an accepted send awaiting its reply.
type Pending struct {
	// Message is the trimmed user text to send.
	Message string
	// History is the transcript before the user message, in contract shape.
	History []Turn
	seq     uint64
}

// Replier produces the model's reply. *Gateway implements it.
type Replier interface {
	Reply(ctx context.Context, history []Turn, message string) (string, error)
}

// Transcript is the ordered conversation of one chat view. At most one send
// is in flight at a time. It is not safe for concurrent use.
type Transcript struct {
	messages []Message
	sending  bool
	seq      uint64
	now      func() time.Time
}

// NewTranscript returns a transcript seeded with the greeting.
func NewTranscript() *Transcript {
	t := &Transcript{now: time.Now}
	t.append(RoleModel, Greeting)
	return t
}

// Begin accepts text for sending. It rejects blank text and any send while
// another is in flight; on acceptance the user message is appended at once.
func (t *Transcript) Begin(text string) (Pending, bool) {
	text = strings.TrimSpace(text)
	if text == "" || t.sending {
		return Pending{}, false
	}
	history := t.History()
	t.append(RoleUser, text)
	t.sending = true
	t.seq++
	return Pending{Message: text, History: history, seq: t.seq}, true
}

// Complete appends the model's answer to p. A failed call yields
// FallbackReply and an empty reply yields EmptyReply, so the error never
// escapes. Completing anything but the in-flight send is ignored.
func (t *Transcript) Complete(p Pending, reply string, err error) (Message, bool) {
	if !t.sending || p.seq != t.seq {
		return Message{}, false
	}
	t.sending = false

	switch {
	case err != nil:
		reply = FallbackReply
	case strings.TrimSpace(reply) == "":
		reply = EmptyReply
	}
	return t.append(RoleModel, reply), true
}

// Send runs Begin, the reply call and Complete synchronously. It reports
// whether text was accepted.
func (t *Transcript) Send(ctx context.Context, r Replier, text string) bool {
	p, ok := t.Begin(text)
	if !ok {
		return false
	}
	reply, err := r.Reply(ctx, p.History, p.Message)
	t.Complete(p, reply, err)
	return true
}

// Sending reports whether a send is in flight.
func (t *Transcript) Sending() bool { return t.sending }

// Len returns the number of messages.
func (t *Transcript) Len() int { return len(t.messages) }

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// History returns the transcript as contract turns.
func (t *Transcript) History() []Turn {
	out := make([]Turn, len(t.messages))
	for i, m := range t.messages {
		out[i] = Turn{Role: m.Role, Parts: []Part{{Text: m.Text}}}
	}
	return out
}

func (t *Transcript) append(role Role, text string) Message {
	m := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: t.now(),
	}
	t.messages = append(t.messages, m)
	return m
}
