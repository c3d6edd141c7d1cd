package chat

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	conv "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/chat"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/components"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/layout"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// replyMsg carries the gateway's answer for a pending send.
type replyMsg struct {
	Pending conv.Pending
	Reply   string
	Err     error
}

const scrollStep = 5

// ChatScreen is the conversation with Little Zhi.
type ChatScreen struct {
	transcript *conv.Transcript
	replier    conv.Replier
	input      components.Field
	mascot     MascotVariant
	// scroll is how many lines the view sits above the newest message.
	scroll int
}

var _ screen.Screen = (*ChatScreen)(nil)

// New creates a ChatScreen over transcript. Replies come from replier.
func New(transcript *conv.Transcript, replier conv.Replier) *ChatScreen {
	return &ChatScreen{
		transcript: transcript,
		replier:    replier,
		input:      components.NewField("Message", "Ask about career, study, or life...", 500),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return nil
}

// Activate focuses the message field.
func (c *ChatScreen) Activate() tea.Cmd {
	return c.input.Focus()
}

// CapturingInput is always true; the message field owns typing.
func (c *ChatScreen) CapturingInput() bool {
	return true
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if _, ok := c.transcript.Complete(msg.Pending, msg.Reply, msg.Err); ok {
			c.scroll = 0
			c.mascot = MascotIdle
			if msg.Err != nil {
				c.mascot = MascotNapping
			}
		}
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return c, c.send()
		case "pgup":
			c.scroll += scrollStep
			return c, nil
		case "pgdown":
			c.scroll = max(c.scroll-scrollStep, 0)
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() tea.Cmd {
	p, ok := c.transcript.Begin(c.input.Value())
	if !ok {
		return nil
	}
	c.input.Reset()
	c.scroll = 0
	c.mascot = MascotThinking

	replier := c.replier
	return func() tea.Msg {
		reply, err := replier.Reply(context.Background(), p.History, p.Message)
		return replyMsg{Pending: p, Reply: reply, Err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		RenderMascot(c.mascot),
		"  ",
		theme.Title.Render("Little Zhi")+"\n"+theme.Subtitle.Render(c.status()),
	)
	c.input.SetWidth(cw - 4)
	input := components.FocusCard(c.input.View(), cw)

	vpHeight := max(height-lipgloss.Height(header)-lipgloss.Height(input), 1)
	vp := viewport.New(viewport.WithWidth(cw), viewport.WithHeight(vpHeight))
	vp.SetContent(c.renderMessages(cw))
	vp.GotoBottom()
	vp.ScrollUp(c.scroll)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, header, vp.View(), input))
}

func (c *ChatScreen) status() string {
	if c.transcript.Sending() {
		return "Typing..."
	}
	return "Online Assistant"
}

func (c *ChatScreen) renderMessages(width int) string {
	bubbleWidth := max(width*3/4, 10)
	msgs := c.transcript.Messages()
	rows := make([]string, 0, len(msgs)+1)
	for _, m := range msgs {
		if m.Role == conv.RoleUser {
			b := theme.UserBubble.MaxWidth(bubbleWidth).Render(wrap(m.Text, bubbleWidth-2))
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Right, b))
		} else {
			rows = append(rows, theme.ModelBubble.MaxWidth(bubbleWidth).Render(wrap(m.Text, bubbleWidth-2)))
		}
	}
	if c.transcript.Sending() {
		rows = append(rows, theme.Hint.Render("Little Zhi is thinking..."))
	}
	return strings.Join(rows, "\n\n")
}

func wrap(s string, width int) string {
	return lipgloss.Wrap(s, max(width, 1), " -")
}

func (c *ChatScreen) Title() string {
	return "AI Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
	}
}
