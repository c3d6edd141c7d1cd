package community

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/components"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/layout"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// Post is one entry of the club feed.
type Post struct {
	Author   string
	Tag      string
	Title    string
	Content  string
	Likes    int
	Comments int
}

// DefaultPosts is the static feed.
var DefaultPosts = []Post{
	{
		Author:   "Sarah Lee",
		Tag:      "Career",
		Title:    "How to prepare for Frontend Interviews?",
		Content:  "I have been studying React for 3 months. Any tips for big tech interviews?",
		Likes:    24,
		Comments: 8,
	},
	{
		Author:   "Mike Chen",
		Tag:      "Club",
		Title:    "Join our Data Science Study Group!",
		Content:  "We meet every Tuesday online. Beginners welcome. Let us crack the algorithms together.",
		Likes:    45,
		Comments: 12,
	},
}

// CommunityScreen shows the club feed. Posting is not available yet.
type CommunityScreen struct {
	posts  []Post
	cursor int
	notice bool
}

var _ screen.Screen = (*CommunityScreen)(nil)

// New creates a new CommunityScreen with the given posts.
func New(posts []Post) *CommunityScreen {
	return &CommunityScreen{posts: posts}
}

func (c *CommunityScreen) Init() tea.Cmd {
	return nil
}

func (c *CommunityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "up", "k":
		c.cursor = max(c.cursor-1, 0)
	case "down", "j":
		c.cursor = min(c.cursor+1, max(len(c.posts)-1, 0))
	case "+", "n":
		c.notice = true
		return c, nil
	}
	c.notice = false
	return c, nil
}

func (c *CommunityScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Community"))
	b.WriteString("\n\n")
	if c.notice {
		b.WriteString(theme.Hint.Render("╌╌ Posting is coming soon ╌╌"))
		b.WriteString("\n\n")
	}
	for i, p := range c.posts {
		card := renderPost(p, cw-4)
		if i == c.cursor {
			b.WriteString(components.FocusCard(card, cw))
		} else {
			b.WriteString(components.Card(card, cw))
		}
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().MaxHeight(height).Render(b.String()))
}

func renderPost(p Post, w int) string {
	head := theme.Body.Bold(true).Render(p.Author) + "  " + theme.BadgeAI.Render(p.Tag)
	title := theme.Title.Render(p.Title)
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Width(w).Render(p.Content)
	foot := theme.Subtitle.Render(fmt.Sprintf("♥ %d   ✉ %d   ↗ Share", p.Likes, p.Comments))
	return strings.Join([]string{head, title, body, foot}, "\n")
}

func (c *CommunityScreen) Title() string {
	return "Club"
}

func (c *CommunityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "+", Description: "New post"},
	}
}
