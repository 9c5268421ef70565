// Package assistant implements the canned-response generator behind the
// "AI assistant" endpoint: an ordered keyword dispatch over the portfolio
// content, first match wins.
package assistant

import (
	"fmt"
	"strings"

	"github.com/chandru-wp/portfolio-server/internal/models"
)

// Snapshot is a point-in-time read of every content collection the
// generator can speak about.
type Snapshot struct {
	Profile    *models.Profile
	Skills     []models.SkillGroup
	Experience []models.Experience
	Education  []models.Education
	Projects   []models.Portfolio
}

type category struct {
	name     string
	keywords []string
	render   func(Snapshot) string
}

// Category order is part of the observable contract: a question matching
// several keyword sets is answered by the first one below.
var categories = []category{
	{
		name:     "skills",
		keywords: []string{"skill", "technolog", "tech stack", "stack", "tools", "languages"},
		render:   renderSkills,
	},
	{
		name:     "projects",
		keywords: []string{"project", "portfolio", "built", "github", "showcase"},
		render:   renderProjects,
	},
	{
		name:     "experience",
		keywords: []string{"experience", "job", "intern", "company", "career", "worked"},
		render:   renderExperience,
	},
	{
		name:     "education",
		keywords: []string{"education", "degree", "college", "university", "study", "cgpa", "school"},
		render:   renderEducation,
	},
	{
		name:     "contact",
		keywords: []string{"contact", "email", "phone", "reach", "hire", "connect"},
		render:   renderContact,
	},
	{
		name:     "about",
		keywords: []string{"about", "who are you", "yourself", "introduce", "bio"},
		render:   renderAbout,
	},
	{
		name:     "greeting",
		keywords: []string{"hello", "hey", "hi", "greetings", "good morning", "good afternoon", "good evening"},
		render:   renderGreeting,
	},
	{
		name:     "help",
		keywords: []string{"help", "what can you", "topics", "options"},
		render:   renderHelp,
	},
}

const fallbackAnswer = "I'm not sure about that one. You can ask me about my skills, " +
	"projects, experience, education, contact details, or a quick intro — " +
	"try \"What are your skills?\""

// Generate answers a free-text question from the snapshot. It is
// deterministic and side-effect free.
func Generate(question string, snap Snapshot) string {
	q := strings.ToLower(question)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(q, kw) {
				return c.render(snap)
			}
		}
	}
	return fallbackAnswer
}

func renderSkills(snap Snapshot) string {
	if len(snap.Skills) == 0 {
		return "I work across the full stack — frontend, backend, databases, " +
			"cloud platforms and AI/ML. Happy to go deeper on any of those!"
	}
	var b strings.Builder
	b.WriteString("Here's my technical skill set:\n\n")
	for _, g := range snap.Skills {
		fmt.Fprintf(&b, "💡 %s: %s\n", g.Category, strings.Join(g.Items, ", "))
	}
	b.WriteString("\nAlways picking up new tools as projects demand them!")
	return b.String()
}

func renderProjects(snap Snapshot) string {
	if len(snap.Projects) == 0 {
		return "I've built several full-stack and AI projects — monitoring tools, " +
			"link managers and portfolio platforms. Check back soon for the full list!"
	}
	var b strings.Builder
	b.WriteString("Here are some projects I've worked on:\n\n")
	for _, p := range snap.Projects {
		fmt.Fprintf(&b, "🚀 %s — %s", p.Title, p.Description)
		if p.Github != "" {
			fmt.Fprintf(&b, " (GitHub: %s)", p.Github)
		}
		if p.Website != "" {
			fmt.Fprintf(&b, " (Live: %s)", p.Website)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nAsk me about any of them for more detail!")
	return b.String()
}

func renderExperience(snap Snapshot) string {
	if len(snap.Experience) == 0 {
		return "I've worked across internships and developer roles building " +
			"full-stack applications. Details coming soon!"
	}
	var b strings.Builder
	b.WriteString("My professional experience so far:\n\n")
	for _, e := range snap.Experience {
		fmt.Fprintf(&b, "💼 %s at %s (%s): %s", e.Role, e.Company, e.Duration, e.Description)
		if len(e.Tech) > 0 {
			fmt.Fprintf(&b, " [Tech: %s]", strings.Join(e.Tech, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nEvery role taught me something new about shipping software.")
	return b.String()
}

func renderEducation(snap Snapshot) string {
	if len(snap.Education) == 0 {
		return "I'm pursuing a degree in AI & Data Science. Ask me again soon " +
			"for the full academic record!"
	}
	var b strings.Builder
	b.WriteString("My education:\n\n")
	for _, e := range snap.Education {
		fmt.Fprintf(&b, "🎓 %s — %s (%s)", e.Degree, e.Institution, e.Year)
		if e.CGPA != "" {
			fmt.Fprintf(&b, ", CGPA %s", e.CGPA)
		}
		if len(e.Highlights) > 0 {
			fmt.Fprintf(&b, " | Highlights: %s", strings.Join(e.Highlights, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderContact(snap Snapshot) string {
	p := snap.Profile
	if p == nil || (p.Email == "" && p.Phone == "") {
		return "You can reach me through the contact form on this site — " +
			"I read every message!"
	}
	var b strings.Builder
	b.WriteString("I'd love to hear from you! ")
	if p.Email != "" {
		fmt.Fprintf(&b, "📧 Email: %s ", p.Email)
	}
	if p.Phone != "" {
		fmt.Fprintf(&b, "📱 Phone: %s ", p.Phone)
	}
	b.WriteString("— or drop a message through the contact form.")
	return b.String()
}

func renderAbout(snap Snapshot) string {
	if snap.Profile == nil || snap.Profile.About == "" {
		return "I'm a full-stack developer who enjoys building things end to end — " +
			"from polished frontends to reliable backends."
	}
	return fmt.Sprintf("👋 I'm %s. %s", snap.Profile.Name, snap.Profile.About)
}

func renderGreeting(Snapshot) string {
	return "Hello! 👋 I'm the portfolio assistant. Ask me about my skills, " +
		"projects, experience, education, or how to get in touch."
}

func renderHelp(Snapshot) string {
	return "I can tell you about: skills, projects, experience, education, " +
		"contact, and a bit about me. Try \"What projects have you built?\""
}
