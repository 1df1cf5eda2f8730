package publisher

import (
	"fmt"
	"strings"

	"go-remote-jobs-bot/internal/models"
)

// hotPriority marks a posting hot enough for the badge.
const hotPriority = 50

const maxHashtags = 8

// FormatMessage renders the channel message (HTML parse mode).
func FormatMessage(job models.JobPosting, priority int) string {
	hotBadge := ""
	if priority >= hotPriority {
		hotBadge = "🔥 HOT "
	}

	salary := strings.TrimSpace(job.Salary)
	if salary == "" {
		salary = "Not disclosed"
	}

	return fmt.Sprintf(`%s%s <b>%s</b>

🏢 <b>Company:</b> %s
📍 <b>Location:</b> %s
💼 <b>Type:</b> %s
💰 <b>Salary:</b> %s

🔗 <a href="%s">Apply Here</a>

<i>Via %s</i>

📢 Share this with a friend who's job hunting

%s`,
		hotBadge, jobEmoji(job), job.Title,
		job.Company, job.Location, job.Type, salary,
		job.URL, job.Source, hashtags(job))
}

// hashtags derives level and technology tags from the posting text.
func hashtags(job models.JobPosting) string {
	tags := []string{"#RemoteJobs", "#DeveloperJobs"}
	searchText := strings.ToLower(job.Title + " " + job.Description + " ")

	switch {
	case strings.Contains(searchText, "intern"):
		tags = append(tags, "#Internships", "#EntryLevel")
	case strings.Contains(searchText, "junior"),
		strings.Contains(searchText, "trainee"),
		strings.Contains(searchText, "entry"):
		tags = append(tags, "#JuniorDev", "#CareerStart")
	case strings.Contains(searchText, "senior"), strings.Contains(searchText, "lead"):
		tags = append(tags, "#SeniorDev", "#Experienced")
	}

	// Ordered so tag output is deterministic
	techTags := []struct{ keyword, tag string }{
		{"python", "#Python"},
		{"javascript", "#JavaScript"},
		{"typescript", "#TypeScript"},
		{"react", "#React"},
		{"node", "#NodeJS"},
		{"java", "#Java"},
		{"golang", "#Golang"},
		{"rust", "#Rust"},
		{"devops", "#DevOps"},
		{"frontend", "#Frontend"},
		{"backend", "#Backend"},
		{"fullstack", "#FullStack"},
		{"full stack", "#FullStack"},
		{"mobile", "#Mobile"},
		{"android", "#Android"},
		{"ios", "#iOS"},
	}

	for _, tt := range techTags {
		if len(tags) >= maxHashtags {
			break
		}
		if strings.Contains(searchText, tt.keyword) && !contains(tags, tt.tag) {
			tags = append(tags, tt.tag)
		}
	}

	return strings.Join(tags, " ")
}

func jobEmoji(job models.JobPosting) string {
	title := strings.ToLower(job.Title)

	switch {
	case strings.Contains(title, "intern"):
		return "🎓"
	case strings.Contains(title, "junior"), strings.Contains(title, "trainee"):
		return "🌱"
	case strings.Contains(title, "senior"):
		return "🚀"
	case strings.Contains(title, "frontend"):
		return "🎨"
	case strings.Contains(title, "backend"):
		return "⚙️"
	case strings.Contains(title, "full stack"), strings.Contains(title, "fullstack"):
		return "🔄"
	case strings.Contains(title, "mobile"):
		return "📱"
	case strings.Contains(title, "devops"):
		return "🔧"
	}
	return "💻"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
