// Package skills implements the suggestion engine behind the resume
// builder's comma-delimited skill inputs: a static candidate catalog per
// category, substring filtering over the token being typed, and the commit
// rules that turn keystrokes into a normalized token list.
package skills

import "fmt"

type Category string

const (
	CategoryTechnical Category = "technical"
	CategorySoft      Category = "soft"
	CategoryLanguages Category = "languages"
)

// MaxSuggestions caps every suggestion result.
const MaxSuggestions = 10

// Catalog maps each category to its fixed, ordered candidate list. Built
// once at startup; an incomplete table is a construction error rather than
// a silent empty lookup later.
type Catalog struct {
	candidates map[Category][]string
}

func NewCatalog(candidates map[Category][]string) (*Catalog, error) {
	for _, cat := range []Category{CategoryTechnical, CategorySoft, CategoryLanguages} {
		if len(candidates[cat]) == 0 {
			return nil, fmt.Errorf("skill catalog is missing category %q", cat)
		}
	}
	return &Catalog{candidates: candidates}, nil
}

// NewDefaultCatalog returns the built-in candidate table.
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(map[Category][]string{
		CategoryTechnical: technicalSkills,
		CategorySoft:      softSkills,
		CategoryLanguages: languageSkills,
	})
	if err != nil {
		// The built-in table always has all three categories.
		panic(err)
	}
	return c
}

// Candidates returns the ordered list for a category, nil when the category
// is unknown.
func (c *Catalog) Candidates(cat Category) []string {
	return c.candidates[cat]
}

var technicalSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C", "C++", "C#", "Go",
	"Golang", "Rust", "Kotlin", "Swift", "PHP", "Ruby", "Scala", "R",
	"HTML", "CSS", "SQL", "NoSQL", "React", "Angular", "Vue.js", "Node.js",
	"Express.js", "Django", "Flask", "Spring Boot", "FastAPI", ".NET",
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"Docker", "Kubernetes", "AWS", "Azure", "Google Cloud", "Terraform",
	"Git", "Linux", "CI/CD", "GraphQL", "REST API", "gRPC",
	"Machine Learning", "Deep Learning", "Data Analysis", "TensorFlow",
	"PyTorch", "Pandas", "NumPy", "Computer Vision", "NLP",
	"Android Development", "iOS Development", "Flutter", "React Native",
	"Cybersecurity", "Blockchain", "DevOps", "Microservices",
}

var softSkills = []string{
	"Communication", "Teamwork", "Leadership", "Problem Solving",
	"Critical Thinking", "Time Management", "Adaptability", "Creativity",
	"Work Ethic", "Attention to Detail", "Conflict Resolution",
	"Decision Making", "Emotional Intelligence", "Negotiation",
	"Presentation Skills", "Public Speaking", "Project Management",
	"Collaboration", "Analytical Thinking", "Self Motivation",
	"Organization", "Mentoring", "Active Listening", "Stress Management",
}

var languageSkills = []string{
	"English", "Hindi", "Tamil", "Telugu", "Kannada", "Malayalam",
	"Marathi", "Bengali", "Gujarati", "Punjabi", "Urdu", "Sanskrit",
	"French", "German", "Spanish", "Japanese", "Korean", "Mandarin",
	"Arabic", "Russian", "Portuguese", "Italian",
}
