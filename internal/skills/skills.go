package skills

import "regexp"

// Vocabulary is the fixed list of skill keywords matched against resume
// text. Matches are reported in this order, not in text order.
var Vocabulary = []string{
	"Python", "Java", "C++", "JavaScript", "React", "Node.js", "TypeScript",
	"SQL", "MongoDB", "AWS", "Docker", "Kubernetes", "Machine Learning", "Angular",
	"Deep Learning", "NLP", "Flask", "Django", "Git", "DevOps", "CI/CD",
	"Vue.js", "GraphQL", "REST API", "Agile", "Scrum", "TDD", "Microservices",
	"Cloud Computing", "Linux", "Shell Scripting", "Data Science", "Big Data",
	"Hadoop", "Spark", "R", "Swift", "Kotlin", "Go", "Ruby", "PHP", "HTML", "CSS",
	"Redux", "SASS", "Webpack", "Jenkins", "Terraform", "Serverless",
}

// One case-insensitive whole-word pattern per vocabulary entry,
// compiled once at startup.
var patterns = func() []*regexp.Regexp {
	ps := make([]*regexp.Regexp, len(Vocabulary))
	for i, skill := range Vocabulary {
		ps[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return ps
}()

// Extract returns the vocabulary entries that appear as a whole word
// anywhere in text, preserving vocabulary order. No fuzzy matching.
func Extract(text string) []string {
	found := []string{}
	for i, p := range patterns {
		if p.MatchString(text) {
			found = append(found, Vocabulary[i])
		}
	}
	return found
}
