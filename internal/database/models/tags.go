package models

// SkillTags is the vocabulary students and teams pick their tags from.
// Served as a single space-joined string by the tags endpoint.
var SkillTags = []string{
	"C#", "C++", "Java", "Python", "JS", "Swift", "Kotlin", "Dart", "Ruby",
	"C", "TS", "HTML", "CSS", "SQL",
	"Backend", "Frontend", "GameDev", "ML", "DevOps", "Analytics", "Other",
	"Android", "iOS", "DB", "Fullstack", "CrossPlatform",
}
