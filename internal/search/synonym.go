package search

var synonyms = map[string][]string{
	"developer":       {"engineer", "programmer"},
	"engineer":        {"developer"},
	"programmer":      {"developer", "engineer"},
	"frontend":        {"front end", "ui developer"},
	"backend":         {"back end", "server developer"},
	"fullstack":       {"full stack"},
	"ml":              {"machine learning"},
	"ai":              {"artificial intelligence", "machine learning"},
	"data scientist":  {"data analyst", "machine learning engineer"},
	"data analyst":    {"business analyst", "data scientist"},
	"devops":          {"site reliability", "cloud engineer"},
	"designer":        {"ui designer", "ux designer", "graphic designer"},
	"accountant":      {"finance officer", "auditor"},
	"marketing":       {"digital marketing", "brand"},
	"sales":           {"business development", "account manager"},
	"admin":           {"administration", "administrative assistant"},
	"hr":              {"human resources", "recruiter"},
	"project manager": {"project coordinator", "program manager"},
	"teacher":         {"lecturer", "instructor"},
	"nurse":           {"healthcare", "caregiver"},
}

// Synonyms returns the variants registered for a normalized phrase.
func Synonyms(phrase string) []string {
	v, ok := synonyms[phrase]
	if !ok {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
