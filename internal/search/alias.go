package search

// skillAliases maps normalized spellings to one canonical skill name, so
// "Golang" and "go" count as the same requirement match.
var skillAliases = map[string]string{
	"golang":        "go",
	"go lang":       "go",
	"js":            "javascript",
	"ecmascript":    "javascript",
	"ts":            "typescript",
	"reactjs":       "react",
	"react.js":      "react",
	"nodejs":        "node.js",
	"node":          "node.js",
	"vuejs":         "vue",
	"vue.js":        "vue",
	"angularjs":     "angular",
	"postgres":      "postgresql",
	"psql":          "postgresql",
	"mongo":         "mongodb",
	"k8s":           "kubernetes",
	"py":            "python",
	"c sharp":       "c#",
	"dotnet":        ".net",
	"net core":      ".net",
	"springboot":    "spring boot",
	"ci cd":         "ci/cd",
	"ml":            "machine learning",
	"tf":            "terraform",
	"gcloud":        "google cloud",
	"gcp":           "google cloud",
	"amazon web services": "aws",
}

// CanonicalSkill normalizes a raw skill string and folds known aliases into
// their canonical form. Unknown skills come back normalized but otherwise
// untouched.
func CanonicalSkill(raw string) string {
	n := Normalize(raw)
	if n == "" {
		return ""
	}
	if canon, ok := skillAliases[n]; ok {
		return canon
	}
	return n
}

// CanonicalSkillSet builds a membership set of canonical skills.
func CanonicalSkillSet(raw []string) map[string]struct{} {
	out := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		c := CanonicalSkill(s)
		if c == "" {
			continue
		}
		out[c] = struct{}{}
	}
	return out
}
