package nlp

// CanonicalAliases maps a lowercase alias to the display name of a skill.
// Keys are either the noise-stripped form (see skillKey) or the raw
// lowercase token. Extend by adding entries; the table is never mutated
// at runtime.
var CanonicalAliases = map[string]string{
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"sql":        "SQL",
	"python":     "Python",
	"react":      "React",
	"reactjs":    "React",
	"react.js":   "React",
	"next.js":    "Next.js",
	"nextjs":     "Next.js",
	"fastapi":    "FastAPI",
	"golang":     "Go",
	"go":         "Go",
	"java":       "Java",
	"c":          "C",
	"c++":        "C++",
	"cpp":        "C++",
	"c#":         "C#",

	// databases
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"mongo":      "MongoDB",
	"redis":      "Redis",

	// infra
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"docker":     "Docker",
	"aws":        "AWS",
	"gcp":        "GCP",
	"azure":      "Azure",
	"git":        "Git",
	"cicd":       "CI/CD",
	"ci/cd":      "CI/CD",
	"ci cd":      "CI/CD",

	// api styles
	"rest":     "REST API",
	"restapi":  "REST API",
	"rest api": "REST API",
	"graphql":  "GraphQL",
	"grpc":     "gRPC",

	// frontend
	"vue":     "Vue",
	"vue.js":  "Vue",
	"vuejs":   "Vue",
	"angular": "Angular",
}
