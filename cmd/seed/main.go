package main

import (
	"log"

	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/taxonomy"

	"github.com/fatih/color"
)

// Sanity check for the question catalog. The catalog is compiled in, so
// there is nothing to insert; this validates the content and prints a
// summary of what a deployed instance will serve.
func main() {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Fatalf("Error: catalog validation failed: %v", err)
	}

	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	green.Println("Catalog is consistent.")

	cyan.Printf("Rapid questions:    %d\n", len(cat.Rapid))
	cyan.Printf("Fork questions:     %d\n", len(cat.Forks))
	cyan.Printf("Archetype profiles: %d\n", len(cat.Profiles))
	cyan.Printf("Subdomain menus:    %d\n", len(cat.Subdomains))

	for _, key := range taxonomy.ArchetypeKeys() {
		profile := cat.Profiles[taxonomy.Archetype(key)]
		cyan.Printf("  %-12s %s\n", key, firstLine(profile.Behavioral))
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '.' || r == '\n' {
			return s[:i+1]
		}
	}
	return s
}
