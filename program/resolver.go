// Package program resolves a program's direct imports from the explorer.
package program

import (
	"regexp"

	"aleo-broadcaster/models"
	"aleo-broadcaster/util/log"
)

var importPattern = regexp.MustCompile(`import\s+([a-zA-Z0-9_.]+)`)

// Fetcher gets a program's source by name.
type Fetcher interface {
	FetchProgram(name string) (*models.Program, error)
}

// ScanImports returns the distinct imported program names in first-seen order.
func ScanImports(source string) []string {
	seen := make(map[string]bool)
	names := []string{}

	for _, match := range importPattern.FindAllStringSubmatch(source, -1) {
		name := match[1]
		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}

// ResolveImports fetches each program imported by p once. Imports of imports
// are not followed.
func ResolveImports(f Fetcher, p *models.Program) (models.Imports, error) {
	text, err := p.Text()
	if err != nil {
		return nil, err
	}

	imports := models.Imports{}
	for _, name := range ScanImports(text) {
		log.Debugf("resolve import %s of %s", name, p.Name)

		imported, err := f.FetchProgram(name)
		if err != nil {
			return nil, err
		}

		imports[name] = imported.Source
	}

	return imports, nil
}

// Resolve fetches the named program and its direct imports.
func Resolve(f Fetcher, name string) (*models.Program, models.Imports, error) {
	p, err := f.FetchProgram(name)
	if err != nil {
		return nil, nil, err
	}

	imports, err := ResolveImports(f, p)
	if err != nil {
		return nil, nil, err
	}

	return p, imports, nil
}
