package main

import (
	"fmt"

	"github.com/vango-dev/routefs/internal/scaffold"
)

func runCreate(name, dir string, port int, modulePath string) error {
	if name == "" {
		name = scaffold.DefaultName
	}

	info("Creating %s...", name)

	files, err := scaffold.Scaffold(name, dir, scaffold.DefaultTemplates(), scaffold.Data{
		ProjectName: name,
		ModulePath:  modulePath,
		Port:        port,
	})
	if err != nil {
		return err
	}

	for _, f := range files {
		info("%s/%s", name, f)
	}

	fmt.Println()
	success("Example project created!")
	fmt.Println()
	fmt.Println("  Run:")
	fmt.Printf("    cd %s\n", name)
	fmt.Println("    go mod tidy")
	fmt.Println("    go run .")
	fmt.Println()

	return nil
}
