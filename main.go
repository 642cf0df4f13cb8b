package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...tea.ProgramOption) int {
	cfg, err := CreateConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Printf("An error occured: %v\n", err)
		return 2
	}

	if len(cfg.LogFile) > 0 {
		f, err := tea.LogToFile(cfg.LogFile, "rulesedit")
		if err != nil {
			fmt.Printf("An error occured: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("[info] editing rules for %s", cfg.EditorURL)

	p := tea.NewProgram(initialModel(cfg), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	if _, err := p.Run(); err != nil {
		log.Printf("[error] %v", err)
		fmt.Printf("An error occured: %v\n", err)
		return 1
	}
	return 0
}
