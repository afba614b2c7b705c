package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/yt-grab/internal/config"
	"github.com/ytget/yt-grab/internal/download"
	"github.com/ytget/yt-grab/internal/model"
	"github.com/ytget/yt-grab/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	logPath := flag.String("log", "", "write logs to this file (logs are discarded otherwise)")
	flag.Parse()

	// stdout belongs to the TUI
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "yt-grab")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	opts, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}

	svc := download.NewService(opts)
	defer svc.Close()

	programOpts := []tea.ProgramOption{}
	if !*noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.New(svc), programOpts...)

	// Send blocks until the event loop reads it, and the callback may fire
	// from inside Update.
	svc.SetUpdateCallback(func(model.Snapshot) {
		go program.Send(tui.RefreshMsg{})
	})

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
