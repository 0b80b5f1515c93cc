package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"emojigrip/internal/clipboard"
	"emojigrip/internal/config"
	"emojigrip/internal/eventbus"
	"emojigrip/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("emojigrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	bus := eventbus.New()
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Initialize services
	_ = clipboard.NewService(bus)

	// Create UI model and program
	uiModel := ui.NewModel(bus, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Forward bus events into the program
	bus.Subscribe(eventbus.EventCopyCompleted, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
