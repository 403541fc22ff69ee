package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flickgrid/internal/config"
	"flickgrid/internal/domain"
	"flickgrid/internal/flickr"
	"flickgrid/internal/gallery"
	"flickgrid/internal/log"
	"flickgrid/internal/tui"
	"flickgrid/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("flickgrid %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting flickgrid", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	client := flickr.NewClient(cfg.API.Endpoint, cfg.API.Key, logger)
	store := gallery.NewStore()
	svc := gallery.NewService(client, store, logger)

	model := tui.NewModel(svc, cfg.UI.ShowTitles, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for an API key on first run
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to flickgrid!")
	fmt.Println()
	fmt.Println("An API key is required to search photos.")
	fmt.Println("Get one at https://www.flickr.com/services/apps/create/")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	var apiKey string

	for {
		fmt.Print("Enter your API key: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		apiKey = strings.TrimSpace(input)

		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		fmt.Println()
		if err := probeKeyWithSpinner(cfg.API.Endpoint, apiKey, logger); err != nil {
			fmt.Printf("\n✗ Key check failed: %v\n", err)
			fmt.Println("Please check the key and try again.")
			fmt.Println()
			continue
		}

		break
	}

	cfg.API.Key = apiKey
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run flickgrid again to start the application.")

	return nil
}

// probeKeyWithSpinner runs a throwaway search to verify the key works
func probeKeyWithSpinner(endpoint, apiKey string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := flickr.NewClient(endpoint, apiKey, logger)

	resultCh := make(chan error, 1)
	go func() {
		_, err := client.Search(ctx, "test")
		resultCh <- err
	}()

	frame := 0
	fmt.Printf("\r%s Checking API key...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)

			if errors.Is(err, domain.ErrAPIFailure) {
				return fmt.Errorf("the API rejected this key")
			}
			if err != nil {
				return err
			}

			fmt.Println("✓ Key accepted")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking API key...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("key check timed out")
		}
	}
}
