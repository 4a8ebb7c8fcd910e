package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/magento-config/config"
	"github.com/dustin/magento-config/internal/transport"
	"github.com/dustin/magento-config/pkg/logger"
)

// resolvedConfig is what gets printed: the settings plus the derived base URI
type resolvedConfig struct {
	config.MagentoConfig
	BaseURI string `json:"base_uri"`
}

func main() {
	envFile := flag.String("env-file", config.DefaultEnvFile, "dotenv file loaded before reading the environment")
	validate := flag.Bool("validate", false, "fail when the configuration cannot be used for authenticated calls")
	endpoint := flag.String("endpoint", "", "print the full URL of this API path instead of the configuration")
	probe := flag.Bool("probe", false, "check that the base URI answers within the configured timeouts")
	flag.Parse()

	// Variables already exported win over the file
	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load env file: "+err.Error())
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration: "+err.Error())
		os.Exit(1)
	}

	appLogger, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	log := appLogger.WithObject("magento", cfg.Magento)
	log.Debug("Configuration loaded")

	if *validate {
		if err := cfg.Magento.Validate(); err != nil {
			appLogger.Fatal(err.Error())
		}
		log.Info("Configuration is valid")
	}

	if *endpoint != "" {
		fmt.Println(cfg.Magento.Endpoint(*endpoint))
		return
	}

	if *probe {
		if err := transport.Probe(context.Background(), cfg.Magento); err != nil {
			appLogger.WithComponent("transport").Fatal(err.Error())
		}
		log.Info("Base URI is reachable")
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	if err := out.Encode(resolvedConfig{
		MagentoConfig: cfg.Magento,
		BaseURI:       cfg.Magento.BaseURI(),
	}); err != nil {
		appLogger.Fatal("Failed to write configuration: " + err.Error())
	}
}

