package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gardar/docspan/pkg/gdocai"
	"github.com/gardar/docspan/pkg/gdocs"
)

type yamlConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	Endpoint        string `yaml:"endpoint"`
	TabID           string `yaml:"tab_id"`
	TableDepth      int    `yaml:"table_depth"`
	LogLevel        string `yaml:"log_level"`
	DocumentAI      struct {
		ProjectID   string `yaml:"project_id"`
		Location    string `yaml:"location"`
		ProcessorID string `yaml:"processor_id"`
	} `yaml:"document_ai"`
}

type appConfig struct {
	Docs       gdocs.Config
	DocumentAI gdocai.Config
	LogLevel   slog.Level
}

// loadConfig reads a YAML file and converts it to the Docs and Document AI configs
func loadConfig(path string) (*appConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}

	docsCfg := gdocs.DefaultConfig()
	docsCfg.CredentialsFile = yc.CredentialsFile
	docsCfg.Endpoint = yc.Endpoint
	docsCfg.TabID = yc.TabID
	if yc.TableDepth > 0 {
		docsCfg.TableDepth = yc.TableDepth
	}

	var level slog.Level
	if yc.LogLevel != "" {
		if err := level.UnmarshalText([]byte(yc.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log_level %q: %w", yc.LogLevel, err)
		}
	}

	return &appConfig{
		Docs: docsCfg,
		DocumentAI: gdocai.Config{
			ProjectID:       yc.DocumentAI.ProjectID,
			Location:        yc.DocumentAI.Location,
			ProcessorID:     yc.DocumentAI.ProcessorID,
			CredentialsFile: yc.CredentialsFile,
		},
		LogLevel: level,
	}, nil
}
