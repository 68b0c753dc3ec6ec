package main

import (
	"fmt"

	"github.com/Veraticus/verdict/internal/classifier"
	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/config"
	"github.com/spf13/viper"
)

// newClassifierClient builds the HTTP client from the loaded configuration.
func newClassifierClient() (*classifier.Client, error) {
	cfg, err := config.LoadClassifierConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}

	client, err := classifier.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier client: %w", err)
	}

	common.LogDebug("Classifier client ready", common.Fields{
		"endpoint": client.Endpoint(),
		"timeout":  cfg.Timeout.String(),
	})
	return client, nil
}
