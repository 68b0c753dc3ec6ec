package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/verdict/internal/classifier"
	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
	"github.com/Veraticus/verdict/internal/server"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyClassifierURL     = "classifier.url"
	KeyClassifierPath    = "classifier.path"
	KeyClassifierTimeout = "classifier.timeout"
	KeyLoggingLevel      = "logging.level"
	KeyLoggingFormat     = "logging.format"
	KeyLoggingFile       = "logging.file"
	KeyServerAddr        = "server.addr"
	KeyServerMinConf     = "server.min_confidence"
	KeyServerEmoji       = "server.emoji"
	KeyServerProbs       = "server.probs"
)

// DefaultServerAddr is where `verdict serve` listens by default.
const DefaultServerAddr = "127.0.0.1:5000"

// DefaultProbs is the distribution the static scorer answers with.
const DefaultProbs = "OK=0.62,REVIEW=0.08,BLOCK=0.30"

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyClassifierURL, classifier.DefaultBaseURL)
	v.SetDefault(KeyClassifierPath, classifier.DefaultPath)
	v.SetDefault(KeyClassifierTimeout, "0s")
	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFormat, "console")
	v.SetDefault(KeyLoggingFile, "")
	v.SetDefault(KeyServerAddr, DefaultServerAddr)
	v.SetDefault(KeyServerMinConf, server.DefaultMinConfidence)
	v.SetDefault(KeyServerEmoji, server.DefaultEmoji)
	v.SetDefault(KeyServerProbs, DefaultProbs)
}

// LoadClassifierConfig builds the HTTP client configuration.
func LoadClassifierConfig(v *viper.Viper) (classifier.Config, error) {
	timeout := v.GetDuration(KeyClassifierTimeout)
	if timeout < 0 {
		return classifier.Config{}, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyClassifierTimeout)
	}

	return classifier.Config{
		BaseURL: strings.TrimSpace(v.GetString(KeyClassifierURL)),
		Path:    strings.TrimSpace(v.GetString(KeyClassifierPath)),
		Timeout: timeout,
	}, nil
}

// ServerSettings is everything `verdict serve` needs.
type ServerSettings struct {
	Addr     string
	Endpoint server.Config
	Probs    model.Probabilities
}

// LoadServerSettings builds the stub endpoint configuration.
func LoadServerSettings(v *viper.Viper) (ServerSettings, error) {
	endpoint := server.DefaultConfig()
	endpoint.MinConfidence = v.GetFloat64(KeyServerMinConf)

	if emoji := v.GetStringMapString(KeyServerEmoji); len(emoji) > 0 {
		endpoint.Emoji = make(map[string]string, len(emoji))
		for label, glyph := range emoji {
			// viper lower-cases map keys
			endpoint.Emoji[strings.ToUpper(label)] = glyph
		}
	}

	if err := endpoint.Validate(); err != nil {
		return ServerSettings{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	probs, err := ParseProbabilities(v.GetString(KeyServerProbs))
	if err != nil {
		return ServerSettings{}, err
	}

	addr := strings.TrimSpace(v.GetString(KeyServerAddr))
	if addr == "" {
		addr = DefaultServerAddr
	}

	return ServerSettings{
		Addr:     addr,
		Endpoint: endpoint,
		Probs:    probs,
	}, nil
}

// ParseProbabilities parses "LABEL=value" pairs separated by commas,
// keeping their order.
func ParseProbabilities(s string) (model.Probabilities, error) {
	var probs model.Probabilities
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		label, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: probability %q is not LABEL=value", common.ErrInvalidConfig, pair)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: probability for %s: %v", common.ErrInvalidConfig, label, err)
		}

		probs = append(probs, model.Probability{
			Category: strings.ToUpper(strings.TrimSpace(label)),
			Value:    value,
		})
	}

	if len(probs) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", common.ErrInvalidConfig, KeyServerProbs)
	}
	return probs, nil
}
