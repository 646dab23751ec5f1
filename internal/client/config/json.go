package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/blogsphere/blogsphere-cli/internal/flagx"
	"github.com/blogsphere/blogsphere-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	TokenURL       string         `json:"token_url"`
	ClientID       string         `json:"client_id"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags).
// If no path is given, nothing is loaded. Read or unmarshal errors panic;
// intended usage is defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenURL != "" {
		cfg.TokenURL = jc.TokenURL
	}
	if jc.ClientID != "" {
		cfg.ClientID = jc.ClientID
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
