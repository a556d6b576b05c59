package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TransportKind is the communication mechanism of the generated server.
type TransportKind string

const (
	TransportStdio TransportKind = "stdio"
	TransportHTTP  TransportKind = "http"
)

// ParseTransportKind validates a transport string from a control file.
func ParseTransportKind(s string) (TransportKind, error) {
	switch TransportKind(s) {
	case TransportStdio, TransportHTTP:
		return TransportKind(s), nil
	default:
		return "", fmt.Errorf("unknown transport type: %q", s)
	}
}

// PlatformConfig describes how to hook the generated server into one
// client platform (e.g. "Claude Desktop").
type PlatformConfig struct {
	ConfigPath   string `json:"configPath,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Snippet      string `json:"snippet,omitempty"`
}

// ConfigInstructions is the parsed form of a template's control file.
//
// The control file is a flat JSON object: the reserved key "transportType"
// names the transport, every other key is a platform name mapping to a
// PlatformConfig. TransportType is excluded from platform iteration.
type ConfigInstructions struct {
	TransportType TransportKind
	Platforms     map[string]PlatformConfig
}

// PlatformNames returns the platform keys in stable order.
func (c *ConfigInstructions) PlatformNames() []string {
	names := make([]string, 0, len(c.Platforms))
	for name := range c.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalJSON splits the reserved transportType key from the free-form
// platform keys.
func (c *ConfigInstructions) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Platforms = make(map[string]PlatformConfig)
	for key, value := range raw {
		if key == "transportType" {
			var transport string
			if err := json.Unmarshal(value, &transport); err != nil {
				return fmt.Errorf("invalid transportType: %w", err)
			}
			kind, err := ParseTransportKind(transport)
			if err != nil {
				return err
			}
			c.TransportType = kind
			continue
		}

		var platform PlatformConfig
		if err := json.Unmarshal(value, &platform); err != nil {
			return fmt.Errorf("invalid platform entry %q: %w", key, err)
		}
		c.Platforms[key] = platform
	}

	return nil
}

// MarshalJSON writes the flat control-file shape back out.
func (c *ConfigInstructions) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(c.Platforms)+1)
	if c.TransportType != "" {
		raw["transportType"] = string(c.TransportType)
	}
	for name, platform := range c.Platforms {
		raw[name] = platform
	}
	return json.Marshal(raw)
}

// MaterializationResult is the structured output of a pipeline run, handed
// to the reporting layer.
type MaterializationResult struct {
	TemplateName       string
	TransportType      TransportKind
	ConfigInstructions *ConfigInstructions
}
