package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Conceptual-Machines/magda-harmony/internal/config"
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// Global flags shared by every subcommand
var (
	keyRoot      string
	keyMode      string
	outputFormat string
)

// AddGlobalFlags registers --key, --mode and --format, defaulting the key from config
func AddGlobalFlags(root *cobra.Command, cfg *config.Config) {
	root.PersistentFlags().StringVarP(&keyRoot, "key", "k", cfg.DefaultKeyRoot, "Key root note (e.g. C, F#, Bb)")
	root.PersistentFlags().StringVarP(&keyMode, "mode", "m", cfg.DefaultKeyMode, "Key mode: "+modeList())
	root.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatJSON, "Output format: json, yaml, toml")
}

func modeList() string {
	modes := theory.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// currentKey parses the --key/--mode flags
func currentKey() (theory.Key, error) {
	return models.KeyRequest{Root: keyRoot, Mode: keyMode}.Resolve("C", string(theory.ModeMajor))
}

// writeOutput renders v in the selected format.
// YAML and TOML go through the JSON form so every format shares the same field names.
func writeOutput(w io.Writer, v any) error {
	switch outputFormat {
	case formatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatYAML:
		doc, err := toDocument(v)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal output to YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case formatTOML:
		doc, err := toDocument(v)
		if err != nil {
			return err
		}
		data, err := toml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal output to TOML: %w", err)
		}
		_, err = w.Write(data)
		return err

	default:
		return fmt.Errorf("unsupported format: %s (supported: json, yaml, toml)", outputFormat)
	}
}

// toDocument converts v to a generic map via its JSON encoding, dropping nulls TOML cannot hold
func toDocument(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("output is not an object: %w", err)
	}
	return dropNulls(doc).(map[string]any), nil
}

func dropNulls(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if child == nil {
				delete(val, k)
				continue
			}
			val[k] = dropNulls(child)
		}
		return val
	case []any:
		for i, child := range val {
			val[i] = dropNulls(child)
		}
		return val
	default:
		return v
	}
}
