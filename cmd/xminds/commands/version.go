package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// versionInfo describes the CLI build and the client library it embeds.
type versionInfo struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	Built     string `json:"built"      yaml:"built"`
	Library   string `json:"library"    yaml:"library"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	Go        string `json:"go"         yaml:"go"`
	Platform  string `json:"platform"   yaml:"platform"`
}

func newVersionCommand(opts *globalOptions, version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version information about the xminds CLI and client library",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   version,
				Commit:    commit,
				Built:     date,
				Library:   constants.Version,
				UserAgent: constants.UserAgent,
				Go:        runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			output, err := opts.output()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")

				return encoder.Encode(info)
			case constants.FormatYAML:
				return yaml.NewEncoder(out).Encode(info)
			}

			table := tablewriter.NewWriter(out)
			table.Header("Property", "Value")

			for _, row := range [][2]string{
				{"Version", info.Version},
				{"Commit", info.Commit},
				{"Built", info.Built},
				{"Library", info.Library},
				{"User-Agent", info.UserAgent},
				{"Go", info.Go},
				{"Platform", info.Platform},
			} {
				_ = table.Append(row[0], row[1])
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
