package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// operationInfo is the printable form of a catalog entry.
type operationInfo struct {
	Name     string   `json:"name"               yaml:"name"`
	Group    string   `json:"group"              yaml:"group"`
	Method   string   `json:"method"             yaml:"method"`
	Path     string   `json:"path"               yaml:"path"`
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	Optional []string `json:"optional,omitempty" yaml:"optional,omitempty"`
}

func newOperationsCommand(opts *globalOptions) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"ops"},
		Short:   "List API operations",
		Long:    "List every operation accepted by 'xminds call', with its HTTP route and arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := opts.output()
			if err != nil {
				return err
			}

			var infos []operationInfo

			for _, spec := range xminds.Catalog() {
				if group != "" && string(spec.Group) != group {
					continue
				}

				infos = append(infos, operationInfo{
					Name:     string(spec.Name),
					Group:    string(spec.Group),
					Method:   spec.Method,
					Path:     spec.Path,
					Required: spec.Required,
					Optional: spec.Optional,
				})
			}

			out := cmd.OutOrStdout()

			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")

				return encoder.Encode(infos)
			case constants.FormatYAML:
				return yaml.NewEncoder(out).Encode(infos)
			default:
				table := tablewriter.NewWriter(out)
				table.Header("Operation", "Group", "Method", "Path", "Required", "Optional")

				for _, info := range infos {
					_ = table.Append(
						info.Name,
						info.Group,
						info.Method,
						info.Path,
						strings.Join(info.Required, ", "),
						strings.Join(info.Optional, ", "),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list operations of this resource group")

	return cmd
}
