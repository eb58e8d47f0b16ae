package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/spf13/cobra"
)

func newCallCommand(opts *globalOptions) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "call OPERATION [KEY=VALUE...]",
		Short: "Call an API operation by name",
		Long: `Call any API operation by name. Arguments are given as KEY=VALUE pairs or as
a JSON object with --data; pairs override keys of --data. Values holding
records or lists may be written as JSON, and lists of IDs as comma separated
text.

Run "xminds operations" for the operation names and their arguments.`,
		Example: `  xminds call get_item item_id=123
  xminds call list_all_items amount=50
  xminds call list_similar_item_recommendations item_id=123 filters='["price:lt:30"]'
  xminds call create_or_update_item --data '{"item_id": "123", "item": {"price": 25}}'`,
		Args: cobra.MinimumNArgs(constants.MinimumArgumentCount),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			var names []string

			for _, name := range xminds.Operations() {
				if strings.HasPrefix(string(name), toComplete) {
					names = append(names, string(name))
				}
			}

			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := xminds.Operation(args[0])
			if _, ok := xminds.Lookup(name); !ok {
				return fmt.Errorf("%w: %s", xminds.ErrUnknownOperation, name)
			}

			callArgs, err := parseCallArgs(data, args[1:])
			if err != nil {
				return err
			}

			output, err := opts.output()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			client, _, err := opts.connect(ctx, cmd)
			if err != nil {
				return err
			}

			result, err := client.Invoke(ctx, name, callArgs)
			if err != nil {
				return err
			}

			return renderValue(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "arguments as a JSON object")

	return cmd
}

// parseCallArgs merges the --data object with KEY=VALUE pairs.
func parseCallArgs(data string, pairs []string) (xminds.Args, error) {
	args := xminds.Args{}

	if strings.TrimSpace(data) != "" {
		decoder := json.NewDecoder(bytes.NewReader([]byte(data)))
		decoder.UseNumber()

		err := decoder.Decode(&args)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", constants.ErrInvalidJSONArgument, err)
		}
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidKeyValue, pair)
		}

		args[strings.TrimSpace(key)] = value
	}

	return args, nil
}
