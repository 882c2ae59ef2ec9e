package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap <source> <target>",
		Short: "Swap two positions between queue and courts",
		Long: `Swap two positions. A position is one of:

  queue:<index>          a queue spot by 0-based index
  court:<number>:<slot>  a court slot (court number 1-8, slot 0-3)

Examples:
  courtqueue swap queue:0 queue:3
  courtqueue swap court:1:2 queue:0
  courtqueue swap court:1:0 court:2:3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			target, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			req := map[string]any{"source": source, "target": target}
			var view SessionView
			if err := client.Post("/api/v1/session/swap", req, &view); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(view)
			return nil
		},
	}

	return cmd
}

// parsePosition turns "queue:2" or "court:1:3" into a position body
func parsePosition(s string) (map[string]any, error) {
	parts := strings.Split(s, ":")
	switch {
	case len(parts) == 2 && parts[0] == "queue":
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid queue index in %q", s)
		}
		return map[string]any{"kind": "queue", "index": index}, nil
	case len(parts) == 3 && parts[0] == "court":
		court, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid court number in %q", s)
		}
		slot, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid slot in %q", s)
		}
		return map[string]any{"kind": "court", "court": court, "slot": slot}, nil
	default:
		return nil, fmt.Errorf("position must look like queue:<index> or court:<number>:<slot>, got %q", s)
	}
}
