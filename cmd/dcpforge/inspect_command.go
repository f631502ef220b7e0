package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dcpforge/internal/dcp"
	"dcpforge/internal/essence"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var standard string

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Identify essence files without assembling a package",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if cfg == nil {
				return fmt.Errorf("configuration unavailable")
			}

			standardValue := cfg.Package.Standard
			if cmd.Flags().Changed("standard") {
				standardValue = standard
			}
			assumedStandard, err := dcp.ParseStandard(standardValue)
			if err != nil {
				return err
			}

			sniffer := essence.New(assumedStandard)
			sniffer.Language = cfg.Subtitles.Language

			headers := []string{"File", "Essence", "Track", "Standard", "Frames"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight}

			rows := make([][]string, 0, len(args))
			for _, path := range args {
				info, err := sniffer.Inspect(path)
				if err != nil {
					return err
				}
				frames := ""
				if info.Duration > 0 {
					frames = strconv.Itoa(info.Duration)
				}
				rows = append(rows, []string{
					path,
					info.Type.String(),
					dcp.Classify(info.Type).String(),
					info.Standard.String(),
					frames,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().StringVar(&standard, "standard", "", "Assumed standard when detection is inconclusive (interop or smpte)")

	return cmd
}
