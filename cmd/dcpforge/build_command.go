package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dcpforge/internal/assemble"
	"dcpforge/internal/config"
	"dcpforge/internal/dcp"
	"dcpforge/internal/digest"
	"dcpforge/internal/essence"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var (
		reelArgs    []string
		outputDir   string
		title       string
		annotation  string
		basename    string
		kind        string
		rating      string
		standard    string
		duration    int
		entryPoint  int
		aspectRatio string
		stereo      bool
		withDigest  bool
	)

	cmd := &cobra.Command{
		Use:   "build --reel picture.mxf,sound.mxf [--reel ...]",
		Short: "Assemble a validated package from essence files",
		Long: `Build ingests the essence files for each reel, validates every reel
against the detected standard, reconciles track durations, and assembles
the packing list, playlist, and reel tree for the package.

Each --reel flag names one reel's files separated by commas, in
presentation order. Reels appear in the playlist in the order the flags
are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if cfg == nil {
				return fmt.Errorf("configuration unavailable")
			}

			reels := assemble.GroupReels(reelArgs)
			if len(reels) == 0 {
				return fmt.Errorf("at least one --reel is required")
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			build := dcp.NewContext(logger)
			applyPackageConfig(build, cfg.Package)
			if cmd.Flags().Changed("title") {
				build.Title = title
			}
			if cmd.Flags().Changed("annotation") {
				build.Annotation = annotation
			}
			if cmd.Flags().Changed("basename") {
				build.Basename = basename
			}
			if cmd.Flags().Changed("kind") {
				build.Kind = kind
			}
			if cmd.Flags().Changed("rating") {
				build.Rating = rating
			}
			if cmd.Flags().Changed("duration") {
				build.MaxDuration = duration
			}
			if cmd.Flags().Changed("entry-point") {
				build.EntryPoint = entryPoint
			}
			if cmd.Flags().Changed("aspect-ratio") {
				build.AspectRatio = aspectRatio
			}
			if cmd.Flags().Changed("stereo") {
				build.Stereoscopic = stereo
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
			build.Inspector = sniffer

			computeDigests := cfg.Digest.Enabled
			if cmd.Flags().Changed("digest") {
				computeDigests = withDigest
			}

			var store *digest.Store
			if computeDigests && cfg.Digest.CachePath != "" {
				cachePath, err := config.ExpandPath(cfg.Digest.CachePath)
				if err != nil {
					return err
				}
				store, err = digest.Open(cachePath)
				if err != nil {
					return fmt.Errorf("open digest cache: %w", err)
				}
				defer store.Close()
			}

			out := cmd.OutOrStdout()
			if computeDigests && isTerminal(out) {
				build.Callbacks.DigestDone = func(path string, sum string) {
					fmt.Fprintf(out, "digested %s\n", path)
				}
			}

			targetDir := cfg.Output.Dir
			if cmd.Flags().Changed("output") {
				targetDir = outputDir
			}

			pkl, err := assemble.Run(cmd.Context(), build, assemble.Options{
				Reels:          reels,
				OutputDir:      targetDir,
				ComputeDigests: computeDigests,
				DigestStore:    store,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out, renderBuildSummary(build, pkl))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&reelArgs, "reel", nil, "Essence files for one reel, comma separated (repeatable)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for the assembled package")
	cmd.Flags().StringVar(&title, "title", "", "Content title")
	cmd.Flags().StringVar(&annotation, "annotation", "", "Annotation text recorded on every entity")
	cmd.Flags().StringVar(&basename, "basename", "", "Override the basename used in manifest filenames")
	cmd.Flags().StringVar(&kind, "kind", "", "Content kind (feature, trailer, test, ...)")
	cmd.Flags().StringVar(&rating, "rating", "", "Content rating")
	cmd.Flags().StringVar(&standard, "standard", "", "Assumed standard when detection is inconclusive (interop or smpte)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Cap asset durations at this many frames")
	cmd.Flags().IntVar(&entryPoint, "entry-point", 0, "Starting frame offset")
	cmd.Flags().StringVar(&aspectRatio, "aspect-ratio", "", "Force the picture aspect ratio")
	cmd.Flags().BoolVar(&stereo, "stereo", false, "Build a stereoscopic package")
	cmd.Flags().BoolVar(&withDigest, "digest", true, "Compute essence digests")

	return cmd
}

func applyPackageConfig(build *dcp.Context, pkg config.Package) {
	if pkg.Issuer != "" {
		build.Issuer = pkg.Issuer
	}
	if pkg.Creator != "" {
		build.Creator = pkg.Creator
	}
	if pkg.Title != "" {
		build.Title = pkg.Title
	}
	if pkg.Annotation != "" {
		build.Annotation = pkg.Annotation
	}
	if pkg.Kind != "" {
		build.Kind = pkg.Kind
	}
	build.Rating = pkg.Rating
	build.Basename = pkg.Basename
	build.AspectRatio = pkg.AspectRatio
	build.MaxDuration = pkg.Duration
	build.EntryPoint = pkg.EntryPoint
	build.Stereoscopic = pkg.Stereoscopic
}

func renderBuildSummary(build *dcp.Context, pkl *dcp.PKL) string {
	headers := []string{"Reel", "Track", "File", "Essence", "Frames"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}

	var rows [][]string
	for _, cpl := range pkl.CPLs {
		for i := range cpl.Reels {
			reel := &cpl.Reels[i]
			for _, track := range reel.Tracks() {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					track.Class.String(),
					track.Annotation,
					track.EssenceType.String(),
					strconv.Itoa(track.Duration),
				})
			}
		}
	}

	summary := renderTable(headers, rows, aligns)
	summary += fmt.Sprintf("\nPKL %s (%s, standard %s, stereoscopic %s)",
		pkl.ID, pkl.Filename, build.Standard, yesNo(build.Stereoscopic))
	return summary
}
