// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/studyaids/internal/credentials"
	"github.com/pdiddy/studyaids/internal/logger"
	"github.com/pdiddy/studyaids/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run <pdf_file>",
	Short: "Generate study aids from a PDF",
	Long: `Run extracts the text of the PDF, sends the first 30,000 characters to the
generative service in a single call, and writes flashcards.json, quizzes.json
and planner.json to the output directory (default: outputs).`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("output-dir", "", "directory for the JSON files (default: outputs)")
	runCmd.Flags().String("backend", "", "generator backend: gemini, langchain or ollama")
	runCmd.Flags().String("model", "", "model identifier")
	runCmd.Flags().String("extractor", "", "PDF text engine: pdf or mupdf")

	viper.BindPFlag("output.dir", runCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("generator.backend", runCmd.Flags().Lookup("backend"))
	viper.BindPFlag("generator.model", runCmd.Flags().Lookup("model"))
	viper.BindPFlag("extractor.backend", runCmd.Flags().Lookup("extractor"))

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()
	p, err := pipeline.Build(ctx, cfg, credentials.Resolver{}, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}

	_, err = p.Run(ctx, args[0])
	return err
}
