// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the studyaids CLI. It reads a PDF of
// study notes and writes flashcards, a quiz and a revision plan as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the studyaids CLI.
var rootCmd = &cobra.Command{
	Use:   "studyaids",
	Short: "Generate flashcards, quizzes and a revision plan from PDF notes",
	Long: `studyaids extracts the text of a PDF of study notes, asks Google Gemini for
the main topics, flashcards and a multiple-choice quiz, schedules each topic for
revision two days apart, and writes flashcards.json, quizzes.json and
planner.json to the output directory.

The Google API key is read from GOOGLE_API_KEY (or STUDYAIDS_API_KEY), a .env
file, or .secrets/google-api-key.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./studyaids.yaml or ~/.config/studyaids/studyaids.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	configureViper(viper.GetViper(), cfgFile)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
