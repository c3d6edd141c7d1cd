package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/career"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a career gap analysis without the TUI",
	Example: `  campus analyze --city Beijing --skills "Python, statistics"
  campus analyze --city Shanghai --skills "React, CSS" --role "Frontend Engineer" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetString("skills")
		city, _ := cmd.Flags().GetString("city")
		role, _ := cmd.Flags().GetString("role")
		asJSON, _ := cmd.Flags().GetBool("json")

		in := career.Input{Skills: skills, City: city, TargetRole: role}
		if err := in.Validate(); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, pcfg, err := openProvider(ctx, st)
		if err != nil {
			return fmt.Errorf("llm provider: %w", err)
		}

		acfg := career.DefaultConfig()
		acfg.Timeout = pcfg.Timeout
		res, err := career.NewAnalyzer(provider, acfg).Analyze(ctx, in)
		if err != nil {
			logger.Warn("career analysis failed", "error", err)
			var ae *career.AnalysisError
			if errors.As(err, &ae) {
				return errors.New(ae.UserMessage())
			}
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printAnalysis(out, res)
		return nil
	},
}

func printAnalysis(w io.Writer, res *career.Result) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(w, "Recommended Path:  %s\n", res.RecommendedRole)
	fmt.Fprintf(w, "Salary Range:      %s\n", res.SalaryRange)
	if res.Summary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, res.Summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Skill Gap Analysis")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-28s  %7s  %8s  %5s\n", "Skill", "Current", "Required", "Gap")
	fmt.Fprintln(w, sep)
	for _, g := range res.GapAnalysis {
		fmt.Fprintf(w, "%-28s  %7.0f  %8.0f  %5.0f\n",
			truncate(g.Skill, 28), g.CurrentLevel, g.RequiredLevel, g.Gap())
	}

	cands := career.Candidates(res)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Improvement Plan")
	fmt.Fprintln(w, sep)
	if len(cands) == 0 {
		fmt.Fprintln(w, "No gaps to close. You already meet the role's requirements.")
		return
	}
	for _, c := range cands {
		fmt.Fprintf(w, "- %s (+%.0f)\n", c.Title, c.Gap)
		if c.Detail != "" {
			fmt.Fprintf(w, "  %s\n", c.Detail)
		}
	}
}

func init() {
	analyzeCmd.Flags().String("skills", "", "Your current skills and interests (required)")
	analyzeCmd.Flags().String("city", "", "Target city (required)")
	analyzeCmd.Flags().String("role", "", "Optional target role")
	analyzeCmd.Flags().Bool("json", false, "Print the raw analysis as JSON")
}
