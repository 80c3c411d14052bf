package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/model"
)

func ScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <answers.json|->",
		Short: "Score an assessment answers file and print the result with insights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return runScore(in, cmd.OutOrStdout())
		},
	}
}

func runScore(in io.Reader, out io.Writer) error {
	var answers map[string]any
	if err := json.NewDecoder(in).Decode(&answers); err != nil {
		return fmt.Errorf("invalid answers file: %w", err)
	}

	result := coaching.ScoreAssessment(answers)
	report := struct {
		Result   *model.AssessmentResult  `json:"result"`
		Insights model.AssessmentInsights `json:"insights"`
	}{
		Result:   result,
		Insights: coaching.Insights(result),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
