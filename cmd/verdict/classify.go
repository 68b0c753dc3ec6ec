package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/verdict/internal/cli"
	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
	"github.com/Veraticus/verdict/internal/presenter"
	"github.com/Veraticus/verdict/internal/server"
	"github.com/Veraticus/verdict/internal/tui/themes"
	"github.com/Veraticus/verdict/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify text once and print the verdict",
		Long: `Classify text once and print the verdict card.

The text is taken from the arguments, or from stdin when there are none.
The command exits non-zero when the result is an ERROR.

Examples:
  verdict classify "Das ist ein netter Kommentar"
  echo "Text" | verdict classify
  verdict classify --json "Text"`,
		RunE: runClassify,
	}

	cmd.Flags().Bool("json", false, "print the service response as JSON instead of a card")
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	asJSON, _ := cmd.Flags().GetBool("json")
	themeName, _ := cmd.Flags().GetString("theme")

	text := strings.Join(args, " ")
	if len(args) == 0 {
		if cmd.InOrStdin() == os.Stdin && stdinIsTerminal() {
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatInfo("Reading text from stdin, finish with Ctrl+D"))
		}
		// The service rejects anything larger, so read one byte past the cap
		// and let it answer with its own message.
		input, err := cli.NewNonBlockingReader(cmd.InOrStdin(), server.DefaultMaxBodyBytes+1).ReadAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = input
	}

	client, err := newClassifierClient()
	if err != nil {
		return err
	}

	card := cli.NewCard(themes.GetTheme(themeName), 30)
	p := presenter.New(card)

	resp, err := client.Classify(ctx, text)
	if err != nil {
		common.LogError(err, "Classification failed", common.Fields{"endpoint": client.Endpoint()})
		p.Render(viewmodel.InterpretError(err))
	} else {
		common.LogDebug("Classification received", common.Fields{
			"final_label": string(resp.FinalLabel),
			"gated":       resp.GatedToReview,
		})
		p.Render(viewmodel.InterpretSuccess(resp))
	}

	if asJSON {
		if err := writeJSON(cmd, resp, err); err != nil {
			return err
		}
	} else if _, err := card.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if p.State() == presenter.StateShowingError {
		return errReported
	}
	return nil
}

func writeJSON(cmd *cobra.Command, resp model.ClassificationResponse, classifyErr error) error {
	var payload any = resp
	if classifyErr != nil {
		payload = model.ErrorResponse{Error: common.UserMessage(classifyErr)}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// stdinIsTerminal reports whether stdin is an interactive terminal.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
