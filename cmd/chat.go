package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the AI study assistant on the command line",
	Long:  "Reads one message per line from stdin and prints each reply. Type /quit or send EOF to leave.",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		ccfg := chat.DefaultConfig()
		ccfg.Timeout = pcfg.Timeout
		gateway := chat.NewGateway(provider, ccfg)
		transcript := chat.NewTranscript()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "AI: %s\n", chat.Greeting)

		sc := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				fmt.Fprintln(out)
				return sc.Err()
			}
			line := strings.TrimSpace(sc.Text())
			if line == "/quit" || line == "/exit" {
				return nil
			}
			if !transcript.Send(ctx, gateway, line) {
				continue
			}
			msgs := transcript.Messages()
			fmt.Fprintf(out, "AI: %s\n", msgs[len(msgs)-1].Text)
		}
	},
}
