package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oggyb/hubtel-sms/internal/hubtel"
	"github.com/oggyb/hubtel-sms/internal/sms"
)

// errFailed is returned when the gateway reported a failure. The result
// has already been printed, so cobra is told not to print it again.
var errFailed = errors.New("hubtel: request failed")

type gatewayFactory func() (sms.Gateway, error)

func newRootCommand(newGateway gatewayFactory, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "hubtel",
		Short:        "Hubtel SMS gateway client",
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.AddCommand(
		sendCommand(newGateway),
		bulkCommand(newGateway),
		statusCommand(newGateway),
		balanceCommand(newGateway),
		formatCommand(),
	)

	return root
}

func sendCommand(newGateway gatewayFactory) *cobra.Command {
	var to, message, sender string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "send one SMS",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateway()
			if err != nil {
				return err
			}

			res := gw.Send(cmd.Context(), to, message, sender)
			return printResult(cmd, res, res.Success)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient phone number")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message content")
	cmd.Flags().StringVar(&sender, "sender", "", "sender id (defaults to HUBTEL_SENDER_ID)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func bulkCommand(newGateway gatewayFactory) *cobra.Command {
	var to []string
	var message, sender string

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "send the same SMS to several recipients, one at a time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipients := make([]string, 0, len(to))
			for _, r := range to {
				if r = strings.TrimSpace(r); r != "" {
					recipients = append(recipients, r)
				}
			}
			if len(recipients) == 0 {
				return errors.New("at least one recipient is required")
			}

			gw, err := newGateway()
			if err != nil {
				return err
			}

			res := gw.SendBulk(cmd.Context(), recipients, message, sender)
			return printResult(cmd, res, res.Failed() == 0)
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "comma separated recipient phone numbers")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message content")
	cmd.Flags().StringVar(&sender, "sender", "", "sender id (defaults to HUBTEL_SENDER_ID)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func statusCommand(newGateway gatewayFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "status <messageId>",
		Short: "check the delivery status of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateway()
			if err != nil {
				return err
			}

			res := gw.CheckStatus(cmd.Context(), args[0])
			return printResult(cmd, res, res.Success)
		},
	}
}

func balanceCommand(newGateway gatewayFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "show the account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateway()
			if err != nil {
				return err
			}

			res := gw.GetBalance(cmd.Context())
			return printResult(cmd, res, res.Success)
		},
	}
}

func formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>...",
		Short: "print numbers as they would be sent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range args {
				fmt.Fprintln(cmd.OutOrStdout(), hubtel.FormatPhoneNumber(n))
			}
			return nil
		},
	}
}

// printResult writes v as indented JSON and returns errFailed when ok is false.
func printResult(cmd *cobra.Command, v any, ok bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode result")
	}

	if !ok {
		cmd.SilenceErrors = true
		return errFailed
	}
	return nil
}
