package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipcrypt/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <base64-public-key>",
		Short: "Print the fingerprint of a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := crypto.ParsePublicKey(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(pub))
			return err
		},
	}
	return cmd
}
