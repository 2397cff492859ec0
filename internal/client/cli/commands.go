package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
)

func (a *app) newAuthCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "auth <username>",
		Short: "Authenticate and print the issued access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := GetPassword(a.out)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				defer common.WipeByteArray(pw)
				password = string(pw)
			}

			resp, err := a.client.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "username: %s\n", resp.Username)
			fmt.Fprintf(a.out, "uuid: %s\n", resp.GetUserUuid())
			fmt.Fprintf(a.out, "accessToken: %s\n", resp.AccessToken)
			if resp.GetSkinUrl() != "" {
				fmt.Fprintf(a.out, "skin: %s\n", resp.GetSkinUrl())
			}
			if resp.GetCapeUrl() != "" {
				fmt.Fprintf(a.out, "cape: %s\n", resp.GetCapeUrl())
			}
			fmt.Fprintf(a.out, "sessionToken: %s\n", resp.SessionToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")

	return cmd
}

func (a *app) newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the encrypted server token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.client.ServerToken(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, tok)
			return nil
		},
	}
}

func (a *app) newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <accessToken> <uuid> <serverId>",
		Short: "Bind the session to a server",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.client.Join(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("join rejected: no session for this token and uuid")
			}
			fmt.Fprintln(a.out, "joined")
			return nil
		},
	}
}

func (a *app) newHasJoinedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has-joined <username> <serverId>",
		Short: "Check that a player joined the given server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.HasJoined(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printProfile(a, resp.GetUserUuid(), resp.GetUsername(), resp.GetSkinUrl(), resp.GetCapeUrl())
			return nil
		},
	}
}

func (a *app) newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <uuid>",
		Short: "Show a profile by uuid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.Profile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printProfile(a, resp.GetUserUuid(), resp.GetUsername(), resp.GetSkinUrl(), resp.GetCapeUrl())
			return nil
		},
	}
}

func (a *app) newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles <name>...",
		Short: "Resolve usernames to uuids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.client.Profiles(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, p := range found {
				fmt.Fprintf(a.out, "%s %s\n", p.GetId(), p.GetName())
			}
			return nil
		},
	}
}

func printProfile(a *app, userUUID, userName, skinURL, capeURL string) {
	fmt.Fprintf(a.out, "uuid: %s\n", userUUID)
	fmt.Fprintf(a.out, "username: %s\n", userName)
	if skinURL != "" {
		fmt.Fprintf(a.out, "skin: %s\n", skinURL)
	}
	if capeURL != "" {
		fmt.Fprintf(a.out, "cape: %s\n", capeURL)
	}
}
