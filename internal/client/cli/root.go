package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/launchkeeper/internal/client/client"
	"github.com/dmitrijs2005/launchkeeper/internal/client/config"
	pb "github.com/dmitrijs2005/launchkeeper/internal/proto"
)

// launcherAPI is the part of client.GRPCClient the commands use.
type launcherAPI interface {
	Authenticate(ctx context.Context, userName, password string) (*pb.AuthenticateResponse, error)
	ServerToken(ctx context.Context) (string, error)
	Join(ctx context.Context, accessToken, userUUID, serverID string) (bool, error)
	HasJoined(ctx context.Context, userName, serverID string) (*pb.HasJoinedResponse, error)
	Profile(ctx context.Context, userUUID string) (*pb.ProfileResponse, error)
	Profiles(ctx context.Context, userNames []string) ([]*pb.ProfileRef, error)
	Close() error
}

// dial is a test seam for the gRPC connection.
var dial = func(addr string, timeout time.Duration) (launcherAPI, error) {
	return client.NewLauncherClientService(addr, timeout)
}

type app struct {
	addr       string
	configPath string
	out        io.Writer
	client     launcherAPI
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "launchkeeper-cli",
		Short: "Command-line client for the launcher auth backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				a.addr = cfg.ServerEndpointAddr
			}

			c, err := dial(a.addr, cfg.RequestTimeout)
			if err != nil {
				return err
			}
			a.client = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.client == nil {
				return nil
			}
			return a.client.Close()
		},
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	rootCmd.PersistentFlags().StringVar(&a.addr, "addr", "", "gRPC address of the server (env: LAUNCHKEEPER_CLI_ADDR)")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "JSON config file")

	rootCmd.AddCommand(a.newAuthCmd())
	rootCmd.AddCommand(a.newTokenCmd())
	rootCmd.AddCommand(a.newJoinCmd())
	rootCmd.AddCommand(a.newHasJoinedCmd())
	rootCmd.AddCommand(a.newProfileCmd())
	rootCmd.AddCommand(a.newProfilesCmd())

	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) {
	if err := NewRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
