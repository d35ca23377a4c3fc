package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twitter/copyclientnames/clientnames"
	"github.com/twitter/copyclientnames/common"
	cerrors "github.com/twitter/copyclientnames/common/errors"
	clog "github.com/twitter/copyclientnames/common/log"
	"github.com/twitter/copyclientnames/common/stats"
	"github.com/twitter/copyclientnames/config"
	"github.com/twitter/copyclientnames/dashboard"
)

const longHelp = `Copies client names from one network of an organization to another.

Before running:
  Tag the network whose clients already carry the right names with
  "copy_client_names_src" and the network that should receive them with
  "copy_client_names_dst". Remove the tags once the run is done.

Every client of the destination network is looked up by MAC address among the
clients of the source network seen in the last 31 days. When found, the source
client's name is provisioned on the destination network.

A log file named <program>_log_<YYYYmmdd_HHMMSS>.txt is written to --log_dir.`

// APIFactory builds the dashboard client a run talks to.
type APIFactory func(cfg dashboard.Config, log *logrus.Entry, stat stats.StatsReceiver) (clientnames.API, error)

func newDashboardAPI(cfg dashboard.Config, log *logrus.Entry, stat stats.StatsReceiver) (clientnames.API, error) {
	return dashboard.NewClient(cfg, log, stat)
}

// CopyCmd holds the flags and collaborators of one invocation.
type CopyCmd struct {
	Program string
	// Command line without the program name, logged with the key removed.
	Args    []string
	Console io.Writer
	NewAPI  APIFactory
	Now     func() time.Time

	apiKey     string
	orgID      string
	configPath string
	baseURL    string
	srcTag     string
	dstTag     string
	logDir     string
	logLevel   string
	dryRun     bool
	callsite   bool
}

func NewCopyCmd(program string, args []string, console io.Writer) *CopyCmd {
	return &CopyCmd{
		Program: program,
		Args:    args,
		Console: console,
		NewAPI:  newDashboardAPI,
		Now:     time.Now,
	}
}

func usageError(format string, a ...interface{}) error {
	return cerrors.NewError(fmt.Errorf(format, a...), cerrors.UsageExitCode)
}

func (c *CopyCmd) RegisterFlags() *cobra.Command {
	r := &cobra.Command{
		Use:           fmt.Sprintf("%s -k <api_key> -o <org_id>", c.Program),
		Short:         "Copy client names between tagged networks",
		Long:          longHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError("unexpected arguments %v", args)
			}
			return nil
		},
	}
	r.Flags().StringVarP(&c.apiKey, "api_key", "k", "", "Dashboard API key (required)")
	r.Flags().StringVarP(&c.orgID, "org_id", "o", "", "Organization id (required)")
	r.Flags().StringVar(&c.configPath, "config", "", "YAML file overriding the defaults below")
	r.Flags().StringVar(&c.baseURL, "base_url", common.DefaultBaseURL, "Dashboard API root")
	r.Flags().StringVar(&c.srcTag, "src_tag", common.DefaultSourceTag, "Tag of the network to copy names from")
	r.Flags().StringVar(&c.dstTag, "dst_tag", common.DefaultDestinationTag, "Tag of the network to copy names to")
	r.Flags().StringVar(&c.logDir, "log_dir", "", "Directory for the log file (default the working directory)")
	r.Flags().StringVar(&c.logLevel, "log_level", common.DefaultLogLevel, "Log everything at this level and above to the log file (error|info|debug)")
	r.Flags().BoolVar(&c.dryRun, "dry_run", false, "Log the names that would be provisioned without provisioning them")
	r.Flags().BoolVar(&c.callsite, "log_callsite", false, "Add the file:line of each log call to the log file")
	r.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cerrors.NewError(err, cerrors.UsageExitCode)
	})
	r.RunE = func(cmd *cobra.Command, args []string) error {
		return c.Run(cmd.Context(), cmd)
	}
	return r
}

// resolve checks the required flags and layers defaults, the config file, and
// any flags that were set explicitly.
func (c *CopyCmd) resolve(cmd *cobra.Command) (config.Config, error) {
	if c.apiKey == "" || c.orgID == "" {
		return config.Config{}, usageError("both --api_key (-k) and --org_id (-o) are required")
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, cerrors.NewError(err, cerrors.UsageExitCode)
	}
	flags := cmd.Flags()
	if flags.Changed("base_url") {
		cfg.BaseURL = c.baseURL
	}
	if flags.Changed("src_tag") {
		cfg.SourceTag = c.srcTag
	}
	if flags.Changed("dst_tag") {
		cfg.DestinationTag = c.dstTag
	}
	if flags.Changed("log_dir") {
		cfg.LogDir = c.logDir
	}
	if flags.Changed("log_level") {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, cerrors.NewError(err, cerrors.UsageExitCode)
	}
	return cfg, nil
}

// Run performs one copy. The log file is closed before Run returns.
func (c *CopyCmd) Run(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := c.resolve(cmd)
	if err != nil {
		return err
	}

	start := c.Now()
	rl, err := clog.NewRunLogger(clog.RunLogConfig{
		Program:  c.Program,
		Dir:      cfg.LogDir,
		Level:    cfg.Level(),
		Console:  c.Console,
		Callsite: c.callsite,
	}, start)
	if err != nil {
		return cerrors.NewError(err, cerrors.LogSetupFailureExitCode)
	}
	defer rl.Close()

	log := rl.Root().WithField("run", common.GenRunID())
	log.Infof("Started script at %s", start.Format(time.RFC3339))
	log.Infof("Input parameters: %v", common.RedactArgs(c.Args, "k", "api_key"))

	stat := stats.DefaultStatsReceiver()
	defer func() {
		end := c.Now()
		log.Debugf("Run stats: %s", stat.Render(false))
		log.Infof("Ended script at %s", end.Format(time.RFC3339))
		log.Infof("Total run time = %s", end.Sub(start))
	}()

	api, err := c.NewAPI(cfg.DashboardConfig(c.apiKey), log.WithField(clog.NameKey, "dashboard"), stat)
	if err != nil {
		log.Errorf("Couldn't create dashboard client: %v", err)
		return cerrors.NewError(err, cerrors.UsageExitCode)
	}

	res, err := clientnames.NewCopier(api, cfg.CopyConfig(c.dryRun), log, stat).Run(ctx, c.orgID)
	if err != nil {
		log.Errorf("Run aborted after %d provisioning call(s) (retryable=%v): %v",
			len(res.Requests), dashboard.IsRetryable(err), err)
		return errors.Wrap(err, "copying client names")
	}
	verb := "Provisioned"
	if c.dryRun {
		verb = "Would provision"
	}
	log.Infof("%s %d of %d destination client name(s)", verb, len(res.Requests), res.DestinationClients)
	return nil
}

// Main runs the command line and returns the process exit code.
func Main(ctx context.Context, program string, args []string, stdout, stderr io.Writer) int {
	return NewCopyCmd(program, args, stderr).Execute(ctx, stdout)
}

// Execute parses c.Args, runs, and maps the outcome to an exit code. Help
// goes to stdout; errors and usage after a usage error go to c.Console.
func (c *CopyCmd) Execute(ctx context.Context, stdout io.Writer) int {
	args := c.Args
	if args == nil {
		args = []string{}
	}
	cmd := c.RegisterFlags()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(c.Console)

	err := cmd.ExecuteContext(ctx)
	code := cerrors.ExitCodeOf(err)
	if err != nil {
		fmt.Fprintf(c.Console, "Error: %v\n", err)
		if code == cerrors.UsageExitCode {
			cmd.SetOut(c.Console)
			cmd.Help()
		}
	}
	return int(code)
}
