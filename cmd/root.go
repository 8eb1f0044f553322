package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lolapi/config"
	"github.com/s0up4200/lolapi/filter"
	"github.com/s0up4200/lolapi/ratelimit"
	"github.com/s0up4200/lolapi/region"
	"github.com/s0up4200/lolapi/resilience"
	"github.com/s0up4200/lolapi/riot"
)

// skipInit marks commands that run without configuration or a client.
const skipInit = "skip-init"

var (
	version = "dev"

	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	client      *riot.Client
	policy      *resilience.Policy
	redisClient *redis.Client

	entryFilters       *filter.Manager[riot.LeagueEntry]
	participantFilters *filter.Manager[riot.Participant]

	// Global flags
	platformFlag string
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lolapi",
	Short: "Query the League of Legends platform APIs",
	Long: `lolapi looks up accounts, summoners, ranked leagues and matches through the
Riot Games API. Requests are routed to the right platform or regional host,
rate limited per region, and retried when the platform is temporarily failing.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
	SilenceUsage:       true,
}

// SetVersion sets the version reported by --version and the User-Agent
func SetVersion(v, bt string) {
	version = v
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&platformFlag, "platform", "p", "", "platform, e.g. na1, euw, kr (default from config)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(summonerCmd)
	rootCmd.AddCommand(leagueCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(regionsCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("invalid --output %q (must be 'text' or 'json')", outputFormat)
	}
	if cmd.Annotations[skipInit] == "true" {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	if verbose {
		cfg.Logging.Level = "debug"
	}
	logger = setupLogger(cfg.Logging)

	limiter, err := setupLimiter(cmd.Context(), cfg.RateLimit)
	if err != nil {
		return err
	}

	opts := []riot.Option{
		riot.WithDomain(cfg.Riot.Domain),
		riot.WithTimeout(cfg.Riot.Timeout),
	}
	if limiter != nil {
		opts = append(opts, riot.WithLimiter(limiter))
	}
	if cfg.Riot.CredentialInQuery {
		opts = append(opts, riot.WithCredentialInQuery())
	}
	userAgent := cfg.Riot.UserAgent
	if userAgent == "" {
		userAgent = "lolapi/" + version
	}
	opts = append(opts, riot.WithUserAgent(userAgent))

	// Create Riot client
	client, err = riot.NewClient(cfg.Riot.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Riot client: %w", err)
	}

	policy = resilience.New(cfg.Retry.Policy(), logger)

	return setupFilters(cfg.Filter)
}

// shutdownApp releases connections opened by initializeApp
func shutdownApp(cmd *cobra.Command, args []string) error {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close Redis client")
		}
		redisClient = nil
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// setupLimiter builds the configured limiter, or nil when disabled
func setupLimiter(ctx context.Context, cfg config.RateLimitConfig) (ratelimit.Limiter, error) {
	if !cfg.Enabled {
		logger.Debug().Msg("Client-side rate limiting disabled")
		return nil, nil
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit rules: %w", err)
	}

	switch cfg.Backend {
	case config.BackendRedis:
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid ratelimit.redis_url: %w", err)
		}
		redisClient = redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Debug().Str("addr", redisOpts.Addr).Msg("Using Redis rate limiter")
		return ratelimit.NewRedis(redisClient, opts...)
	default:
		return ratelimit.NewLocal(opts...)
	}
}

// setupFilters compiles the named filters from config
func setupFilters(cfg config.FilterConfig) error {
	entries, err := filter.NewEntryCompiler(filter.WithCache(100))
	if err != nil {
		return err
	}
	participants, err := filter.NewParticipantCompiler(filter.WithCache(100))
	if err != nil {
		return err
	}

	entryFilters = filter.NewManager(entries)
	if err := entryFilters.RegisterFilters(cfg.Entries); err != nil {
		return fmt.Errorf("invalid filter.entries: %w", err)
	}

	participantFilters = filter.NewManager(participants)
	if err := participantFilters.RegisterFilters(cfg.Participants); err != nil {
		return fmt.Errorf("invalid filter.participants: %w", err)
	}

	return nil
}

// targetPlatform returns --platform or the configured default
func targetPlatform() (region.Platform, error) {
	if platformFlag != "" {
		return region.Parse(platformFlag)
	}
	return cfg.Riot.Platform()
}

// call runs fn through the retry policy, keyed by the host it reaches.
func call[T any](ctx context.Context, host string, fn func(context.Context) (T, error)) (T, error) {
	return resilience.Do(ctx, policy, host, fn)
}

// Host keys for the resilience policy
func platformHost(p region.Platform) string { return p.String() }
func routingHost(p region.Platform) string  { return p.Routing().String() }
func accountHost(p region.Platform) string  { return p.AccountRouting().String() }

// fetchAndRender resolves the target platform, runs fetch through the retry
// policy and renders the result.
func fetchAndRender[T any](
	cmd *cobra.Command,
	host func(region.Platform) string,
	fetch func(context.Context, region.Platform) (T, error),
	text func(io.Writer, T),
) error {
	p, err := targetPlatform()
	if err != nil {
		return err
	}

	v, err := call(cmd.Context(), host(p), func(ctx context.Context) (T, error) {
		return fetch(ctx, p)
	})
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), v, func(w io.Writer) { text(w, v) })
}
