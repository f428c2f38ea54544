package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spring01/music/internal/metadata"
	"github.com/spring01/music/internal/queue"
	"github.com/spring01/music/internal/repositories"
	"github.com/spring01/music/internal/services"
	"github.com/spring01/music/internal/shared"
	"github.com/spring01/music/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	extractor  services.Extractor
	lister     services.PlaylistLister
	logger     *log.Logger
	output     io.Writer
	input      io.Reader
	now        func() time.Time
}

// RunnerOpts contains configuration options for creating a Runner.
//
// A nil Config is loaded from the --config flag of each command. Nil Extractor and Lister are built
// from the youtube section of the config.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Extractor  services.Extractor
	Lister     services.PlaylistLister
	Logger     *log.Logger
	Output     io.Writer
	Input      io.Reader
	Now        func() time.Time
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		extractor:  opts.Extractor,
		lister:     opts.Lister,
		logger:     opts.Logger,
		output:     opts.Output,
		input:      opts.Input,
		now:        opts.Now,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, serveCommand, catalogCommand, queueCommand, invokeCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configFlag is the --config flag shared by every command.
func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// loadConfig resolves the config for cmd: the injected config, else the --config file (defaults when
// the file is missing), overlaid with the environment. The log level is applied on the way out.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	path := r.configPath
	if flag := cmd.String("config"); flag != "" {
		path = flag
	}

	config := shared.DefaultConfig()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := shared.LoadConfig(path)
			if err != nil {
				return nil, err
			}
			config = loaded
		} else if cmd.IsSet("config") {
			return nil, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		} else {
			r.logger.Debug("config file not found, using defaults", "path", path)
		}
	}

	if err := shared.ApplyEnv(config); err != nil {
		return nil, err
	}

	shared.SetLogLevel(r.logger, shared.ParseLogLevel(config.Log.Level))
	r.config = config
	return config, nil
}

// stack is the set of open stores and external capabilities a command runs against.
type stack struct {
	config *shared.Config
	db     *sql.DB
	redis  *redis.Client
	deps   queue.Deps
}

// Close releases the database and the Redis client.
func (s *stack) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}

// open loads the config, migrates the database and wires stores and services.
func (r *Runner) open(ctx context.Context, cmd *cli.Command) (*stack, error) {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	shared.ConfigureDatabase(db, config.Database.Path, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &stack{config: config, db: db}

	var catalog repositories.CatalogStore = repositories.NewCatalogRepository(db)
	if config.Store.Backend == shared.StoreRedis {
		client, err := repositories.NewRedisClient(ctx, config.Redis)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.redis = client
		catalog = repositories.NewRedisCatalogStore(client, config.Redis.KeyPrefix)
	}

	lister, err := r.playlistLister(ctx, config)
	if err != nil {
		s.Close()
		return nil, err
	}

	extractor := r.extractor
	if extractor == nil {
		extractor = services.NewYTDLPExtractor(config.YouTube.Proxy)
	}

	s.deps = queue.Deps{
		Catalog:   catalog,
		Playlists: repositories.NewPlaylistRepository(db),
		Known:     repositories.NewKnownPlaylistRepository(db),
		Lister:    lister,
		Extractor: extractor,
		Streams:   metadata.NewStreamResolver(extractor),
	}

	r.logger.Debug("stores ready", "database", config.Database.Path, "catalog", catalogBackend(config))
	return s, nil
}

// playlistLister prefers the Data API when a key is configured and falls back to yt-dlp.
func (r *Runner) playlistLister(ctx context.Context, config *shared.Config) (services.PlaylistLister, error) {
	if r.lister != nil {
		return r.lister, nil
	}
	if config.YouTube.APIKey != "" {
		return services.NewDataAPIPlaylistLister(ctx, config.YouTube.APIKey)
	}
	return services.NewYTDLPPlaylistLister(config.YouTube.Proxy), nil
}

func catalogBackend(config *shared.Config) string {
	if config.Store.Backend == "" {
		return shared.StoreSQLite
	}
	return config.Store.Backend
}

// queueOptions builds the queue options every command shares.
func (r *Runner) queueOptions(config *shared.Config) []queue.Option {
	return []queue.Option{
		queue.WithLogger(shared.WithLogger(r.logger, "component", "queue")),
		queue.WithPlaylistLimit(config.YouTube.PlaylistLimit),
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	ui.Styles.Header(r.output, title)
}
