package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/guildbot/pkg/backup"
	"github.com/umputun/guildbot/pkg/bot"
	"github.com/umputun/guildbot/pkg/config"
	"github.com/umputun/guildbot/pkg/guild"
	"github.com/umputun/guildbot/pkg/leaderboard"
	"github.com/umputun/guildbot/pkg/llm"
	"github.com/umputun/guildbot/pkg/market"
	"github.com/umputun/guildbot/pkg/qotd"
	"github.com/umputun/guildbot/pkg/repository"
	"github.com/umputun/guildbot/pkg/thread"
	"github.com/umputun/guildbot/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"guildbot.yml" description:"configuration file"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env" description:"dotenv file loaded before config"`
	Reset   bool   `long:"reset" description:"back up the database and start with an empty one"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)
	log.Printf("[INFO] starting guildbot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires all components and blocks until ctx is canceled or a component fails
func run(ctx context.Context, opts Opts) error {
	if err := loadEnv(opts.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Discord.Token == "" {
		return errors.New("discord token is not set")
	}
	setupLog(opts.Debug, cfg.Discord.Token, cfg.LLM.APIKey, cfg.Backup.SecretKey, cfg.Server.Password)

	if opts.Reset || cfg.Database.Reset {
		if err := resetDatabase(ctx, cfg); err != nil {
			return err
		}
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] close database: %v", err)
		}
	}()
	lgr.Printf("[INFO] database %s opened", cfg.Database.Path)

	settings := guild.NewManager(repos.Guild)
	gate := guild.NewGate(repos.Guild)
	aiClient := llm.NewClient(cfg.LLM)
	stocks := market.NewClient(cfg.Market)
	social := leaderboard.NewService(repos.Link, repos.Slap)

	b, err := bot.New(bot.Config{
		Token:        cfg.Discord.Token,
		DevGuildID:   cfg.Discord.DevGuildID,
		DeveloperIDs: cfg.Discord.DeveloperIDs,
		Statuses:     cfg.Discord.Statuses,
		StatusEvery:  cfg.Discord.StatusEvery,
		DefaultModel: cfg.LLM.DefaultModel,
		GrokModel:    cfg.LLM.GrokModel,
	}, bot.Deps{
		Settings: settings,
		Gate:     gate,
		Threads:  thread.NewBinder(repos.Thread, cfg.LLM.DefaultModel),
		Social:   social,
		AI:       aiClient,
		Stocks:   stocks,
		Analyst:  llm.NewAnalyst(aiClient, stocks),
	})
	if err != nil {
		return fmt.Errorf("failed to make bot: %w", err)
	}

	poster := qotd.NewPoster(aiClient, b, cfg.QOTD.PollHours)
	b.SetPoster(poster)

	scheduler, err := makeScheduler(cfg.QOTD, poster, b, gate, settings)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := b.Run(ctx); err != nil {
			return fmt.Errorf("bot failed: %w", err)
		}
		return nil
	})

	var status server.Scheduler
	if cfg.QOTD.Enabled {
		scheduler.Start(ctx)
		defer scheduler.Stop()
		status = scheduler
	}

	if cfg.Server.Enabled {
		srv := server.New(server.Config{
			Listen:   cfg.Server.Listen,
			Timeout:  cfg.Server.Timeout,
			Password: cfg.Server.Password,
			Version:  revision,
			Debug:    opts.Debug,
		}, server.Deps{
			Settings:     settings,
			Leaderboards: social,
			Guilds:       b,
			Scheduler:    status,
		})
		g.Go(func() error {
			if err := srv.Run(ctx); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// makeScheduler builds the daily poll scheduler from qotd settings
func makeScheduler(cfg config.QOTDConfig, poster *qotd.Poster, pub qotd.Publisher, gate qotd.Gate,
	settings qotd.Settings) (*qotd.Scheduler, error) {
	hour, minute, err := cfg.TimeOfDay()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return qotd.NewScheduler(poster, pub, gate, settings, qotd.Config{
		Hour: hour, Minute: minute, Location: loc, RetryInterval: cfg.RetryInterval,
	}), nil
}

// resetDatabase moves the database file aside and uploads the backup when enabled
func resetDatabase(ctx context.Context, cfg *config.Config) error {
	bak, err := repository.BackupAndReset(cfg.Database.Path, time.Now())
	if err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	if bak == "" {
		lgr.Printf("[INFO] no database at %s, nothing to back up", cfg.Database.Path)
		return nil
	}
	lgr.Printf("[INFO] database backed up to %s", bak)

	if !cfg.Backup.Enabled {
		return nil
	}
	uploader, err := backup.NewUploader(ctx, cfg.Backup)
	if err != nil {
		return fmt.Errorf("failed to make backup uploader: %w", err)
	}
	key, err := uploader.Upload(ctx, bak)
	if err != nil {
		// local backup is kept, a failed upload doesn't stop the bot
		lgr.Printf("[WARN] upload backup %s: %v", bak, err)
		return nil
	}
	lgr.Printf("[INFO] backup uploaded to s3://%s/%s", cfg.Backup.Bucket, key)
	return nil
}

// loadEnv reads the dotenv file into the environment, a missing file is not an error
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
