package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/joho/godotenv"
	"github.com/qdm12/goshutdown"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/ip-locator/internal/config"
	"github.com/qdm12/ip-locator/internal/health"
	"github.com/qdm12/ip-locator/internal/lookup"
	"github.com/qdm12/ip-locator/internal/metrics"
	"github.com/qdm12/ip-locator/internal/models"
	"github.com/qdm12/ip-locator/internal/resolver"
	"github.com/qdm12/ip-locator/internal/server"
	"github.com/qdm12/ip-locator/internal/terminal"
	"github.com/qdm12/ip-locator/pkg/geolocation"
	"github.com/qdm12/ip-locator/pkg/publicip"
	"github.com/qdm12/ip-locator/pkg/publicip/dns"
	iphttp "github.com/qdm12/ip-locator/pkg/publicip/http"
	"github.com/qdm12/ip-locator/ui"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	err := loadDotEnv(".env")
	if err != nil {
		logger.Warn(err.Error())
	}

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, os.Stdout, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

// loadDotEnv sets environment variables from the file at path,
// without overriding variables already set. A missing file is ignored.
func loadDotEnv(path string) (err error) {
	err = godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s file: %w", path, err)
	}
	return nil
}

func _main(ctx context.Context, reader *reader.Reader, args []string, stdout io.Writer,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if health.IsClientMode(args) {
		// Running the program in a separate instance through the Docker
		// built-in healthcheck, in an ephemeral fashion to query the
		// long running instance of the program about its status
		var healthSettings config.Health
		healthSettings.Read(reader)
		healthSettings.SetDefaults()
		err = healthSettings.Validate()
		if err != nil {
			return fmt.Errorf("health settings: %w", err)
		}

		client := health.NewClient()
		return client.Query(ctx, *healthSettings.ServerAddress)
	}

	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Fprintln(stdout, buildInfo.String())
			return nil
		case "lookup":
			if len(args) < 3 { //nolint:gomnd
				return fmt.Errorf("%w: usage: %s lookup <ip> [ip...]", ErrCommandArgument, args[0])
			}
			addresses := args[2:]
			return runCommand(ctx, reader, stdout, logger,
				func(service *lookup.Service, display lookup.Display) error {
					if len(addresses) == 1 {
						return service.Submit(ctx, addresses[0], display)
					}
					return service.SubmitMultiple(ctx, addresses, display)
				})
		case "myip":
			return runCommand(ctx, reader, stdout, logger,
				func(service *lookup.Service, display lookup.Display) error {
					return service.UseMyIP(ctx, display)
				})
		default:
			return fmt.Errorf("%w: %s", ErrCommandUnknown, args[1])
		}
	}

	printSplash(stdout, buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}
	logger.Info(config.String())

	client := newHTTPClient(config)
	defer client.CloseIdleConnections()

	err = health.CheckHTTP(ctx, client, "https://ipapi.co")
	if err != nil {
		logger.Warn("checking connectivity: " + err.Error())
	}

	metricsRegistry, err := metrics.New()
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}
	var metricsHandler http.Handler
	if *config.Metrics.Enabled {
		metricsHandler = metricsRegistry.Handler()
	}

	service, err := newService(config, client, metricsRegistry, logger)
	if err != nil {
		return err
	}

	assets := makeAssets(*config.Server.AssetsDir)

	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	healthServer := health.NewServer(*config.Health.ServerAddress, healthLogger,
		health.MakeIsHealthy(assets, healthLogger))
	healthServerHandler, healthServerCtx, healthServerDone := goshutdown.NewGoRoutineHandler(
		"health server")
	go healthServer.Run(healthServerCtx, healthServerDone)

	serverLogger := logger.New(log.SetComponent("http server"))
	server := server.New(config.Server.ListeningAddress, config.Server.RootURL,
		assets, service, metricsHandler, serverLogger)
	serverHandler, serverCtx, serverDone := goshutdown.NewGoRoutineHandler("server")
	go server.Run(serverCtx, serverDone)

	shutdownGroup := goshutdown.NewGroupHandler("")
	shutdownGroup.Add(healthServerHandler, serverHandler)

	<-ctx.Done()

	err = shutdownGroup.Shutdown(context.Background())
	if err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

var (
	ErrCommandUnknown  = errors.New("command is unknown")
	ErrCommandArgument = errors.New("command argument missing")
)

func runCommand(ctx context.Context, reader *reader.Reader, stdout io.Writer,
	logger log.LoggerInterface,
	run func(service *lookup.Service, display lookup.Display) error) (err error) {
	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	client := newHTTPClient(config)
	defer client.CloseIdleConnections()

	metricsRegistry, err := metrics.New()
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	service, err := newService(config, client, metricsRegistry, logger)
	if err != nil {
		return err
	}

	return run(service, terminal.New(stdout))
}

func newService(config config.Config, client *http.Client,
	metricsRegistry *metrics.Metrics, logger log.LoggerInterface) (
	service *lookup.Service, err error) {
	selfMetrics := metricsRegistry.Pipeline(lookup.PipelineSelf)
	publicIPOptions := []publicip.Option{
		publicip.UseHTTP(client, append(config.PubIP.ToHTTPOptions(),
			iphttp.SetMetrics(selfMetrics))...),
		publicip.SetLogger(logger.New(log.SetComponent("public IP"))),
	}
	if *config.PubIP.DNSEnabled {
		publicIPOptions = append(publicIPOptions, publicip.UseDNS(
			append(config.PubIP.ToDNSOptions(), dns.SetMetrics(selfMetrics))...))
	}
	selfResolver, err := publicip.NewFetcher(publicIPOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating public IP fetcher: %w", err)
	}

	geolocationOptions := append(config.Geolocation.ToOptions(),
		geolocation.SetLogger(logger.New(log.SetComponent("geolocation"))),
		geolocation.SetMetrics(metricsRegistry.Pipeline(lookup.PipelineGeolocation)),
	)
	geolocator, err := geolocation.New(client, geolocationOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating geolocation client: %w", err)
	}

	return lookup.New(selfResolver, geolocator, metricsRegistry,
		logger.New(log.SetComponent("lookup"))), nil
}

func newHTTPClient(config config.Config) *http.Client {
	dnsResolver := resolver.New(*config.Resolver.Address, config.Resolver.Timeout)
	return resolver.NewHTTPClient(dnsResolver, config.Client.Timeout)
}

func makeAssets(assetsDir string) fs.FS {
	if assetsDir == "" {
		return ui.FS
	}
	return os.DirFS(assetsDir)
}

func printSplash(stdout io.Writer, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "ip-locator",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(stdout, line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)

	return config, nil
}
