package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	client "sales-report/src/client/lib"
	"sales-report/src/common/logger"
	"sales-report/src/common/middleware"
	report "sales-report/src/report/lib"
	sales "sales-report/src/sales/lib"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

const (
	SUCCESS_EXIT_CODE                 = 0
	STARTUP_ERROR_EXIT_CODE           = 1
	ERROR_DURING_PROCESSING_EXIT_CODE = 2
	FILE_READ_ERROR_EXIT_CODE         = 3
	PUBLISH_ERROR_EXIT_CODE           = 4
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "INFO")
	v.SetDefault("input.path", "./sales-data.txt")
	v.SetDefault("output.path", "")
	v.SetDefault("report.top_k", 0)

	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.user", "guest")
	v.SetDefault("rabbitmq.pass", "guest")
	v.SetDefault("rabbitmq.route_key", "reports.sales")
	v.SetDefault("rabbitmq.batch_size", 100)
}

// InitConfig initializes the application configuration using Viper.
// It reads from config.yaml and environment variables, and the first
// positional argument, when given, overrides input.path.
func InitConfig(args []string) (*viper.Viper, error) {
	v := viper.New()

	// Use a replacer to replace env variables underscores with points. This let us
	// use nested configurations in the config file and at the same time define
	// env variables for the nested configurations
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	// A missing config file is fine: env variables and defaults still apply
	v.SetConfigFile("./config.yaml")
	if err := v.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Configuration could not be read from config file. Using env variables instead")
	}

	if len(args) > 0 && args[0] != "" {
		v.Set("input.path", args[0])
	}

	if v.GetInt("report.top_k") < 0 {
		return nil, fmt.Errorf("report.top_k must not be negative, got %d", v.GetInt("report.top_k"))
	}

	return v, nil
}

// PrintConfig logs the effective configuration.
func PrintConfig(v *viper.Viper, log *logging.Logger) {
	log.Infof("Sales report startup with: input: %s | output: %q | log level: %s | top k: %d",
		v.GetString("input.path"),
		v.GetString("output.path"),
		v.GetString("log.level"),
		v.GetInt("report.top_k"),
	)

	if v.GetBool("rabbitmq.enabled") {
		log.Infof("Detected RabbitMQ configuration: host: %s | port: %d | username: %s | route key: %s | batch size: %d",
			v.GetString("rabbitmq.host"),
			v.GetInt("rabbitmq.port"),
			v.GetString("rabbitmq.user"),
			v.GetString("rabbitmq.route_key"),
			v.GetInt("rabbitmq.batch_size"),
		)
	}
}

func publish(ctx context.Context, v *viper.Viper, clientId string, salesReport *report.Report, log *logging.Logger) error {
	rabbitConf := middleware.NewRabbitConfig(
		v.GetString("rabbitmq.user"),
		v.GetString("rabbitmq.pass"),
		v.GetString("rabbitmq.host"),
		v.GetInt("rabbitmq.port"),
	)

	log.Infof("Establishing connection with RabbitMQ on address %s:%d", rabbitConf.Host, rabbitConf.Port)

	rabbitConn, err := middleware.NewRabbitConnection(&rabbitConf)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	handler, err := middleware.NewMiddlewareHandler(rabbitConn)
	if err != nil {
		rabbitConn.Close()
		return fmt.Errorf("failed to create middleware handler: %w", err)
	}
	defer handler.Close()

	log.Info("Connection with RabbitMQ successfully established")

	exchange, err := handler.CreateDirectExchange(v.GetString("rabbitmq.route_key"))
	if err != nil {
		return fmt.Errorf("failed to create exchange handler for %s: %w", v.GetString("rabbitmq.route_key"), err)
	}
	defer exchange.Close()

	publisher := report.NewPublisher(exchange, clientId, v.GetInt("rabbitmq.batch_size"))
	return publisher.Publish(ctx, salesReport)
}

// run executes one report generation and returns the process exit code.
// Reports go to stdout; errors are logged and echoed to stderr.
func run(args []string, stdout io.Writer) int {
	config, err := InitConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing configuration: %v\n", err)
		return STARTUP_ERROR_EXIT_CODE
	}

	err = logger.InitGlobalLogger(config.GetString("log.level"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return STARTUP_ERROR_EXIT_CODE
	}

	log := logger.GetLoggerWithPrefix("[MAIN]")

	PrintConfig(config, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fileHandler := client.NewFileHandler(config.GetString("input.path"))
	lines, err := fileHandler.ReadLines()
	if err != nil {
		log.Errorf("Error reading file: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return FILE_READ_ERROR_EXIT_CODE
	}

	records := sales.ParseLines(lines)

	salesReport, err := report.Generate(ctx, records, config.GetInt("report.top_k"))
	if err != nil {
		log.Errorf("Failed generating reports: %v", err)
		return ERROR_DURING_PROCESSING_EXIT_CODE
	}

	if err := report.Present(stdout, salesReport); err != nil {
		log.Errorf("%v", err)
		return ERROR_DURING_PROCESSING_EXIT_CODE
	}

	if outputPath := config.GetString("output.path"); outputPath != "" {
		if err := client.WriteLines(report.Render(salesReport), outputPath); err != nil {
			log.Errorf("Failed writing reports to %s: %v", outputPath, err)
			return ERROR_DURING_PROCESSING_EXIT_CODE
		}
		log.Infof("Reports saved to %s", outputPath)
	}

	if config.GetBool("rabbitmq.enabled") {
		streamId := client.StreamId(fileHandler.Name(), client.NewRunUuid())
		if err := publish(ctx, config, streamId, salesReport, log); err != nil {
			log.Errorf("Failed publishing reports: %v", err)
			return PUBLISH_ERROR_EXIT_CODE
		}
	}

	return SUCCESS_EXIT_CODE
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
