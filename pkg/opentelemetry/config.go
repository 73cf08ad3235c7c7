package opentelemetry

import "time"

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

type OTLPConfig struct {
	Headers  map[string]string `mapstructure:"headers"`
	Endpoint string            `mapstructure:"endpoint" default:"127.0.0.1:4317"`
}

type Config struct {
	Enabled        bool              `mapstructure:"enabled" default:"false"`
	ServiceName    string            `mapstructure:"service_name" default:"workforce"`
	ServiceVersion string            `mapstructure:"service_version"`
	Labels         map[string]string `mapstructure:"labels"`
	// Exporter is stdout (traces only, pretty printed) or otlp (traces and metrics)
	Exporter string     `mapstructure:"exporter" default:"stdout" validate:"oneof=stdout otlp"`
	OTLP     OTLPConfig `mapstructure:"otlp"`
	// SamplingFraction is the percentage of traces kept, 0 keeps everything
	SamplingFraction int           `mapstructure:"sampling_fraction" validate:"min=0,max=100"`
	MetricInterval   time.Duration `mapstructure:"metric_interval" default:"15s"`
}
