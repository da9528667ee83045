package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"cpu-scheduler-simulator/internal/workload"
)

type WorkloadConfig struct {
	Count       int
	MaxArrival  int
	MaxBurst    int
	MaxPriority int
}

func (w WorkloadConfig) Ranges() workload.Ranges {
	return workload.Ranges{MaxArrival: w.MaxArrival, MaxBurst: w.MaxBurst, MaxPriority: w.MaxPriority}
}

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	Workload              WorkloadConfig
}

func setDefaults(v *viper.Viper) {
	ranges := workload.DefaultRanges()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("workload.count", 5)
	v.SetDefault("workload.max_arrival", ranges.MaxArrival)
	v.SetDefault("workload.max_burst", ranges.MaxBurst)
	v.SetDefault("workload.max_priority", ranges.MaxPriority)
}

// Default returns the configuration used when no file or env override is present.
func Default() *SchedulerConfig {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// LoadSchedulerConfig reads path, or ./config.yaml when path is empty.
// A missing ./config.yaml is not an error. SCHEDULER_* env vars override
// file values, e.g. SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	config := fromViper(v)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func fromViper(v *viper.Viper) *SchedulerConfig {
	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		Workload: WorkloadConfig{
			Count:       v.GetInt("workload.count"),
			MaxArrival:  v.GetInt("workload.max_arrival"),
			MaxBurst:    v.GetInt("workload.max_burst"),
			MaxPriority: v.GetInt("workload.max_priority"),
		},
	}
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: round robin time quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.Workload.Count < 0 {
		return fmt.Errorf("config: workload count must not be negative, got %d", c.Workload.Count)
	}
	if err := c.Workload.Ranges().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits on failure.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		c, err := LoadSchedulerConfig("")
		if err != nil {
			log.Fatalln(err)
		}
		config = c
	})

	return config
}
