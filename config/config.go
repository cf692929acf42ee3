// config/config.go
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Things        ThingsConfiguration
	ResponseLog   ResponseLogConfiguration
	Poll          PollConfiguration
	Tracker       TrackerConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Console       ConsoleConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port   string `validate:"required"`
	LogDir string
}

// ThingsConfiguration describes the Things service deployment the client talks to.
type ThingsConfiguration struct {
	BaseURL            string `validate:"required,url"`
	Username           string
	Password           string
	APIToken           string
	AuthorizationModel string `validate:"oneof=acl owner"`
}

type ResponseLogConfiguration struct {
	Order    string `validate:"oneof=newest-first oldest-first"`
	Capacity int    `validate:"gte=0"`
	RedisKey string
	Persist  bool
	Mirror   bool
}

type PollConfiguration struct {
	Interval     time.Duration `validate:"gt=0"`
	SearchFields string
	PageSize     int `validate:"gt=0,lte=200"`
}

type TrackerConfiguration struct {
	Throttle time.Duration `validate:"gte=0"`
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL   string `validate:"omitempty,url"`
	Index string
}

// ConsoleConfiguration guards the console API.
type ConsoleConfiguration struct {
	Username        string
	Password        string
	RateLimit       int           `validate:"gte=0"`
	RateLimitWindow time.Duration `validate:"gte=0"`
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	var loaded Configuration
	if err := viper.Unmarshal(&loaded); err != nil {
		return err
	}
	if err := Validate(&loaded); err != nil {
		return err
	}
	config = &loaded
	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.logDir", "")

	viper.SetDefault("things.baseURL", "http://localhost:8081")
	viper.SetDefault("things.username", "")
	viper.SetDefault("things.password", "")
	viper.SetDefault("things.apiToken", "")
	viper.SetDefault("things.authorizationModel", "acl")

	viper.SetDefault("responseLog.order", "newest-first")
	viper.SetDefault("responseLog.capacity", 500)
	viper.SetDefault("responseLog.redisKey", "things:responses")
	viper.SetDefault("responseLog.persist", false)
	viper.SetDefault("responseLog.mirror", false)

	viper.SetDefault("poll.interval", "1s")
	viper.SetDefault("poll.searchFields", "thingId,features/geolocation,features/orientation,features/xdk-sensors")
	viper.SetDefault("poll.pageSize", 200)

	viper.SetDefault("tracker.throttle", "1s")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolSize", 10)

	viper.SetDefault("elasticsearch.url", "")
	viper.SetDefault("elasticsearch.index", "things-responses")

	viper.SetDefault("console.username", "")
	viper.SetDefault("console.password", "")
	viper.SetDefault("console.rateLimit", 100)
	viper.SetDefault("console.rateLimitWindow", "1m")
}

// Validate checks the loaded configuration against its struct tags.
func Validate(c *Configuration) error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
