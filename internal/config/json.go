package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON keys and
// [Duration] fields that accept strings such as "30s".
type StructuredJSONConfig struct {
	App struct {
		PasswordPepper string   `json:"password_pepper"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`

		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string   `json:"address"`
			Password string   `json:"password"`
			DB       int      `json:"db"`
			TTL      Duration `json:"ttl"`
		} `json:"redis,omitempty"`

		Images struct {
			Endpoint     string   `json:"endpoint"`
			AccessKey    string   `json:"access_key"`
			SecretKey    string   `json:"secret_key"`
			Bucket       string   `json:"bucket"`
			UseSSL       bool     `json:"use_ssl"`
			MaxDimension int      `json:"max_dimension"`
			URLExpiry    Duration `json:"url_expiry"`
		} `json:"images,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Seed bool `json:"seed"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	storage := jsonCfg.Storage
	cfg := &StructuredConfig{
		App: App{
			PasswordPepper: jsonCfg.App.PasswordPepper,
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			Driver: storage.Driver,
			Mongo: Mongo{
				URI:      storage.Mongo.URI,
				Database: storage.Mongo.Database,
			},
			DB: DB{
				DSN: storage.DB.DSN,
			},
			Redis: Redis{
				Address:  storage.Redis.Address,
				Password: storage.Redis.Password,
				DB:       storage.Redis.DB,
				TTL:      time.Duration(storage.Redis.TTL),
			},
			Images: Images{
				Endpoint:     storage.Images.Endpoint,
				AccessKey:    storage.Images.AccessKey,
				SecretKey:    storage.Images.SecretKey,
				Bucket:       storage.Images.Bucket,
				UseSSL:       storage.Images.UseSSL,
				MaxDimension: storage.Images.MaxDimension,
				URLExpiry:    time.Duration(storage.Images.URLExpiry),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		Seed:         jsonCfg.Seed,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
