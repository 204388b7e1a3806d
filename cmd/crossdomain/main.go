// Command crossdomain uploads a permissive crossdomain.xml policy to each
// configured bucket. Flash-based uploaders refuse to POST to a bucket that
// does not serve one, so this runs once when a bucket is provisioned.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	mediastore "github.com/seanbradley/mediacore-aws"
	s3driver "github.com/seanbradley/mediacore-aws/drivers/s3"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Buckets []mediastore.StorageConfig `mapstructure:"buckets"`
}

// loadConfig reads bucket credentials from an optional crossdomain.yaml in
// the working directory, falling back to a single bucket described by
// MEDIASTORE_* environment variables.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEDIASTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("crossdomain")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, err
	}

	if len(cfg.Buckets) == 0 {
		cfg.Buckets = append(cfg.Buckets, mediastore.StorageConfig{
			AccessKey:  v.GetString("access_key"),
			SecretKey:  v.GetString("secret_key"),
			BucketName: v.GetString("bucket_name"),
		})
	}
	return cfg, nil
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, bucket := range cfg.Buckets {
		bucket := bucket
		g.Go(func() error {
			client, err := s3driver.Connect(ctx, bucket)
			if err != nil {
				logger.Error().Err(err).Str("bucket", bucket.BucketName).Msg("failed to connect to bucket")
				return err
			}
			if err := s3driver.UploadCrossdomainPolicy(ctx, client); err != nil {
				logger.Error().Err(err).Str("bucket", bucket.BucketName).Msg("failed to upload crossdomain policy")
				return err
			}
			logger.Info().Str("bucket", bucket.BucketName).Str("key", s3driver.CrossdomainKey).Msg("crossdomain policy uploaded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		os.Exit(1)
	}
}
