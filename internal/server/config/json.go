package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/flagx"
	"github.com/dmitrijs2005/launchkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP  string         `json:"endpoint_addr_http"`
	StorageType       string         `json:"storage_type"`
	DatabaseDSN       string         `json:"database_dsn"`
	RedisURL          string         `json:"redis_url"`
	RunMigrations     bool           `json:"run_migrations"`
	SecretKey         string         `json:"secret_key"`
	ProjectID         string         `json:"project_id"`
	AuthProvider      string         `json:"auth_provider"`
	PasswordVerifier  string         `json:"password_verifier"`
	PasswordSalt      string         `json:"password_salt"`
	AuthServerURL     string         `json:"auth_server_url"`
	AuthServerSecret  string         `json:"auth_server_secret"`
	AuthServerTimeout timex.Duration `json:"auth_server_timeout"`
	TableName         string         `json:"table_name"`
	UUIDColumn        string         `json:"uuid_column"`
	UsernameColumn    string         `json:"username_column"`
	PasswordColumn    string         `json:"password_column"`
	AccessTokenColumn string         `json:"access_token_column"`
	ServerIDColumn    string         `json:"server_id_column"`
	SkinURL           string         `json:"skin_url"`
	CapeURL           string         `json:"cape_url"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	SkinURLTTL        timex.Duration `json:"skin_url_ttl"`
	Debug             bool           `json:"debug"`
}

func toJson(c *Config) JsonConfig {
	return JsonConfig{
		EndpointAddrGRPC:  c.EndpointAddrGRPC,
		EndpointAddrHTTP:  c.EndpointAddrHTTP,
		StorageType:       c.StorageType,
		DatabaseDSN:       c.DatabaseDSN,
		RedisURL:          c.RedisURL,
		RunMigrations:     c.RunMigrations,
		SecretKey:         c.SecretKey,
		ProjectID:         c.ProjectID,
		AuthProvider:      c.AuthProvider,
		PasswordVerifier:  c.PasswordVerifier,
		PasswordSalt:      c.PasswordSalt,
		AuthServerURL:     c.AuthServerURL,
		AuthServerSecret:  c.AuthServerSecret,
		AuthServerTimeout: timex.Duration{Duration: c.AuthServerTimeout},
		TableName:         c.TableName,
		UUIDColumn:        c.UUIDColumn,
		UsernameColumn:    c.UsernameColumn,
		PasswordColumn:    c.PasswordColumn,
		AccessTokenColumn: c.AccessTokenColumn,
		ServerIDColumn:    c.ServerIDColumn,
		SkinURL:           c.SkinURL,
		CapeURL:           c.CapeURL,
		S3Bucket:          c.S3Bucket,
		S3Region:          c.S3Region,
		S3BaseEndpoint:    c.S3BaseEndpoint,
		S3RootUser:        c.S3RootUser,
		S3RootPassword:    c.S3RootPassword,
		SkinURLTTL:        timex.Duration{Duration: c.SkinURLTTL},
		Debug:             c.Debug,
	}
}

func (j JsonConfig) apply(c *Config) {
	c.EndpointAddrGRPC = j.EndpointAddrGRPC
	c.EndpointAddrHTTP = j.EndpointAddrHTTP
	c.StorageType = j.StorageType
	c.DatabaseDSN = j.DatabaseDSN
	c.RedisURL = j.RedisURL
	c.RunMigrations = j.RunMigrations
	c.SecretKey = j.SecretKey
	c.ProjectID = j.ProjectID
	c.AuthProvider = j.AuthProvider
	c.PasswordVerifier = j.PasswordVerifier
	c.PasswordSalt = j.PasswordSalt
	c.AuthServerURL = j.AuthServerURL
	c.AuthServerSecret = j.AuthServerSecret
	c.AuthServerTimeout = j.AuthServerTimeout.Duration
	c.TableName = j.TableName
	c.UUIDColumn = j.UUIDColumn
	c.UsernameColumn = j.UsernameColumn
	c.PasswordColumn = j.PasswordColumn
	c.AccessTokenColumn = j.AccessTokenColumn
	c.ServerIDColumn = j.ServerIDColumn
	c.SkinURL = j.SkinURL
	c.CapeURL = j.CapeURL
	c.S3Bucket = j.S3Bucket
	c.S3Region = j.S3Region
	c.S3BaseEndpoint = j.S3BaseEndpoint
	c.S3RootUser = j.S3RootUser
	c.S3RootPassword = j.S3RootPassword
	c.SkinURLTTL = j.SkinURLTTL.Duration
	c.Debug = j.Debug
}

// parseJson overlays the file named by -c/-config onto config. Keys missing
// from the file keep their current values.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)

	// nothing to load
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config file: %v", common.ErrorConfiguration, err)
	}

	c := toJson(config)
	if err := json.Unmarshal(file, &c); err != nil {
		return fmt.Errorf("%w: parse config file: %v", common.ErrorConfiguration, err)
	}
	c.apply(config)

	return nil
}
