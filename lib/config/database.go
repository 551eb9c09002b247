package config

import (
	"fmt"
	"net/url"

	"github.com/go-sql-driver/mysql"

	"github.com/artie-labs/tablesync/lib/config/constants"
	"github.com/artie-labs/tablesync/lib/stringutil"
)

type MSSQL struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

func (m MSSQL) DSN() string {
	query := url.Values{}
	query.Add("database", m.Database)

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(m.Username, m.Password),
		Host:     fmt.Sprintf("%s:%d", m.Host, m.Port),
		RawQuery: query.Encode(),
	}

	return u.String()
}

type Postgres struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Database   string `yaml:"database"`
	DisableSSL bool   `yaml:"disableSSL"`
}

func (p Postgres) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.Username, p.Password),
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   p.Database,
	}

	if p.DisableSSL {
		u.RawQuery = url.Values{"sslmode": []string{"disable"}}.Encode()
	}

	return u.String()
}

type MySQL struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

func (m MySQL) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = m.Username
	cfg.Passwd = m.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", m.Host, m.Port)
	cfg.DBName = m.Database
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

type SQLite struct {
	// Path is either a file path or ":memory:".
	Path string `yaml:"path"`
}

func (s SQLite) DSN() string {
	return s.Path
}

// Database describes one side of the sync, either the source or the destination.
type Database struct {
	Kind constants.DatabaseKind `yaml:"kind"`
	// Schema is optional, if it's not set then the dialect's default schema is used.
	Schema string `yaml:"schema"`

	MSSQL    *MSSQL    `yaml:"mssql,omitempty"`
	Postgres *Postgres `yaml:"postgres,omitempty"`
	MySQL    *MySQL    `yaml:"mysql,omitempty"`
	SQLite   *SQLite   `yaml:"sqlite,omitempty"`
}

func (d Database) DSN() (string, error) {
	switch d.Kind {
	case constants.MSSQL:
		if d.MSSQL != nil {
			return d.MSSQL.DSN(), nil
		}
	case constants.Postgres:
		if d.Postgres != nil {
			return d.Postgres.DSN(), nil
		}
	case constants.MySQL:
		if d.MySQL != nil {
			return d.MySQL.DSN(), nil
		}
	case constants.SQLite:
		if d.SQLite != nil {
			return d.SQLite.DSN(), nil
		}
	default:
		return "", fmt.Errorf("invalid database kind: %q", d.Kind)
	}

	return "", fmt.Errorf("%s settings are nil", d.Kind)
}

func (d Database) Validate() error {
	if !constants.IsValidDatabase(d.Kind) {
		return fmt.Errorf("invalid database kind: %q", d.Kind)
	}

	switch d.Kind {
	case constants.MSSQL:
		if d.MSSQL == nil {
			return fmt.Errorf("mssql settings are nil")
		}

		if stringutil.Empty(d.MSSQL.Host, d.MSSQL.Username, d.MSSQL.Password, d.MSSQL.Database) {
			return fmt.Errorf("one of mssql settings is empty (host, username, password, database)")
		}

		if d.MSSQL.Port <= 0 {
			return fmt.Errorf("invalid mssql port: %d", d.MSSQL.Port)
		}
	case constants.Postgres:
		if d.Postgres == nil {
			return fmt.Errorf("postgres settings are nil")
		}

		if stringutil.Empty(d.Postgres.Host, d.Postgres.Username, d.Postgres.Database) {
			return fmt.Errorf("one of postgres settings is empty (host, username, database)")
		}

		if d.Postgres.Port <= 0 {
			return fmt.Errorf("invalid postgres port: %d", d.Postgres.Port)
		}
	case constants.MySQL:
		if d.MySQL == nil {
			return fmt.Errorf("mysql settings are nil")
		}

		if stringutil.Empty(d.MySQL.Host, d.MySQL.Username, d.MySQL.Database) {
			return fmt.Errorf("one of mysql settings is empty (host, username, database)")
		}

		if d.MySQL.Port <= 0 {
			return fmt.Errorf("invalid mysql port: %d", d.MySQL.Port)
		}
	case constants.SQLite:
		if d.SQLite == nil || d.SQLite.Path == "" {
			return fmt.Errorf("sqlite path is empty")
		}
	}

	return nil
}
