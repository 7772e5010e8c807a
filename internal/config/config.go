package config

import "fmt"

// Server configures the SSH preview server.
type Server struct {
	Addr        string `env:"AVATAR_SSH_ADDR"     envDefault:":2222"`
	HostKeyPath string `env:"AVATAR_HOST_KEY"     envDefault:"host_key"`
	PreviewSize int    `env:"AVATAR_PREVIEW_SIZE" envDefault:"16"`
}

// CLI configures the avatar command.
type CLI struct {
	RenderSize int    `env:"AVATAR_RENDER_SIZE" envDefault:"256"`
	Background string `env:"AVATAR_BACKGROUND"`
	Points     int    `env:"AVATAR_POINTS"`
	Lang       string `env:"AVATAR_LANG"        envDefault:"en"`
}

// LoadServer reads the server configuration.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.PreviewSize < 1 {
		return cfg, fmt.Errorf("AVATAR_PREVIEW_SIZE must be positive, got %d", cfg.PreviewSize)
	}
	return cfg, nil
}

// LoadCLI reads the command line configuration.
func LoadCLI() (CLI, error) {
	var cfg CLI
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.RenderSize < 1 {
		return cfg, fmt.Errorf("AVATAR_RENDER_SIZE must be positive, got %d", cfg.RenderSize)
	}
	return cfg, nil
}
