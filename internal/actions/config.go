// Package actions holds the operations shared by the CLI commands and the interactive menu.
package actions

import (
	"fmt"

	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/sirupsen/logrus"
)

// ShowConfig displays the current configuration
func ShowConfig(log logrus.FieldLogger, dir string) error {
	cfg, err := config.Load(log, dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println(cfg.String())
	return nil
}
